package generator

import (
	"time"

	"hospital-analytics-backend/internal/models"
)

// snapshotHour is the fixed local hour at which daily occupancy is measured.
const snapshotHour = 8

// buildBedOccupancy takes one snapshot per department per calendar day,
// counting admissions whose stay interval covers the snapshot instant,
// inclusive on both ends. A patient discharged exactly at the snapshot
// instant still counts as occupying a bed. Counts are capped at department
// capacity.
func (g *Generator) buildBedOccupancy(departments []models.Department, admissions []models.Admission) []models.BedOccupancy {
	byDept := make(map[uint][]models.Admission, len(departments))
	for _, adm := range admissions {
		byDept[adm.DepartmentID] = append(byDept[adm.DepartmentID], adm)
	}

	var snapshots []models.BedOccupancy
	id := uint(1)
	for day := g.cfg.StartDate; !day.After(g.cfg.EndDate); day = day.Add(24 * time.Hour) {
		instant := time.Date(day.Year(), day.Month(), day.Day(), snapshotHour, 0, 0, 0, time.UTC)
		for _, dept := range departments {
			active := 0
			for _, adm := range byDept[dept.DepartmentID] {
				if !adm.AdmissionDatetime.After(instant) && !adm.DischargeDatetime.Before(instant) {
					active++
				}
			}

			occupied := active
			if occupied > dept.TotalBeds {
				occupied = dept.TotalBeds
			}
			rate := 0.0
			if dept.TotalBeds > 0 {
				rate = round2(float64(occupied) / float64(dept.TotalBeds) * 100)
			}

			snapshots = append(snapshots, models.BedOccupancy{
				SnapshotID:       id,
				DepartmentID:     dept.DepartmentID,
				DepartmentName:   dept.DepartmentName,
				BranchID:         dept.BranchID,
				SnapshotDatetime: instant,
				OccupiedBeds:     occupied,
				TotalBeds:        dept.TotalBeds,
				OccupancyRate:    rate,
			})
			id++
		}
	}
	return snapshots
}
