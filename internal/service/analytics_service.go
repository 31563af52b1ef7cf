package service

import "hospital-analytics-backend/internal/models"

// AnalyticsStore is the query boundary for the fixed KPI aggregates.
type AnalyticsStore interface {
	KPISummary() (*models.KPISummary, error)
	BedAlerts(threshold float64) ([]models.BedAlert, error)
	EmergencyLoad() ([]models.EmergencyLoadRow, error)
	DoctorUtilization() ([]models.DoctorUtilizationRow, error)
}

// criticalOccupancyThreshold is the occupancy percentage above which a
// department snapshot is flagged.
const criticalOccupancyThreshold = 90.0

type AnalyticsService struct {
	store AnalyticsStore
}

func NewAnalyticsService(store AnalyticsStore) *AnalyticsService {
	return &AnalyticsService{store: store}
}

// KPISummary returns executive-level hospital performance KPIs.
func (s *AnalyticsService) KPISummary() (*models.KPISummary, error) {
	return s.store.KPISummary()
}

// BedAlerts flags department snapshots with critical bed occupancy.
func (s *AnalyticsService) BedAlerts() ([]models.BedAlert, error) {
	return s.store.BedAlerts(criticalOccupancyThreshold)
}

// EmergencyLoad returns emergency department pressure by weekday and hour.
func (s *AnalyticsService) EmergencyLoad() ([]models.EmergencyLoadRow, error) {
	return s.store.EmergencyLoad()
}

// DoctorUtilization returns doctor workload derived from procedures.
func (s *AnalyticsService) DoctorUtilization() ([]models.DoctorUtilizationRow, error) {
	return s.store.DoctorUtilization()
}
