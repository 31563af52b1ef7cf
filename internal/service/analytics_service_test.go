package service

import (
	"errors"
	"testing"

	"hospital-analytics-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBedAlertsUsesCriticalThreshold(t *testing.T) {
	store := &mockAnalyticsStore{
		alerts: []models.BedAlert{{DepartmentName: "Emergency", BranchID: 1, OccupancyRate: 96.77}},
	}

	alerts, err := NewAnalyticsService(store).BedAlerts()
	require.NoError(t, err)
	assert.Len(t, alerts, 1)
	assert.Equal(t, 90.0, store.threshold)
}

func TestKPISummaryPassesThrough(t *testing.T) {
	store := &mockAnalyticsStore{
		summary: &models.KPISummary{TotalAdmissions: 3000, AvgLOS: 5.4},
	}

	summary, err := NewAnalyticsService(store).KPISummary()
	require.NoError(t, err)
	assert.Equal(t, 3000, summary.TotalAdmissions)
}

func TestAnalyticsPropagatesStoreErrors(t *testing.T) {
	store := &mockAnalyticsStore{err: errors.New("no such table")}
	svc := NewAnalyticsService(store)

	_, err := svc.KPISummary()
	assert.Error(t, err)
	_, err = svc.EmergencyLoad()
	assert.Error(t, err)
	_, err = svc.DoctorUtilization()
	assert.Error(t, err)
}
