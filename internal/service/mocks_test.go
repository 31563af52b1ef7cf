package service

import (
	"errors"

	"hospital-analytics-backend/internal/models"
)

// mockTableReplacer records replace-load calls per table name.
type mockTableReplacer struct {
	counts  map[string]int
	order   []string
	failOn  string
	failErr error
}

func newMockTableReplacer() *mockTableReplacer {
	return &mockTableReplacer{counts: make(map[string]int)}
}

func (m *mockTableReplacer) ReplaceTable(model interface{}, rows interface{}, count int) error {
	named, ok := model.(interface{ TableName() string })
	if !ok {
		return errors.New("model without table name")
	}
	table := named.TableName()
	if m.failOn == table {
		return m.failErr
	}
	m.counts[table] = count
	m.order = append(m.order, table)
	return nil
}

// mockRunRecorder captures created run records.
type mockRunRecorder struct {
	runs []*models.GenerationRun
	err  error
}

func (m *mockRunRecorder) Create(run *models.GenerationRun) error {
	if m.err != nil {
		return m.err
	}
	m.runs = append(m.runs, run)
	return nil
}

// mockAnalyticsStore returns canned KPI rows and records the alert threshold.
type mockAnalyticsStore struct {
	summary   *models.KPISummary
	alerts    []models.BedAlert
	threshold float64
	err       error
}

func (m *mockAnalyticsStore) KPISummary() (*models.KPISummary, error) {
	return m.summary, m.err
}

func (m *mockAnalyticsStore) BedAlerts(threshold float64) ([]models.BedAlert, error) {
	m.threshold = threshold
	return m.alerts, m.err
}

func (m *mockAnalyticsStore) EmergencyLoad() ([]models.EmergencyLoadRow, error) {
	return nil, m.err
}

func (m *mockAnalyticsStore) DoctorUtilization() ([]models.DoctorUtilizationRow, error) {
	return nil, m.err
}
