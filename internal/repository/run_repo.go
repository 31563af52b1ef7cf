package repository

import (
	"hospital-analytics-backend/internal/models"

	"gorm.io/gorm"
)

type RunRepository struct {
	db *gorm.DB
}

func NewRunRepo(db *gorm.DB) *RunRepository {
	return &RunRepository{db: db}
}

// Create persists a generation run record.
func (r *RunRepository) Create(run *models.GenerationRun) error {
	return r.db.Create(run).Error
}

// GetRecent returns the most recent generation runs, newest first.
func (r *RunRepository) GetRecent(limit int) ([]models.GenerationRun, error) {
	var runs []models.GenerationRun
	err := r.db.Order("created_at DESC").Limit(limit).Find(&runs).Error
	return runs, err
}
