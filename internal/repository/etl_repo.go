package repository

import (
	"fmt"

	"gorm.io/gorm"
)

// insertBatchSize keeps bulk inserts under MySQL's placeholder limits.
const insertBatchSize = 500

type ETLRepository struct {
	db *gorm.DB
}

func NewETLRepo(db *gorm.DB) *ETLRepository {
	return &ETLRepository{db: db}
}

// ReplaceTable drops and recreates the table for model, then bulk-inserts
// rows. Mirrors a replace-load: downstream consumers always see a freshly
// rebuilt table, never a partial append.
func (r *ETLRepository) ReplaceTable(model interface{}, rows interface{}, count int) error {
	migrator := r.db.Migrator()
	if migrator.HasTable(model) {
		if err := migrator.DropTable(model); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
	}
	if err := migrator.CreateTable(model); err != nil {
		return fmt.Errorf("create table: %w", err)
	}
	if count == 0 {
		return nil
	}
	if err := r.db.CreateInBatches(rows, insertBatchSize).Error; err != nil {
		return fmt.Errorf("insert rows: %w", err)
	}
	return nil
}
