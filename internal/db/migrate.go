package db

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"real-estate-go/internal/domain/estate"
)

type migration struct {
	name string
	up   func(tx *gorm.DB) error
}

type schemaMigration struct {
	Filename  string    `gorm:"primaryKey"`
	AppliedAt time.Time `gorm:"not null"`
}

func (schemaMigration) TableName() string { return "schema_migrations" }

var migrations = []migration{
	{
		name: "0001_core_tables",
		up: func(tx *gorm.DB) error {
			return tx.AutoMigrate(estate.Models()...)
		},
	},
}

// Migrate applies pending schema steps in order. It is safe to call on every start.
func Migrate(db *gorm.DB) error {
	if err := ensureSchemaMigrations(db); err != nil {
		return err
	}

	for _, step := range migrations {
		applied, err := isMigrationApplied(db, step.name)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := step.up(tx); err != nil {
				return err
			}
			return recordMigration(tx, step.name)
		})
		if err != nil {
			return fmt.Errorf("apply migration %s: %w", step.name, err)
		}
	}

	return nil
}

func ensureSchemaMigrations(db *gorm.DB) error {
	return db.AutoMigrate(&schemaMigration{})
}

func isMigrationApplied(db *gorm.DB, name string) (bool, error) {
	var count int64
	if err := db.Model(&schemaMigration{}).Where("filename = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func recordMigration(db *gorm.DB, name string) error {
	return db.Create(&schemaMigration{Filename: name, AppliedAt: time.Now().UTC()}).Error
}
