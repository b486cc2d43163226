package postgres

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/inmocrm/backend/internal/domain/ports"
)

// MigrationModel registra los archivos SQL ya aplicados
type MigrationModel struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	Name       string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	ExecutedAt time.Time `gorm:"autoCreateTime"`
}

func (MigrationModel) TableName() string { return "migrations" }

// Migrator aplica los archivos .sql pendientes de un directorio,
// en orden alfabético, registrando cada uno en la tabla migrations.
type Migrator struct {
	db  *gorm.DB
	dir string
	log ports.Logger
}

// NewMigrator crea un nuevo Migrator
func NewMigrator(db *gorm.DB, dir string, log ports.Logger) *Migrator {
	return &Migrator{db: db, dir: dir, log: log}
}

// Run ejecuta las migraciones pendientes. Cada archivo corre dentro de
// su propia transacción: si falla, se revierte y no queda registrado.
func (m *Migrator) Run() error {
	if err := m.db.AutoMigrate(&MigrationModel{}); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var applied []MigrationModel
	if err := m.db.Find(&applied).Error; err != nil {
		return fmt.Errorf("failed to load applied migrations: %w", err)
	}
	done := make(map[string]bool, len(applied))
	for _, mig := range applied {
		done[mig.Name] = true
	}

	for _, name := range names {
		if done[name] {
			continue
		}

		sql, err := os.ReadFile(filepath.Join(m.dir, name))
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, err)
		}

		err = m.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec(string(sql)).Error; err != nil {
				return err
			}
			return tx.Create(&MigrationModel{Name: name}).Error
		})
		if err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", name, err)
		}

		m.log.Info("migration applied", "name", name)
	}

	return nil
}
