// Package migrations holds the ordered, versioned schema migrations and the
// runner that applies them.
//
// Each migration creates exactly one table (with its cascading foreign key)
// on Up and drops it on Down. Table shapes are declared inside each migration
// file so later changes to internal/entities never rewrite history.
package migrations

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
)

// Migration is one reversible schema step.
type Migration struct {
	Version string
	Name    string
	Up      func(tx *gorm.DB) error
	Down    func(tx *gorm.DB) error
}

// Status describes one registered migration.
type Status struct {
	Version   string
	Name      string
	Applied   bool
	AppliedAt *time.Time
}

type record struct {
	Version   string    `gorm:"primaryKey;size:32"`
	Name      string    `gorm:"size:255;not null"`
	AppliedAt time.Time `gorm:"not null"`
}

func (record) TableName() string { return "schema_migrations" }

// Runner applies migrations in registration order and tracks them in
// schema_migrations.
type Runner struct {
	db         *gorm.DB
	migrations []Migration
}

func NewRunner(db *gorm.DB, migrations ...Migration) *Runner {
	return &Runner{db: db, migrations: migrations}
}

func (r *Runner) validate() error {
	seen := make(map[string]bool, len(r.migrations))
	for _, m := range r.migrations {
		if m.Version == "" || m.Up == nil || m.Down == nil {
			return fmt.Errorf("migration %q is incomplete", m.Name)
		}
		if seen[m.Version] {
			return fmt.Errorf("duplicate migration version %s", m.Version)
		}
		seen[m.Version] = true
	}
	return nil
}

func (r *Runner) ensureTable(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&record{})
}

func (r *Runner) applied(ctx context.Context) (map[string]record, error) {
	var records []record
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, err
	}
	out := make(map[string]record, len(records))
	for _, rec := range records {
		out[rec.Version] = rec
	}
	return out, nil
}

// Up applies every pending migration exactly once, in registration order.
// Each migration runs in its own transaction together with its bookkeeping
// row. It returns the number of migrations applied.
func (r *Runner) Up(ctx context.Context) (int, error) {
	if err := r.validate(); err != nil {
		return 0, err
	}
	if err := r.ensureTable(ctx); err != nil {
		return 0, fmt.Errorf("create schema_migrations: %w", err)
	}
	done, err := r.applied(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, m := range r.migrations {
		if _, ok := done[m.Version]; ok {
			continue
		}
		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := m.Up(tx); err != nil {
				return err
			}
			return tx.Create(&record{Version: m.Version, Name: m.Name, AppliedAt: time.Now().UTC()}).Error
		})
		if err != nil {
			return count, fmt.Errorf("apply migration %s_%s: %w", m.Version, m.Name, err)
		}
		log.Printf("[MIGRATE] applied %s_%s", m.Version, m.Name)
		count++
	}
	return count, nil
}

// Down reverts the most recently applied migrations, newest first.
// It returns the number of migrations reverted.
func (r *Runner) Down(ctx context.Context, steps int) (int, error) {
	if steps <= 0 {
		return 0, errors.New("steps must be positive")
	}
	if err := r.validate(); err != nil {
		return 0, err
	}
	if err := r.ensureTable(ctx); err != nil {
		return 0, fmt.Errorf("create schema_migrations: %w", err)
	}
	done, err := r.applied(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for i := len(r.migrations) - 1; i >= 0 && count < steps; i-- {
		m := r.migrations[i]
		if _, ok := done[m.Version]; !ok {
			continue
		}
		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := m.Down(tx); err != nil {
				return err
			}
			return tx.Delete(&record{}, "version = ?", m.Version).Error
		})
		if err != nil {
			return count, fmt.Errorf("revert migration %s_%s: %w", m.Version, m.Name, err)
		}
		log.Printf("[MIGRATE] reverted %s_%s", m.Version, m.Name)
		count++
	}
	return count, nil
}

// Status lists every registered migration with its applied state.
func (r *Runner) Status(ctx context.Context) ([]Status, error) {
	if err := r.ensureTable(ctx); err != nil {
		return nil, fmt.Errorf("create schema_migrations: %w", err)
	}
	done, err := r.applied(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Status, 0, len(r.migrations))
	for _, m := range r.migrations {
		st := Status{Version: m.Version, Name: m.Name}
		if rec, ok := done[m.Version]; ok {
			appliedAt := rec.AppliedAt
			st.Applied = true
			st.AppliedAt = &appliedAt
		}
		out = append(out, st)
	}
	return out, nil
}
