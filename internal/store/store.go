// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

// Package store keeps marker definitions in memory, SQLite or PostgreSQL.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"piemarker/internal/model"
)

var (
	// ErrNotFound is returned for unknown marker ids.
	ErrNotFound = errors.New("marker not found")
	// ErrExists is returned when creating a marker with a taken id.
	ErrExists = errors.New("marker already exists")
)

// Store is safe for concurrent use. Returned definitions are copies.
type Store interface {
	// Create stores def, assigning an id and creation time when they are empty.
	Create(ctx context.Context, def *model.Definition) error
	Get(ctx context.Context, id string) (*model.Definition, error)
	// List returns all definitions, oldest first.
	List(ctx context.Context) ([]*model.Definition, error)
	// Update replaces an existing definition. The creation time is kept.
	Update(ctx context.Context, def *model.Definition) error
	Delete(ctx context.Context, id string) error
	Close() error
}

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Open returns the store for driver. dsn is ignored by the memory driver.
func Open(ctx context.Context, driver, dsn string) (Store, error) {

	switch driver {
	case DriverMemory, "":
		return NewMemory(), nil
	case DriverSQLite:
		return OpenSQLite(ctx, dsn)
	case DriverPostgres:
		return OpenPostgres(ctx, dsn)
	default:
		return nil, fmt.Errorf("unsupported store driver: %s", driver)
	}
}

func prepare(def *model.Definition) (err error) {

	if def.ID == "" {
		var id uuid.UUID
		if id, err = uuid.NewV7(); err != nil {
			return fmt.Errorf("%s: %w", "failed to generate id", err)
		}
		def.ID = id.String()
	}
	if def.CreatedAt.IsZero() {
		def.CreatedAt = time.Now()
	}
	def.CreatedAt = def.CreatedAt.UTC()
	return nil
}

func clone(def *model.Definition) *model.Definition {

	c := *def
	c.Icon.Data = append(c.Icon.Data[:0:0], def.Icon.Data...)
	if def.Icon.IconSize != nil {
		size := *def.Icon.IconSize
		c.Icon.IconSize = &size
	}
	if def.Icon.Precision != nil {
		precision := *def.Icon.Precision
		c.Icon.Precision = &precision
	}
	return &c
}
