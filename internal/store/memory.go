// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package store

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"piemarker/internal/model"
)

type Memory struct {
	mu      sync.RWMutex
	markers map[string]*model.Definition
}

func NewMemory() *Memory {
	return &Memory{markers: make(map[string]*model.Definition)}
}

func (m *Memory) Create(_ context.Context, def *model.Definition) (err error) {

	if err = prepare(def); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, found := m.markers[def.ID]; found {
		return ErrExists
	}
	m.markers[def.ID] = clone(def)
	return nil
}

func (m *Memory) Get(_ context.Context, id string) (*model.Definition, error) {

	m.mu.RLock()
	defer m.mu.RUnlock()

	def, found := m.markers[id]
	if !found {
		return nil, ErrNotFound
	}
	return clone(def), nil
}

func (m *Memory) List(context.Context) ([]*model.Definition, error) {

	m.mu.RLock()
	defs := make([]*model.Definition, 0, len(m.markers))
	for _, def := range m.markers {
		defs = append(defs, clone(def))
	}
	m.mu.RUnlock()

	slices.SortFunc(defs, func(a, b *model.Definition) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return defs, nil
}

func (m *Memory) Update(_ context.Context, def *model.Definition) error {

	m.mu.Lock()
	defer m.mu.Unlock()

	stored, found := m.markers[def.ID]
	if !found {
		return ErrNotFound
	}
	def.CreatedAt = stored.CreatedAt
	m.markers[def.ID] = clone(def)
	return nil
}

func (m *Memory) Delete(_ context.Context, id string) error {

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, found := m.markers[id]; !found {
		return ErrNotFound
	}
	delete(m.markers, id)
	return nil
}

func (m *Memory) Close() error { return nil }
