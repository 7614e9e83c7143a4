// Package memstore keeps the snapshot in process memory.
package memstore

import (
	"context"
	"sync"

	"flashsale-scheduler/internal/domain/product"
	"flashsale-scheduler/internal/domain/schedule"
	"flashsale-scheduler/internal/usecase/shared"
)

type Store struct {
	mu        sync.RWMutex
	schedules schedule.Set
	catalog   product.Catalog
}

func NewStore(catalog product.Catalog) *Store {
	return &Store{
		schedules: schedule.NewSet(),
		catalog:   catalog,
	}
}

func (s *Store) Load(ctx context.Context) (shared.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return shared.Snapshot{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return shared.Snapshot{Schedules: s.schedules, Catalog: s.catalog}, nil
}

func (s *Store) SaveSchedules(ctx context.Context, schedules schedule.Set) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedules = schedules
	return nil
}

func (s *Store) SaveCatalog(ctx context.Context, catalog product.Catalog) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = catalog
	return nil
}

// SaveSnapshot swaps both halves under one lock. A cancelled ctx leaves the store as it was.
func (s *Store) SaveSnapshot(ctx context.Context, snap shared.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedules = snap.Schedules
	s.catalog = snap.Catalog
	return nil
}
