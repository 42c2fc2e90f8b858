package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/forgo/northstar/internal/database"
	"github.com/forgo/northstar/internal/model"
)

// MemoryStore is an in-process database.Store and database.TxRunner.
// Transactions hold the store lock and work on a copy that replaces the
// live data only when fn succeeds.
type MemoryStore struct {
	mu   sync.Mutex
	data memoryData
}

type memoryData map[model.EntityKind]map[string]*model.Record

// NewMemoryStore creates an empty memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: memoryData{}}
}

// Put inserts or replaces a record and returns its ID. Records without an ID
// get a random UUID.
func (s *MemoryStore) Put(rec model.Record) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if s.data[rec.Kind] == nil {
		s.data[rec.Kind] = map[string]*model.Record{}
	}
	s.data[rec.Kind][rec.ID] = &rec
	return rec.ID
}

// Get returns a copy of a stored record
func (s *MemoryStore) Get(kind model.EntityKind, id string) (model.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.data[kind][id]
	if !ok {
		return model.Record{}, false
	}
	return *rec, true
}

// WithinTx implements database.TxRunner
func (s *MemoryStore) WithinTx(ctx context.Context, fn func(ctx context.Context, tx database.Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.data.clone()
	if err := fn(ctx, memoryTx{data: working}); err != nil {
		return err
	}
	s.data = working
	return nil
}

func (s *MemoryStore) FindOwned(ctx context.Context, kind model.EntityKind, id, userID string) (*model.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return memoryTx{data: s.data}.FindOwned(ctx, kind, id, userID)
}

func (s *MemoryStore) CountWhere(ctx context.Context, kind model.EntityKind, filter model.Filter) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return memoryTx{data: s.data}.CountWhere(ctx, kind, filter)
}

func (s *MemoryStore) FindByNormalizedKey(ctx context.Context, kind model.EntityKind, filter model.Filter, normalized string) (*model.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return memoryTx{data: s.data}.FindByNormalizedKey(ctx, kind, filter, normalized)
}

func (s *MemoryStore) ListOrdered(ctx context.Context, kind model.EntityKind, userID string) ([]*model.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return memoryTx{data: s.data}.ListOrdered(ctx, kind, userID)
}

func (s *MemoryStore) UpdateOrder(ctx context.Context, kind model.EntityKind, id string, order int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return memoryTx{data: s.data}.UpdateOrder(ctx, kind, id, order)
}

// memoryTx works on data without locking; callers hold the store lock.
type memoryTx struct {
	data memoryData
}

func (t memoryTx) FindOwned(_ context.Context, kind model.EntityKind, id, userID string) (*model.Record, error) {
	if _, err := schemaFor(kind); err != nil {
		return nil, err
	}
	rec, ok := t.data[kind][id]
	if !ok || rec.UserID != userID {
		return nil, nil
	}
	out := *rec
	return &out, nil
}

func (t memoryTx) CountWhere(_ context.Context, kind model.EntityKind, filter model.Filter) (int, error) {
	schema, err := schemaFor(kind)
	if err != nil {
		return 0, err
	}
	if err := schema.checkFilter(kind, filter); err != nil {
		return 0, err
	}

	count := 0
	for _, rec := range t.data[kind] {
		if matches(rec, filter) {
			count++
		}
	}
	return count, nil
}

func (t memoryTx) FindByNormalizedKey(_ context.Context, kind model.EntityKind, filter model.Filter, normalized string) (*model.Record, error) {
	schema, err := schemaFor(kind)
	if err != nil {
		return nil, err
	}
	if err := schema.requireNormKey(kind); err != nil {
		return nil, err
	}
	if err := schema.checkFilter(kind, filter); err != nil {
		return nil, err
	}

	for _, rec := range t.sorted(kind) {
		if matches(rec, filter) && model.NormalizeKey(rec.Label) == normalized {
			out := *rec
			return &out, nil
		}
	}
	return nil, nil
}

func (t memoryTx) ListOrdered(_ context.Context, kind model.EntityKind, userID string) ([]*model.Record, error) {
	schema, err := schemaFor(kind)
	if err != nil {
		return nil, err
	}
	if err := schema.requireOrdered(kind); err != nil {
		return nil, err
	}

	var out []*model.Record
	for _, rec := range t.sorted(kind) {
		if rec.UserID == userID {
			c := *rec
			out = append(out, &c)
		}
	}
	return out, nil
}

func (t memoryTx) UpdateOrder(_ context.Context, kind model.EntityKind, id string, order int) error {
	schema, err := schemaFor(kind)
	if err != nil {
		return err
	}
	if err := schema.requireOrdered(kind); err != nil {
		return err
	}

	rec, ok := t.data[kind][id]
	if !ok {
		return fmt.Errorf("%s %s: %w", kind.Label(), id, database.ErrNotFound)
	}
	rec.Order = order
	return nil
}

// sorted returns records by order, then ID, so iteration is deterministic.
func (t memoryTx) sorted(kind model.EntityKind) []*model.Record {
	recs := make([]*model.Record, 0, len(t.data[kind]))
	for _, rec := range t.data[kind] {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Order != recs[j].Order {
			return recs[i].Order < recs[j].Order
		}
		return recs[i].ID < recs[j].ID
	})
	return recs
}

func (d memoryData) clone() memoryData {
	out := make(memoryData, len(d))
	for kind, recs := range d {
		m := make(map[string]*model.Record, len(recs))
		for id, rec := range recs {
			c := *rec
			m[id] = &c
		}
		out[kind] = m
	}
	return out
}
