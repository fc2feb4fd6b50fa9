// Package memory holds the in-process stores. Records live only for the
// process lifetime; there is deliberately no persistence behind them.
package memory

import (
	"context"
	"strconv"
	"sync"

	"github.com/freightline/tms-backend/internal/core/domain"
)

// ShipmentStore keeps the collection as an ordered slice (scan order) and an
// id-keyed map (point lookup). Both structures are mutated together under one
// mutex so no caller can observe them out of sync.
//
// Ids are the string form of a counter that only ever increases — deleting a
// shipment never frees its id for reuse.
type ShipmentStore struct {
	mu     sync.RWMutex
	order  []*domain.Shipment
	byID   map[string]*domain.Shipment
	nextID uint64
}

func NewShipmentStore() *ShipmentStore {
	return &ShipmentStore{
		byID:   make(map[string]*domain.Shipment),
		nextID: 1,
	}
}

// Get returns a copy of the shipment with the given id.
func (st *ShipmentStore) Get(_ context.Context, id string) (*domain.Shipment, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	s, ok := st.byID[id]
	if !ok {
		return nil, domain.ErrShipmentNotFound
	}
	clone := s.Clone()
	return &clone, nil
}

// List returns a snapshot of the full collection in insertion order.
func (st *ShipmentStore) List(_ context.Context) ([]domain.Shipment, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	out := make([]domain.Shipment, len(st.order))
	for i, s := range st.order {
		out[i] = s.Clone()
	}
	return out, nil
}

// Add assigns the next id and appends the shipment to both structures.
func (st *ShipmentStore) Add(_ context.Context, s domain.Shipment) (*domain.Shipment, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s.ID = strconv.FormatUint(st.nextID, 10)
	st.nextID++

	stored := s.Clone()
	st.order = append(st.order, &stored)
	st.byID[stored.ID] = &stored

	clone := stored.Clone()
	return &clone, nil
}

// Update merges the patch into the stored record in place.
func (st *ShipmentStore) Update(_ context.Context, id string, patch domain.ShipmentPatch) (*domain.Shipment, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.byID[id]
	if !ok {
		return nil, domain.ErrShipmentNotFound
	}
	patch.Apply(s)

	clone := s.Clone()
	return &clone, nil
}

// Delete removes the shipment from both structures. A missing id returns
// false, not an error.
func (st *ShipmentStore) Delete(_ context.Context, id string) (bool, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.byID[id]; !ok {
		return false, nil
	}
	delete(st.byID, id)
	for i, s := range st.order {
		if s.ID == id {
			st.order = append(st.order[:i], st.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// ToggleFlag flips IsFlagged on the stored record.
func (st *ShipmentStore) ToggleFlag(_ context.Context, id string) (*domain.Shipment, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.byID[id]
	if !ok {
		return nil, domain.ErrShipmentNotFound
	}
	s.IsFlagged = !s.IsFlagged

	clone := s.Clone()
	return &clone, nil
}

// Len reports the current collection size.
func (st *ShipmentStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.order)
}
