// Package recstore is durable storage for cipher metric records.
package recstore

import (
	"sync"

	"github.com/masterputra169/cryptography-website-sub002/internal/contract"
	"github.com/masterputra169/cryptography-website-sub002/schema"
)

// StoreManagerImpl manages the record store instance.
type StoreManagerImpl struct {
	sync.RWMutex // Protects the store pointer during initialization
	records      contract.RecordStore
}

var _ contract.StoreManager = &StoreManagerImpl{} // Compile-time check

// GetRecordStore returns the record store.
func (mgr *StoreManagerImpl) GetRecordStore() contract.RecordStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.records
}

// NewStoreManager initializes the record store for the given backend and
// returns a manager wrapping it.
func NewStoreManager(backend schema.DatabaseBackend, connStr string) (*StoreManagerImpl, error) {
	store, err := NewRecordStore(backend, connStr)
	if err != nil {
		return nil, err
	}
	return &StoreManagerImpl{records: store}, nil
}

// Close closes the managed store.
func (mgr *StoreManagerImpl) Close() error {
	mgr.Lock()
	defer mgr.Unlock()
	if mgr.records == nil {
		return nil
	}
	err := mgr.records.Close()
	mgr.records = nil
	return err
}
