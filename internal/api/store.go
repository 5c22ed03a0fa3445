package api

import (
	"sync"
	"time"

	"github.com/lfptools/lfpsplit/pkg/lfp"
)

// storedPackage keeps a parsed upload for later record retrieval.
type storedPackage struct {
	ID        string
	Name      string
	Size      int
	Records   []*lfp.Record
	ParseErr  error
	CreatedAt time.Time
}

// PackageStore is an in-memory, mutex-guarded package registry.
type PackageStore struct {
	mu   sync.RWMutex
	pkgs map[string]*storedPackage
}

func NewPackageStore() *PackageStore {
	return &PackageStore{pkgs: make(map[string]*storedPackage)}
}

func (s *PackageStore) Put(p *storedPackage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pkgs[p.ID] = p
}

func (s *PackageStore) Get(id string) (*storedPackage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.pkgs[id]
	return p, ok
}

func (s *PackageStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pkgs[id]; !ok {
		return false
	}
	delete(s.pkgs, id)
	return true
}
