package storage

import "sync"

// MemoryStorage keeps values in a map. Nothing survives the process.
type MemoryStorage struct {
	sync.RWMutex
	inner map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		inner: make(map[string]string),
	}
}

func (s *MemoryStorage) Get(key string) (string, bool, error) {
	s.RLock()
	val, ok := s.inner[key]
	s.RUnlock()
	return val, ok, nil
}

func (s *MemoryStorage) Set(key, value string) error {
	s.Lock()
	s.inner[key] = value
	s.Unlock()
	return nil
}
