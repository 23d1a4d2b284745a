// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const fileStorageVersion = 1

// fileStorage keeps every entry in one JSON document and rewrites it
// atomically (temp file + rename) on each mutation.
type fileStorage struct {
	path string

	mu      sync.RWMutex
	entries map[string]string
	closed  bool
}

type filePersistedState struct {
	Version int               `json:"version"`
	Entries map[string]string `json:"entries"`
}

// NewFileStorage opens the JSON storage file at path. A missing file is
// treated as an empty store and is created on the first write.
func NewFileStorage(path string) (KeyValueStorage, error) {
	s := &fileStorage{
		path:    path,
		entries: make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileStorage) Get(_ context.Context, name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return "", ErrStorageClosed
	}
	value, ok := s.entries[name]
	if !ok {
		return "", ErrEntryNotFound
	}
	return value, nil
}

func (s *fileStorage) Set(_ context.Context, name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStorageClosed
	}

	previous, existed := s.entries[name]
	s.entries[name] = value
	if err := s.persist(); err != nil {
		if existed {
			s.entries[name] = previous
		} else {
			delete(s.entries, name)
		}
		return err
	}
	return nil
}

func (s *fileStorage) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStorageClosed
	}

	previous, existed := s.entries[name]
	if !existed {
		return nil
	}
	delete(s.entries, name)
	if err := s.persist(); err != nil {
		s.entries[name] = previous
		return err
	}
	return nil
}

func (s *fileStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}

func (s *fileStorage) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrReadingStorageFile, err)
	}

	var st filePersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("%w: decode: %w", ErrReadingStorageFile, err)
	}
	if st.Entries != nil {
		s.entries = st.Entries
	}

	return nil
}

// persist must be called with s.mu held for writing.
func (s *fileStorage) persist() error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("%w: create dir: %w", ErrWritingStorageFile, err)
		}
	}

	state := filePersistedState{Version: fileStorageVersion, Entries: s.entries}
	payload, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %w", ErrWritingStorageFile, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingStorageFile, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err = tmp.Chmod(0o600); err == nil {
		_, err = tmp.Write(payload)
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingStorageFile, err)
	}

	if err = os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingStorageFile, err)
	}

	return nil
}
