// Copyright (c) 2025, the godriver authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/webdrivers/godriver/pkg/defaults"
)

// FileStore persists entries in a single YAML document mapping subject to
// Entry. The whole file is rewritten on every save; last writer wins, which
// is acceptable because concurrent writers for the same browser build
// converge to the same answer.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// DefaultPath returns the per-user cache file location
// ($HOME/.godriver/versions.yaml).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, defaults.CacheDirName, defaults.CacheFileName), nil
}

// NewFileStore creates a YAML-file-backed store at path. The parent
// directory is created on first save, not here, so read-only usage never
// touches the filesystem.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// load reads the full subject map; a missing file is an empty map.
func (s *FileStore) load() (map[string]*Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]*Entry{}, nil
		}
		return nil, fmt.Errorf("reading cache file %s: %w", s.path, err)
	}

	entries := map[string]*Entry{}
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing cache file %s: %w", s.path, err)
	}
	return entries, nil
}

// write replaces the file contents with the given subject map.
func (s *FileStore) write(entries map[string]*Entry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), defaults.CacheDirMode); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encoding cache entries: %w", err)
	}

	// Write through a temp file so a crash mid-write cannot truncate the
	// cache to an unparseable state.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, defaults.CacheFileMode); err != nil {
		return fmt.Errorf("writing cache file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing cache file: %w", err)
	}
	return nil
}

// Load implements Store.
func (s *FileStore) Load(subject string) (*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return nil, err
	}
	return entries[subject], nil
}

// Save implements Store.
func (s *FileStore) Save(entry *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}
	entries[entry.Subject] = entry
	return s.write(entries)
}

// Delete implements Store.
func (s *FileStore) Delete(subject string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := entries[subject]; !ok {
		return nil
	}
	delete(entries, subject)
	return s.write(entries)
}

// List implements Store. Entries are returned in stable subject order.
func (s *FileStore) List() ([]*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return nil, err
	}

	subjects := make([]string, 0, len(entries))
	for subject := range entries {
		subjects = append(subjects, subject)
	}
	sort.Strings(subjects)

	out := make([]*Entry, 0, len(entries))
	for _, subject := range subjects {
		out = append(out, entries[subject])
	}
	return out, nil
}

// Close implements Store.
func (s *FileStore) Close() error {
	return nil
}
