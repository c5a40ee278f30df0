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
	"encoding/json"
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// entryKeyPrefix namespaces cache records inside the LevelDB keyspace.
const entryKeyPrefix = "subject:"

// LevelStore persists one JSON-encoded Entry per subject in a LevelDB
// database. Unlike FileStore it supports many subjects without rewriting
// the whole state on each save, at the cost of holding a directory lock
// for the lifetime of the store.
type LevelStore struct {
	db *leveldb.DB
}

// NewLevelStore opens (or creates) a LevelDB database at path.
func NewLevelStore(path string) (*LevelStore, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("opening cache database %s: %w", path, err)
	}
	return &LevelStore{db: db}, nil
}

func entryKey(subject string) []byte {
	return []byte(entryKeyPrefix + subject)
}

// Load implements Store.
func (s *LevelStore) Load(subject string) (*Entry, error) {
	data, err := s.db.Get(entryKey(subject), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading cache entry for %s: %w", subject, err)
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("decoding cache entry for %s: %w", subject, err)
	}
	return &entry, nil
}

// Save implements Store.
func (s *LevelStore) Save(entry *Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding cache entry for %s: %w", entry.Subject, err)
	}
	if err := s.db.Put(entryKey(entry.Subject), data, nil); err != nil {
		return fmt.Errorf("writing cache entry for %s: %w", entry.Subject, err)
	}
	return nil
}

// Delete implements Store.
func (s *LevelStore) Delete(subject string) error {
	if err := s.db.Delete(entryKey(subject), nil); err != nil {
		return fmt.Errorf("deleting cache entry for %s: %w", subject, err)
	}
	return nil
}

// List implements Store.
func (s *LevelStore) List() ([]*Entry, error) {
	var out []*Entry

	it := s.db.NewIterator(util.BytesPrefix([]byte(entryKeyPrefix)), nil)
	defer it.Release()

	for it.Next() {
		var entry Entry
		if err := json.Unmarshal(it.Value(), &entry); err != nil {
			return nil, fmt.Errorf("decoding cache entry %s: %w", it.Key(), err)
		}
		out = append(out, &entry)
	}
	if err := it.Error(); err != nil {
		return nil, fmt.Errorf("iterating cache entries: %w", err)
	}

	return out, nil
}

// Close implements Store.
func (s *LevelStore) Close() error {
	return s.db.Close()
}
