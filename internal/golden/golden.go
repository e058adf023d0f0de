// Copyright 2025 go-highway Authors
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


// Package golden keeps reference outputs of the harness in a BadgerDB
// database. A reference is captured once, typically from a run on real x86
// hardware or from a trusted build, and later runs are verified against it
// lane by lane.
package golden

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/ajroetker/softintrin/hwy"
	"github.com/ajroetker/softintrin/internal/harness"
)

// ErrNoReference is returned when no reference was captured for an
// operation.
var ErrNoReference = errors.New("no reference captured")

const keyPrefix = "op/"

// Record is the stored reference of one operation.
type Record struct {
	Key      string    `json:"key"`
	Host     string    `json:"host"`
	Captured time.Time `json:"captured"`
	Outputs  []byte    `json:"outputs"`
}

// Mismatch is one 32-bit word of an output that differs from its reference.
type Mismatch struct {
	Key    string
	Window int
	Word   int // 0..7, lowest first
	Got    uint32
	Want   uint32
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: window %d word %d: got %08X, want %08X", m.Key, m.Window, m.Word, m.Got, m.Want)
}

// Report summarizes a verification.
type Report struct {
	Checked    int
	Missing    []string
	Mismatches []Mismatch
}

// OK reports whether every checked operation matched its reference.
func (r *Report) OK() bool { return len(r.Missing) == 0 && len(r.Mismatches) == 0 }

// Store wraps BadgerDB for reference outputs.
type Store struct {
	db *badger.DB
}

// Open opens or creates the store in dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	return open(opts)
}

// OpenInMemory opens a store that lives only as long as the process.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Store, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("golden: open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func encode(out *[harness.Windows][2][16]byte) []byte {
	b := make([]byte, 0, harness.Windows*32)
	for i := range out {
		b = append(b, out[i][0][:]...)
		b = append(b, out[i][1][:]...)
	}
	return b
}

// Capture stores the outputs of results as references, replacing older
// ones.
func (s *Store) Capture(results []harness.Result) error {
	now := time.Now().UTC()
	return s.db.Update(func(txn *badger.Txn) error {
		for i := range results {
			r := &results[i]
			rec := Record{
				Key:      r.Op.Key(),
				Host:     hwy.CurrentName(),
				Captured: now,
				Outputs:  encode(&r.Out),
			}
			data, err := json.Marshal(rec)
			if err != nil {
				return err
			}
			if err := txn.Set([]byte(keyPrefix+rec.Key), data); err != nil {
				return fmt.Errorf("golden: capture %s: %w", rec.Key, err)
			}
		}
		return nil
	})
}

// Reference returns the stored record for an operation key.
func (s *Store) Reference(key string) (*Record, error) {
	var rec Record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + key))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%w: %s", ErrNoReference, key)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Keys returns the keys of every stored reference, sorted.
func (s *Store) Keys() ([]string, error) {
	var keys []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, string(it.Item().Key()[len(keyPrefix):]))
		}
		return nil
	})
	return keys, err
}

// Verify compares results with their references. Operations without a
// reference are listed in Report.Missing; only storage failures are
// returned as errors.
func (s *Store) Verify(results []harness.Result) (*Report, error) {
	rep := &Report{}
	for i := range results {
		r := &results[i]
		key := r.Op.Key()
		rec, err := s.Reference(key)
		if errors.Is(err, ErrNoReference) {
			rep.Missing = append(rep.Missing, key)
			continue
		}
		if err != nil {
			return nil, err
		}
		rep.Checked++
		rep.Mismatches = append(rep.Mismatches, compare(key, encode(&r.Out), rec.Outputs)...)
	}
	return rep, nil
}

func compare(key string, got, want []byte) []Mismatch {
	var ms []Mismatch
	if len(want) != len(got) {
		return []Mismatch{{Key: key, Window: -1, Word: -1, Got: uint32(len(got)), Want: uint32(len(want))}}
	}
	for off := 0; off < len(got); off += 4 {
		g := binary.LittleEndian.Uint32(got[off:])
		w := binary.LittleEndian.Uint32(want[off:])
		if g != w {
			ms = append(ms, Mismatch{Key: key, Window: off / 32, Word: off % 32 / 4, Got: g, Want: w})
		}
	}
	return ms
}
