// Package store owns the durable TymOraData document. The whole document
// is one JSON blob under a single key in a bbolt database; every mutation
// is a complete read-modify-write cycle. The model assumes a single
// writer, so the last writer wins and no locking beyond bbolt's own
// transactions is needed.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.etcd.io/bbolt"

	"github.com/tymora/tymora/internal/model"
	"github.com/tymora/tymora/internal/timeutil"
)

const (
	bucketData    = "tymora"
	bucketSession = "session"

	keyData    = "data"
	keySession = "state"
)

// ErrCorruptData marks a stored payload that exists but cannot be parsed
// as a TymOraData document. Callers must treat it as unrecoverable for the
// session; the store never seeds over it.
var ErrCorruptData = errors.New("corrupt data")

// ErrInvalidImport marks an import payload missing the required structure.
// Existing data is left untouched.
var ErrInvalidImport = errors.New("invalid import")

// Store is the sole authority over reading, migrating and writing the
// durable document.
type Store struct {
	db  *bbolt.DB
	log zerolog.Logger

	// now is the clock used for retention cutoffs and export filenames.
	now func() time.Time
}

// Open opens (creating if needed) the bbolt database at path.
func Open(path string, logger zerolog.Logger) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt db: %w", err)
	}

	s := &Store{db: db, log: logger, now: time.Now}
	if err := s.ensureBuckets(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range []string{bucketData, bucketSession} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("create bucket %s: %w", name, err)
			}
		}
		return nil
	})
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) get(bucket, key string) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket([]byte(bucket)).Get([]byte(key)); v != nil {
			out = append([]byte(nil), v...)
		}
		return nil
	})
	return out, err
}

func (s *Store) put(bucket, key string, value []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucket)).Put([]byte(key), value)
	})
}

// Load returns the durable document. An empty store is seeded from the
// bundled sample dataset. An existing document is parsed and migrated
// (missing activity ids, absent retention setting) and persisted again
// only when the migration actually changed something. An unparseable
// payload fails with ErrCorruptData.
func (s *Store) Load() (*model.TymOraData, error) {
	raw, err := s.get(bucketData, keyData)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	if raw == nil {
		doc := seedData(timeutil.Date(s.now()))
		migrate(doc)
		if err := s.Save(doc); err != nil {
			return nil, fmt.Errorf("persist seed document: %w", err)
		}
		s.log.Info().Int("days", len(doc.Days)).Msg("seeded empty store with sample data")
		return doc, nil
	}

	var doc model.TymOraData
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}

	if migrate(&doc) {
		if err := s.Save(&doc); err != nil {
			return nil, fmt.Errorf("persist migrated document: %w", err)
		}
		s.log.Debug().Msg("migrated stored document")
	}
	return &doc, nil
}

// migrate assigns missing activity ids and the default retention setting.
// It reports whether anything changed.
func migrate(doc *model.TymOraData) bool {
	changed := false
	for i := range doc.Days {
		for j := range doc.Days[i].Activities {
			if doc.Days[i].Activities[j].ID == "" {
				doc.Days[i].Activities[j].ID = uuid.NewString()
				changed = true
			}
		}
	}
	if doc.HistoryRetentionDays == 0 {
		doc.HistoryRetentionDays = model.DefaultRetentionDays
		changed = true
	}
	return changed
}

// Save unconditionally overwrites the durable document.
func (s *Store) Save(doc *model.TymOraData) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	if err := s.put(bucketData, keyData, data); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

// UpsertDay replaces the DayLog with a matching date, or appends a new
// one. It always re-reads the latest document rather than trusting a
// caller-held copy, because edits may target a different day than the one
// last loaded.
func (s *Store) UpsertDay(day model.DayLog) error {
	doc, err := s.Load()
	if err != nil {
		return err
	}
	if _, i := doc.Day(day.Date); i >= 0 {
		doc.Days[i] = day
	} else {
		doc.Days = append(doc.Days, day)
	}
	return s.Save(doc)
}

// Cleanup drops every DayLog strictly older than today minus
// retentionDays, keeping today plus the retentionDays preceding calendar
// days. It persists only when at least one day was dropped and returns
// the number of dropped days.
func (s *Store) Cleanup(retentionDays int) (int, error) {
	doc, err := s.Load()
	if err != nil {
		return 0, err
	}

	cutoff, err := timeutil.AddDays(timeutil.Date(s.now()), -retentionDays)
	if err != nil {
		return 0, err
	}

	kept := doc.Days[:0]
	for _, day := range doc.Days {
		if day.Date >= cutoff {
			kept = append(kept, day)
		}
	}
	dropped := len(doc.Days) - len(kept)
	if dropped == 0 {
		return 0, nil
	}

	doc.Days = kept
	if err := s.Save(doc); err != nil {
		return 0, err
	}
	s.log.Info().Int("dropped", dropped).Str("cutoff", cutoff).Msg("retention cleanup")
	return dropped, nil
}

// Export serializes the full document verbatim and returns the payload
// together with the dated backup filename.
func (s *Store) Export() ([]byte, string, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, "", err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("marshal document: %w", err)
	}
	name := fmt.Sprintf("tymora-backup-%s.json", timeutil.Date(s.now()))
	return data, name, nil
}

// Import parses payload as a full document and wholesale-overwrites the
// store. A payload that does not parse or lacks a days sequence is
// rejected with ErrInvalidImport before any mutation.
func (s *Store) Import(payload []byte) error {
	probe := struct {
		Days *[]model.DayLog `json:"days"`
	}{}
	dec := json.NewDecoder(bytes.NewReader(payload))
	if err := dec.Decode(&probe); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	if probe.Days == nil {
		return fmt.Errorf("%w: missing days array", ErrInvalidImport)
	}

	var doc model.TymOraData
	if err := json.Unmarshal(payload, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	return s.Save(&doc)
}

// Reset clears the document and session state. Irreversible.
func (s *Store) Reset() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket([]byte(bucketData)).Delete([]byte(keyData)); err != nil {
			return fmt.Errorf("clear document: %w", err)
		}
		if err := tx.Bucket([]byte(bucketSession)).Delete([]byte(keySession)); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
		return nil
	})
}
