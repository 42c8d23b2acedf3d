// Package store persists personnel records to a flat CSV file.
//
// The whole collection is rewritten on every mutation: load, change in
// memory, save. Mutating operations report success as a boolean and log
// the underlying cause on failure; the file is never left half-applied
// by this layer.
package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sofisch25/InClassEmpApp/internal/employee"
)

// FileStore reads and writes the employee collection as one CSV file.
type FileStore struct {
	path string
	log  zerolog.Logger
}

// Open returns a FileStore over the given CSV path. No I/O happens until
// the first load or save.
func Open(path string, log zerolog.Logger) *FileStore {
	return &FileStore{path: path, log: log}
}

// Path returns the backing file path.
func (s *FileStore) Path() string { return s.path }

// Load reads every well-formed record from the backing file. A missing
// file yields an empty collection. Malformed rows are skipped with a
// warning; only file-level failures are returned as errors.
func (s *FileStore) Load() ([]employee.Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // row width is checked per row below

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = strings.TrimSpace(h)
	}

	var out []employee.Record
	line := 1
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			s.log.Warn().Int("row", line).Err(err).Msg("skipping unreadable row")
			continue
		}
		if len(row) < len(cols) {
			s.log.Warn().Int("row", line).Int("fields", len(row)).Msg("skipping short row")
			continue
		}

		rec := make(map[string]string, len(cols))
		for i, c := range cols {
			rec[c] = row[i]
		}

		emp, err := employee.Deserialize(rec)
		if err != nil {
			s.log.Warn().Int("row", line).Err(err).Msg("skipping malformed record")
			continue
		}
		out = append(out, emp)
	}

	return out, nil
}

// Save rewrites the backing file with the full collection. The header row
// is always written, even for an empty collection.
func (s *FileStore) Save(recs []employee.Record) error {
	return s.saveTo(s.path, recs)
}

func (s *FileStore) saveTo(path string, recs []employee.Record) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	werr := w.Write(employee.Columns)
	for _, rec := range recs {
		if werr != nil {
			break
		}
		fields := rec.Serialize()
		row := make([]string, len(employee.Columns))
		for i, c := range employee.Columns {
			row[i] = fields[c]
		}
		werr = w.Write(row)
	}
	if werr == nil {
		w.Flush()
		werr = w.Error()
	}

	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return fmt.Errorf("write %s: %w", path, werr)
	}
	return nil
}

// Add appends a new record and persists the collection. It reports false
// on a duplicate id or a storage failure; the file is untouched either
// way.
func (s *FileStore) Add(rec employee.Record) bool {
	recs, err := s.Load()
	if err != nil {
		s.log.Error().Err(err).Msg("add: load failed")
		return false
	}

	for _, existing := range recs {
		if existing.ID() == rec.ID() {
			s.log.Warn().Str("id", rec.ID()).Msg("add: duplicate id")
			return false
		}
	}

	recs = append(recs, rec)
	if err := s.Save(recs); err != nil {
		s.log.Error().Err(err).Msg("add: save failed")
		return false
	}

	s.log.Info().Str("id", rec.ID()).Str("type", string(rec.Type())).Msg("record added")
	return true
}

// Update replaces the record with the given id, preserving its position
// in the collection. It reports false when the id is absent or storage
// fails.
func (s *FileStore) Update(id string, rec employee.Record) bool {
	recs, err := s.Load()
	if err != nil {
		s.log.Error().Err(err).Msg("update: load failed")
		return false
	}

	idx := -1
	for i, existing := range recs {
		if existing.ID() == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.log.Warn().Str("id", id).Msg("update: id not found")
		return false
	}

	recs[idx] = rec
	if err := s.Save(recs); err != nil {
		s.log.Error().Err(err).Msg("update: save failed")
		return false
	}

	s.log.Info().Str("id", id).Msg("record updated")
	return true
}

// Delete removes the record with the given id. It reports false when the
// id is absent or storage fails.
func (s *FileStore) Delete(id string) bool {
	recs, err := s.Load()
	if err != nil {
		s.log.Error().Err(err).Msg("delete: load failed")
		return false
	}

	kept := recs[:0]
	found := false
	for _, existing := range recs {
		if existing.ID() == id {
			found = true
			continue
		}
		kept = append(kept, existing)
	}
	if !found {
		s.log.Warn().Str("id", id).Msg("delete: id not found")
		return false
	}

	if err := s.Save(kept); err != nil {
		s.log.Error().Err(err).Msg("delete: save failed")
		return false
	}

	s.log.Info().Str("id", id).Msg("record deleted")
	return true
}

// FindByID returns the record with the given id, or nil when absent.
// Lookup is a linear scan of the loaded collection.
func (s *FileStore) FindByID(id string) employee.Record {
	recs, err := s.Load()
	if err != nil {
		s.log.Error().Err(err).Msg("find: load failed")
		return nil
	}
	for _, r := range recs {
		if r.ID() == id {
			return r
		}
	}
	return nil
}

// Backup writes a snapshot of the current collection to a timestamped
// file beside the store. There is nothing to snapshot before the first
// save, so a missing store file reports false. Failure is reported,
// never fatal.
func (s *FileStore) Backup() bool {
	if _, err := os.Stat(s.path); err != nil {
		s.log.Error().Err(err).Msg("backup: no store file")
		return false
	}

	recs, err := s.Load()
	if err != nil {
		s.log.Error().Err(err).Msg("backup: load failed")
		return false
	}

	path := s.backupPath(time.Now())
	if err := s.saveTo(path, recs); err != nil {
		s.log.Error().Err(err).Msg("backup: save failed")
		return false
	}

	s.log.Info().Str("path", path).Int("records", len(recs)).Msg("backup created")
	return true
}

// backupPath derives the snapshot name: employee_data.csv becomes
// employee_data_backup_20240131_154500.csv.
func (s *FileStore) backupPath(ts time.Time) string {
	ext := filepath.Ext(s.path)
	base := strings.TrimSuffix(s.path, ext)
	return fmt.Sprintf("%s_backup_%s%s", base, ts.Format("20060102_150405"), ext)
}
