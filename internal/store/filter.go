package store

import (
	"strings"

	"github.com/sofisch25/InClassEmpApp/internal/employee"
)

// Filter selects records in Search. Zero-valued fields match everything;
// non-empty fields combine with AND.
type Filter struct {
	ID         string // substring of the id, upper-cased before matching
	Name       string // case-insensitive substring of first or last name
	Department string // exact department code, upper-cased before matching
	Type       string // record type, Employee or Manager, case-insensitive
}

// IsZero reports whether the filter matches every record.
func (f Filter) IsZero() bool {
	return f.ID == "" && f.Name == "" && f.Department == "" && f.Type == ""
}

// Search loads the collection and returns the records matching f in
// file order.
func (s *FileStore) Search(f Filter) ([]employee.Record, error) {
	recs, err := s.Load()
	if err != nil {
		return nil, err
	}
	return FilterRecords(recs, f), nil
}

// FilterRecords applies f to an already loaded collection.
func FilterRecords(recs []employee.Record, f Filter) []employee.Record {
	if f.IsZero() {
		return recs
	}

	var out []employee.Record
	for _, rec := range recs {
		if matches(rec, f) {
			out = append(out, rec)
		}
	}
	return out
}

func matches(rec employee.Record, f Filter) bool {
	base := rec.Base()

	if f.ID != "" && !strings.Contains(base.ID(), strings.ToUpper(f.ID)) {
		return false
	}
	if f.Name != "" {
		needle := strings.ToLower(f.Name)
		first := strings.ToLower(base.FirstName())
		last := strings.ToLower(base.LastName())
		if !strings.Contains(first, needle) && !strings.Contains(last, needle) {
			return false
		}
	}
	if f.Department != "" && base.Department() != strings.ToUpper(strings.TrimSpace(f.Department)) {
		return false
	}
	if f.Type != "" && !strings.EqualFold(string(rec.Type()), strings.TrimSpace(f.Type)) {
		return false
	}
	return true
}
