// Package validation provides field-level structural checks for import
// mappers. A FieldSet accumulates human-readable problems instead of
// returning errors, so a mapper can report every failing field of a row
// at once.
package validation

import (
	"fmt"
	"time"
)

// FieldSet wraps one row's raw fields and collects structural problems.
type FieldSet struct {
	fields   map[string]string
	problems []string
}

// NewFieldSet creates a FieldSet over the given raw row fields.
func NewFieldSet(fields map[string]string) *FieldSet {
	return &FieldSet{fields: fields}
}

// Required returns the named field's value, recording a problem when it is
// empty or absent.
func (f *FieldSet) Required(name string) string {
	v := f.fields[name]
	if v == "" {
		f.Problemf("%s is required", name)
	}
	return v
}

// Optional returns the named field's value, empty string when absent.
func (f *FieldSet) Optional(name string) string {
	return f.fields[name]
}

// Date parses the named field as a YYYY-MM-DD date. A missing required
// field or an unparseable value records a problem; ok is false in both
// cases. A missing optional field records nothing.
func (f *FieldSet) Date(name string, required bool) (time.Time, bool) {
	v := f.fields[name]
	if v == "" {
		if required {
			f.Problemf("%s is required", name)
		}
		return time.Time{}, false
	}
	t, err := time.Parse(time.DateOnly, v)
	if err != nil {
		f.Problemf("%s: invalid date %q, expected YYYY-MM-DD", name, v)
		return time.Time{}, false
	}
	return t, true
}

// Problemf records a formatted problem message.
func (f *FieldSet) Problemf(format string, args ...interface{}) {
	f.problems = append(f.problems, fmt.Sprintf(format, args...))
}

// Problems returns all recorded problems in the order they were found.
func (f *FieldSet) Problems() []string {
	return f.problems
}

// Ok reports whether no problems have been recorded.
func (f *FieldSet) Ok() bool {
	return len(f.problems) == 0
}
