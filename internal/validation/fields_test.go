package validation

import (
	"strings"
	"testing"
	"time"
)

func TestFieldSetRequired(t *testing.T) {
	f := NewFieldSet(map[string]string{"name": "Ann", "email": ""})

	if got := f.Required("name"); got != "Ann" {
		t.Errorf("Required(name) = %q", got)
	}
	if got := f.Required("email"); got != "" {
		t.Errorf("Required(email) = %q", got)
	}
	f.Required("missing")

	if f.Ok() {
		t.Error("Ok() should be false after missing required fields")
	}
	problems := f.Problems()
	if len(problems) != 2 {
		t.Fatalf("Problems() = %v, want 2", problems)
	}
	if problems[0] != "email is required" || problems[1] != "missing is required" {
		t.Errorf("Problems() = %v", problems)
	}
}

func TestFieldSetDate(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		required bool
		wantOK   bool
		wantMsg  string
	}{
		{"valid date", "2025-06-10", true, true, ""},
		{"invalid format", "10/06/2025", true, false, "invalid date"},
		{"missing required", "", true, false, "is required"},
		{"missing optional", "", false, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFieldSet(map[string]string{"d": tt.value})
			got, ok := f.Date("d", tt.required)
			if ok != tt.wantOK {
				t.Errorf("Date() ok = %v, want %v", ok, tt.wantOK)
			}
			if tt.wantOK {
				want := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
				if !got.Equal(want) {
					t.Errorf("Date() = %v, want %v", got, want)
				}
			}
			if tt.wantMsg == "" {
				if !f.Ok() {
					t.Errorf("unexpected problems: %v", f.Problems())
				}
			} else if len(f.Problems()) != 1 || !strings.Contains(f.Problems()[0], tt.wantMsg) {
				t.Errorf("Problems() = %v, want one containing %q", f.Problems(), tt.wantMsg)
			}
		})
	}
}

func TestFieldSetOptional(t *testing.T) {
	f := NewFieldSet(map[string]string{"reason": "vacation"})
	if got := f.Optional("reason"); got != "vacation" {
		t.Errorf("Optional(reason) = %q", got)
	}
	if got := f.Optional("absent"); got != "" {
		t.Errorf("Optional(absent) = %q", got)
	}
	if !f.Ok() {
		t.Errorf("optional reads must not record problems: %v", f.Problems())
	}
}
