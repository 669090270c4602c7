package domain

import (
	"errors"
	"strings"
	"testing"
)

func conditionKind(t *testing.T, err error) Kind {
	t.Helper()
	var c *Condition
	if !errors.As(err, &c) {
		t.Fatalf("error %v is not a *Condition", err)
	}
	return c.Kind
}

func TestNewSearchQuery_Valid(t *testing.T) {
	q, err := NewSearchQuery("how does auth work", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Text() != "how does auth work" {
		t.Errorf("Text() = %q", q.Text())
	}
	if q.MaxResults() != 5 {
		t.Errorf("MaxResults() = %d", q.MaxResults())
	}
}

func TestNewSearchQuery_TrimsText(t *testing.T) {
	q, err := NewSearchQuery("  padded query  ", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Text() != "padded query" {
		t.Errorf("Text() = %q, want trimmed", q.Text())
	}
}

func TestNewSearchQuery_LengthBounds(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{"one char", "x", true},
		{"two chars", "xy", false},
		{"exactly max", strings.Repeat("q", MaxQueryLength), false},
		{"over max", strings.Repeat("q", MaxQueryLength+1), true},
		{"whitespace collapses under min", "  x  ", true},
		{"empty", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSearchQuery(tt.text, 5)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if k := conditionKind(t, err); k != KindInvalidQuery {
					t.Errorf("kind = %q, want %q", k, KindInvalidQuery)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestNewSearchQuery_LengthIsRunes(t *testing.T) {
	// 500 multibyte characters are within bounds even though the byte
	// count is far larger.
	q, err := NewSearchQuery(strings.Repeat("ё", MaxQueryLength), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.MaxResults() != 1 {
		t.Errorf("MaxResults() = %d", q.MaxResults())
	}
}

func TestNewSearchQuery_MaxResultsBounds(t *testing.T) {
	tests := []struct {
		name    string
		max     int
		wantErr bool
	}{
		{"zero", 0, true},
		{"negative", -3, true},
		{"min", 1, false},
		{"max", 20, false},
		{"over max", 21, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSearchQuery("valid query", tt.max)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if k := conditionKind(t, err); k != KindInvalidMaxResults {
					t.Errorf("kind = %q, want %q", k, KindInvalidMaxResults)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestNewSearchQuery_RejectsInsteadOfClamping(t *testing.T) {
	// An out-of-range cap must never be silently adjusted.
	if _, err := NewSearchQuery("valid query", 21); err == nil {
		t.Fatal("expected rejection for max_results=21")
	}
	if _, err := NewSearchQuery("valid query", 100); err == nil {
		t.Fatal("expected rejection for max_results=100")
	}
}
