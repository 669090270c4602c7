package domain

import "strings"

// SelectorKind discriminates how a store reference should be resolved.
type SelectorKind string

// Selector kinds.
const (
	// SelectDefault means no store was named; use the configured default.
	SelectDefault SelectorKind = "default"
	// SelectByID carries a concrete store ID; no catalog lookup is needed.
	SelectByID SelectorKind = "by_id"
	// SelectByName carries a display name to resolve against the catalog.
	SelectByName SelectorKind = "by_name"
)

// StoreSelector is a parsed store reference. Raw input is parsed exactly
// once, at the boundary; downstream code switches on Kind and never sees
// the raw string again.
type StoreSelector struct {
	kind  SelectorKind
	value string
}

// ParseStoreSelector classifies a raw store reference. Parsing is total:
// blank input selects the default store, an all-digit token is a store ID,
// anything else is a display name.
func ParseStoreSelector(raw string) StoreSelector {
	trimmed := strings.TrimSpace(raw)
	switch {
	case trimmed == "":
		return StoreSelector{kind: SelectDefault}
	case isDigits(trimmed):
		return StoreSelector{kind: SelectByID, value: trimmed}
	default:
		return StoreSelector{kind: SelectByName, value: trimmed}
	}
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

// Kind returns the selector discriminator.
func (s StoreSelector) Kind() SelectorKind { return s.kind }

// Value returns the store ID or name. Empty for the default selector.
func (s StoreSelector) Value() string { return s.value }
