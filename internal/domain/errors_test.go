package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestCondition_Error(t *testing.T) {
	c := NewCondition(KindRateLimited, "Rate limit exceeded. Wait %d seconds.", 30)
	if c.Error() != "Rate limit exceeded. Wait 30 seconds." {
		t.Errorf("Error() = %q", c.Error())
	}
	if c.Kind != KindRateLimited {
		t.Errorf("Kind = %q", c.Kind)
	}
}

func TestConditionOf_Passthrough(t *testing.T) {
	orig := NewCondition(KindTimeout, "Request timed out.")
	got := ConditionOf(orig)
	if got != orig {
		t.Errorf("ConditionOf returned %v, want the original condition", got)
	}
}

func TestConditionOf_Wrapped(t *testing.T) {
	orig := NewCondition(KindStoreNotFound, "Vector store 'x' not found.")
	wrapped := fmt.Errorf("resolving store: %w", orig)
	got := ConditionOf(wrapped)
	if got.Kind != KindStoreNotFound {
		t.Errorf("Kind = %q, want %q", got.Kind, KindStoreNotFound)
	}
}

func TestConditionOf_Unclassified(t *testing.T) {
	got := ConditionOf(errors.New("disk on fire"))
	if got.Kind != KindUnexpected {
		t.Errorf("Kind = %q, want %q", got.Kind, KindUnexpected)
	}
	if got.Message != "Unexpected error occurred: disk on fire" {
		t.Errorf("Message = %q", got.Message)
	}
}

func TestCondition_ErrorsAs(t *testing.T) {
	var c *Condition
	err := fmt.Errorf("outer: %w", NewCondition(KindAuthentication, "Authentication failed."))
	if !errors.As(err, &c) {
		t.Fatal("errors.As failed to find *Condition")
	}
	if c.Kind != KindAuthentication {
		t.Errorf("Kind = %q", c.Kind)
	}
}
