package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a failure for host-facing reporting.
type Kind string

// Failure kinds. Every error that reaches a host surface carries exactly one.
const (
	KindInvalidQuery       Kind = "invalid_query"
	KindInvalidMaxResults  Kind = "invalid_max_results"
	KindConfiguration      Kind = "configuration_error"
	KindStoreNotFound      Kind = "store_not_found"
	KindAuthentication     Kind = "authentication_failed"
	KindRateLimited        Kind = "rate_limited"
	KindNetworkUnavailable Kind = "network_unavailable"
	KindTimeout            Kind = "timeout"
	KindUnexpected         Kind = "unexpected_error"
)

// Condition is a classified failure whose message tells the caller what to
// fix or try next. Hosts render it as text; it never surfaces as a bare
// protocol error.
type Condition struct {
	Kind    Kind
	Message string
}

func (c *Condition) Error() string { return c.Message }

// NewCondition creates a classified failure.
func NewCondition(kind Kind, format string, args ...any) *Condition {
	return &Condition{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// ConditionOf extracts the classified condition from err. Anything
// unclassified is wrapped as an unexpected failure.
func ConditionOf(err error) *Condition {
	var c *Condition
	if errors.As(err, &c) {
		return c
	}
	return &Condition{Kind: KindUnexpected, Message: fmt.Sprintf("Unexpected error occurred: %v", err)}
}
