package litellm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/kailas-cloud/vecmcp/internal/domain"
)

// StatusError is a non-2xx backend reply.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("litellm: status %d: %s", e.StatusCode, e.Body)
}

// Classifier maps backend failures onto the caller-facing condition
// taxonomy, with deployment-specific guidance baked into the messages.
// Classification is pure: no I/O, no logging, no reordering of causes.
type Classifier struct {
	BaseURL string
	Timeout time.Duration
}

// Classify converts err into a condition. Existing conditions pass through
// untouched so upstream classifications survive wrapping.
func (c Classifier) Classify(err error) *domain.Condition {
	var cond *domain.Condition
	if errors.As(err, &cond) {
		return cond
	}

	var status *StatusError
	if errors.As(err, &status) {
		return classifyStatus(status)
	}

	// Timeout detection must precede the generic url.Error check: a timed
	// out request also surfaces as *url.Error.
	if isTimeout(err) {
		return domain.NewCondition(domain.KindTimeout,
			"Request timed out after %d seconds. The vector store search is taking too long. Try a more specific query or reduce max_results.",
			int(c.Timeout.Seconds()))
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return domain.NewCondition(domain.KindNetworkUnavailable,
			"Unable to connect to %s. Please check your LITELLM_BASE_URL and network connection.", c.BaseURL)
	}

	return domain.NewCondition(domain.KindUnexpected, "Unexpected error occurred: %v", err)
}

func classifyStatus(e *StatusError) *domain.Condition {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.NewCondition(domain.KindAuthentication,
			"Authentication failed. Please check your LITELLM_API_KEY is valid and has access to the vector store.")
	case http.StatusNotFound:
		return domain.NewCondition(domain.KindStoreNotFound,
			"Vector store not found. Please verify your LITELLM_VECTOR_STORE_ID is correct.")
	case http.StatusTooManyRequests:
		return domain.NewCondition(domain.KindRateLimited,
			"Rate limit exceeded. Please wait a moment before making another search request.")
	case http.StatusInternalServerError:
		return domain.NewCondition(domain.KindUnexpected,
			"Vector store service error. The LiteLLM server encountered an internal error. Please try again in a moment.")
	default:
		return domain.NewCondition(domain.KindUnexpected,
			"API request failed with status %d. Please check your configuration.", e.StatusCode)
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
