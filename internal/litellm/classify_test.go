package litellm

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/kailas-cloud/vecmcp/internal/domain"
)

var testClassifier = Classifier{BaseURL: "https://litellm.example.com", Timeout: 30 * time.Second}

func TestClassify_StatusCodes(t *testing.T) {
	tests := []struct {
		status      int
		wantKind    domain.Kind
		wantMessage string
	}{
		{401, domain.KindAuthentication, "LITELLM_API_KEY"},
		{403, domain.KindAuthentication, "LITELLM_API_KEY"},
		{404, domain.KindStoreNotFound, "not found"},
		{429, domain.KindRateLimited, "Rate limit"},
		{500, domain.KindUnexpected, "internal error"},
		{502, domain.KindUnexpected, "status 502"},
		{418, domain.KindUnexpected, "status 418"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("status %d", tt.status), func(t *testing.T) {
			cond := testClassifier.Classify(&StatusError{StatusCode: tt.status, Body: "{}"})
			if cond.Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", cond.Kind, tt.wantKind)
			}
			if !strings.Contains(cond.Message, tt.wantMessage) {
				t.Errorf("Message = %q, want substring %q", cond.Message, tt.wantMessage)
			}
		})
	}
}

func TestClassify_WrappedStatusError(t *testing.T) {
	err := fmt.Errorf("searching: %w", &StatusError{StatusCode: 429})
	cond := testClassifier.Classify(err)
	if cond.Kind != domain.KindRateLimited {
		t.Errorf("Kind = %q, want %q", cond.Kind, domain.KindRateLimited)
	}
}

func TestClassify_DeadlineExceeded(t *testing.T) {
	err := fmt.Errorf("litellm POST /search: %w", context.DeadlineExceeded)
	cond := testClassifier.Classify(err)
	if cond.Kind != domain.KindTimeout {
		t.Errorf("Kind = %q, want %q", cond.Kind, domain.KindTimeout)
	}
	if !strings.Contains(cond.Message, "30 seconds") {
		t.Errorf("Message = %q, want configured timeout mentioned", cond.Message)
	}
}

// timeoutErr implements net.Error with Timeout() == true.
type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return false }

func TestClassify_NetTimeout(t *testing.T) {
	err := &url.Error{Op: "Post", URL: "https://litellm.example.com", Err: timeoutErr{}}
	cond := testClassifier.Classify(err)
	if cond.Kind != domain.KindTimeout {
		t.Errorf("Kind = %q, want %q (url.Error with Timeout() must not classify as network)", cond.Kind, domain.KindTimeout)
	}
}

func TestClassify_ConnectionError(t *testing.T) {
	err := &url.Error{Op: "Get", URL: "https://litellm.example.com", Err: errors.New("connect: connection refused")}
	cond := testClassifier.Classify(err)
	if cond.Kind != domain.KindNetworkUnavailable {
		t.Errorf("Kind = %q, want %q", cond.Kind, domain.KindNetworkUnavailable)
	}
	if !strings.Contains(cond.Message, "https://litellm.example.com") {
		t.Errorf("Message = %q, want base URL mentioned", cond.Message)
	}
}

func TestClassify_ConditionPassthrough(t *testing.T) {
	orig := domain.NewCondition(domain.KindStoreNotFound, "Vector store 'x' not found.")
	if got := testClassifier.Classify(orig); got != orig {
		t.Errorf("Classify rewrote an existing condition: %v", got)
	}

	wrapped := fmt.Errorf("resolve: %w", orig)
	if got := testClassifier.Classify(wrapped); got.Kind != domain.KindStoreNotFound {
		t.Errorf("Kind = %q, want passthrough %q", got.Kind, domain.KindStoreNotFound)
	}
}

func TestClassify_Unclassified(t *testing.T) {
	cond := testClassifier.Classify(errors.New("weird failure"))
	if cond.Kind != domain.KindUnexpected {
		t.Errorf("Kind = %q, want %q", cond.Kind, domain.KindUnexpected)
	}
	if !strings.Contains(cond.Message, "weird failure") {
		t.Errorf("Message = %q, want the cause included", cond.Message)
	}
}

func TestStatusError_Error(t *testing.T) {
	e := &StatusError{StatusCode: 503, Body: "upstream unavailable"}
	want := "litellm: status 503: upstream unavailable"
	if e.Error() != want {
		t.Errorf("Error() = %q, want %q", e.Error(), want)
	}
}
