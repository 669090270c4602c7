package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates the backend is unreachable.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	catalog CatalogLister
	cache   CachePinger
}

// New creates a Service. cache can be nil when caching is disabled.
func New(catalog CatalogLister, cache CachePinger) *Service {
	return &Service{catalog: catalog, cache: cache}
}

// Check runs health checks against all components. The catalog probe goes
// through the same lister the tools use, so a cached catalog answers it
// without a backend round trip.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	backendOK := true
	if _, err := s.catalog.ListVectorStores(ctx); err != nil {
		checks["backend"] = CheckError
		backendOK = false
	} else {
		checks["backend"] = CheckOK
	}

	if s.cache != nil {
		if err := s.cache.Ping(ctx); err != nil {
			checks["cache"] = CheckError
		} else {
			checks["cache"] = CheckOK
		}
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}
	// Without the backend there is nothing to serve.
	if !backendOK {
		status = Unhealthy
	}

	return Report{Status: status, Checks: checks}
}
