package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
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
	Status       Status
	Checks       map[string]CheckResult
	CatalogCount int
}

// Service coordinates health checks. The service itself is considered up as
// long as it can answer; failing dependencies degrade but never report down,
// because intent extraction falls back gracefully without them.
type Service struct {
	cache        CachePinger
	model        ModelChecker
	catalogCount int
}

// New creates a Service. cache and model can be nil when the corresponding
// component is not configured.
func New(cache CachePinger, model ModelChecker, catalogCount int) *Service {
	return &Service{cache: cache, model: model, catalogCount: catalogCount}
}

// Check runs health checks against all configured components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if s.cache != nil {
		if err := s.cache.Ping(ctx); err != nil {
			checks["cache"] = CheckError
		} else {
			checks["cache"] = CheckOK
		}
	}

	if s.model != nil {
		if err := s.model.HealthCheck(ctx); err != nil {
			checks["model"] = CheckError
		} else {
			checks["model"] = CheckOK
		}
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks, CatalogCount: s.catalogCount}
}
