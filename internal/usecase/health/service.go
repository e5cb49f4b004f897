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
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	corpus   CorpusCounter
	polisher PolisherChecker
}

// New creates a Service. polisher can be nil.
func New(corpus CorpusCounter, polisher PolisherChecker) *Service {
	return &Service{corpus: corpus, polisher: polisher}
}

// Check runs health checks against all components.
// The corpus check fails when no documents are loaded.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if n, err := s.corpus.Len(ctx); err != nil || n == 0 {
		checks["corpus"] = CheckError
	} else {
		checks["corpus"] = CheckOK
	}

	if s.polisher != nil {
		if err := s.polisher.HealthCheck(ctx); err != nil {
			checks["polisher"] = CheckError
		} else {
			checks["polisher"] = CheckOK
		}
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks}
}
