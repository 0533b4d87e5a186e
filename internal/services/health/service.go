package health

import (
	"context"
	"sort"
	"time"
)

const checkTimeout = 2 * time.Second

// Check probes one dependency.
type Check func(ctx context.Context) error

// Service encapsulates health-related checks.
type Service struct {
	checks map[string]Check
}

// NewService constructs a new health service. Nil checks are skipped.
func NewService(checks map[string]Check) *Service {
	out := make(map[string]Check, len(checks))
	for name, check := range checks {
		if check != nil {
			out[name] = check
		}
	}
	return &Service{checks: out}
}

// Status runs every check and reports overall health plus one entry per dependency.
func (s *Service) Status(ctx context.Context) (bool, map[string]string) {
	results := map[string]string{}
	if s == nil {
		return true, results
	}

	names := make([]string, 0, len(s.checks))
	for name := range s.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	ok := true
	for _, name := range names {
		cctx, cancel := context.WithTimeout(ctx, checkTimeout)
		err := s.checks[name](cctx)
		cancel()
		if err != nil {
			ok = false
			results[name] = err.Error()
			continue
		}
		results[name] = "ok"
	}
	return ok, results
}
