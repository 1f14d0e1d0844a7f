// Package health reports readiness of the database pool and the role policy.
package health

import (
	"context"
	"time"
)

const checkTimeout = 2 * time.Second

// Pinger is used to check database connectivity (e.g. *sql.DB).
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PolicyChecker is used to check that the role policy evaluates (e.g. the OPA evaluator).
type PolicyChecker interface {
	HealthCheck(ctx context.Context) error
}

// Report is the outcome of one readiness check. Failed maps a check name to its error text.
type Report struct {
	Ready  bool              `json:"ready"`
	Failed map[string]string `json:"failed,omitempty"`
}

// Checker runs the readiness checks. Nil dependencies are skipped.
type Checker struct {
	db     Pinger
	policy PolicyChecker
}

// NewChecker returns a Checker. pinger and policy may be nil.
func NewChecker(pinger Pinger, policy PolicyChecker) *Checker {
	return &Checker{db: pinger, policy: policy}
}

// Check runs every configured check with a short timeout each.
func (c *Checker) Check(ctx context.Context) Report {
	r := Report{Ready: true}
	fail := func(name string, err error) {
		if r.Failed == nil {
			r.Failed = make(map[string]string)
		}
		r.Ready = false
		r.Failed[name] = err.Error()
	}
	if c.db != nil {
		pctx, cancel := context.WithTimeout(ctx, checkTimeout)
		err := c.db.PingContext(pctx)
		cancel()
		if err != nil {
			fail("database", err)
		}
	}
	if c.policy != nil {
		pctx, cancel := context.WithTimeout(ctx, checkTimeout)
		err := c.policy.HealthCheck(pctx)
		cancel()
		if err != nil {
			fail("policy", err)
		}
	}
	return r
}
