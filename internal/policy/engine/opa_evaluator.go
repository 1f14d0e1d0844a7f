package engine

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/open-policy-agent/opa/v1/ast"
	"github.com/open-policy-agent/opa/v1/rego"

	memberdomain "projectboard/internal/membership/domain"
	"projectboard/internal/policy/domain"
)

const rolesQuery = "data.projectboard.authz.roles[input.action]"

// DefaultRegoPolicy is the role matrix used when no policy file is configured.
const DefaultRegoPolicy = `package projectboard.authz

everyone := {"admin", "editor", "member", "observer"}

contributors := {"admin", "editor", "member"}

roles := {
	"project.view": everyone,
	"project.update": {"admin", "editor"},
	"project.delete": {"admin"},
	"project.status": {"admin"},
	"member.add": {"admin"},
	"task.view": everyone,
	"task.create": contributors,
	"task.update": contributors,
	"task.status": contributors,
	"task.assign": contributors,
	"comment.create": contributors,
	"activity.view": everyone,
	"activity.create": contributors,
}
`

// OPAEvaluator evaluates the role matrix with OPA Rego. The module is compiled once at construction.
type OPAEvaluator struct {
	query rego.PreparedEvalQuery
}

// LoadPolicy returns the Rego source at path, or DefaultRegoPolicy when path is empty.
func LoadPolicy(path string) (string, error) {
	if path == "" {
		return DefaultRegoPolicy, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read policy file: %w", err)
	}
	return string(b), nil
}

// NewOPAEvaluator compiles source and prepares the roles query.
func NewOPAEvaluator(ctx context.Context, source string) (*OPAEvaluator, error) {
	compiler, err := ast.CompileModules(map[string]string{"authz.rego": source})
	if err != nil {
		return nil, fmt.Errorf("compile policy: %w", err)
	}
	pq, err := rego.New(
		rego.Query(rolesQuery),
		rego.Compiler(compiler),
	).PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("prepare policy query: %w", err)
	}
	return &OPAEvaluator{query: pq}, nil
}

// AllowedRoles evaluates the roles rule for action. Unknown actions and unknown role names are dropped.
func (e *OPAEvaluator) AllowedRoles(ctx context.Context, action string) ([]memberdomain.Role, error) {
	rs, err := e.query.Eval(ctx, rego.EvalInput(map[string]interface{}{"action": action}))
	if err != nil {
		return nil, fmt.Errorf("eval policy: %w", err)
	}
	if len(rs) == 0 || len(rs[0].Expressions) == 0 {
		return nil, nil
	}
	values, ok := rs[0].Expressions[0].Value.([]interface{})
	if !ok {
		return nil, fmt.Errorf("policy returned %T for %s, want a set of roles", rs[0].Expressions[0].Value, action)
	}
	out := make([]memberdomain.Role, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		if r := memberdomain.Role(s); r.Valid() {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// HealthCheck verifies every known action evaluates without error. Does not touch the database.
func (e *OPAEvaluator) HealthCheck(ctx context.Context) error {
	for _, a := range domain.Actions {
		if _, err := e.AllowedRoles(ctx, a.String()); err != nil {
			return err
		}
	}
	return nil
}
