package authz

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	stringadapter "github.com/casbin/casbin/v2/persist/string-adapter"
)

//go:embed model.conf
var modelText string

//go:embed policy.csv
var policyText string

// Enforcer answers whether a role may perform an action on a resource.
// Row-level rules (ownership, membership) are not its concern.
type Enforcer struct {
	enforcer *casbin.Enforcer
}

// New builds an enforcer from the built-in role policy.
func New() (*Enforcer, error) {
	return NewWithPolicy(policyText)
}

// NewWithPolicy builds an enforcer from CSV policy lines ("p, role, resource, action").
func NewWithPolicy(policy string) (*Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("failed to load casbin model: %w", err)
	}

	e, err := casbin.NewEnforcer(m, stringadapter.NewAdapter(stripBlankLines(policy)))
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}
	return &Enforcer{enforcer: e}, nil
}

func (e *Enforcer) Allowed(role, resource, action string) (bool, error) {
	ok, err := e.enforcer.Enforce(role, resource, action)
	if err != nil {
		return false, fmt.Errorf("permission check failed: %w", err)
	}
	return ok, nil
}

func stripBlankLines(s string) string {
	var lines []string
	for _, l := range strings.Split(s, "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	return strings.Join(lines, "\n")
}
