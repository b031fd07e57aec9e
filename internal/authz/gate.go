// Package authz decides whether a caller may act on a resource. Decisions are
// explicit functions in a table keyed by resource kind and action; nothing is
// inferred from types at runtime.
package authz

import "go-resume-builder/pkg/apperror"

type Action string

const (
	ActionView   Action = "view"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Resource is anything the gate can rule on. Child entities of a resume do not
// implement this themselves; their checks go through the owning Resume.
type Resource interface {
	Kind() string
	OwnerID() string
}

// PolicyFunc returns true when userID may perform the action on the resource.
type PolicyFunc func(userID string, resource Resource) bool

type Gate struct {
	table map[string]map[Action]PolicyFunc
}

func NewGate() *Gate {
	return &Gate{table: make(map[string]map[Action]PolicyFunc)}
}

func (g *Gate) Register(kind string, action Action, fn PolicyFunc) {
	if g.table[kind] == nil {
		g.table[kind] = make(map[Action]PolicyFunc)
	}
	g.table[kind][action] = fn
}

// Authorize denies with Forbidden when no policy is registered or the policy
// rejects. Not-owned resources are a forbidden action, never a 404: existence
// is not leaked past the authentication boundary.
func (g *Gate) Authorize(userID string, action Action, resource Resource) error {
	policies, ok := g.table[resource.Kind()]
	if !ok {
		return apperror.Forbidden("This action is unauthorized")
	}
	fn, ok := policies[action]
	if !ok || !fn(userID, resource) {
		return apperror.Forbidden("This action is unauthorized")
	}
	return nil
}

// OwnerOnly is the single rule this application needs: the resource's owner
// and nobody else.
func OwnerOnly(userID string, resource Resource) bool {
	return userID != "" && resource.OwnerID() == userID
}

// NewResumeGate returns a gate preloaded with the resume ownership policies.
func NewResumeGate() *Gate {
	g := NewGate()
	g.Register("resume", ActionView, OwnerOnly)
	g.Register("resume", ActionUpdate, OwnerOnly)
	g.Register("resume", ActionDelete, OwnerOnly)
	return g
}
