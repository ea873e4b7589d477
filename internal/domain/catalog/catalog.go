// Package catalog holds the static role catalog: each target job role with
// its required skills and phased learning roadmap. The catalog is built once
// at process start and never mutated, so handlers can share it freely.
package catalog

import (
	"fmt"
	"strings"

	"github.com/okian/pathway/internal/domain/types"
)

// Role is a named target job profile. Skills and roadmap phases are ordered;
// skill order is the canonical display order for skill-gap results.
type Role struct {
	Name    string
	Skills  []string
	Roadmap []types.Phase
}

// Catalog is an immutable lookup table of roles.
type Catalog struct {
	roles []Role
}

// Option applies a configuration option to the Catalog.
type Option func(*Catalog)

// WithRole appends a role to the catalog. Adding a role is configuration,
// not logic; nothing else needs to change.
func WithRole(role Role) Option {
	return func(c *Catalog) {
		if strings.TrimSpace(role.Name) != "" {
			c.roles = append(c.roles, role)
		}
	}
}

// WithRoles replaces the default role set entirely.
func WithRoles(roles ...Role) Option {
	return func(c *Catalog) {
		c.roles = append([]Role(nil), roles...)
	}
}

// New constructs a Catalog. Without options it carries the reference
// deployment's three roles.
func New(opts ...Option) *Catalog {
	c := &Catalog{roles: defaultRoles()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup finds a role by case-insensitive exact name match.
func (c *Catalog) Lookup(name string) (Role, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, r := range c.roles {
		if strings.ToLower(r.Name) == want {
			return copyRole(r), nil
		}
	}
	return Role{}, fmt.Errorf("%w: %q", ErrUnknownRole, name)
}

// Names returns the canonical role names in declaration order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.roles))
	for i, r := range c.roles {
		names[i] = r.Name
	}
	return names
}

// Len returns the number of roles in the catalog.
func (c *Catalog) Len() int {
	return len(c.roles)
}

// copyRole returns a deep copy so callers cannot mutate catalog state.
func copyRole(r Role) Role {
	out := Role{
		Name:    r.Name,
		Skills:  append([]string(nil), r.Skills...),
		Roadmap: make([]types.Phase, len(r.Roadmap)),
	}
	for i, p := range r.Roadmap {
		out.Roadmap[i] = types.Phase{
			Phase:  p.Phase,
			Topics: append([]string(nil), p.Topics...),
		}
	}
	return out
}
