// Package roadmap projects a role's static roadmap into a display-friendly
// ordered list of phases. Pure, deterministic, side-effect free.
package roadmap

import (
	"github.com/okian/pathway/internal/domain/catalog"
	"github.com/okian/pathway/internal/domain/types"
)

// ForRole returns the role's roadmap phases in chronological order. The
// returned slice is a copy; mutating it cannot touch catalog state.
func ForRole(role catalog.Role) []types.Phase {
	phases := make([]types.Phase, len(role.Roadmap))
	for i, p := range role.Roadmap {
		phases[i] = types.Phase{
			Phase:  p.Phase,
			Topics: append([]string(nil), p.Topics...),
		}
	}
	return phases
}
