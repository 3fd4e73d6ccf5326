package fantasy

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownFormation  = errors.New("unknown formation")
	ErrFormationMismatch = errors.New("lineup does not match formation")
)

// LineupEntry pairs a player with a position code or an explicit role override.
type LineupEntry struct {
	PlayerID string
	Position string
	Role     Role
}

// ResolveRole prefers the override and falls back to the position code.
// known is false when the position code had to default.
func (e LineupEntry) ResolveRole() (role Role, known bool) {
	if e.Role.Valid() {
		return e.Role, true
	}
	return LookupRole(e.Position)
}

// RoleMismatch describes one role whose tally differs from the formation.
type RoleMismatch struct {
	Role     Role
	Required int
	Actual   int
}

// LineupCheck is the full outcome of checking a lineup against a formation.
type LineupCheck struct {
	Formation        Formation
	FormationFound   bool
	Counts           map[Role]int
	Mismatches       []RoleMismatch
	UnknownPositions []string
	Valid            bool
}

// Err summarizes why a lineup is invalid, or nil when it is valid.
func (c LineupCheck) Err() error {
	if c.Valid {
		return nil
	}
	if !c.FormationFound {
		return ErrUnknownFormation
	}

	parts := make([]string, 0, len(c.Mismatches))
	for _, m := range c.Mismatches {
		parts = append(parts, fmt.Sprintf("%s=%d want %d", m.Role, m.Actual, m.Required))
	}
	return fmt.Errorf("%w: %s: %s", ErrFormationMismatch, c.Formation.Name, strings.Join(parts, ", "))
}

// CheckLineup tallies lineup roles and compares them with the formation.
// Counts must match exactly on all four roles.
func CheckLineup(entries []LineupEntry, formationName string) LineupCheck {
	counts := make(map[Role]int, len(AllRoles))
	var unknown []string
	for _, entry := range entries {
		role, known := entry.ResolveRole()
		if !known {
			unknown = append(unknown, entry.Position)
		}
		counts[role]++
	}

	out := LineupCheck{
		Counts:           counts,
		UnknownPositions: unknown,
	}

	formation, ok := RequirementsOf(formationName)
	if !ok {
		out.Formation = Formation{Name: strings.TrimSpace(formationName)}
		return out
	}
	out.Formation = formation
	out.FormationFound = true

	for _, role := range AllRoles {
		if counts[role] != formation.Count(role) {
			out.Mismatches = append(out.Mismatches, RoleMismatch{
				Role:     role,
				Required: formation.Count(role),
				Actual:   counts[role],
			})
		}
	}
	out.Valid = len(out.Mismatches) == 0

	return out
}

// IsLineupValid reports whether the lineup exactly fills the formation.
func IsLineupValid(entries []LineupEntry, formationName string) bool {
	return CheckLineup(entries, formationName).Valid
}
