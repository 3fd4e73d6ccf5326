package fantasy

import "strings"

// LineupSize is the number of starters every formation describes.
const LineupSize = 11

// Formation is a named template of required starters per role.
type Formation struct {
	Name string
	GK   int
	DEF  int
	MID  int
	FWD  int
}

// Count returns the required starters for one role.
func (f Formation) Count(role Role) int {
	switch role {
	case RoleGoalkeeper:
		return f.GK
	case RoleDefender:
		return f.DEF
	case RoleMidfielder:
		return f.MID
	case RoleForward:
		return f.FWD
	default:
		return 0
	}
}

func (f Formation) Total() int {
	return f.GK + f.DEF + f.MID + f.FWD
}

// Attacking midfielders in 4-2-3-1 and 3-4-2-1 count as MID.
var formations = []Formation{
	{Name: "4-4-2", GK: 1, DEF: 4, MID: 4, FWD: 2},
	{Name: "4-3-3", GK: 1, DEF: 4, MID: 3, FWD: 3},
	{Name: "4-5-1", GK: 1, DEF: 4, MID: 5, FWD: 1},
	{Name: "3-5-2", GK: 1, DEF: 3, MID: 5, FWD: 2},
	{Name: "3-4-3", GK: 1, DEF: 3, MID: 4, FWD: 3},
	{Name: "5-3-2", GK: 1, DEF: 5, MID: 3, FWD: 2},
	{Name: "4-2-3-1", GK: 1, DEF: 4, MID: 5, FWD: 1},
	{Name: "3-4-2-1", GK: 1, DEF: 3, MID: 6, FWD: 1},
}

var formationByName = func() map[string]Formation {
	out := make(map[string]Formation, len(formations))
	for _, item := range formations {
		out[item.Name] = item
	}
	return out
}()

// Formations returns the catalog in canonical order.
func Formations() []Formation {
	return append([]Formation(nil), formations...)
}

// RequirementsOf returns the role counts of a named formation.
func RequirementsOf(name string) (Formation, bool) {
	item, ok := formationByName[strings.TrimSpace(name)]
	return item, ok
}
