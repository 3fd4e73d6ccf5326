package fantasy

import "strings"

// Role is the scoring category a player counts as in a fantasy lineup.
type Role string

const (
	RoleGoalkeeper Role = "GK"
	RoleDefender   Role = "DEF"
	RoleMidfielder Role = "MID"
	RoleForward    Role = "FWD"
)

// AllRoles lists roles in lineup order.
var AllRoles = []Role{RoleGoalkeeper, RoleDefender, RoleMidfielder, RoleForward}

// DefaultRole is used when a position code is not in the lookup table.
const DefaultRole = RoleMidfielder

var roleByPositionCode = map[string]Role{
	"GK":         RoleGoalkeeper,
	"G":          RoleGoalkeeper,
	"GOALKEEPER": RoleGoalkeeper,

	"CB":       RoleDefender,
	"LB":       RoleDefender,
	"RB":       RoleDefender,
	"LWB":      RoleDefender,
	"RWB":      RoleDefender,
	"SW":       RoleDefender,
	"D":        RoleDefender,
	"DEF":      RoleDefender,
	"DEFENDER": RoleDefender,

	"CM":         RoleMidfielder,
	"CDM":        RoleMidfielder,
	"CAM":        RoleMidfielder,
	"DM":         RoleMidfielder,
	"AM":         RoleMidfielder,
	"LM":         RoleMidfielder,
	"RM":         RoleMidfielder,
	"M":          RoleMidfielder,
	"MID":        RoleMidfielder,
	"MIDFIELDER": RoleMidfielder,

	"ST":      RoleForward,
	"CF":      RoleForward,
	"SS":      RoleForward,
	"LW":      RoleForward,
	"RW":      RoleForward,
	"F":       RoleForward,
	"FW":      RoleForward,
	"FWD":     RoleForward,
	"FORWARD": RoleForward,
	"STRIKER": RoleForward,
}

// LookupRole maps a real-world position code to its fantasy role.
// The bool is false when the code is unknown and DefaultRole was returned.
func LookupRole(positionCode string) (Role, bool) {
	role, ok := roleByPositionCode[strings.ToUpper(strings.TrimSpace(positionCode))]
	if !ok {
		return DefaultRole, false
	}
	return role, true
}

// RoleOf maps a position code to a role, falling back to DefaultRole.
func RoleOf(positionCode string) Role {
	role, _ := LookupRole(positionCode)
	return role
}

func (r Role) Valid() bool {
	switch r {
	case RoleGoalkeeper, RoleDefender, RoleMidfielder, RoleForward:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}
