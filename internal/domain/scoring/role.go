package scoring

import (
	"strings"

	"github.com/riskibarqy/fantasy-points/internal/domain/fantasy"
)

var roleAliases = map[string]fantasy.Role{
	"gk":         fantasy.RoleGoalkeeper,
	"g":          fantasy.RoleGoalkeeper,
	"goalkeeper": fantasy.RoleGoalkeeper,
	"keeper":     fantasy.RoleGoalkeeper,
	"goalie":     fantasy.RoleGoalkeeper,

	"def":         fantasy.RoleDefender,
	"d":           fantasy.RoleDefender,
	"defender":    fantasy.RoleDefender,
	"cb":          fantasy.RoleDefender,
	"lb":          fantasy.RoleDefender,
	"rb":          fantasy.RoleDefender,
	"fullback":    fantasy.RoleDefender,
	"centre-back": fantasy.RoleDefender,
	"center-back": fantasy.RoleDefender,

	"mid":        fantasy.RoleMidfielder,
	"m":          fantasy.RoleMidfielder,
	"midfielder": fantasy.RoleMidfielder,
	"cm":         fantasy.RoleMidfielder,
	"dm":         fantasy.RoleMidfielder,
	"am":         fantasy.RoleMidfielder,
	"cdm":        fantasy.RoleMidfielder,
	"cam":        fantasy.RoleMidfielder,

	"fwd":      fantasy.RoleForward,
	"f":        fantasy.RoleForward,
	"fw":       fantasy.RoleForward,
	"forward":  fantasy.RoleForward,
	"striker":  fantasy.RoleForward,
	"st":       fantasy.RoleForward,
	"cf":       fantasy.RoleForward,
	"attacker": fantasy.RoleForward,
	"winger":   fantasy.RoleForward,
}

// ParseRole matches a role label case-insensitively against the alias table.
// Unlike fantasy.RoleOf there is no default: unknown labels return false.
func ParseRole(label string) (fantasy.Role, bool) {
	role, ok := roleAliases[strings.ToLower(strings.TrimSpace(label))]
	return role, ok
}
