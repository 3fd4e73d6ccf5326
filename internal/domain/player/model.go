package player

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/fantasy-points/internal/domain/fantasy"
)

// Player is an athlete whose match stats are scored.
// Position holds the real-world position code (e.g. "CB", "ST").
type Player struct {
	ID       string
	TeamID   string
	Name     string
	Position string
}

// Role maps the player's position code to a fantasy role.
func (p Player) Role() fantasy.Role {
	return fantasy.RoleOf(p.Position)
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("player id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if strings.TrimSpace(p.Position) == "" {
		return fmt.Errorf("player position is required")
	}

	return nil
}
