package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	sonic "github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"

	"github.com/riskibarqy/fantasy-points/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-points/internal/domain/playerstats"
)

// statLine is one match stat row in a YAML or JSON input file. Position is
// optional and only used when no --role flag is given.
type statLine struct {
	PlayerID        string  `yaml:"player_id" json:"player_id"`
	FixtureID       string  `yaml:"fixture_id" json:"fixture_id"`
	Position        string  `yaml:"position" json:"position"`
	Gameweek        int     `yaml:"gameweek" json:"gameweek"`
	Goals           int     `yaml:"goals" json:"goals"`
	Assists         int     `yaml:"assists" json:"assists"`
	MinutesPlayed   int     `yaml:"minutes_played" json:"minutes_played"`
	Rating          float64 `yaml:"rating" json:"rating"`
	Appeared        bool    `yaml:"appeared" json:"appeared"`
	ManOfTheMatch   bool    `yaml:"man_of_the_match" json:"man_of_the_match"`
	RedCard         bool    `yaml:"red_card" json:"red_card"`
	YellowCard      bool    `yaml:"yellow_card" json:"yellow_card"`
	CleanSheet      bool    `yaml:"clean_sheet" json:"clean_sheet"`
	Saves           int     `yaml:"saves" json:"saves"`
	PenaltySaves    int     `yaml:"penalty_saves" json:"penalty_saves"`
	PossessionsWon  int     `yaml:"possessions_won" json:"possessions_won"`
	GoalsConceded   int     `yaml:"goals_conceded" json:"goals_conceded"`
	OwnGoals        int     `yaml:"own_goals" json:"own_goals"`
	PenaltiesMissed int     `yaml:"penalties_missed" json:"penalties_missed"`
}

func (l statLine) toDomain() playerstats.MatchStat {
	return playerstats.MatchStat{
		PlayerID:        l.PlayerID,
		FixtureID:       l.FixtureID,
		Gameweek:        l.Gameweek,
		Goals:           l.Goals,
		Assists:         l.Assists,
		MinutesPlayed:   l.MinutesPlayed,
		Rating:          l.Rating,
		Appeared:        l.Appeared,
		ManOfTheMatch:   l.ManOfTheMatch,
		RedCard:         l.RedCard,
		YellowCard:      l.YellowCard,
		CleanSheet:      l.CleanSheet,
		Saves:           l.Saves,
		PenaltySaves:    l.PenaltySaves,
		PossessionsWon:  l.PossessionsWon,
		GoalsConceded:   l.GoalsConceded,
		OwnGoals:        l.OwnGoals,
		PenaltiesMissed: l.PenaltiesMissed,
	}
}

type lineupEntryLine struct {
	PlayerID string `yaml:"player_id" json:"player_id"`
	Position string `yaml:"position" json:"position"`
	Role     string `yaml:"role" json:"role"`
}

type lineupFile struct {
	Formation string            `yaml:"formation" json:"formation"`
	Entries   []lineupEntryLine `yaml:"entries" json:"entries"`
}

func (f lineupFile) entries() []fantasy.LineupEntry {
	out := make([]fantasy.LineupEntry, 0, len(f.Entries))
	for _, e := range f.Entries {
		out = append(out, fantasy.LineupEntry{
			PlayerID: e.PlayerID,
			Position: e.Position,
			Role:     fantasy.Role(strings.ToUpper(strings.TrimSpace(e.Role))),
		})
	}
	return out
}

// readInput reads path, or stdin when path is "-".
func readInput(in io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(in)
	}
	return os.ReadFile(path)
}

func isJSONInput(path string, data []byte) bool {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return true
	}
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')
}

// decodeStatLines accepts a single stat mapping or a list of them.
func decodeStatLines(path string, data []byte) ([]statLine, error) {
	if isJSONInput(path, data) {
		trimmed := bytes.TrimSpace(data)
		if trimmed[0] == '[' {
			var lines []statLine
			if err := sonic.Unmarshal(trimmed, &lines); err != nil {
				return nil, fmt.Errorf("decode json stats: %w", err)
			}
			return lines, nil
		}
		var line statLine
		if err := sonic.Unmarshal(trimmed, &line); err != nil {
			return nil, fmt.Errorf("decode json stats: %w", err)
		}
		return []statLine{line}, nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("decode yaml stats: %w", err)
	}
	if len(node.Content) == 0 {
		return nil, fmt.Errorf("stat file is empty")
	}

	doc := node.Content[0]
	switch doc.Kind {
	case yaml.SequenceNode:
		var lines []statLine
		if err := doc.Decode(&lines); err != nil {
			return nil, fmt.Errorf("decode yaml stats: %w", err)
		}
		return lines, nil
	case yaml.MappingNode:
		var line statLine
		if err := doc.Decode(&line); err != nil {
			return nil, fmt.Errorf("decode yaml stats: %w", err)
		}
		return []statLine{line}, nil
	default:
		return nil, fmt.Errorf("stat file must hold a mapping or a list")
	}
}

func decodeLineup(path string, data []byte) (lineupFile, error) {
	var out lineupFile
	if isJSONInput(path, data) {
		if err := sonic.Unmarshal(bytes.TrimSpace(data), &out); err != nil {
			return lineupFile{}, fmt.Errorf("decode json lineup: %w", err)
		}
		return out, nil
	}
	if err := yaml.Unmarshal(data, &out); err != nil {
		return lineupFile{}, fmt.Errorf("decode yaml lineup: %w", err)
	}
	return out, nil
}
