package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/fantasy-points/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-points/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-points/internal/usecase"
)

type pointsRow struct {
	PlayerID  string             `json:"playerId,omitempty"`
	FixtureID string             `json:"fixtureId,omitempty"`
	Role      string             `json:"role"`
	RoleKnown bool               `json:"roleKnown"`
	RuleSet   string             `json:"ruleSet"`
	Total     int                `json:"total"`
	Breakdown []scoringRuleTotal `json:"breakdown"`
}

type scoringRuleTotal struct {
	Rule   string `json:"rule"`
	Points int    `json:"points"`
}

func newPointsCmd(c *cli) *cobra.Command {
	var (
		file    string
		role    string
		ruleSet string
		detail  bool
	)

	cmd := &cobra.Command{
		Use:   "points",
		Short: "Score stat lines from a YAML or JSON file",
		Example: `  fantasyctl points --file gw1.yaml --role MID
  cat stats.json | fantasyctl points --file - -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := readInput(c.in, file)
			if err != nil {
				return fmt.Errorf("read stats: %w", err)
			}
			lines, err := decodeStatLines(file, data)
			if err != nil {
				return err
			}

			rows, err := c.scoreLines(cmd.Context(), lines, role, ruleSet)
			if err != nil {
				return err
			}
			if c.output == outputJSON {
				return c.printJSON(rows)
			}
			return c.printPoints(rows, detail)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "stat file, - for stdin")
	cmd.Flags().StringVarP(&role, "role", "r", "", "role or position code for every line; defaults to each line's position")
	cmd.Flags().StringVar(&ruleSet, "use", "", "rule set to score with; defaults to --rule-set")
	cmd.Flags().BoolVar(&detail, "detail", false, "print the per-rule breakdown")
	return cmd
}

func (c *cli) scoreLines(ctx context.Context, lines []statLine, role, ruleSet string) ([]pointsRow, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	rows := make([]pointsRow, 0, len(lines))
	for i, line := range lines {
		lineRole := strings.TrimSpace(role)
		if lineRole == "" {
			if strings.TrimSpace(line.Position) == "" {
				return nil, fmt.Errorf("line %d: no --role given and no position in file", i+1)
			}
			resolved, known := fantasy.LookupRole(line.Position)
			if !known {
				c.logger.Warn("unknown position code, defaulting role", "line", i+1, "position", line.Position, "role", resolved)
			}
			lineRole = string(resolved)
		}

		b, err := c.scoring.CalculatePoints(ctx, usecase.CalculatePointsInput{
			Stat:    line.toDomain(),
			Role:    lineRole,
			RuleSet: ruleSet,
		})
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		rows = append(rows, pointsRowFrom(line, lineRole, b))
	}
	return rows, nil
}

func pointsRowFrom(line statLine, role string, b scoring.Breakdown) pointsRow {
	row := pointsRow{
		PlayerID:  line.PlayerID,
		FixtureID: line.FixtureID,
		Role:      role,
		RoleKnown: b.RoleKnown,
		RuleSet:   b.RuleSet,
		Total:     b.Total,
		Breakdown: make([]scoringRuleTotal, 0, len(b.Contributions)),
	}
	if b.RoleKnown {
		row.Role = string(b.Role)
	}
	for _, contribution := range b.Contributions {
		row.Breakdown = append(row.Breakdown, scoringRuleTotal{Rule: contribution.Rule, Points: contribution.Points})
	}
	return row
}

func (c *cli) printPoints(rows []pointsRow, detail bool) error {
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PLAYER\tFIXTURE\tROLE\tRULESET\tPOINTS")
	total := 0
	for _, row := range rows {
		role := row.Role
		if !row.RoleKnown {
			role += " (unknown)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", dash(row.PlayerID), dash(row.FixtureID), role, row.RuleSet, row.Total)
		if detail {
			for _, item := range row.Breakdown {
				fmt.Fprintf(w, "\t\t  %s\t\t%+d\n", item.Rule, item.Points)
			}
		}
		total += row.Total
	}
	if len(rows) > 1 {
		fmt.Fprintf(w, "TOTAL\t\t\t\t%d\n", total)
	}
	return w.Flush()
}

func newLineupCmd(c *cli) *cobra.Command {
	var (
		file      string
		formation string
	)

	cmd := &cobra.Command{
		Use:   "lineup",
		Short: "Check a lineup file against a formation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := readInput(c.in, file)
			if err != nil {
				return fmt.Errorf("read lineup: %w", err)
			}
			doc, err := decodeLineup(file, data)
			if err != nil {
				return err
			}
			if formation != "" {
				doc.Formation = formation
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			check, err := c.lineup.Validate(ctx, usecase.ValidateLineupInput{
				Formation: doc.Formation,
				Entries:   doc.entries(),
			})
			if err != nil {
				return err
			}

			if c.output == outputJSON {
				return c.printJSON(lineupReportFrom(check))
			}
			return c.printLineup(check)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "lineup file, - for stdin")
	cmd.Flags().StringVar(&formation, "formation", "", "formation name, overrides the file")
	return cmd
}

type lineupReport struct {
	Valid            bool           `json:"valid"`
	Formation        string         `json:"formation"`
	Counts           map[string]int `json:"counts"`
	UnknownPositions []string       `json:"unknownPositions"`
	Reason           string         `json:"reason,omitempty"`
}

func lineupReportFrom(check fantasy.LineupCheck) lineupReport {
	out := lineupReport{
		Valid:            check.Valid,
		Formation:        check.Formation.Name,
		Counts:           make(map[string]int, len(fantasy.AllRoles)),
		UnknownPositions: check.UnknownPositions,
	}
	if out.UnknownPositions == nil {
		out.UnknownPositions = []string{}
	}
	for _, role := range fantasy.AllRoles {
		out.Counts[string(role)] = check.Counts[role]
	}
	if err := check.Err(); err != nil {
		out.Reason = err.Error()
	}
	return out
}

func (c *cli) printLineup(check fantasy.LineupCheck) error {
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	for _, role := range fantasy.AllRoles {
		fmt.Fprintf(w, "%s\t%d\n", role, check.Counts[role])
	}
	if len(check.UnknownPositions) > 0 {
		fmt.Fprintf(w, "unknown positions\t%s\n", strings.Join(check.UnknownPositions, ","))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if check.Valid {
		_, err := fmt.Fprintf(c.out, "valid %s lineup\n", check.Formation.Name)
		return err
	}
	_, err := fmt.Fprintf(c.out, "invalid lineup: %v\n", check.Err())
	return err
}

func newPasswordCmd(c *cli) *cobra.Command {
	var policy string

	cmd := &cobra.Command{
		Use:   "password [password]",
		Short: "Grade a password; reads one line from stdin when no argument is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pw string
			if len(args) == 1 {
				pw = args[0]
			} else {
				scanner := bufio.NewScanner(c.in)
				if scanner.Scan() {
					pw = scanner.Text()
				}
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("read password: %w", err)
				}
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			result, err := c.password.Check(ctx, policy, pw)
			if err != nil {
				return err
			}

			if c.output == outputJSON {
				return c.printJSON(map[string]any{
					"isValid":  result.IsValid,
					"strength": result.Strength,
					"score":    result.Score,
					"errors":   result.Errors,
				})
			}

			status := "valid"
			if !result.IsValid {
				status = "invalid"
			}
			fmt.Fprintf(c.out, "%s, strength %s, score %d\n", status, result.Strength, result.Score)
			for _, msg := range result.Errors {
				fmt.Fprintf(c.out, "  - %s\n", msg)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&policy, "policy", "", "password policy: basic or strict")
	return cmd
}

func newFormationsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "formations",
		Short: "List supported formations",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			formations := c.lineup.ListFormations()
			if c.output == outputJSON {
				return c.printJSON(formations)
			}

			w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tGK\tDEF\tMID\tFWD")
			for _, f := range formations {
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n", f.Name, f.GK, f.DEF, f.MID, f.FWD)
			}
			return w.Flush()
		},
	}
}

func newRuleSetsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "rulesets",
		Short: "List registered rule sets",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			sets := c.scoring.RuleSets()
			if c.output == outputJSON {
				type ruleSetItem struct {
					Name    string `json:"name"`
					Version int    `json:"version"`
					Default bool   `json:"default"`
				}
				items := make([]ruleSetItem, 0, len(sets))
				for _, set := range sets {
					items = append(items, ruleSetItem{Name: set.Name, Version: set.Version, Default: set.Default})
				}
				return c.printJSON(items)
			}

			w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tVERSION\tDEFAULT")
			for _, set := range sets {
				fmt.Fprintf(w, "%s\t%d\t%t\n", set.Name, set.Version, set.Default)
			}
			return w.Flush()
		},
	}
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
