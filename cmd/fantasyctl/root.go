package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/riskibarqy/fantasy-points/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-points/internal/platform/logging"
	"github.com/riskibarqy/fantasy-points/internal/usecase"
)

const (
	outputText = "text"
	outputJSON = "json"
)

var cliStderr io.Writer = os.Stderr

// cli carries state shared by subcommands. It is filled in by the root
// command's PersistentPreRunE.
type cli struct {
	in  io.Reader
	out io.Writer

	logLevel    string
	output      string
	ruleSetFile string
	ruleSet     string

	logger   *logging.Logger
	scoring  *usecase.ScoringService
	lineup   *usecase.LineupService
	password *usecase.PasswordService
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	c := &cli{in: in, out: out}

	root := &cobra.Command{
		Use:           "fantasyctl",
		Short:         "Score stat lines, check lineups and grade passwords offline",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	flags.StringVarP(&c.output, "output", "o", outputText, "output format: text or json")
	flags.StringVar(&c.ruleSetFile, "rule-set-file", "", "extra YAML rule set to register")
	flags.StringVar(&c.ruleSet, "rule-set", scoring.RuleSetStandard, "default rule set")

	root.AddCommand(
		newPointsCmd(c),
		newLineupCmd(c),
		newPasswordCmd(c),
		newFormationsCmd(c),
		newRuleSetsCmd(c),
	)
	return root
}

func (c *cli) setup() error {
	level, err := logging.ParseLevel(c.logLevel)
	if err != nil {
		return err
	}
	c.logger = logging.New(logging.Options{Level: level, Format: logging.FormatConsole, Output: cliStderr})

	switch c.output = strings.ToLower(strings.TrimSpace(c.output)); c.output {
	case outputText, outputJSON:
	default:
		return fmt.Errorf("unsupported output %q: use text or json", c.output)
	}

	registry := scoring.NewRegistry()
	if c.ruleSetFile != "" {
		set, err := scoring.LoadRuleSetFile(c.ruleSetFile)
		if err != nil {
			return err
		}
		if err := registry.Register(set); err != nil {
			return err
		}
		c.logger.Debug("rule set registered", "name", set.Name, "file", c.ruleSetFile)
	}
	if _, err := registry.Get(c.ruleSet); err != nil {
		return err
	}

	c.scoring = usecase.NewScoringService(nil, nil, registry, nil, nil, usecase.ScoringConfig{RuleSet: c.ruleSet}, c.logger)
	c.lineup = usecase.NewLineupService(nil, c.logger)
	c.password = usecase.NewPasswordService("")
	return nil
}

func (c *cli) printJSON(v any) error {
	payload, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(c.out, string(payload))
	return err
}
