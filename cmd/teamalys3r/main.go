// cmd/teamalys3r/main.go
//
// Entry point for the teamalys3r CLI.
//
// Flow:
// 1. Load .teamalys3r.yaml (or --config) and build the logger
// 2. Read and parse the relation file
// 3. Print the matrix and work indexes, then export the SVG diagram

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kingrea/teamalys3r/internal/config"
	"github.com/kingrea/teamalys3r/internal/logging"
	"github.com/kingrea/teamalys3r/internal/report"
)

const (
	programName = "teamalys3r"
	author      = "Daniel Callegari"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// styles are bound to a writer so colors are dropped when it is not a
// terminal.
type styles struct {
	title lipgloss.Style
	hint  lipgloss.Style
	err   lipgloss.Style
}

func newStyles(out, errOut io.Writer) styles {
	outR := lipgloss.NewRenderer(out)
	errR := lipgloss.NewRenderer(errOut)
	return styles{
		title: outR.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")),
		hint:  outR.NewStyle().Foreground(lipgloss.Color("#AAAAAA")),
		err:   errR.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B")),
	}
}

// cli carries flag values and the runtime built by withRuntime.
type cli struct {
	out    io.Writer
	errOut io.Writer
	styles styles

	configPath string
	outputPath string
	verbose    bool
	workDir    string

	cfg    *config.Config
	logger *logging.Logger
}

func main() {
	c := newCLI(os.Stdout, os.Stderr)
	if err := c.rootCmd().Execute(); err != nil {
		c.printError(err)
		os.Exit(1)
	}
}

func newCLI(out, errOut io.Writer) *cli {
	return &cli{out: out, errOut: errOut, styles: newStyles(out, errOut)}
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   programName + " <file_path>",
		Short: "Analyse who worked with whom in a team",
		Long: `teamalys3r reads a relation file with one line per team member:

  <member>-><member>,<member>,...

It prints the adjacency matrix of the team, the work index of every member
(members worked with / team size) and exports a circular SVG diagram next to
the input file.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				c.printBanner()
				return nil
			}
			return c.withRuntime(func() error {
				_, err := c.runner().Run(args[0], c.outputPath)
				return err
			})
		},
	}
	root.SetOut(c.out)
	root.SetErr(c.errOut)

	flags := root.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", "", "config file (default ./"+config.DefaultFilename+" when present)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	root.Flags().StringVarP(&c.outputPath, "output", "o", "", "SVG output path (default: input name with .svg)")

	root.AddCommand(
		newWatchCmd(c),
		newIndexCmd(c),
		newInitCmd(c),
		newVersionCmd(c),
	)
	return root
}

// withRuntime loads the config and logger around fn and flushes the logger
// afterwards, also when fn fails.
func (c *cli) withRuntime(fn func() error) error {
	if err := c.setup(); err != nil {
		return err
	}
	defer func() { _ = c.logger.Close() }()
	return fn()
}

func (c *cli) setup() error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	logger, err := logging.New(logging.Options{
		Level:   cfg.Logging.Level,
		File:    cfg.Logging.File,
		Verbose: c.verbose,
		Console: c.errOut,
	})
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.logger = logger
	return nil
}

func (c *cli) loadConfig() (*config.Config, error) {
	if c.configPath != "" {
		return config.Load(c.configPath)
	}
	dir, err := c.dir()
	if err != nil {
		return nil, err
	}
	return config.Discover(dir)
}

func (c *cli) dir() (string, error) {
	if c.workDir != "" {
		return c.workDir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return wd, nil
}

func (c *cli) runner() *report.Runner {
	r := report.New(c.cfg, c.logger.Logger)
	r.Out = c.out
	return r
}

func (c *cli) printBanner() {
	fmt.Fprintln(c.out, c.styles.title.Render(programName+" by "+author))
	fmt.Fprintln(c.out, c.styles.hint.Render("Usage: "+programName+" <file_path>"))
}

func (c *cli) printError(err error) {
	fmt.Fprintln(c.errOut, c.styles.err.Render("Error: "+err.Error()))
}
