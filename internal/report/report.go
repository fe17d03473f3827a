// Package report runs the whole analysis for one relation file: it prints the
// file, the adjacency matrix and the work indexes, then exports the diagram.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kingrea/teamalys3r/internal/analysis"
	"github.com/kingrea/teamalys3r/internal/config"
	"github.com/kingrea/teamalys3r/internal/render"
	"github.com/kingrea/teamalys3r/internal/roster"
)

// Runner holds what a run needs besides the input path.
type Runner struct {
	Config *config.Config
	Logger *zap.Logger
	Out    io.Writer
}

// Result summarizes a successful run.
type Result struct {
	RunID      string
	OutputPath string
	Members    int
	Edges      int
	Symmetric  bool
}

// New returns a Runner writing the report to stdout.
func New(cfg *config.Config, logger *zap.Logger) *Runner {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{Config: cfg, Logger: logger, Out: os.Stdout}
}

// Run analyses inputPath and writes the diagram to outputPath, or to
// OutputPath(inputPath) when outputPath is empty.
//
// A missing input file is reported on the output and the run continues with
// no members, which ends at the empty roster error from the renderer.
func (r *Runner) Run(inputPath, outputPath string) (Result, error) {
	runID := uuid.NewString()
	log := r.logger().With(zap.String("run_id", runID), zap.String("input", inputPath))
	if outputPath == "" {
		outputPath = OutputPath(inputPath)
	}
	res := Result{RunID: runID, OutputPath: outputPath}
	out := r.out()

	fmt.Fprintln(out, "Reading input file...")
	src := roster.Load(inputPath)
	if !src.Present() {
		fmt.Fprintln(out, src.Message())
		log.Warn("input unavailable, continuing with no members", zap.Error(src.Err))
	}
	fmt.Fprintln(out, src.Text)

	team, err := roster.Parse(src.Text)
	if err != nil {
		log.Error("parse failed", zap.Error(err))
		return res, err
	}
	res.Members = team.Len()
	log.Debug("parsed roster", zap.Int("members", team.Len()))

	matrix := analysis.Adjacency(team)
	res.Symmetric = matrix.Symmetric()
	if err := analysis.WriteMatrix(out, matrix); err != nil {
		return res, fmt.Errorf("report: write matrix: %w", err)
	}
	if !res.Symmetric {
		log.Info("collaborations are not declared from both sides")
	}

	for _, idx := range analysis.WorkIndexes(team) {
		fmt.Fprintf(out, "Work index of %s: %s\n", idx.Member, analysis.FormatIndex(idx.Index))
	}

	res.Edges = len(render.Edges(team))
	if err := render.WriteFile(outputPath, team, r.config().Render); err != nil {
		log.Error("export failed", zap.String("output", outputPath), zap.Error(err))
		return res, err
	}
	fmt.Fprintf(out, "SVG exported to %s\n", outputPath)
	log.Info("exported diagram",
		zap.String("output", outputPath),
		zap.Int("members", res.Members),
		zap.Int("edges", res.Edges),
	)
	return res, nil
}

// Index prints the work index of a single member. An unknown member is
// reported on the output rather than returned as an error.
func (r *Runner) Index(inputPath, member string) error {
	out := r.out()
	src := roster.Load(inputPath)
	if !src.Present() {
		fmt.Fprintln(out, src.Message())
		r.logger().Warn("input unavailable, continuing with no members",
			zap.String("input", inputPath), zap.Error(src.Err))
	}
	team, err := roster.Parse(src.Text)
	if err != nil {
		return err
	}
	idx, err := analysis.WorkIndex(team, member)
	switch {
	case errors.Is(err, analysis.ErrMemberNotFound), errors.Is(err, analysis.ErrEmptyRoster):
		fmt.Fprintln(out, analysis.NotFoundMessage)
		return nil
	case err != nil:
		return err
	}
	fmt.Fprintf(out, "Work index of %s: %s\n", member, analysis.FormatIndex(idx))
	return nil
}

// OutputPath derives the diagram path from the input path: the directory is
// kept and the file name is cut at its first dot before ".svg" is appended,
// so "data/team.v2.txt" becomes "data/team.svg".
func OutputPath(inputPath string) string {
	dir, base := filepath.Split(inputPath)
	if i := strings.Index(base, "."); i >= 0 {
		base = base[:i]
	}
	return dir + base + ".svg"
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

func (r *Runner) config() *config.Config {
	if r.Config == nil {
		return config.Default()
	}
	return r.Config
}

func (r *Runner) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}
