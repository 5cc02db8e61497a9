// Package runner carries one detonation request from the command line to
// the output file: it resolves the target, loads the grid, runs the turn,
// writes the result or the error, and records the run.
package runner

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blastgrid/internal/blast/core"
	"github.com/vovakirdan/blastgrid/internal/blast/levels"
	"github.com/vovakirdan/blastgrid/internal/registry"
	"github.com/vovakirdan/blastgrid/internal/storage"
)

// Request errors, reported in the output file like engine errors.
var (
	ErrMissingCoords = errors.New("missing detonation coordinates")
	ErrInvalidCoords = errors.New("invalid detonation coordinates")
)

// Error codes stored for failures that carry no core code.
const (
	codeMissingCoords = "MISSING_COORDINATES"
	codeInvalidCoords = "INVALID_COORDINATES"
	codeLoadFailed    = "LOAD_FAILED"
)

// Recorder persists finished runs.
type Recorder interface {
	SaveRun(run storage.RunRecord) (int64, error)
}

// Request is one detonation request.
type Request struct {
	Input  string
	OutDir string
	// Coords holds x and y as given on the command line. When empty the
	// target stored in the grid file is used.
	Coords []string
}

// Outcome describes what happened to a request.
type Outcome struct {
	Input      string
	OutputPath string
	Level      levels.Level // Zero if the file could not be loaded
	Target     core.Coord
	Turn       core.TurnResult
	Err        error // Request, load or engine failure written to OutputPath
	WriteErr   error // Failure to write OutputPath itself
}

// OK reports whether the turn succeeded and its result was written.
func (o Outcome) OK() bool {
	return o.Err == nil && o.WriteErr == nil
}

// Runner executes detonation requests.
type Runner struct {
	loader   *levels.Loader
	recorder Recorder
	logger   *log.Logger
}

// New creates a runner. recorder may be nil to skip history.
func New(loader *levels.Loader, recorder Recorder, logger *log.Logger) *Runner {
	return &Runner{
		loader:   loader,
		recorder: recorder,
		logger:   logger,
	}
}

// Run executes req and writes the serialized grid, or the error message, to
// the output path.
func (r *Runner) Run(req Request) Outcome {
	out := Outcome{
		Input:      req.Input,
		OutputPath: levels.OutputPath(req.OutDir, req.Input),
	}

	target, hasTarget, err := parseCoords(req.Coords)
	if err != nil {
		out.Err = err
		return r.Complete(out)
	}

	lvl, err := r.loader.LoadFile(req.Input)
	if err != nil {
		out.Err = err
		return r.Complete(out)
	}
	out.Level = lvl

	if !hasTarget {
		if lvl.Target == nil {
			out.Err = ErrMissingCoords
			return r.Complete(out)
		}
		target = *lvl.Target
	}
	out.Target = target

	r.logger.Debug("detonating", "input", req.Input, "target", target, "size", fmt.Sprintf("%dx%d", lvl.Grid.W, lvl.Grid.H))
	out.Turn, out.Err = lvl.Detonate(target)
	return r.Complete(out)
}

// Complete writes the outcome to its output path and records it.
// It is also used for turns run interactively.
func (r *Runner) Complete(out Outcome) Outcome {
	if out.Err != nil {
		out.WriteErr = r.loader.WriteError(out.OutputPath, out.Err)
		r.logger.Error("detonation failed", "input", out.Input, "err", out.Err)
	} else {
		result := registry.Level{Name: out.Level.Name, Grid: out.Turn.Grid}
		out.WriteErr = r.loader.WriteFile(out.OutputPath, result)
		r.logger.Info("detonated",
			"input", out.Input,
			"target", out.Target,
			"detonations", out.Turn.Detonations(),
			"hits", out.Turn.Hits(),
			"kills", out.Turn.Kills(),
		)
	}
	if out.WriteErr != nil {
		r.logger.Error("cannot write output", "path", out.OutputPath, "err", out.WriteErr)
	}

	r.record(out)
	return out
}

func (r *Runner) record(out Outcome) {
	if r.recorder == nil {
		return
	}

	run := storage.RunRecord{
		InputPath:   out.Input,
		OutputPath:  out.OutputPath,
		TargetX:     out.Target.X,
		TargetY:     out.Target.Y,
		Status:      storage.StatusOK,
		Detonations: out.Turn.Detonations(),
		Hits:        out.Turn.Hits(),
		Kills:       out.Turn.Kills(),
	}
	if out.Level.Grid != nil {
		run.Width, run.Height = out.Level.Grid.Dimensions()
	}
	if out.Err != nil {
		run.Status = storage.StatusError
		run.ErrorCode = ErrorCode(out.Err)
	}

	if _, err := r.recorder.SaveRun(run); err != nil {
		r.logger.Warn("could not record run", "err", err)
	}
}

// ErrorCode returns the stored code for a failed request.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrMissingCoords):
		return codeMissingCoords
	case errors.Is(err, ErrInvalidCoords):
		return codeInvalidCoords
	}
	if code := core.CodeOf(err); code != "" {
		return string(code)
	}
	return codeLoadFailed
}

// parseCoords reads the optional x and y arguments.
func parseCoords(args []string) (core.Coord, bool, error) {
	switch len(args) {
	case 0:
		return core.Coord{}, false, nil
	case 2:
	default:
		return core.Coord{}, false, ErrMissingCoords
	}

	x, errX := strconv.Atoi(args[0])
	y, errY := strconv.Atoi(args[1])
	if errX != nil || errY != nil || x < 0 || y < 0 {
		return core.Coord{}, false, fmt.Errorf("%w: %q %q", ErrInvalidCoords, args[0], args[1])
	}
	return core.C(x, y), true, nil
}
