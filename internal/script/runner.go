// File: runner.go
// Title: Script Runner
// Description: Builds a fixstr.String from a script and applies its ops in
//              order, recording a per-step report.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package script

import (
	"context"
	"time"

	"github.com/google/uuid"

	fxerror "github.com/msto63/fixstr/core/error"
	fxerrors "github.com/msto63/fixstr/core/errors"
	"github.com/msto63/fixstr/core/log"
	"github.com/msto63/fixstr/utils/fixstr"
)

// StepResult is the outcome of one op
type StepResult struct {
	Step    int
	Op      Op
	Output  string // value returned by pop, remove and split_off
	Err     error  // structured error, nil on success
	Content string // content after the step
	Len     int
}

// Failed reports whether the step returned an error
func (r StepResult) Failed() bool {
	return r.Err != nil
}

// Report is the outcome of a run
type Report struct {
	RunID    string
	Capacity int
	Mode     Mode
	Initial  string // content after construction from Init
	Steps    []StepResult
	Final    string
	Len      int
	Failures int
	Duration time.Duration
}

// Runner executes scripts
type Runner struct {
	logger *log.Logger
}

// NewRunner creates a runner. A nil logger uses the default logger.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.GetDefault()
	}
	return &Runner{logger: logger.WithField("component", "script-runner")}
}

// Run validates sc and applies its ops. A failing op is recorded in the
// report and the run continues; strict failures leave the content as it
// was. Run returns an error only for an invalid script, an Init that does
// not fit in strict mode, or a cancelled context.
func (r *Runner) Run(ctx context.Context, sc *Script) (*Report, error) {
	if sc.Mode == "" {
		defaulted := *sc
		defaulted.Mode = ModeStrict
		sc = &defaulted
	}
	if err := sc.Validate(); err != nil {
		return nil, fxerror.Wrap(err, "invalid script").WithOperation("script.run")
	}

	runID := uuid.NewString()
	logger := r.logger.WithCorrelationID(runID)
	start := time.Now()

	s, err := construct(sc)
	if err != nil {
		return nil, err
	}

	report := &Report{
		RunID:    runID,
		Capacity: sc.Capacity,
		Mode:     sc.Mode,
		Initial:  s.String(),
		Steps:    make([]StepResult, 0, len(sc.Ops)),
	}

	logger.Debug("script started", log.Fields{
		"capacity": sc.Capacity,
		"mode":     string(sc.Mode),
		"ops":      len(sc.Ops),
	})

	for i, op := range sc.Ops {
		if err := ctx.Err(); err != nil {
			return nil, fxerrors.OperationFailed(fxerrors.ModuleScript, "run", err)
		}

		step := StepResult{Step: i + 1, Op: op}
		out, err := handlers[op.Op].apply(s, op, sc.Mode)
		if err != nil {
			step.Err = fixstr.AsStructured(err).
				WithDetail("step", i+1).
				WithDetail("kind", fixstr.KindOf(err).String())
			report.Failures++
			logger.WarnWithErr("step failed", err,
				log.Fields{"step": i + 1, "op": op.String()},
				log.Field("kind", fixstr.KindOf(err).String()))
		} else {
			step.Output = out
			logger.Debug("step applied", log.Fields{"step": i + 1, "op": op.String(), "len": s.Len()})
		}
		step.Content = s.String()
		step.Len = s.Len()
		report.Steps = append(report.Steps, step)
	}

	report.Final = s.String()
	report.Len = s.Len()
	report.Duration = time.Since(start)

	logger.Info("script finished", log.Fields{
		"steps":    len(report.Steps),
		"failures": report.Failures,
		"len":      report.Len,
	}, log.Duration("duration", report.Duration), log.Bool("clean", report.Failures == 0))
	return report, nil
}

func construct(sc *Script) (*fixstr.String, error) {
	if sc.Mode == ModeTruncate {
		return fixstr.FromString(sc.Capacity, sc.Init), nil
	}
	s, err := fixstr.TryFromString(sc.Capacity, sc.Init)
	if err != nil {
		return nil, fxerrors.NewErrorBuilder(fxerrors.ModuleScript).
			Operation("init").
			Message("initial content does not fit the capacity").
			Cause(fixstr.AsStructured(err)).
			Detail("capacity", sc.Capacity).
			Detail("init_len", len(sc.Init)).
			Build()
	}
	return s, nil
}

// Err returns an error summarizing failed steps, or nil if every step
// succeeded. The error carries the first failure as its cause.
func (rep *Report) Err() error {
	if rep.Failures == 0 {
		return nil
	}
	for _, step := range rep.Steps {
		if step.Failed() {
			return fxerrors.NewErrorBuilder(fxerrors.ModuleScript).
				Operation("run").
				Messagef("%d of %d steps failed", rep.Failures, len(rep.Steps)).
				Cause(step.Err).
				Code(fxerror.CodeScriptOperation).
				Detail("run_id", rep.RunID).
				Build()
		}
	}
	return nil
}
