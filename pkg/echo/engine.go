package echo

import (
	"context"
	"fmt"

	"github.com/jumppad-labs/rdsecho/pkg/clients/logger"
	"github.com/jumppad-labs/rdsecho/pkg/tags"
)

// Action is the side effect that moves a resource from one stage to the next
//
//go:generate mockery --name Action --filename action.go
type Action interface {
	// Command is the name of the command that runs the action
	Command() string
	// Required is the stage the resource must be in for the action to run
	Required() Stage
	// Result is the stage written to the resource once the action succeeds
	Result() Stage
	// Traverse performs the action, returning false when the operator declined
	// or the action decided there is nothing to do
	Traverse(ctx context.Context, r *Resource) (bool, error)
}

// Targeter is implemented by actions that operate on a resource other than
// the newest managed one
type Targeter interface {
	Target(ctx context.Context, l *Locator) (*Resource, error)
}

// Outcome is the result of running a stage command
type Outcome int

const (
	// OutcomeAdvanced means the action ran and the new stage was written
	OutcomeAdvanced Outcome = iota
	// OutcomeNotFound means there is no managed resource to act on
	OutcomeNotFound
	// OutcomeNoStage means the resource has no stage tag
	OutcomeNoStage
	// OutcomeStageMismatch means the resource is not in the required stage
	OutcomeStageMismatch
	// OutcomeNotAvailable means the provider reports the resource as busy
	OutcomeNotAvailable
	// OutcomeAborted means the action did not complete, no tags were changed
	OutcomeAborted
	// OutcomeTooRecent means a new resource was refused because the newest one
	// is still inside the cool-down period
	OutcomeTooRecent
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAdvanced:
		return "advanced"
	case OutcomeNotFound:
		return "not found"
	case OutcomeNoStage:
		return "no stage"
	case OutcomeStageMismatch:
		return "stage mismatch"
	case OutcomeNotAvailable:
		return "not available"
	case OutcomeAborted:
		return "aborted"
	case OutcomeTooRecent:
		return "too recent"
	}

	return fmt.Sprintf("outcome(%d)", int(o))
}

// Engine runs stage actions against the managed resource of a family
type Engine struct {
	locator *Locator
	tags    tags.Store
	log     logger.Logger
}

// NewEngine creates an Engine that finds resources with loc and records stage
// changes with s
func NewEngine(loc *Locator, s tags.Store, l logger.Logger) *Engine {
	return &Engine{locator: loc, tags: s, log: l}
}

// Run locates the resource for the action, checks its stage and status,
// performs the action and records the resulting stage. Only provider errors
// are returned, every other reason for not advancing is reported through the
// Outcome.
func (e *Engine) Run(ctx context.Context, a Action) (Outcome, error) {
	family := e.locator.Family()
	log := e.log

	if next, ok := a.Required().Next(); !ok || next != a.Result() {
		return OutcomeAborted, fmt.Errorf("%s moves resources from %s to %s, which is not a forward transition", a.Command(), a.Required(), a.Result())
	}

	var r *Resource
	var err error

	if t, ok := a.(Targeter); ok {
		r, err = t.Target(ctx, e.locator)
	} else {
		r, err = e.locator.FindManaged(ctx)
	}

	if err != nil {
		return OutcomeAborted, fmt.Errorf("unable to locate resource for %s: %w", a.Command(), err)
	}

	if r == nil {
		log.Info("No managed instance found", "command", a.Command(), "family", family.Name)
		return OutcomeNotFound, nil
	}

	stage, ok, err := e.locator.ReadStage(ctx, r)
	if err != nil {
		return OutcomeAborted, fmt.Errorf("unable to read stage of %s: %w", r.ID, err)
	}

	if !ok {
		log.Error(
			"Instance has no stage tag, set it manually to continue",
			"instance", r.ID,
			"tag", family.StageKey(),
			"required", a.Required(),
		)

		return OutcomeNoStage, nil
	}

	if !stage.Valid() {
		log.Error(
			"Instance has an unknown stage, set it manually to continue",
			"instance", r.ID,
			"tag", family.StageKey(),
			"stage", stage,
			"required", a.Required(),
		)

		return OutcomeNoStage, nil
	}

	if stage != a.Required() {
		msg := "Instance has already passed the required stage"
		if stage.Before(a.Required()) {
			msg = "Instance has not reached the required stage yet"
		}

		log.Info(msg, "instance", r.ID, "stage", stage, "required", a.Required())
		return OutcomeStageMismatch, nil
	}

	if !r.Available() {
		log.Info("Instance is not available", "instance", r.ID, "status", r.Status)
		return OutcomeNotAvailable, nil
	}

	log.Debug("Running action", "command", a.Command(), "instance", r.ID, "stage", stage)

	done, err := a.Traverse(ctx, r)
	if err != nil {
		return OutcomeAborted, fmt.Errorf("unable to %s %s: %w", a.Command(), r.ID, err)
	}

	if !done {
		log.Info("Action did not complete, stage unchanged", "command", a.Command(), "instance", r.ID, "stage", stage)
		return OutcomeAborted, nil
	}

	err = e.tags.Write(ctx, r.ARN, tags.Tags{family.StageKey(): a.Result().String()})
	if err != nil {
		return OutcomeAborted, fmt.Errorf("unable to record stage %s on %s: %w", a.Result(), r.ID, err)
	}

	log.Info("Stage advanced", "instance", r.ID, "from", stage, "to", a.Result())

	return OutcomeAdvanced, nil
}
