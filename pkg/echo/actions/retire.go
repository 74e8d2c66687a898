package actions

import (
	"context"

	"github.com/jumppad-labs/rdsecho/pkg/clients/logger"
	"github.com/jumppad-labs/rdsecho/pkg/clients/prompt"
	"github.com/jumppad-labs/rdsecho/pkg/echo"
)

// Retire deletes the newest resource that has been demoted
type Retire struct {
	kind   Kind
	prompt prompt.Prompt
	log    logger.Logger
}

func NewRetire(k Kind, p prompt.Prompt, l logger.Logger) *Retire {
	return &Retire{kind: k, prompt: p, log: l}
}

func (rt *Retire) Command() string      { return "retire" }
func (rt *Retire) Required() echo.Stage { return echo.StageForgotten }
func (rt *Retire) Result() echo.Stage   { return echo.StageRetired }

// Target selects the newest forgotten resource, the newest managed resource is
// the one currently promoted
func (rt *Retire) Target(ctx context.Context, l *echo.Locator) (*echo.Resource, error) {
	return l.FindNewestInStage(ctx, echo.StageForgotten)
}

func (rt *Retire) Traverse(ctx context.Context, r *echo.Resource) (bool, error) {
	p, err := rt.kind.ProposeRetire(r)
	if err != nil {
		return false, err
	}

	rt.log.Info(p.Title, p.KeyVals()...)

	ok, err := confirm(rt.prompt, rt.log, r.ID, "Are you sure you want to retire this instance? Input %s to confirm.", r.ID)
	if err != nil || !ok {
		return false, err
	}

	rt.log.Info("Retiring instance", "instance", r.ID)

	err = p.Apply(ctx)
	if err != nil {
		return false, err
	}

	rt.log.Info("So long", "instance", r.ID)

	return true, nil
}
