package actions

import (
	"context"

	"github.com/jumppad-labs/rdsecho/pkg/clients/logger"
	"github.com/jumppad-labs/rdsecho/pkg/clients/prompt"
	"github.com/jumppad-labs/rdsecho/pkg/echo"
)

// Modify applies the configured settings to a new resource
type Modify struct {
	kind   Kind
	prompt prompt.Prompt
	log    logger.Logger
}

func NewModify(k Kind, p prompt.Prompt, l logger.Logger) *Modify {
	return &Modify{kind: k, prompt: p, log: l}
}

func (m *Modify) Command() string      { return "modify" }
func (m *Modify) Required() echo.Stage { return echo.StageNew }
func (m *Modify) Result() echo.Stage   { return echo.StageModified }

func (m *Modify) Traverse(ctx context.Context, r *echo.Resource) (bool, error) {
	p := m.kind.ProposeModify(r)
	m.log.Info(p.Title, p.KeyVals()...)

	ok, err := confirm(m.prompt, m.log, r.ID, "Proceed to modify DB instance with these settings? Input %s to confirm.", r.ID)
	if err != nil || !ok {
		return false, err
	}

	m.log.Info("Modifying existing DB instance", "instance", r.ID)

	err = p.Apply(ctx)
	if err != nil {
		return false, err
	}

	m.log.Info(
		"Submitted modify request, the instance may need a reboot before some settings take effect",
		"instance", r.ID,
		"docs", "http://docs.aws.amazon.com/AmazonRDS/latest/UserGuide/Overview.DBInstance.html#Overview.DBInstance.Modifying",
	)

	return true, nil
}
