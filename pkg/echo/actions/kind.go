package actions

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jumppad-labs/rdsecho/pkg/clients/database"
	"github.com/jumppad-labs/rdsecho/pkg/clients/logger"
	"github.com/jumppad-labs/rdsecho/pkg/config"
	"github.com/jumppad-labs/rdsecho/pkg/echo"
	"github.com/jumppad-labs/rdsecho/pkg/tags"
)

// Snapshot is a completed snapshot a new resource can be restored from
type Snapshot struct {
	ID      string
	Created time.Time
}

// Kind creates, modifies and deletes echo resources of one resource kind
type Kind interface {
	Name() config.Kind
	// LatestSnapshot returns the newest available snapshot of the configured
	// source, nil when there is none
	LatestSnapshot(ctx context.Context) (*Snapshot, error)
	// ProposeRestore prepares the creation of resource id from s
	ProposeRestore(id string, s *Snapshot, t tags.Tags) *Proposal
	ProposeModify(r *echo.Resource) *Proposal
	ProposeRetire(r *echo.Resource) (*Proposal, error)
}

// NewKind returns the Kind selected in the configuration
func NewKind(c *config.Config, rds database.RDS, l logger.Logger) Kind {
	if c.Kind == config.KindCluster {
		return &Cluster{config: c, client: rds, log: l}
	}

	return &Instance{config: c, client: rds, log: l}
}

// Proposal is a pending set of cloud mutations along with a summary that can
// be shown to the operator before they are applied
type Proposal struct {
	Title   string
	keyvals []interface{}
	apply   func(ctx context.Context) error
}

func newProposal(title string, apply func(ctx context.Context) error) *Proposal {
	return &Proposal{Title: title, apply: apply}
}

// add records a setting in the summary, nil pointers and empty lists are
// settings left to the provider and are skipped
func (p *Proposal) add(key string, value interface{}) {
	switch v := value.(type) {
	case *string:
		if v == nil {
			return
		}
		value = *v
	case *bool:
		if v == nil {
			return
		}
		value = *v
	case *int32:
		if v == nil {
			return
		}
		value = *v
	case []string:
		if len(v) == 0 {
			return
		}
		value = strings.Join(v, ",")
	case tags.Tags:
		if len(v) == 0 {
			return
		}
		kv := []string{}
		for _, k := range v.Keys() {
			kv = append(kv, fmt.Sprintf("%s=%s", k, v[k]))
		}
		value = strings.Join(kv, ",")
	}

	p.keyvals = append(p.keyvals, key, value)
}

// KeyVals returns the summary as logger key value pairs
func (p *Proposal) KeyVals() []interface{} {
	return p.keyvals
}

// Get returns the summary value for key
func (p *Proposal) Get(key string) (interface{}, bool) {
	for i := 0; i+1 < len(p.keyvals); i += 2 {
		if p.keyvals[i] == key {
			return p.keyvals[i+1], true
		}
	}

	return nil, false
}

// Apply performs the mutations
func (p *Proposal) Apply(ctx context.Context) error {
	return p.apply(ctx)
}

// newest returns the snapshot with the latest creation time, snapshots without
// a creation time are ignored
func newest(ss []Snapshot) *Snapshot {
	var n *Snapshot
	for i := range ss {
		if n == nil || ss[i].Created.After(n.Created) {
			n = &ss[i]
		}
	}

	return n
}
