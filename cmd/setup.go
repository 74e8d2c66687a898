package cmd

import (
	"context"

	"github.com/jumppad-labs/rdsecho/pkg/clients"
	"github.com/jumppad-labs/rdsecho/pkg/clients/logger"
	"github.com/jumppad-labs/rdsecho/pkg/config"
	"github.com/jumppad-labs/rdsecho/pkg/echo"
	"github.com/jumppad-labs/rdsecho/pkg/echo/actions"
)

// environment holds everything a command needs to work on the family
type environment struct {
	config  *config.Config
	clients *clients.Clients
	family  echo.Family
	kind    actions.Kind
	locator *echo.Locator
	engine  *echo.Engine
}

// setupFunc loads the configuration and creates the clients, it runs when a
// command executes so that flags have been parsed
type setupFunc func(ctx context.Context) (*environment, error)

func newSetup(l logger.Logger) setupFunc {
	return func(ctx context.Context) (*environment, error) {
		c, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}

		l.Debug("Loaded configuration", "file", configFile, "name", c.Name, "kind", c.Kind, "region", c.Region)

		cl, err := clients.GenerateClients(ctx, c.Region, c.Interactive, l)
		if err != nil {
			return nil, err
		}

		return newEnvironment(c, cl), nil
	}
}

func newEnvironment(c *config.Config, cl *clients.Clients) *environment {
	f := echo.Family{Name: c.Name, Region: c.Region, Account: c.AccountNumber}
	loc := echo.NewLocator(cl.RDS, cl.Tags, f, cl.Logger)

	return &environment{
		config:  c,
		clients: cl,
		family:  f,
		kind:    actions.NewKind(c, cl.RDS, cl.Logger),
		locator: loc,
		engine:  echo.NewEngine(loc, cl.Tags, cl.Logger),
	}
}
