package main

import (
	"github.com/doreish/mission-control/internal/agents"
	"github.com/doreish/mission-control/internal/approvals"
	"github.com/doreish/mission-control/internal/apps"
	"github.com/doreish/mission-control/internal/config"
	"github.com/doreish/mission-control/internal/connectors"
	"github.com/doreish/mission-control/internal/conversations"
	"github.com/doreish/mission-control/internal/runner"
	"github.com/doreish/mission-control/internal/tasks"
)

// Domain wires every entity system over the shared runtime.
type Domain struct {
	Agents        agents.System
	Apps          apps.System
	Tasks         tasks.System
	Approvals     approvals.System
	Connectors    connectors.System
	Conversations conversations.System
	Runner        runner.System
	Proxy         *connectors.Proxy
}

// NewDomain constructs the domain systems against the runtime database.
func NewDomain(rt *Runtime, cfg *config.Config) *Domain {
	convos := conversations.New(rt.DB, rt.Logger)
	taskSys := tasks.New(rt.DB, rt.Logger)
	runs := runner.NewRunStore(rt.DB, rt.Logger)

	return &Domain{
		Agents:        agents.New(rt.DB, rt.Logger),
		Apps:          apps.New(rt.DB, rt.Logger),
		Tasks:         taskSys,
		Approvals:     approvals.New(rt.DB, rt.Logger),
		Connectors:    connectors.New(rt.DB, rt.Logger),
		Conversations: convos,
		Runner:        runner.New(taskSys, convos, runs, rt.Logger),
		Proxy:         connectors.NewProxy(cfg.Providers, rt.Logger),
	}
}
