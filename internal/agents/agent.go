// Package agents provides the domain system for the fixed roster of
// mission-control agents. The roster is seeded once on first access and is
// read-only afterwards.
package agents

import (
	"time"

	"github.com/google/uuid"
)

// Agent represents a named agent with a functional role.
type Agent struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// SeedAgent describes an agent to insert when the roster is empty.
type SeedAgent struct {
	Name string
	Role string
}

// Defaults is the roster inserted on first access to an empty agents table.
var Defaults = []SeedAgent{
	{Name: "Ironman", Role: "CTO / Engineering"},
	{Name: "Hulk", Role: "QA / Debug"},
	{Name: "Black Widow", Role: "Support"},
	{Name: "Captain America", Role: "Ops"},
	{Name: "Thor", Role: "Growth / Marketing"},
	{Name: "Hawkeye", Role: "Social"},
	{Name: "Vision", Role: "Analytics"},
	{Name: "Spider‑Man", Role: "Retention / Sales"},
	{Name: "Doctor Strange", Role: "Automation"},
}
