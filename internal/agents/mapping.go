package agents

import (
	"github.com/doreish/mission-control/pkg/query"
	"github.com/doreish/mission-control/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "agents", "a").
	Project("id", "ID").
	Project("name", "Name").
	Project("role", "Role").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{Field: "Name"}

func scanAgent(s repository.Scanner) (Agent, error) {
	var a Agent
	err := s.Scan(&a.ID, &a.Name, &a.Role, &a.CreatedAt)
	return a, err
}
