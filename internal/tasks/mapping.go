package tasks

import (
	"github.com/doreish/mission-control/pkg/query"
	"github.com/doreish/mission-control/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "tasks", "t").
	Project("id", "ID").
	Project("app_id", "AppID").
	Project("agent_id", "AgentID").
	Project("type", "Type").
	Project("input", "Input").
	Project("priority", "Priority").
	Project("status", "Status").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{Field: "CreatedAt", Descending: true}

func scanTask(s repository.Scanner) (Task, error) {
	var t Task
	err := s.Scan(&t.ID, &t.AppID, &t.AgentID, &t.Type, &t.Input, &t.Priority, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}
