package approvals

import (
	"github.com/doreish/mission-control/pkg/query"
	"github.com/doreish/mission-control/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "approvals", "ap").
	Project("id", "ID").
	Project("task_id", "TaskID").
	Project("action", "Action").
	Project("requested_by", "RequestedBy").
	Project("status", "Status").
	Project("approved_by", "ApprovedBy").
	Project("decided_at", "DecidedAt").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{Field: "CreatedAt", Descending: true}

func scanApproval(s repository.Scanner) (Approval, error) {
	var a Approval
	err := s.Scan(&a.ID, &a.TaskID, &a.Action, &a.RequestedBy, &a.Status, &a.ApprovedBy, &a.DecidedAt, &a.CreatedAt)
	return a, err
}
