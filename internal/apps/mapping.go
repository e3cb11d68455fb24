package apps

import (
	"github.com/doreish/mission-control/pkg/query"
	"github.com/doreish/mission-control/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "apps", "ap").
	Project("id", "ID").
	Project("name", "Name").
	Project("domain", "Domain").
	Project("repo_url", "RepoURL").
	Project("stack", "Stack").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{Field: "CreatedAt", Descending: true}

func scanApp(s repository.Scanner) (App, error) {
	var a App
	err := s.Scan(&a.ID, &a.Name, &a.Domain, &a.RepoURL, &a.Stack, &a.CreatedAt)
	return a, err
}
