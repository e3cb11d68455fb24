package connectors

import (
	"github.com/doreish/mission-control/pkg/query"
	"github.com/doreish/mission-control/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "connectors", "cn").
	Project("id", "ID").
	Project("app_id", "AppID").
	Project("provider", "Provider").
	Project("config", "Config").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{Field: "CreatedAt", Descending: true}

func scanConnector(s repository.Scanner) (Connector, error) {
	var c Connector
	err := s.Scan(&c.ID, &c.AppID, &c.Provider, &c.Config, &c.CreatedAt)
	return c, err
}
