package connectors

import (
	"encoding/json"
	"fmt"
	"strings"
)

type webhookPayload struct {
	Action     string `json:"action"`
	Repository struct {
		FullName string `json:"full_name"`
	} `json:"repository"`
	PullRequest *struct {
		Number int    `json:"number"`
		Title  string `json:"title"`
	} `json:"pull_request"`
	Issue *struct {
		Number int    `json:"number"`
		Title  string `json:"title"`
	} `json:"issue"`
	Commits []struct {
		Message string `json:"message"`
	} `json:"commits"`
}

// EventSummary condenses a GitHub webhook payload into a single chat line.
// Unknown fields fall back to generic placeholders so any event type
// produces a readable message.
func EventSummary(body []byte) string {
	var p webhookPayload
	_ = json.Unmarshal(body, &p)

	repo := p.Repository.FullName
	if repo == "" {
		repo = "repo"
	}

	action := p.Action
	if action == "" {
		action = "event"
	}

	var detail string
	switch {
	case p.PullRequest != nil:
		detail = fmt.Sprintf("PR #%d: %s", p.PullRequest.Number, p.PullRequest.Title)
	case p.Issue != nil:
		detail = fmt.Sprintf("Issue #%d: %s", p.Issue.Number, p.Issue.Title)
	case len(p.Commits) > 0:
		detail = fmt.Sprintf("Commits: %s", p.Commits[0].Message)
	}

	return strings.TrimSpace(fmt.Sprintf("GitHub %s on %s %s", action, repo, detail))
}
