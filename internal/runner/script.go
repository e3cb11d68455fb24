package runner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/doreish/mission-control/internal/conversations"
	"github.com/doreish/mission-control/internal/tasks"
	"github.com/google/uuid"
)

// Scripted participants. Names match the seeded agent roster.
const (
	senderLead    = "Ironman"
	senderQA      = "Hulk"
	senderMetrics = "Vision"
)

// fallbackLabel is used when the run references no resolvable task.
const fallbackLabel = "Task"

// state carries intermediate results between steps of a single execution.
type state struct {
	cmd    ExecuteCommand
	task   *tasks.Task
	label  string
	leadID uuid.UUID
}

func (s *state) summary() string {
	if s.cmd.Summary != "" {
		return s.cmd.Summary
	}
	return s.label + " completed."
}

type step struct {
	name string
	run  func(context.Context, *runner, *state) error
}

// script returns the ordered step sequence. Steps only append messages and
// move task status forward, so replaying a partially failed run is safe.
func script() []step {
	return []step{
		{"resolve task", resolveTask},
		{"mark running", markRunning},
		{"post lead", postLead},
		{"post workers", postWorkers},
		{"record run", recordRun},
		{"mark completed", markCompleted},
		{"post closing", postClosing},
	}
}

func resolveTask(ctx context.Context, r *runner, st *state) error {
	st.label = fallbackLabel
	if st.cmd.TaskID == nil {
		return nil
	}

	task, err := r.tasks.Find(ctx, *st.cmd.TaskID)
	if errors.Is(err, tasks.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	st.task = task
	st.label = task.Type
	return nil
}

func markRunning(ctx context.Context, r *runner, st *state) error {
	if st.task == nil {
		return nil
	}
	return r.tasks.SetStatus(ctx, st.task.ID, tasks.StatusRunning)
}

func postLead(ctx context.Context, r *runner, st *state) error {
	msg, err := r.convos.Post(ctx, conversations.PostCommand{
		Sender:  senderLead,
		Content: fmt.Sprintf("%s started. Coordination in progress.", st.label),
	})
	if err != nil {
		return err
	}

	st.leadID = msg.ID
	return nil
}

func postWorkers(ctx context.Context, r *runner, st *state) error {
	replies := []conversations.PostCommand{
		{Sender: senderQA, Content: "Running tests and reproducing issues.", ThreadID: &st.leadID},
		{Sender: senderMetrics, Content: "Monitoring metrics and costs.", ThreadID: &st.leadID},
	}

	for _, reply := range replies {
		if _, err := r.convos.Post(ctx, reply); err != nil {
			return err
		}
	}
	return nil
}

func recordRun(ctx context.Context, r *runner, st *state) error {
	logs, err := json.Marshal(map[string]string{"summary": st.summary()})
	if err != nil {
		return err
	}

	// only reference tasks that resolved; runs.task_id is a foreign key
	var taskID *uuid.UUID
	if st.task != nil {
		taskID = &st.task.ID
	}

	_, err = r.runs.Insert(ctx, taskID, DefaultModel, "completed", logs)
	return err
}

func markCompleted(ctx context.Context, r *runner, st *state) error {
	if st.task == nil {
		return nil
	}
	return r.tasks.SetStatus(ctx, st.task.ID, tasks.StatusCompleted)
}

func postClosing(ctx context.Context, r *runner, st *state) error {
	content := st.cmd.Summary
	if content == "" {
		content = fmt.Sprintf("%s completed. Report in thread.", st.label)
	}

	_, err := r.convos.Post(ctx, conversations.PostCommand{
		Sender:  senderLead,
		Content: content,
	})
	return err
}
