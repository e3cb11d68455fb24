package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/doreish/mission-control/internal/conversations"
	"github.com/doreish/mission-control/internal/tasks"
)

type runner struct {
	tasks  tasks.System
	convos conversations.System
	runs   RunStore
	logger *slog.Logger
}

// New creates a runner over the task, conversation, and run systems.
func New(taskSys tasks.System, convos conversations.System, runs RunStore, logger *slog.Logger) System {
	return &runner{
		tasks:  taskSys,
		convos: convos,
		runs:   runs,
		logger: logger.With("system", "runner"),
	}
}

func (r *runner) Execute(ctx context.Context, cmd ExecuteCommand) error {
	st := &state{cmd: cmd}

	for _, s := range script() {
		if err := s.run(ctx, r, st); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}

	r.logger.Info("run executed", "label", st.label, "task_id", cmd.TaskID)
	return nil
}
