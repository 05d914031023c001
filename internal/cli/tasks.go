package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"devdash/internal/collection"
	"devdash/internal/model"
)

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Today's focus task list",
	}
	cmd.AddCommand(newTasksListCmd(app))
	cmd.AddCommand(newTasksAddCmd(app))
	cmd.AddCommand(newTasksToggleCmd(app))
	cmd.AddCommand(newTasksRmCmd(app))
	return cmd
}

func newTasksListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, s.Tasks())
		},
	}
}

func newTasksAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text>",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				return writeErr(cmd, errors.New("task text is required"))
			}
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			task := model.Task{
				ID:        collection.NewID(),
				Text:      text,
				CreatedAt: collection.Now(),
			}
			// Tasks append on create; the list reads top-down in the order
			// they were entered.
			tasks := collection.Append(s.Tasks(), task)
			if err := s.SaveTasks(tasks); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, task)
		},
	}
}

func newTasksToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <task-id>",
		Short: "Toggle task completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			id := strings.TrimSpace(args[0])
			tasks, ok := collection.Patch(s.Tasks(), id, func(t model.Task) model.Task {
				t.Completed = !t.Completed
				return t
			})
			if !ok {
				return writeErr(cmd, errNotFound("task", id))
			}
			if err := s.SaveTasks(tasks); err != nil {
				return writeErr(cmd, err)
			}
			updated, _ := collection.Find(tasks, id)
			return writeOut(cmd, app, updated)
		},
	}
}

func newTasksRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			id := strings.TrimSpace(args[0])
			tasks := s.Tasks()
			if _, ok := collection.Find(tasks, id); !ok {
				return writeErr(cmd, errNotFound("task", id))
			}
			if err := s.SaveTasks(collection.Delete(tasks, id)); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]string{"deleted": id})
		},
	}
}
