package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"devdash/internal/collection"
	"devdash/internal/model"
	"devdash/internal/pipeline"
)

func newLogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Weekly learning log",
	}
	cmd.AddCommand(newLogListCmd(app))
	cmd.AddCommand(newLogAddCmd(app))
	cmd.AddCommand(newLogRmCmd(app))
	return cmd
}

func logLess(sort string) func(a, b model.LogEntry) bool {
	switch sort {
	case "oldest":
		return func(a, b model.LogEntry) bool { return a.CreatedAt < b.CreatedAt }
	case "week":
		return func(a, b model.LogEntry) bool { return pipeline.WeekNumber(a.Week) > pipeline.WeekNumber(b.Week) }
	default:
		return func(a, b model.LogEntry) bool { return a.CreatedAt > b.CreatedAt }
	}
}

func newLogListCmd(app *App) *cobra.Command {
	var (
		search  string
		week    string
		sortKey string
		page    int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List learning log entries, newest week first",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			logs := s.LearningLogs()
			logs = pipeline.Search(logs, search, func(e model.LogEntry) []string {
				fields := append([]string{e.Week, e.Notes, e.KeyTakeaway}, e.Topics...)
				return append(fields, e.Tags...)
			})
			logs = pipeline.Filter(logs, week, func(e model.LogEntry) string { return e.Week })
			logs = pipeline.SortBy(logs, logLess(sortKey))

			pager := pipeline.NewPager(s.Settings().PageSize)
			pager.SetPage(page, len(logs))
			return writeOut(cmd, app, map[string]any{
				"page":       pager.Page,
				"totalPages": pager.TotalPages(len(logs)),
				"total":      len(logs),
				"entries":    pipeline.Slice(logs, &pager),
			})
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "Substring match on week, topics, notes and tags")
	cmd.Flags().StringVar(&week, "week", pipeline.All, "Week filter (e.g. \"Week 34\")")
	cmd.Flags().StringVar(&sortKey, "sort", "newest", "Sort order: newest, oldest or week")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	return cmd
}

func newLogAddCmd(app *App) *cobra.Command {
	var (
		topics   []string
		tags     []string
		takeaway string
	)
	cmd := &cobra.Command{
		Use:   "add <week> <notes>",
		Short: "Add a learning log entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			week := strings.TrimSpace(args[0])
			notes := strings.TrimSpace(args[1])
			if week == "" {
				return writeErr(cmd, errors.New("week label is required"))
			}
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			now := collection.Now()
			e := model.LogEntry{
				ID:          collection.NewID(),
				Week:        week,
				Topics:      topics,
				Notes:       notes,
				Tags:        tags,
				KeyTakeaway: takeaway,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := s.SaveLearningLogs(collection.Prepend(s.LearningLogs(), e)); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, e)
		},
	}
	cmd.Flags().StringSliceVar(&topics, "topic", nil, "Topic covered (repeatable)")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tag (repeatable)")
	cmd.Flags().StringVar(&takeaway, "takeaway", "", "Key takeaway for the week")
	return cmd
}

func newLogRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <entry-id>",
		Short: "Delete a learning log entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			id := strings.TrimSpace(args[0])
			logs := s.LearningLogs()
			if _, ok := collection.Find(logs, id); !ok {
				return writeErr(cmd, errNotFound("log entry", id))
			}
			if err := s.SaveLearningLogs(collection.Delete(logs, id)); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]string{"deleted": id})
		},
	}
}
