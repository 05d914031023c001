package cli

import (
	"time"

	"github.com/spf13/cobra"

	"devdash/internal/pomodoro"
)

func newPomodoroCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pomodoro",
		Short: "Focus timer state",
	}
	cmd.AddCommand(newPomodoroStatusCmd(app))
	cmd.AddCommand(newPomodoroResetCmd(app))
	return cmd
}

func newPomodoroStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the persisted timer state",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			cfg := pomodoro.ConfigFromSettings(s.Settings())
			eng := pomodoro.Load(s, cfg, nil, time.Now())
			st := eng.State()
			return writeOut(cmd, app, map[string]any{
				"mode":              st.Mode,
				"clock":             pomodoro.FormatClock(st.TimeLeft),
				"timeLeft":          st.TimeLeft,
				"isActive":          st.IsActive,
				"sessionsCompleted": st.SessionsCompleted,
				"sessionDate":       st.SessionDate,
				"activeTask":        s.ActiveTaskSummary(),
			})
		},
	}
}

func newPomodoroResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the countdown to the current phase's full duration",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			cfg := pomodoro.ConfigFromSettings(s.Settings())
			eng := pomodoro.Load(s, cfg, nil, time.Now())
			eng.Reset()
			st := eng.State()
			return writeOut(cmd, app, map[string]any{
				"mode":     st.Mode,
				"clock":    pomodoro.FormatClock(st.TimeLeft),
				"timeLeft": st.TimeLeft,
			})
		},
	}
}
