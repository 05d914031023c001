package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Dashboard settings",
	}
	cmd.AddCommand(newSettingsShowCmd(app))
	cmd.AddCommand(newSettingsSetCmd(app))
	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, s.Settings())
		},
	}
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var (
		pageSize      int
		workMin       int
		shortBreakMin int
		longBreakMin  int
		sessions      int
	)
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update settings (only the provided flags change)",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			cfg := s.Settings()
			if cmd.Flags().Changed("page-size") {
				if pageSize < 1 {
					return writeErr(cmd, errors.New("page-size must be at least 1"))
				}
				cfg.PageSize = pageSize
			}
			if cmd.Flags().Changed("work-minutes") {
				if workMin < 1 {
					return writeErr(cmd, errors.New("work-minutes must be at least 1"))
				}
				cfg.WorkMinutes = workMin
			}
			if cmd.Flags().Changed("short-break-minutes") {
				if shortBreakMin < 1 {
					return writeErr(cmd, errors.New("short-break-minutes must be at least 1"))
				}
				cfg.ShortBreakMinutes = shortBreakMin
			}
			if cmd.Flags().Changed("long-break-minutes") {
				if longBreakMin < 1 {
					return writeErr(cmd, errors.New("long-break-minutes must be at least 1"))
				}
				cfg.LongBreakMinutes = longBreakMin
			}
			if cmd.Flags().Changed("sessions-until-long-break") {
				if sessions < 1 {
					return writeErr(cmd, errors.New("sessions-until-long-break must be at least 1"))
				}
				cfg.SessionsUntilLongBreak = sessions
			}
			if err := s.SaveSettings(cfg); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, cfg)
		},
	}
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "Records per page in list widgets")
	cmd.Flags().IntVar(&workMin, "work-minutes", 0, "Pomodoro work phase length")
	cmd.Flags().IntVar(&shortBreakMin, "short-break-minutes", 0, "Pomodoro short break length")
	cmd.Flags().IntVar(&longBreakMin, "long-break-minutes", 0, "Pomodoro long break length")
	cmd.Flags().IntVar(&sessions, "sessions-until-long-break", 0, "Work sessions before a long break")
	return cmd
}
