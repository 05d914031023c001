package cli

import (
	"github.com/spf13/cobra"

	"devdash/internal/layout"
	"devdash/internal/model"
)

func newLayoutCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Dashboard module order",
	}
	cmd.AddCommand(newLayoutShowCmd(app))
	cmd.AddCommand(newLayoutResetCmd(app))
	return cmd
}

func newLayoutShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current module order",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			order := layout.NewOrder(s, model.DefaultModuleOrder())
			return writeOut(cmd, app, order.Modules())
		},
	}
}

func newLayoutResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the default module order",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			order := layout.NewOrder(s, model.DefaultModuleOrder())
			order.Reset()
			return writeOut(cmd, app, order.Modules())
		},
	}
}
