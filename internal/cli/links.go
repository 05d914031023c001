package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"devdash/internal/assistant"
	"devdash/internal/collection"
	"devdash/internal/model"
)

func newLinksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "links",
		Short: "Quick links rail",
	}
	cmd.AddCommand(newLinksListCmd(app))
	cmd.AddCommand(newLinksAddCmd(app))
	cmd.AddCommand(newLinksOpenCmd(app))
	cmd.AddCommand(newLinksRmCmd(app))
	return cmd
}

func newLinksListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List quick links",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, s.Links())
		},
	}
}

func newLinksAddCmd(app *App) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "add <title> <url>",
		Short: "Add a quick link",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.TrimSpace(args[0])
			url := strings.TrimSpace(args[1])
			if title == "" || url == "" {
				return writeErr(cmd, errors.New("title and url are required"))
			}
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			l := model.Link{
				ID:        collection.NewID(),
				Title:     title,
				URL:       url,
				Category:  category,
				CreatedAt: collection.Now(),
			}
			if err := s.SaveLinks(collection.Prepend(s.Links(), l)); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, l)
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Link category")
	return cmd
}

func newLinksOpenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "open <link-id>",
		Short: "Open a link in the browser and record the click",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			id := strings.TrimSpace(args[0])
			links, ok := collection.Patch(s.Links(), id, func(l model.Link) model.Link {
				l.Clicks++
				return l
			})
			if !ok {
				return writeErr(cmd, errNotFound("link", id))
			}
			if err := s.SaveLinks(links); err != nil {
				return writeErr(cmd, err)
			}
			l, _ := collection.Find(links, id)
			if err := assistant.OpenExternal(l.URL); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, l)
		},
	}
}

func newLinksRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <link-id>",
		Short: "Delete a quick link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			id := strings.TrimSpace(args[0])
			links := s.Links()
			if _, ok := collection.Find(links, id); !ok {
				return writeErr(cmd, errNotFound("link", id))
			}
			if err := s.SaveLinks(collection.Delete(links, id)); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]string{"deleted": id})
		},
	}
}
