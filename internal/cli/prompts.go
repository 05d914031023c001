package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"devdash/internal/collection"
	"devdash/internal/model"
	"devdash/internal/pipeline"
)

// promptSorts maps the --sort flag to a comparator. "recent" is last
// activity (copy or creation) first; "usage" is most used first;
// "alphabetical" is locale-aware by title.
func promptLess(sort string) func(a, b model.Prompt) bool {
	switch sort {
	case "alphabetical":
		return func(a, b model.Prompt) bool { return pipeline.TitleLess(a.Title, b.Title) }
	case "usage":
		return func(a, b model.Prompt) bool { return a.UsageCount > b.UsageCount }
	default:
		return func(a, b model.Prompt) bool { return a.LastActivity() > b.LastActivity() }
	}
}

func promptFields(p model.Prompt) []string {
	return append([]string{p.Title, p.Template}, p.Tags...)
}

func newPromptsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompts",
		Short: "Prompt template library",
	}
	cmd.AddCommand(newPromptsListCmd(app))
	cmd.AddCommand(newPromptsAddCmd(app))
	cmd.AddCommand(newPromptsCopyCmd(app))
	cmd.AddCommand(newPromptsFavoriteCmd(app))
	cmd.AddCommand(newPromptsRmCmd(app))
	return cmd
}

func newPromptsListCmd(app *App) *cobra.Command {
	var (
		search    string
		category  string
		favorites bool
		sortKey   string
		page      int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List prompts (search, filter, sort, paginate)",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			prompts := s.Prompts()
			prompts = pipeline.Search(prompts, search, promptFields)
			prompts = pipeline.Filter(prompts, category, func(p model.Prompt) string { return p.Category })
			prompts = pipeline.Where(prompts, favorites, func(p model.Prompt) bool { return p.Favorite })
			prompts = pipeline.SortBy(prompts, promptLess(sortKey))

			pager := pipeline.NewPager(s.Settings().PageSize)
			pager.SetPage(page, len(prompts))
			return writeOut(cmd, app, map[string]any{
				"page":       pager.Page,
				"totalPages": pager.TotalPages(len(prompts)),
				"total":      len(prompts),
				"prompts":    pipeline.Slice(prompts, &pager),
			})
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "Substring match on title, template and tags")
	cmd.Flags().StringVar(&category, "category", pipeline.All, "Category filter")
	cmd.Flags().BoolVar(&favorites, "favorites", false, "Favorites only")
	cmd.Flags().StringVar(&sortKey, "sort", "recent", "Sort order: recent, usage or alphabetical")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	return cmd
}

func newPromptsAddCmd(app *App) *cobra.Command {
	var (
		category string
		tags     []string
	)
	cmd := &cobra.Command{
		Use:   "add <title> <template>",
		Short: "Add a prompt",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.TrimSpace(args[0])
			template := strings.TrimSpace(args[1])
			if title == "" || template == "" {
				return writeErr(cmd, errors.New("title and template are required"))
			}
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			p := model.Prompt{
				ID:        collection.NewID(),
				Title:     title,
				Template:  template,
				Category:  category,
				Tags:      tags,
				CreatedAt: collection.Now(),
			}
			if err := s.SavePrompts(collection.Prepend(s.Prompts(), p)); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, p)
		},
	}
	cmd.Flags().StringVar(&category, "category", "General", "Prompt category")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tag (repeatable)")
	return cmd
}

func newPromptsCopyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "copy <prompt-id>",
		Short: "Print a prompt template and record the use",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			id := strings.TrimSpace(args[0])
			prompts, ok := collection.Patch(s.Prompts(), id, func(p model.Prompt) model.Prompt {
				p.UsageCount++
				p.LastUsed = collection.Now()
				return p
			})
			if !ok {
				return writeErr(cmd, errNotFound("prompt", id))
			}
			if err := s.SavePrompts(prompts); err != nil {
				return writeErr(cmd, err)
			}
			p, _ := collection.Find(prompts, id)
			fmt.Fprintln(cmd.OutOrStdout(), p.Template)
			return nil
		},
	}
}

func newPromptsFavoriteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "favorite <prompt-id>",
		Short: "Toggle a prompt's favorite flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			id := strings.TrimSpace(args[0])
			prompts, ok := collection.Patch(s.Prompts(), id, func(p model.Prompt) model.Prompt {
				p.Favorite = !p.Favorite
				return p
			})
			if !ok {
				return writeErr(cmd, errNotFound("prompt", id))
			}
			if err := s.SavePrompts(prompts); err != nil {
				return writeErr(cmd, err)
			}
			p, _ := collection.Find(prompts, id)
			return writeOut(cmd, app, p)
		},
	}
}

func newPromptsRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <prompt-id>",
		Short: "Delete a prompt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			id := strings.TrimSpace(args[0])
			prompts := s.Prompts()
			if _, ok := collection.Find(prompts, id); !ok {
				return writeErr(cmd, errNotFound("prompt", id))
			}
			if err := s.SavePrompts(collection.Delete(prompts, id)); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]string{"deleted": id})
		},
	}
}
