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

func snippetLess(sort string) func(a, b model.Snippet) bool {
	switch sort {
	case "alphabetical":
		return func(a, b model.Snippet) bool { return pipeline.TitleLess(a.Title, b.Title) }
	case "copied":
		return func(a, b model.Snippet) bool { return a.CopiedCount > b.CopiedCount }
	default:
		return func(a, b model.Snippet) bool { return a.CreatedAt > b.CreatedAt }
	}
}

func snippetFields(sn model.Snippet) []string {
	return append([]string{sn.Title, sn.Code, sn.Description}, sn.Tags...)
}

func newSnippetsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snippets",
		Short: "Code snippet vault",
	}
	cmd.AddCommand(newSnippetsListCmd(app))
	cmd.AddCommand(newSnippetsAddCmd(app))
	cmd.AddCommand(newSnippetsCopyCmd(app))
	cmd.AddCommand(newSnippetsRmCmd(app))
	return cmd
}

func newSnippetsListCmd(app *App) *cobra.Command {
	var (
		search   string
		language string
		sortKey  string
		page     int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List snippets (search, filter, sort, paginate)",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			snippets := s.Snippets()
			snippets = pipeline.Search(snippets, search, snippetFields)
			snippets = pipeline.Filter(snippets, language, func(sn model.Snippet) string { return sn.Language })
			snippets = pipeline.SortBy(snippets, snippetLess(sortKey))

			pager := pipeline.NewPager(s.Settings().PageSize)
			pager.SetPage(page, len(snippets))
			return writeOut(cmd, app, map[string]any{
				"page":       pager.Page,
				"totalPages": pager.TotalPages(len(snippets)),
				"total":      len(snippets),
				"snippets":   pipeline.Slice(snippets, &pager),
			})
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "Substring match on title, code, description and tags")
	cmd.Flags().StringVar(&language, "language", pipeline.All, "Language filter")
	cmd.Flags().StringVar(&sortKey, "sort", "recent", "Sort order: recent, copied or alphabetical")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	return cmd
}

func newSnippetsAddCmd(app *App) *cobra.Command {
	var (
		language    string
		description string
		tags        []string
	)
	cmd := &cobra.Command{
		Use:   "add <title> <code>",
		Short: "Add a snippet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.TrimSpace(args[0])
			code := args[1]
			if title == "" || strings.TrimSpace(code) == "" {
				return writeErr(cmd, errors.New("title and code are required"))
			}
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			sn := model.Snippet{
				ID:          collection.NewID(),
				Title:       title,
				Code:        code,
				Language:    language,
				Description: description,
				Tags:        tags,
				CreatedAt:   collection.Now(),
			}
			if err := s.SaveSnippets(collection.Prepend(s.Snippets(), sn)); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, sn)
		},
	}
	cmd.Flags().StringVar(&language, "language", "go", "Snippet language")
	cmd.Flags().StringVar(&description, "description", "", "One-line description")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tag (repeatable)")
	return cmd
}

func newSnippetsCopyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "copy <snippet-id>",
		Short: "Print a snippet's code and record the copy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			id := strings.TrimSpace(args[0])
			snippets, ok := collection.Patch(s.Snippets(), id, func(sn model.Snippet) model.Snippet {
				sn.CopiedCount++
				return sn
			})
			if !ok {
				return writeErr(cmd, errNotFound("snippet", id))
			}
			if err := s.SaveSnippets(snippets); err != nil {
				return writeErr(cmd, err)
			}
			sn, _ := collection.Find(snippets, id)
			fmt.Fprintln(cmd.OutOrStdout(), sn.Code)
			return nil
		},
	}
}

func newSnippetsRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <snippet-id>",
		Short: "Delete a snippet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			id := strings.TrimSpace(args[0])
			snippets := s.Snippets()
			if _, ok := collection.Find(snippets, id); !ok {
				return writeErr(cmd, errNotFound("snippet", id))
			}
			if err := s.SaveSnippets(collection.Delete(snippets, id)); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]string{"deleted": id})
		},
	}
}
