package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"devdash/internal/collection"
	"devdash/internal/store"
)

func newNotesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Quick-notes pad",
	}
	cmd.AddCommand(newNotesShowCmd(app))
	cmd.AddCommand(newNotesSetCmd(app))
	cmd.AddCommand(newNotesSaveCmd(app))
	cmd.AddCommand(newNotesRmCmd(app))
	return cmd
}

func newNotesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the draft and recent notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, s.NotesPad())
		},
	}
}

func newNotesSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <text>",
		Short: "Replace the draft",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			pad := s.NotesPad()
			pad.CurrentNote = strings.Join(args, " ")
			if err := s.SaveNotesPad(pad); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, pad)
		},
	}
}

func newNotesSaveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Snapshot the draft into recent notes (clears the draft)",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			pad := s.NotesPad()
			if strings.TrimSpace(pad.CurrentNote) == "" {
				return writeErr(cmd, errors.New("draft is empty"))
			}
			pad = store.SnapshotDraft(pad)
			if err := s.SaveNotesPad(pad); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, pad)
		},
	}
}

func newNotesRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <note-id>",
		Short: "Delete a recent note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			id := strings.TrimSpace(args[0])
			pad := s.NotesPad()
			if _, ok := collection.Find(pad.RecentNotes, id); !ok {
				return writeErr(cmd, errNotFound("note", id))
			}
			pad.RecentNotes = collection.Delete(pad.RecentNotes, id)
			if err := s.SaveNotesPad(pad); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]string{"deleted": id})
		},
	}
}
