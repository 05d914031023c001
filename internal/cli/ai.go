package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"devdash/internal/assistant"
	"devdash/internal/collection"
	"devdash/internal/model"
)

func newAICmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ai",
		Short: "External AI chat launcher and session log",
	}
	cmd.AddCommand(newAIOpenCmd(app))
	cmd.AddCommand(newAILogCmd(app))
	cmd.AddCommand(newAIListCmd(app))
	cmd.AddCommand(newAIClearCmd(app))
	return cmd
}

func newAIOpenCmd(app *App) *cobra.Command {
	var topic string
	cmd := &cobra.Command{
		Use:   "open <claude|chatgpt>",
		Short: "Open a chat platform in the browser and log the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			platform := model.Platform(strings.ToLower(strings.TrimSpace(args[0])))
			url := assistant.LaunchURL(platform)
			if url == "" {
				return writeErr(cmd, fmt.Errorf("unknown platform: %s", args[0]))
			}
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			conv := model.Conversation{
				ID:        collection.NewID(),
				Platform:  platform,
				Topic:     topic,
				Timestamp: collection.Now(),
			}
			if err := s.SaveConversations(collection.Prepend(s.Conversations(), conv)); err != nil {
				return writeErr(cmd, err)
			}
			if err := assistant.OpenExternal(url); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, conv)
		},
	}
	cmd.Flags().StringVar(&topic, "topic", "", "What the session is about")
	return cmd
}

func newAILogCmd(app *App) *cobra.Command {
	var notes string
	cmd := &cobra.Command{
		Use:   "log <claude|chatgpt> <topic>",
		Short: "Log a chat session without opening the browser",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			platform := model.Platform(strings.ToLower(strings.TrimSpace(args[0])))
			if assistant.LaunchURL(platform) == "" {
				return writeErr(cmd, fmt.Errorf("unknown platform: %s", args[0]))
			}
			topic := strings.TrimSpace(args[1])
			if topic == "" {
				return writeErr(cmd, errors.New("topic is required"))
			}
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			conv := model.Conversation{
				ID:        collection.NewID(),
				Platform:  platform,
				Topic:     topic,
				Notes:     notes,
				Timestamp: collection.Now(),
			}
			if err := s.SaveConversations(collection.Prepend(s.Conversations(), conv)); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, conv)
		},
	}
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form session notes")
	return cmd
}

func newAIListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List logged chat sessions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, s.Conversations())
		},
	}
}

func newAIClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all logged chat sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			n := len(s.Conversations())
			if err := s.SaveConversations([]model.Conversation{}); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]int{"deleted": n})
		},
	}
}
