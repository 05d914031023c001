// Package assistant backs the AI-assistant widget: it records conversation
// log entries, launches external chat services in the system browser, and
// ships a canned-response demo responder. There is no real model behind any
// of it.
package assistant

import (
	"errors"
	"io"
	"os/exec"
	"runtime"
	"strings"

	"devdash/internal/model"
)

// External chat services the launcher knows about. These are opened, never
// integrated.
const (
	ClaudeURL  = "https://claude.ai"
	ChatGPTURL = "https://chat.openai.com"
)

// LaunchURL maps a platform to its launcher URL, empty when the platform is
// unknown.
func LaunchURL(p model.Platform) string {
	switch p {
	case model.PlatformChatGPT:
		return ChatGPTURL
	case model.PlatformClaude:
		return ClaudeURL
	default:
		return ""
	}
}

func PlatformIcon(p model.Platform) string {
	if p == model.PlatformClaude {
		return "✨"
	}
	return "💬"
}

// OpenExternal opens url in the default browser. Fire-and-forget: the
// caller logs the error and shows nothing beyond a missing success
// indicator.
func OpenExternal(url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return errors.New("empty url")
	}
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	// Prevent any output from flashing in the terminal.
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Wait()
}
