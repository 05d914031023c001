package tui

import (
	"os/exec"
	"runtime"
	"strings"
)

// clipboardTool is one external copy command. Tools are tried in chain
// order; the first one on PATH that accepts the text wins.
type clipboardTool struct {
	name string
	args []string
}

func clipboardChain(goos string) []clipboardTool {
	switch goos {
	case "darwin":
		return []clipboardTool{{name: "pbcopy"}}
	case "windows":
		return []clipboardTool{
			{name: "cmd", args: []string{"/c", "clip"}},
			{name: "powershell", args: []string{"-NoProfile", "-Command", "Set-Clipboard"}},
		}
	default:
		// Wayland first, then the X11 tools.
		return []clipboardTool{
			{name: "wl-copy"},
			{name: "xclip", args: []string{"-selection", "clipboard"}},
			{name: "xsel", args: []string{"--clipboard", "--input"}},
		}
	}
}

// copyText pipes text to the system clipboard and returns the footer status
// for the panel to show: copied on success, a fallback message when no tool
// could take the text. Copy is best effort; nothing here returns an error.
func copyText(text, copied string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	for _, tool := range clipboardChain(runtime.GOOS) {
		if _, err := exec.LookPath(tool.name); err != nil {
			continue
		}
		cmd := exec.Command(tool.name, tool.args...)
		cmd.Stdin = strings.NewReader(text)
		if cmd.Run() == nil {
			return copied
		}
	}
	return "Clipboard unavailable"
}
