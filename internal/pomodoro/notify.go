package pomodoro

import (
	"errors"
	"os/exec"
	"runtime"

	"go.uber.org/zap"
)

// DesktopNotifier shells out to the platform notification tool. Absence of a
// tool or permission is silently accepted; failures go to the diagnostic log
// only.
type DesktopNotifier struct {
	Log *zap.Logger
}

func (n DesktopNotifier) Notify(title, body string) {
	if err := sendDesktopNotification(title, body); err != nil {
		if n.Log != nil {
			n.Log.Debug("desktop notification skipped", zap.Error(err))
		}
	}
}

func sendDesktopNotification(title, body string) error {
	switch runtime.GOOS {
	case "darwin":
		script := "display notification " + appleScriptQuote(body) + " with title " + appleScriptQuote(title)
		return runNotifyCmd("osascript", "-e", script)
	case "windows":
		// msg is best-effort; a proper toast needs more ceremony than this
		// feature warrants.
		return runNotifyCmd("msg", "*", title+": "+body)
	default:
		return runNotifyCmd("notify-send", title, body)
	}
}

func runNotifyCmd(name string, args ...string) error {
	if _, err := exec.LookPath(name); err != nil {
		return err
	}
	if err := exec.Command(name, args...).Run(); err != nil {
		return errors.New(name + ": " + err.Error())
	}
	return nil
}

func appleScriptQuote(s string) string {
	out := make([]rune, 0, len(s)+2)
	out = append(out, '"')
	for _, r := range s {
		if r == '"' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	out = append(out, '"')
	return string(out)
}
