// Package pomodoro implements the countdown state machine: work and break
// phases, a daily session counter, and a best-effort notification on every
// phase transition. The engine itself is tick-driven and timer-free; the TUI
// owns the once-per-second tick.
package pomodoro

import (
	"fmt"
	"time"

	"devdash/internal/model"
	"devdash/internal/store"
)

// sessionDateLayout matches the stored calendar-day string, e.g.
// "Wed Oct 01 2025".
const sessionDateLayout = "Mon Jan 02 2006"

type Config struct {
	WorkSeconds            int
	ShortBreakSeconds      int
	LongBreakSeconds       int
	SessionsUntilLongBreak int
}

func ConfigFromSettings(cfg model.Settings) Config {
	return Config{
		WorkSeconds:            cfg.WorkMinutes * 60,
		ShortBreakSeconds:      cfg.ShortBreakMinutes * 60,
		LongBreakSeconds:       cfg.LongBreakMinutes * 60,
		SessionsUntilLongBreak: cfg.SessionsUntilLongBreak,
	}
}

func (c Config) duration(phase model.PomodoroPhase) int {
	switch phase {
	case model.PhaseShortBreak:
		return c.ShortBreakSeconds
	case model.PhaseLongBreak:
		return c.LongBreakSeconds
	default:
		return c.WorkSeconds
	}
}

// Notifier delivers the one-shot phase-transition notification. Failure is
// not an error; it is simply skipped.
type Notifier interface {
	Notify(title, body string)
}

type Engine struct {
	cfg    Config
	store  store.Store
	notify Notifier

	state model.PomodoroState
}

// Load reads the persisted countdown state, substituting a fresh work phase
// when the slot is absent, and applies the daily session reset if the stored
// date is not today.
func Load(s store.Store, cfg Config, notify Notifier, now time.Time) *Engine {
	def := model.PomodoroState{
		TimeLeft:    cfg.WorkSeconds,
		Mode:        model.PhaseWork,
		SessionDate: now.Format(sessionDateLayout),
	}
	e := &Engine{cfg: cfg, store: s, notify: notify, state: s.Pomodoro(def)}
	// A stale slot never resumes mid-countdown as running.
	e.state.IsActive = false
	e.resetSessionsIfNewDay(now)
	return e
}

func (e *Engine) State() model.PomodoroState {
	return e.state
}

func (e *Engine) Config() Config {
	return e.cfg
}

// resetSessionsIfNewDay zeroes the session counter when the stored calendar
// day differs from now, independent of the phase machine.
func (e *Engine) resetSessionsIfNewDay(now time.Time) {
	today := now.Format(sessionDateLayout)
	if e.state.SessionDate == today {
		return
	}
	e.state.SessionsCompleted = 0
	e.state.SessionDate = today
	e.persist()
}

// Toggle starts or pauses the countdown. Pausing never alters TimeLeft.
func (e *Engine) Toggle() {
	e.state.IsActive = !e.state.IsActive
	e.persist()
}

// Reset returns TimeLeft to the current phase's full duration without
// changing phase or session count.
func (e *Engine) Reset() {
	e.state.IsActive = false
	e.state.TimeLeft = e.cfg.duration(e.state.Mode)
	e.persist()
}

// Tick advances the countdown by one second. State is persisted on every
// fifth remaining-seconds value so a reload resumes close to where it left
// off; the transition itself always persists.
func (e *Engine) Tick() {
	if !e.state.IsActive {
		return
	}
	if e.state.TimeLeft > 0 {
		e.state.TimeLeft--
		if e.state.TimeLeft%5 == 0 {
			e.persist()
		}
	}
	if e.state.TimeLeft == 0 {
		e.complete()
	}
}

// complete fires the phase transition: only completions of work increment
// the session counter, every Nth completed work session earns the long
// break, and any break hands back to work with the counter untouched.
func (e *Engine) complete() {
	e.state.IsActive = false

	if e.state.Mode == model.PhaseWork {
		e.state.SessionsCompleted++
		next := model.PhaseShortBreak
		if e.cfg.SessionsUntilLongBreak > 0 && e.state.SessionsCompleted%e.cfg.SessionsUntilLongBreak == 0 {
			next = model.PhaseLongBreak
		}
		e.state.Mode = next
		e.state.TimeLeft = e.cfg.duration(next)
		e.sendNotification("Time's up! Take a break 🎉", "Great work! Time for a break.")
	} else {
		e.state.Mode = model.PhaseWork
		e.state.TimeLeft = e.cfg.WorkSeconds
		e.sendNotification("Break over! Back to work 💪", "Let's get back to being productive!")
	}
	e.persist()
}

func (e *Engine) sendNotification(title, body string) {
	if e.notify == nil {
		return
	}
	e.notify.Notify(title, body)
}

func (e *Engine) persist() {
	_ = e.store.SavePomodoro(e.state)
}

// ModeLabel is the human name of a phase.
func ModeLabel(phase model.PomodoroPhase) string {
	switch phase {
	case model.PhaseShortBreak:
		return "Short Break"
	case model.PhaseLongBreak:
		return "Long Break"
	default:
		return "Work Time"
	}
}

// FormatClock renders seconds as MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
