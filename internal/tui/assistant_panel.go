package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"devdash/internal/assistant"
	"devdash/internal/collection"
	"devdash/internal/model"
	"devdash/internal/store"
)

type assistantReplyMsg struct {
	reply string
}

type exchange struct {
	topic string
	reply string
}

// assistantPanel is a launcher plus a demo chat. Questions get a canned
// reply after a short delay; real conversations happen in the browser via
// the platform launchers, and those launches are logged.
type assistantPanel struct {
	store store.Store

	input     textinput.Model
	typing    bool
	spin      spinner.Model
	waiting   bool
	platform  model.Platform
	history   []exchange
	responder *assistant.Responder
	// deliver routes replies from the responder's timer goroutine into the
	// program's event channel so they land in Update.
	deliver func(reply string)
}

func newAssistantPanel(s store.Store, events chan<- tea.Msg) assistantPanel {
	in := textinput.New()
	in.Placeholder = "Ask something (demo)..."
	in.CharLimit = 200

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	p := assistantPanel{
		store:     s,
		input:     in,
		spin:      sp,
		platform:  model.PlatformClaude,
		responder: assistant.NewResponder(),
	}
	p.deliver = func(reply string) { events <- assistantReplyMsg{reply: reply} }
	return p
}

func (p *assistantPanel) editing() bool { return p.typing }

func (p *assistantPanel) stop() { p.responder.Cancel() }

func (p *assistantPanel) update(msg tea.KeyMsg, app *appModel) tea.Cmd {
	if p.typing {
		switch msg.String() {
		case "enter":
			topic := strings.TrimSpace(p.input.Value())
			p.typing = false
			p.input.Blur()
			if topic == "" {
				return nil
			}
			p.input.SetValue("")
			p.history = append(p.history, exchange{topic: topic})
			p.waiting = true
			p.responder.Ask(topic, p.deliver)
			return p.spin.Tick
		case "esc":
			p.typing = false
			p.input.Blur()
			return nil
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return cmd
	}

	switch msg.String() {
	case "i":
		p.typing = true
		return p.input.Focus()
	case "p":
		if p.platform == model.PlatformClaude {
			p.platform = model.PlatformChatGPT
		} else {
			p.platform = model.PlatformClaude
		}
	case "o", "enter":
		topic := ""
		if len(p.history) > 0 {
			topic = p.history[len(p.history)-1].topic
		}
		conv := model.Conversation{
			ID:        collection.NewID(),
			Platform:  p.platform,
			Topic:     topic,
			Timestamp: collection.Now(),
		}
		_ = p.store.SaveConversations(collection.Prepend(p.store.Conversations(), conv))
		if err := assistant.OpenExternal(assistant.LaunchURL(p.platform)); err != nil {
			app.status = "Could not open browser"
		} else {
			app.status = "Opened " + string(p.platform) + " in browser"
		}
	}
	return nil
}

func (p *assistantPanel) onReply(reply string) {
	p.waiting = false
	if len(p.history) > 0 {
		p.history[len(p.history)-1].reply = reply
	}
}

func (p *assistantPanel) view(width int, focused bool, now time.Time) string {
	var b strings.Builder

	claude := assistant.PlatformIcon(model.PlatformClaude) + " Claude"
	chatgpt := assistant.PlatformIcon(model.PlatformChatGPT) + " ChatGPT"
	if p.platform == model.PlatformClaude {
		claude = styleSelected().Render(" " + claude + " ")
	} else {
		chatgpt = styleSelected().Render(" " + chatgpt + " ")
	}
	b.WriteString(claude + "  " + chatgpt + "  " + styleMuted().Render("p: switch   o: open"))
	b.WriteString("\n\n")

	// Last few demo exchanges, newest at the bottom.
	start := len(p.history) - 3
	if start < 0 {
		start = 0
	}
	for _, ex := range p.history[start:] {
		b.WriteString(styleAccent().Render("you: ") + truncateText(ex.topic, width-10))
		b.WriteString("\n")
		if ex.reply != "" {
			b.WriteString(truncateText(ex.reply, width-6))
			b.WriteString("\n")
		}
	}
	if p.waiting {
		b.WriteString(p.spin.View() + styleMuted().Render(" thinking..."))
		b.WriteString("\n")
	}

	b.WriteString(p.input.View())
	b.WriteString("\n")
	if focused && !p.typing {
		b.WriteString(styleMuted().Render("i: ask (demo)   sessions are logged when you open a platform"))
	}
	return b.String()
}
