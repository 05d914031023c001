package assistant

import (
	"sync/atomic"
	"testing"
	"time"

	"devdash/internal/model"
)

func TestResponder_DeliversExactlyOneReply(t *testing.T) {
	r := NewResponder()
	defer r.Cancel()

	got := make(chan string, 2)
	r.Ask("how do goroutines work", func(reply string) { got <- reply })

	select {
	case reply := <-got:
		if reply == "" {
			t.Fatal("empty reply")
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no reply within the delay window")
	}

	select {
	case <-got:
		t.Fatal("second reply delivered")
	case <-time.After(2 * time.Second):
	}
}

func TestResponder_CancelPreventsLateReply(t *testing.T) {
	r := NewResponder()

	var fired atomic.Bool
	r.Ask("doomed question", func(string) { fired.Store(true) })
	r.Cancel()

	time.Sleep(2 * time.Second)
	if fired.Load() {
		t.Fatal("reply fired after Cancel")
	}
}

func TestResponder_NewAskReplacesPending(t *testing.T) {
	r := NewResponder()
	defer r.Cancel()

	var first atomic.Bool
	got := make(chan struct{}, 1)
	r.Ask("first", func(string) { first.Store(true) })
	r.Ask("second", func(string) { got <- struct{}{} })

	select {
	case <-got:
	case <-time.After(3 * time.Second):
		t.Fatal("replacement reply never fired")
	}
	if first.Load() {
		t.Fatal("replaced ask still fired")
	}
}

func TestLaunchURL(t *testing.T) {
	if LaunchURL(model.PlatformClaude) != ClaudeURL {
		t.Fatal("claude launcher URL")
	}
	if LaunchURL(model.PlatformChatGPT) != ChatGPTURL {
		t.Fatal("chatgpt launcher URL")
	}
}
