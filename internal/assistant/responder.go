package assistant

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

const (
	replyBaseDelay   = 800 * time.Millisecond
	replyRandomDelay = 700 * time.Millisecond
)

var cannedReplies = []string{
	"That's a great topic to dig into. Break it into smaller questions and tackle the riskiest assumption first.",
	"Worth a spike: write the smallest program that exercises just that behavior and see what it actually does.",
	"Check the docs for the exact guarantee you're relying on. Most surprises live in the unspecified corners.",
	"Try explaining it to the log first. If the explanation has a gap, that's where the bug is.",
	"Sounds like a good candidate for a real chat session. Open one of the launchers above and paste your context.",
}

// Responder produces a canned demo reply after a fixed-plus-random delay.
// Only one reply can be pending at a time; Cancel (and teardown) stops the
// pending reply so nothing fires into a disposed widget.
type Responder struct {
	mu    sync.Mutex
	timer *time.Timer
	rng   *rand.Rand
}

func NewResponder() *Responder {
	return &Responder{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Ask schedules a canned reply for the topic and delivers it to fn from a
// timer goroutine. A new Ask replaces any pending one.
func (r *Responder) Ask(topic string, fn func(reply string)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.timer != nil {
		r.timer.Stop()
	}
	delay := replyBaseDelay + time.Duration(r.rng.Int63n(int64(replyRandomDelay)))
	reply := r.pick(topic)
	r.timer = time.AfterFunc(delay, func() { fn(reply) })
}

// Cancel stops any pending reply.
func (r *Responder) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

func (r *Responder) pick(topic string) string {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return cannedReplies[len(cannedReplies)-1]
	}
	return cannedReplies[r.rng.Intn(len(cannedReplies))]
}
