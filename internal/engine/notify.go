package engine

import (
	"log/slog"
	"sync"
	"time"
)

type EventKind string

const (
	EventQuestCompleted EventKind = "quest_completed"
	EventLevelUp        EventKind = "level_up"
	EventBossEncounter  EventKind = "boss_encounter"
	EventQuestFailed    EventKind = "quest_failed"
	EventNewDay         EventKind = "new_day"
	EventProfileReset   EventKind = "profile_reset"
)

// Event is a human-readable engine notification. Message is always set; the
// other fields carry whatever applies to the kind.
type Event struct {
	Kind    EventKind `json:"kind"`
	Message string    `json:"message"`
	QuestID string    `json:"questId,omitempty"`
	Stat    Stat      `json:"stat,omitempty"`
	Delta   int       `json:"delta,omitempty"`
	Exp     int       `json:"exp,omitempty"`
	Level   int       `json:"level,omitempty"`
	At      time.Time `json:"at"`
}

// Notifier receives engine events. The engine never looks at what a notifier
// does with them.
type Notifier interface {
	Notify(Event)
}

type NotifierFunc func(Event)

func (f NotifierFunc) Notify(e Event) { f(e) }

// MessageSink adapts a plain notify(message) callback.
func MessageSink(fn func(message string)) Notifier {
	return NotifierFunc(func(e Event) { fn(e.Message) })
}

type multiNotifier []Notifier

func (m multiNotifier) Notify(e Event) {
	for _, n := range m {
		n.Notify(e)
	}
}

// Notifiers fans every event out to each non-nil notifier in order.
func Notifiers(ns ...Notifier) Notifier {
	var out multiNotifier
	for _, n := range ns {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

// LogNotifier writes each event as a structured log line.
func LogNotifier(log *slog.Logger) Notifier {
	return NotifierFunc(func(e Event) {
		log.Info("hunter event", "kind", e.Kind, "message", e.Message, "quest_id", e.QuestID, "level", e.Level)
	})
}

type discardNotifier struct{}

func (discardNotifier) Notify(Event) {}

// Recorder buffers events until drained. Safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	pending []Event
	all     []Event
}

func (r *Recorder) Notify(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = append(r.pending, e)
	r.all = append(r.all, e)
}

// Drain returns events received since the last Drain.
func (r *Recorder) Drain() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.pending
	r.pending = nil
	return out
}

// Events returns every event received so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.all))
	copy(out, r.all)
	return out
}

// Messages returns the message text of every event received so far.
func (r *Recorder) Messages() []string {
	evs := r.Events()
	out := make([]string, len(evs))
	for i, e := range evs {
		out[i] = e.Message
	}
	return out
}
