package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging engine events.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// Nop discards events. Components fall back to it when no logger is given.
type Nop struct{}

func (Nop) Log(GameEvent) {}

func (Nop) Events() []GameEvent { return nil }

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(l.LastEvent()))
}

// --- MultiLogger: fans events out to several loggers ---

type MultiLogger struct {
	loggers []EventLogger
}

// NewMultiLogger logs to every given logger. Events() reports the first one's events.
func NewMultiLogger(loggers ...EventLogger) *MultiLogger {
	return &MultiLogger{loggers: loggers}
}

func (l *MultiLogger) Log(event GameEvent) {
	for _, lg := range l.loggers {
		lg.Log(event)
	}
}

func (l *MultiLogger) Events() []GameEvent {
	if len(l.loggers) == 0 {
		return nil
	}
	return l.loggers[0].Events()
}

// --- Formatting ---

// playerName returns "P1", "P2", ... for display, or "--" when unattributed.
func playerName(p int) string {
	if p < 0 {
		return "--"
	}
	return fmt.Sprintf("P%d", p)
}

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	kind := e.Type.String()
	// Pad type to 20 chars for alignment
	for len(kind) < 20 {
		kind += " "
	}
	return fmt.Sprintf("#%-3d %-2s %s| %s", e.Seq, playerName(e.Player), kind, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewCardMovedEvent(player int, cardName string, pileIndex int, position string) GameEvent {
	return GameEvent{
		Player:   player,
		Type:     EventCardMoved,
		Position: position,
		Card:     cardName,
		Details:  fmt.Sprintf("%s moves %s from pile slot %d to %s", playerName(player), cardName, pileIndex, position),
	}
}

func NewActivateEvent(player int, cardName string, input, output []string, pollution int) GameEvent {
	return GameEvent{
		Player:  player,
		Type:    EventActivate,
		Card:    cardName,
		Details: fmt.Sprintf("%s activates: [%s] → [%s], pollution %d", cardName, strings.Join(input, ", "), strings.Join(output, ", "), pollution),
	}
}

func NewActivationRejectedEvent(player int, cardName string, reason string) GameEvent {
	return GameEvent{
		Player:  player,
		Type:    EventActivationRejected,
		Card:    cardName,
		Details: fmt.Sprintf("%s activation rejected (%s)", cardName, reason),
	}
}

func NewTransactionEvent(removed, added, pollution int) GameEvent {
	return GameEvent{
		Player:  NoPlayer,
		Type:    EventTransaction,
		Details: fmt.Sprintf("transaction applied: %d paid, %d gained, %d pollution", removed, added, pollution),
	}
}

func NewTransactionRejectedEvent(position string, reason string) GameEvent {
	return GameEvent{
		Player:   NoPlayer,
		Type:     EventTransactionRejected,
		Position: position,
		Details:  fmt.Sprintf("transaction rejected at %s (%s)", position, reason),
	}
}

func NewScoringEvent(pattern []string, base, combinations, total int) GameEvent {
	return GameEvent{
		Player:  NoPlayer,
		Type:    EventScoring,
		Details: fmt.Sprintf("score for [%s]: base %d + %d combination(s) → %d", strings.Join(pattern, ", "), base, combinations, total),
	}
}

func NewNotifyEvent(player int) GameEvent {
	return GameEvent{
		Player:  player,
		Type:    EventNotify,
		Details: fmt.Sprintf("state sent to %s", playerName(player)),
	}
}

func NewNotifyFailedEvent(reason string) GameEvent {
	return GameEvent{
		Player:  NoPlayer,
		Type:    EventNotifyFailed,
		Details: "state not sent: " + reason,
	}
}
