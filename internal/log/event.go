package log

import "fmt"

// EventType enumerates all observable engine events.
type EventType int

const (
	EventCardMoved EventType = iota
	EventActivate
	EventActivationRejected
	EventTransaction
	EventTransactionRejected
	EventScoring
	EventNotify
	EventNotifyFailed
)

func (e EventType) String() string {
	switch e {
	case EventCardMoved:
		return "CardMoved"
	case EventActivate:
		return "Activate"
	case EventActivationRejected:
		return "ActivationRejected"
	case EventTransaction:
		return "Transaction"
	case EventTransactionRejected:
		return "TransactionRejected"
	case EventScoring:
		return "Scoring"
	case EventNotify:
		return "Notify"
	case EventNotifyFailed:
		return "NotifyFailed"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the event type by name in journals.
func (e EventType) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *EventType) UnmarshalText(text []byte) error {
	for t := EventCardMoved; t <= EventNotifyFailed; t++ {
		if t.String() == string(text) {
			*e = t
			return nil
		}
	}
	return fmt.Errorf("unknown event type %q", text)
}

// NoPlayer marks events not attributed to a player.
const NoPlayer = -1

// GameEvent represents a single observable event.
type GameEvent struct {
	Seq      int       `json:"seq"`                // monotonic sequence number
	Player   int       `json:"player"`             // acting player, or NoPlayer
	Type     EventType `json:"type"`               // event type
	Position string    `json:"position,omitempty"` // grid cell, e.g. "(0,1)"
	Card     string    `json:"card,omitempty"`     // card name (if applicable)
	Details  string    `json:"details"`            // human-readable detail string
}
