package log

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// JournalLogger records events in memory and appends each one as a JSON line
// to a zstd-compressed stream. Write errors are sticky and reported by Err.
type JournalLogger struct {
	MemoryLogger

	mu  sync.Mutex
	enc *zstd.Encoder
	w   *bufio.Writer
	err error
}

// NewJournalLogger starts a journal on w. Close must be called to finish the zstd frame.
func NewJournalLogger(w io.Writer) (*JournalLogger, error) {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, fmt.Errorf("journal encoder: %w", err)
	}
	return &JournalLogger{enc: enc, w: bufio.NewWriter(enc)}, nil
}

func (l *JournalLogger) Log(event GameEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.MemoryLogger.Log(event)
	if l.err != nil {
		return
	}
	b, err := json.Marshal(l.LastEvent())
	if err != nil {
		l.err = err
		return
	}
	if _, err := l.w.Write(b); err != nil {
		l.err = err
		return
	}
	if err := l.w.WriteByte('\n'); err != nil {
		l.err = err
	}
}

// Flush pushes buffered events into the zstd stream.
func (l *JournalLogger) Flush() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return l.err
	}
	if err := l.w.Flush(); err != nil {
		l.err = err
		return err
	}
	return l.enc.Flush()
}

// Err returns the first write error, if any.
func (l *JournalLogger) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Close flushes and finishes the compressed stream. It does not close the underlying writer.
func (l *JournalLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err == nil {
		l.err = l.w.Flush()
	}
	if err := l.enc.Close(); err != nil && l.err == nil {
		l.err = err
	}
	return l.err
}

// ReadJournal decodes every event from a compressed journal stream.
func ReadJournal(r io.Reader) ([]GameEvent, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("journal decoder: %w", err)
	}
	defer dec.Close()

	var events []GameEvent
	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		var ev GameEvent
		if err := json.Unmarshal(sc.Bytes(), &ev); err != nil {
			return nil, fmt.Errorf("journal line %d: %w", len(events)+1, err)
		}
		events = append(events, ev)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}
	return events, nil
}
