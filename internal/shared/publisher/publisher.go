// Package publisher delivers engine events, such as compensating ledger
// credits, to the message bus.
package publisher

import (
	"context"
	"fmt"
	"strings"
)

// HeaderIdempotencyKey lets consumers drop redelivered messages.
const HeaderIdempotencyKey = "Idempotency-Key"

type Message struct {
	Key     string
	Value   []byte
	Headers map[string]string
}

// Publisher is safe for concurrent use. Publish returns once the broker has
// acknowledged every message or failed.
type Publisher interface {
	Publish(ctx context.Context, messages ...Message) error
	Close() error
}

// BatchError reports per-message failures of one Publish call. Errs is
// index-aligned with the messages; nil entries were delivered.
type BatchError struct {
	Errs []error
}

func (e *BatchError) Error() string {
	failed := make([]string, 0, len(e.Errs))
	for i, err := range e.Errs {
		if err != nil {
			failed = append(failed, fmt.Sprintf("#%d: %v", i, err))
		}
	}
	return fmt.Sprintf("publisher: %d of %d messages failed: %s", len(failed), len(e.Errs), strings.Join(failed, "; "))
}

// Failed reports whether the message at index i was not delivered.
func (e *BatchError) Failed(i int) bool {
	return i < len(e.Errs) && e.Errs[i] != nil
}
