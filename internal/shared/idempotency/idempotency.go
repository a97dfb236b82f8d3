// Package idempotency makes operator mutations safe to retry: the first
// request under a key runs, later ones with the same payload replay its
// stored response.
package idempotency

import (
	"context"
	"time"
)

type DecisionType string

const (
	DecisionAcquired   DecisionType = "acquired"
	DecisionReplay     DecisionType = "replay"
	DecisionInProgress DecisionType = "in_progress"
	DecisionConflict   DecisionType = "conflict"
)

const (
	statusInProgress = "in_progress"
	statusCompleted  = "completed"
)

type Request struct {
	Scope       string
	Key         string
	RequestHash string

	// LockTTL bounds how long an unfinished request blocks the key.
	LockTTL time.Duration
}

type Decision struct {
	Type        DecisionType
	StatusCode  int
	Body        []byte
	ContentType string
}

type StoredResponse struct {
	StatusCode  int
	Body        []byte
	ContentType string
}

type Store interface {
	Acquire(ctx context.Context, request Request) (Decision, error)
	Complete(ctx context.Context, request Request, response StoredResponse) error

	// Release drops an unfinished key so the caller may retry, e.g. after a
	// server error that left nothing worth replaying.
	Release(ctx context.Context, request Request) error
}
