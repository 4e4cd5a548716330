package seeder

import (
	"context"
	"time"

	"github.com/capopt/platform/internal/store"
)

type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Staging     Environment = "staging"
)

// Options is built once per run and shared read-only by every chunk.
type Options struct {
	Environment       Environment `validate:"required,oneof=development testing staging"`
	IncludeTestData   bool
	IncludeSampleData bool
	DefaultPassword   string `validate:"required,min=8"`
	CleanupBeforeSeed bool
	Modules           []string `validate:"dive,required"`
	Facility          string
	ChunkTimeout      time.Duration `validate:"gte=0"`
}

// Result describes one executed chunk.
type Result struct {
	Module          string
	Success         bool
	Message         string
	EntitiesCreated int
	EntitiesUpdated int
	Errors          []string
	Duration        time.Duration

	// Err is the error that failed the chunk, kept for errors.Is checks.
	Err error
}

// Tally counts upsert outcomes for a chunk.
type Tally struct {
	Created int
	Updated int
}

func (t *Tally) Add(o store.Outcome) {
	if o.Created {
		t.Created++
	} else {
		t.Updated++
	}
}

// Result converts the tally into a successful Result.
func (t Tally) Result(message string) Result {
	return Result{
		Success:         true,
		Message:         message,
		EntitiesCreated: t.Created,
		EntitiesUpdated: t.Updated,
	}
}

// Partial returns the counts so far for a chunk that is about to fail.
func (t Tally) Partial() Result {
	return Result{EntitiesCreated: t.Created, EntitiesUpdated: t.Updated}
}

type ChunkFunc func(ctx context.Context, st *store.Store, opts *Options) (Result, error)

// Chunk is a named, dependency-ordered unit of seeding work.
type Chunk struct {
	Name         string
	Description  string
	Dependencies []string
	// Tables written by the chunk, in insertion order. Cleanup clears them
	// in reverse.
	Tables []string
	Run    ChunkFunc
}

type State string

const (
	StatePending   State = "pending"
	StateRunning   State = "running"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
	StateSkipped   State = "skipped"
)
