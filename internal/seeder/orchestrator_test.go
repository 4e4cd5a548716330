package seeder

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/capopt/platform/internal/store"
	"github.com/capopt/platform/internal/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// recorder builds chunks that append their name to a shared log.
type recorder struct {
	calls []string
}

func (r *recorder) chunk(name string, deps ...string) Chunk {
	return Chunk{
		Name:         name,
		Dependencies: deps,
		Run: func(ctx context.Context, st *store.Store, opts *Options) (Result, error) {
			r.calls = append(r.calls, name)
			return Tally{Created: 1}.Result("ok"), nil
		},
	}
}

func (r *recorder) failing(name string, err error, deps ...string) Chunk {
	c := r.chunk(name, deps...)
	c.Run = func(ctx context.Context, st *store.Store, opts *Options) (Result, error) {
		r.calls = append(r.calls, name)
		return Result{}, err
	}
	return c
}

func testOptions() *Options {
	return &Options{Environment: Development, DefaultPassword: "password123", ChunkTimeout: time.Second}
}

func TestNewRejectsInvalidGraphs(t *testing.T) {
	r := &recorder{}
	tests := []struct {
		name   string
		chunks []Chunk
		want   error
	}{
		{"duplicate", []Chunk{r.chunk("a"), r.chunk("a")}, ErrDuplicateChunk},
		{"unknown dependency", []Chunk{r.chunk("a", "missing")}, ErrUnknownDependency},
		{"cycle", []Chunk{r.chunk("a", "c"), r.chunk("b", "a"), r.chunk("c", "b")}, ErrCycle},
		{"self dependency", []Chunk{r.chunk("a", "a")}, ErrCycle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.chunks)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestPlanIsTopologicalAndDeterministic(t *testing.T) {
	r := &recorder{}
	chunks := []Chunk{
		r.chunk("sections", "canvases"),
		r.chunk("canvases", "users", "enterprise"),
		r.chunk("users"),
		r.chunk("enterprise", "users", "industries"),
		r.chunk("industries"),
	}
	o, err := New(chunks)
	require.NoError(t, err)

	plan, err := o.Plan(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"users", "industries", "enterprise", "canvases", "sections"}, plan)

	for i := 0; i < 5; i++ {
		again, err := New(chunks)
		require.NoError(t, err)
		p, _ := again.Plan(nil)
		assert.Equal(t, plan, p)
	}

	subset, err := o.Plan([]string{"sections", "users"})
	require.NoError(t, err)
	assert.Equal(t, []string{"users", "sections"}, subset)

	_, err = o.Plan([]string{"nope"})
	assert.ErrorIs(t, err, ErrUnknownChunk)
}

func TestRunExecutesDependenciesFirst(t *testing.T) {
	r := &recorder{}
	o, err := New([]Chunk{
		r.chunk("b", "a"),
		r.chunk("c", "b"),
		r.chunk("a"),
	})
	require.NoError(t, err)

	report, err := o.Run(context.Background(), nil, testOptions())
	require.NoError(t, err)
	require.NoError(t, report.Err())

	assert.Equal(t, []string{"a", "b", "c"}, r.calls)
	assert.Equal(t, 3, report.Created())
	for _, name := range []string{"a", "b", "c"} {
		assert.Equal(t, StateSucceeded, report.States[name])
	}
}

func TestRunIsolatesFailures(t *testing.T) {
	boom := errors.New("boom")
	r := &recorder{}
	o, err := New([]Chunk{
		r.failing("a", boom),
		r.chunk("b", "a"),
		r.chunk("c", "b"),
		r.chunk("independent"),
	})
	require.NoError(t, err)

	report, err := o.Run(context.Background(), nil, testOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "independent"}, r.calls)
	assert.Equal(t, StateFailed, report.States["a"])
	assert.Equal(t, StateSkipped, report.States["b"])
	assert.Equal(t, StateSkipped, report.States["c"])
	assert.Equal(t, StateSucceeded, report.States["independent"])
	assert.Equal(t, []string{"b", "c"}, report.Skipped)

	require.Len(t, report.Failed(), 1)
	assert.Equal(t, []string{"boom"}, report.Failed()[0].Errors)

	runErr := report.Err()
	assert.ErrorIs(t, runErr, boom)
	assert.ErrorIs(t, runErr, ErrDependencyNotReady)
}

func TestFailedResultKeepsPartialCounts(t *testing.T) {
	partial := Chunk{
		Name: "partial",
		Run: func(ctx context.Context, st *store.Store, opts *Options) (Result, error) {
			tally := Tally{Created: 3, Updated: 2}
			return tally.Partial(), errors.New("row 6 rejected")
		},
	}
	o, err := New([]Chunk{partial})
	require.NoError(t, err)

	report, err := o.Run(context.Background(), nil, testOptions())
	require.NoError(t, err)
	require.Len(t, report.Failed(), 1)

	res := report.Failed()[0]
	assert.False(t, res.Success)
	assert.Equal(t, 3, res.EntitiesCreated)
	assert.Equal(t, 2, res.EntitiesUpdated)
	assert.Equal(t, []string{"row 6 rejected"}, res.Errors)
}

func TestRunRejectsFacilityCleanup(t *testing.T) {
	r := &recorder{}
	o, err := New([]Chunk{r.chunk("canvases")})
	require.NoError(t, err)

	opts := testOptions()
	opts.Facility = "HL001"
	opts.CleanupBeforeSeed = true
	_, err = o.Run(context.Background(), nil, opts)
	assert.ErrorIs(t, err, ErrScopedCleanup)
	assert.Empty(t, r.calls)
}

func TestRunTreatsUnselectedDependenciesAsPresent(t *testing.T) {
	r := &recorder{}
	o, err := New([]Chunk{
		r.chunk("canvases"),
		r.chunk("value-propositions", "canvases"),
	})
	require.NoError(t, err)

	opts := testOptions()
	opts.Modules = []string{"value-propositions"}
	report, err := o.Run(context.Background(), nil, opts)
	require.NoError(t, err)
	require.NoError(t, report.Err())
	assert.Equal(t, []string{"value-propositions"}, r.calls)
}

func TestRunChunkIgnoresGating(t *testing.T) {
	r := &recorder{}
	o, err := New([]Chunk{
		r.failing("a", errors.New("not reached")),
		r.chunk("b", "a"),
	})
	require.NoError(t, err)

	res, err := o.RunChunk(context.Background(), "b", nil, testOptions())
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "b", res.Module)
	assert.Equal(t, []string{"b"}, r.calls)

	_, err = o.RunChunk(context.Background(), "zzz", nil, testOptions())
	assert.ErrorIs(t, err, ErrUnknownChunk)
}

func TestRunRecoversPanics(t *testing.T) {
	r := &recorder{}
	panicky := Chunk{
		Name: "panicky",
		Run: func(ctx context.Context, st *store.Store, opts *Options) (Result, error) {
			panic("kaboom")
		},
	}
	o, err := New([]Chunk{panicky, r.chunk("after")})
	require.NoError(t, err)

	report, err := o.Run(context.Background(), nil, testOptions())
	require.NoError(t, err)
	assert.Equal(t, StateFailed, report.States["panicky"])
	assert.Equal(t, StateSucceeded, report.States["after"])
	assert.Contains(t, report.Failed()[0].Errors[0], "kaboom")
}

func TestRunAppliesChunkTimeout(t *testing.T) {
	slow := Chunk{
		Name: "slow",
		Run: func(ctx context.Context, st *store.Store, opts *Options) (Result, error) {
			<-ctx.Done()
			return Result{}, ctx.Err()
		},
	}
	o, err := New([]Chunk{slow})
	require.NoError(t, err)

	opts := testOptions()
	opts.ChunkTimeout = 20 * time.Millisecond
	report, err := o.Run(context.Background(), nil, opts)
	require.NoError(t, err)

	require.Len(t, report.Failed(), 1)
	assert.ErrorIs(t, report.Failed()[0].Err, ErrChunkTimeout)
	assert.ErrorIs(t, report.Failed()[0].Err, context.DeadlineExceeded)
}

func TestRunStopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := &recorder{}
	first := Chunk{
		Name: "first",
		Run: func(context.Context, *store.Store, *Options) (Result, error) {
			cancel()
			return Tally{}.Result("done"), nil
		},
	}
	o, err := New([]Chunk{first, r.chunk("second"), r.chunk("third")})
	require.NoError(t, err)

	report, err := o.Run(ctx, nil, testOptions())
	require.NoError(t, err)
	assert.Empty(t, r.calls)
	assert.Equal(t, []string{"second", "third"}, report.Skipped)
	assert.ErrorIs(t, report.Err(), context.Canceled)
}

func TestCleanupTablesAreReversed(t *testing.T) {
	r := &recorder{}
	users := r.chunk("users")
	users.Tables = []string{"users"}
	enterprise := r.chunk("enterprise", "users")
	enterprise.Tables = []string{"enterprises", "facilities"}
	canvases := r.chunk("canvases", "enterprise")
	canvases.Tables = []string{"business_canvases"}

	o, err := New([]Chunk{users, enterprise, canvases})
	require.NoError(t, err)

	plan, _ := o.Plan(nil)
	assert.Equal(t, []string{"business_canvases", "facilities", "enterprises", "users"}, o.cleanupTables(plan))
}

func TestRunCleansBeforeSeeding(t *testing.T) {
	st := storetest.New(t)
	ctx := context.Background()

	_, err := st.Upsert(ctx, "operational_streams", store.Key{"code": "OLD"}, store.Record{"name": "Old", "category": "X"})
	require.NoError(t, err)

	var seen int64 = -1
	streams := Chunk{
		Name:   "operational-streams",
		Tables: []string{"operational_streams"},
		Run: func(ctx context.Context, st *store.Store, opts *Options) (Result, error) {
			n, err := st.Count(ctx, "operational_streams")
			seen = n
			return Tally{}.Result("counted"), err
		},
	}
	o, err := New([]Chunk{streams})
	require.NoError(t, err)

	opts := testOptions()
	opts.CleanupBeforeSeed = true
	report, err := o.Run(ctx, st, opts)
	require.NoError(t, err)
	assert.Equal(t, int64(1), report.Cleaned)
	assert.Equal(t, int64(0), seen)
}

func TestReporters(t *testing.T) {
	r := &recorder{}
	core, logs := observer.New(zap.DebugLevel)
	var buf bytes.Buffer

	chunks := []Chunk{r.chunk("a"), r.failing("b", errors.New("bad"), "a")}

	o, err := New(chunks, WithReporter(NewLogReporter(zap.New(core))))
	require.NoError(t, err)
	_, err = o.Run(context.Background(), nil, testOptions())
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("chunk failed").Len())
	assert.Equal(t, 1, logs.FilterMessage("seeding finished with errors").Len())

	o, err = New(chunks, WithReporter(NewConsoleReporter(&buf)))
	require.NoError(t, err)
	_, err = o.Run(context.Background(), nil, testOptions())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "a → b")
	assert.Contains(t, out, "b failed")
	assert.Contains(t, out, "bad")
}
