// Package seeder runs seed chunks against a store in dependency order.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/capopt/platform/internal/store"
)

// Orchestrator holds a validated set of chunks and their execution order.
// It is safe to reuse across runs; each Run gets its own Report.
type Orchestrator struct {
	chunks   map[string]Chunk
	declared []string
	order    []string
	reporter Reporter
}

type Option func(*Orchestrator)

func WithReporter(r Reporter) Option {
	return func(o *Orchestrator) {
		if r != nil {
			o.reporter = r
		}
	}
}

// New validates chunks and computes their order. Duplicate names, unknown
// dependencies and cycles are rejected here rather than at run time.
func New(chunks []Chunk, opts ...Option) (*Orchestrator, error) {
	g, err := newDependencyGraph(chunks)
	if err != nil {
		return nil, err
	}
	order, err := g.order()
	if err != nil {
		return nil, err
	}

	o := &Orchestrator{
		chunks:   g.chunks,
		declared: g.names,
		order:    order,
		reporter: nopReporter{},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// Chunks returns the chunks in execution order.
func (o *Orchestrator) Chunks() []Chunk {
	out := make([]Chunk, 0, len(o.order))
	for _, name := range o.order {
		out = append(out, o.chunks[name])
	}
	return out
}

// Plan returns the execution order restricted to selection. An empty
// selection plans every chunk.
func (o *Orchestrator) Plan(selection []string) ([]string, error) {
	if len(selection) == 0 {
		return append([]string(nil), o.order...), nil
	}

	selected := make(map[string]bool, len(selection))
	for _, name := range selection {
		if _, ok := o.chunks[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownChunk, name)
		}
		selected[name] = true
	}

	var plan []string
	for _, name := range o.order {
		if selected[name] {
			plan = append(plan, name)
		}
	}
	return plan, nil
}

// Run executes the chunks selected by opts.Modules. A chunk whose
// dependency in the same plan did not succeed is skipped; dependencies
// outside the plan are assumed to already be in the store. The returned
// error covers planning and cleanup only; chunk failures are in the Report.
// Cleanup clears whole tables, so it cannot be combined with a facility
// filter.
func (o *Orchestrator) Run(ctx context.Context, st *store.Store, opts *Options) (*Report, error) {
	if opts.CleanupBeforeSeed && opts.Facility != "" {
		return nil, fmt.Errorf("%w: facility %s", ErrScopedCleanup, opts.Facility)
	}
	plan, err := o.Plan(opts.Modules)
	if err != nil {
		return nil, err
	}

	report := newReport(plan)
	o.reporter.Plan(plan)

	if opts.CleanupBeforeSeed {
		tables, deleted, err := o.Cleanup(ctx, st, plan)
		if err != nil {
			return nil, err
		}
		report.Cleaned = deleted
		o.reporter.Cleaned(len(tables), deleted)
	}

	inPlan := make(map[string]bool, len(plan))
	for _, name := range plan {
		inPlan[name] = true
	}

	for i, name := range plan {
		if ctx.Err() != nil {
			for _, rest := range plan[i:] {
				report.skip(rest, ctx.Err())
				o.reporter.Skipped(rest, "run cancelled")
			}
			break
		}

		chunk := o.chunks[name]
		if dep, ok := blockedBy(chunk, inPlan, report.States); ok {
			report.skip(name, fmt.Errorf("%w: %s", ErrDependencyNotReady, dep))
			o.reporter.Skipped(name, fmt.Sprintf("dependency %s did not succeed", dep))
			continue
		}

		report.States[name] = StateRunning
		o.reporter.Start(name)
		res := o.execute(ctx, chunk, st, opts)
		report.record(res)
		o.reporter.Result(res)
	}

	o.reporter.Summary(report)
	return report, nil
}

// RunChunk runs a single chunk without dependency gating. The module's own
// prerequisite lookups decide whether it can proceed.
func (o *Orchestrator) RunChunk(ctx context.Context, name string, st *store.Store, opts *Options) (Result, error) {
	chunk, ok := o.chunks[name]
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownChunk, name)
	}

	o.reporter.Start(name)
	res := o.execute(ctx, chunk, st, opts)
	o.reporter.Result(res)
	return res, res.Err
}

func (o *Orchestrator) execute(ctx context.Context, chunk Chunk, st *store.Store, opts *Options) (res Result) {
	runCtx := ctx
	if opts.ChunkTimeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, opts.ChunkTimeout)
		defer cancel()
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			res = failed(chunk.Name, Result{}, fmt.Errorf("panic: %v", r))
		}
		res.Module = chunk.Name
		res.Duration = time.Since(start)
	}()

	res, err := chunk.Run(runCtx, st, opts)
	if err == nil && errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		err = fmt.Errorf("%w after %s", ErrChunkTimeout, opts.ChunkTimeout)
	}
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, ErrChunkTimeout) {
			err = fmt.Errorf("%w after %s: %w", ErrChunkTimeout, opts.ChunkTimeout, err)
		}
		return failed(chunk.Name, res, err)
	}
	if len(res.Errors) > 0 {
		res.Success = false
		res.Err = errors.New(res.Errors[0])
		return res
	}

	res.Success = true
	return res
}

// failed keeps the partial counts in res so rows written before the error
// are still reported.
func failed(name string, res Result, err error) Result {
	return Result{
		Module:          name,
		Success:         false,
		Message:         fmt.Sprintf("%s failed", name),
		EntitiesCreated: res.EntitiesCreated,
		EntitiesUpdated: res.EntitiesUpdated,
		Errors:          append(append([]string(nil), res.Errors...), err.Error()),
		Err:             err,
	}
}

// Cleanup deletes every row in the tables owned by the selected chunks,
// dependents first. It returns the tables it cleared.
func (o *Orchestrator) Cleanup(ctx context.Context, st *store.Store, selection []string) ([]string, int64, error) {
	plan, err := o.Plan(selection)
	if err != nil {
		return nil, 0, err
	}
	tables := o.cleanupTables(plan)
	deleted, err := st.Truncate(ctx, tables)
	if err != nil {
		return nil, deleted, fmt.Errorf("cleanup failed: %w", err)
	}
	return tables, deleted, nil
}

// cleanupTables lists the tables of the planned chunks, last written first.
func (o *Orchestrator) cleanupTables(plan []string) []string {
	var tables []string
	seen := make(map[string]bool)
	for i := len(plan) - 1; i >= 0; i-- {
		owned := o.chunks[plan[i]].Tables
		for j := len(owned) - 1; j >= 0; j-- {
			if !seen[owned[j]] {
				seen[owned[j]] = true
				tables = append(tables, owned[j])
			}
		}
	}
	return tables
}

func blockedBy(chunk Chunk, inPlan map[string]bool, states map[string]State) (string, bool) {
	for _, dep := range chunk.Dependencies {
		if inPlan[dep] && states[dep] != StateSucceeded {
			return dep, true
		}
	}
	return "", false
}
