package seeder

import (
	"errors"
	"fmt"
)

// Report collects the outcome of one orchestrated run.
type Report struct {
	Results []Result
	Skipped []string
	States  map[string]State
	Cleaned int64

	skipReasons map[string]error
}

func newReport(plan []string) *Report {
	states := make(map[string]State, len(plan))
	for _, name := range plan {
		states[name] = StatePending
	}
	return &Report{States: states, skipReasons: make(map[string]error)}
}

func (r *Report) record(res Result) {
	if res.Success {
		r.States[res.Module] = StateSucceeded
	} else {
		r.States[res.Module] = StateFailed
	}
	r.Results = append(r.Results, res)
}

func (r *Report) skip(name string, reason error) {
	r.States[name] = StateSkipped
	r.skipReasons[name] = reason
	r.Skipped = append(r.Skipped, name)
}

func (r *Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Success {
			out = append(out, res)
		}
	}
	return out
}

func (r *Report) Created() int {
	n := 0
	for _, res := range r.Results {
		n += res.EntitiesCreated
	}
	return n
}

func (r *Report) Updated() int {
	n := 0
	for _, res := range r.Results {
		n += res.EntitiesUpdated
	}
	return n
}

// Err is nil only when every planned chunk succeeded.
func (r *Report) Err() error {
	var errs []error
	for _, res := range r.Failed() {
		errs = append(errs, fmt.Errorf("%s: %w", res.Module, res.Err))
	}
	for _, name := range r.Skipped {
		errs = append(errs, fmt.Errorf("%s skipped: %w", name, r.skipReasons[name]))
	}
	return errors.Join(errs...)
}
