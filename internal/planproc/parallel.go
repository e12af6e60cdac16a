// Package planproc provides concurrent evaluation of multiple plan files.
package planproc

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/sourcegraph/conc/pool"
)

// PlanError represents an error that occurred while evaluating one plan.
type PlanError struct {
	Path string
	Err  error
}

func (e PlanError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// PlanErrors collects errors from a batch run.
type PlanErrors struct {
	Errors []PlanError
	mu     sync.Mutex
}

// Add appends an error to the collection (thread-safe).
func (e *PlanErrors) Add(path string, err error) {
	e.mu.Lock()
	e.Errors = append(e.Errors, PlanError{Path: path, Err: err})
	e.mu.Unlock()
}

// HasErrors returns true if any errors were collected.
func (e *PlanErrors) HasErrors() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.Errors) > 0
}

// Error implements the error interface.
func (e *PlanErrors) Error() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d plans failed (first: %v)", len(e.Errors), e.Errors[0])
}

// ProgressFunc is called after each plan finishes.
type ProgressFunc func()

// Map evaluates plans in parallel, preserving input order in the results.
// A failed plan leaves its slot at the zero value and records the error.
// If maxWorkers is <= 0, defaults to NumCPU.
func Map[T any](paths []string, maxWorkers int, fn func(string) (T, error), onProgress ProgressFunc) ([]T, *PlanErrors) {
	if len(paths) == 0 {
		return nil, nil
	}

	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}

	results := make([]T, len(paths))
	errs := &PlanErrors{}

	p := pool.New().WithMaxGoroutines(maxWorkers)
	for i, path := range paths {
		p.Go(func() {
			result, err := fn(path)
			if err != nil {
				errs.Add(path, err)
			} else {
				results[i] = result
			}
			if onProgress != nil {
				onProgress()
			}
		})
	}
	p.Wait()

	if !errs.HasErrors() {
		return results, nil
	}
	return results, errs
}
