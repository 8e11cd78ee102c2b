// Package parallel runs independent work items across a bounded set of
// goroutines and combines their results deterministically.
//
// Map keeps input order. Reduce folds contiguous chunks into private
// accumulators and merges them in chunk order, so the result depends only on
// the combine function being associative, never on scheduling or worker count.
package parallel

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// minChunk is the smallest number of items handed to one goroutine.
// Below it the work runs inline on the caller's goroutine.
const minChunk = 16

var workers atomic.Int32

// SetWorkers sets the maximum number of goroutines used by Map and Reduce.
// Zero or negative restores the default of GOMAXPROCS.
func SetWorkers(n int) {
	if n < 0 {
		n = 0
	}
	workers.Store(int32(n))
}

// Workers reports the current goroutine limit.
func Workers() int {
	if n := int(workers.Load()); n > 0 {
		return n
	}
	return runtime.GOMAXPROCS(0)
}

// span is a half-open index range [lo, hi).
type span struct{ lo, hi int }

// chunks splits [0, n) into at most Workers() contiguous spans of at least
// minChunk items each (the last span may be shorter).
func chunks(n int) []span {
	if n <= 0 {
		return nil
	}
	k := min(Workers(), (n+minChunk-1)/minChunk)
	if k < 1 {
		k = 1
	}
	size := (n + k - 1) / k
	out := make([]span, 0, k)
	for lo := 0; lo < n; lo += size {
		out = append(out, span{lo: lo, hi: min(lo+size, n)})
	}
	return out
}

// Map applies fn to every element of in and returns the results in input
// order. fn must not depend on other elements.
func Map[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, len(in))
	parts := chunks(len(in))
	if len(parts) <= 1 {
		for i, v := range in {
			out[i] = fn(v)
		}
		return out
	}

	var g errgroup.Group
	g.SetLimit(len(parts))
	for _, s := range parts {
		g.Go(func() error {
			for i := s.lo; i < s.hi; i++ {
				out[i] = fn(in[i])
			}
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// Reduce folds the indices [0, n) into accumulators created by newAcc, one
// per chunk, then merges the chunk accumulators with combine. combine must
// be associative; with a commutative combine the result is also independent
// of chunking. For n <= 0 it returns newAcc().
func Reduce[A any](n int, newAcc func() A, fold func(acc A, i int) A, combine func(a, b A) A) A {
	parts := chunks(n)
	if len(parts) <= 1 {
		acc := newAcc()
		for i := 0; i < n; i++ {
			acc = fold(acc, i)
		}
		return acc
	}

	partial := make([]A, len(parts))
	var g errgroup.Group
	g.SetLimit(len(parts))
	for k, s := range parts {
		g.Go(func() error {
			acc := newAcc()
			for i := s.lo; i < s.hi; i++ {
				acc = fold(acc, i)
			}
			partial[k] = acc
			return nil
		})
	}
	_ = g.Wait()

	result := partial[0]
	for _, p := range partial[1:] {
		result = combine(result, p)
	}
	return result
}
