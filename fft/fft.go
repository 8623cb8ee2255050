// SPDX-License-Identifier: EPL-2.0

package fft

import (
	"fmt"
	"slices"
	"strings"
)

// Transform is a forward DFT executor for one fixed length.
//
// Executors may keep scratch memory between calls and are not safe for
// concurrent use. Plan one executor per goroutine.
type Transform interface {
	// Len is the transform length the executor was planned for.
	Len() int
	// Forward writes the DFT of src into dst. Both must have Len() elements.
	Forward(dst, src []complex128) error
}

// Planner builds Transform executors for a given length.
type Planner interface {
	Plan(n int) (Transform, error)
}

// PlannerFunc adapts a plain constructor to the Planner interface.
type PlannerFunc func(n int) (Transform, error)

// Plan calls f(n).
func (f PlannerFunc) Plan(n int) (Transform, error) { return f(n) }

// Built-in planners.
var (
	Algo  Planner = PlannerFunc(NewAlgo)
	Gonum Planner = PlannerFunc(NewGonum)
	GoDSP Planner = PlannerFunc(NewGoDSP)
	Naive Planner = PlannerFunc(NewNaive)
)

// DefaultBackend is the backend name used when none is configured.
const DefaultBackend = "algo"

var backends = map[string]Planner{
	"algo":  Algo,
	"gonum": Gonum,
	"godsp": GoDSP,
	"naive": Naive,
}

// Lookup returns the planner registered under name (case-insensitive).
// An empty name selects DefaultBackend.
func Lookup(name string) (Planner, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultBackend
	}

	p, ok := backends[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownBackend, name, strings.Join(Names(), ", "))
	}

	return p, nil
}

// Names lists the registered backend names in sorted order.
func Names() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

func checkSize(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}

	return nil
}

func checkBuffers(n int, dst, src []complex128) error {
	if len(dst) != n || len(src) != n {
		return fmt.Errorf("%w: plan %d, dst %d, src %d", ErrLengthMismatch, n, len(dst), len(src))
	}

	return nil
}
