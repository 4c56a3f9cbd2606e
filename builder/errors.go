// SPDX-License-Identifier: MIT
// Package: transitpath/builder
//
// errors.go - sentinel errors. Constructors wrap them with method context:
// fmt.Errorf("%s: ...: %w", method, ..., ErrX).

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a programmer error such as a nil Constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
