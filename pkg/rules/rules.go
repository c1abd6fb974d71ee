// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package rules implements the half-cycle rule, which generalizes
// rock-paper-scissors to any odd number of cyclically ordered moves.
//
// Walking forward around the cycle from a move, the next (n-1)/2 moves
// beat it and the (n-1)/2 moves after those lose to it. With the moves
// rock, paper, and scissors this is exactly the classic game.
package rules

import (
	"errors"
	"fmt"

	"laptudirm.com/x/fairplay/pkg/moves"
)

// ErrInvalidMove is returned when a move doesn't belong to the move set
// the outcome is being resolved over.
var ErrInvalidMove = errors.New("rules: move not in move set")

// Outcome represents the result of a single move against another.
type Outcome int

const (
	Draw       Outcome = iota // Both players chose the same move
	FirstWins                 // The first move beats the second
	SecondWins                // The second move beats the first
)

// String returns a string representation of the given Outcome.
func (outcome Outcome) String() string {
	switch outcome {
	case Draw:
		return "Draw"
	case FirstWins:
		return "First wins"
	case SecondWins:
		return "Second wins"
	default:
		return "?"
	}
}

// MarshalText encodes the Outcome as draw, first-wins, or second-wins.
func (outcome Outcome) MarshalText() ([]byte, error) {
	switch outcome {
	case Draw:
		return []byte("draw"), nil
	case FirstWins:
		return []byte("first-wins"), nil
	case SecondWins:
		return []byte("second-wins"), nil
	default:
		return nil, fmt.Errorf("rules: invalid outcome %d", int(outcome))
	}
}

// UnmarshalText decodes an Outcome encoded by MarshalText.
func (outcome *Outcome) UnmarshalText(text []byte) error {
	switch string(text) {
	case "draw":
		*outcome = Draw
	case "first-wins":
		*outcome = FirstWins
	case "second-wins":
		*outcome = SecondWins
	default:
		return fmt.Errorf("rules: invalid outcome %q", text)
	}

	return nil
}

// Flip returns the Outcome as seen with the two moves swapped.
func (outcome Outcome) Flip() Outcome {
	switch outcome {
	case FirstWins:
		return SecondWins
	case SecondWins:
		return FirstWins
	default:
		return outcome
	}
}

// Beats reports whether the move with index winner beats the move with
// index loser in a cycle of n moves, n odd. This is the case when the
// forward distance from loser to winner lies in [1, (n-1)/2].
func Beats(n, winner, loser int) bool {
	distance := ((winner-loser)%n + n) % n
	return distance >= 1 && distance <= (n-1)/2
}

// Decide returns the Outcome of the move with index i against the move
// with index j in a cycle of n moves. The indices must lie in [0, n).
func Decide(n, i, j int) Outcome {
	switch {
	case i == j:
		return Draw
	case Beats(n, j, i):
		return SecondWins
	default:
		return FirstWins
	}
}

// Resolve returns the Outcome of move a against move b. Both moves must
// belong to the given set, otherwise ErrInvalidMove is returned.
func Resolve(set *moves.Set, a, b moves.Move) (Outcome, error) {
	for _, move := range [2]moves.Move{a, b} {
		if !set.Contains(move) {
			return Draw, fmt.Errorf("%w: %q at %d", ErrInvalidMove, move.Label, move.Index)
		}
	}

	return Decide(set.Len(), a.Index, b.Index), nil
}
