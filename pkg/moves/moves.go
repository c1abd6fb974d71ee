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

// Package moves implements the fixed, ordered list of move labels that a
// single game is played with. A move's position in the list is its
// canonical index, which the rule engine uses for all cyclic comparisons.
package moves

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// MinMoves is the smallest number of moves a game can be played with.
const MinMoves = 3

// Move is a reference into a Set, identified by both its label and its
// canonical index. Moves are always obtained from a Set.
type Move struct {
	Label string
	Index int
}

// String returns the label of the move.
func (move Move) String() string {
	return move.Label
}

// Set is an immutable, ordered list of distinct move labels. The number of
// moves is always odd and at least MinMoves.
type Set struct {
	labels []string
	index  map[string]int
}

// New creates a new move Set from the given labels. The labels are compared
// case-sensitively. A *ConfigurationError is returned if the number of
// labels is even or less than MinMoves, or if any label is repeated.
func New(labels ...string) (*Set, error) {
	if len(labels) < MinMoves || len(labels)%2 == 0 {
		return nil, &ConfigurationError{Count: len(labels)}
	}

	if duplicates := lo.FindDuplicates(labels); len(duplicates) > 0 {
		return nil, &ConfigurationError{Count: len(labels), Duplicates: duplicates}
	}

	set := Set{
		labels: make([]string, len(labels)),
		index:  make(map[string]int, len(labels)),
	}

	copy(set.labels, labels)
	for i, label := range set.labels {
		set.index[label] = i
	}

	return &set, nil
}

// Len returns the number of moves in the Set.
func (set *Set) Len() int {
	return len(set.labels)
}

// Labels returns a copy of the Set's labels in canonical order.
func (set *Set) Labels() []string {
	return append([]string(nil), set.labels...)
}

// At returns the move with the given canonical index.
func (set *Set) At(index int) (Move, bool) {
	if index < 0 || index >= len(set.labels) {
		return Move{}, false
	}

	return Move{Label: set.labels[index], Index: index}, true
}

// Lookup returns the move with the given label.
func (set *Set) Lookup(label string) (Move, bool) {
	index, found := set.index[label]
	if !found {
		return Move{}, false
	}

	return Move{Label: label, Index: index}, true
}

// Contains reports whether the given move belongs to the Set, i.e. both its
// label and index agree with the Set's ordering.
func (set *Set) Contains(move Move) bool {
	index, found := set.index[move.Label]
	return found && index == move.Index
}

// String returns the labels of the Set separated by spaces.
func (set *Set) String() string {
	return strings.Join(set.labels, " ")
}

// ConfigurationError is returned when a list of labels can't be used as a
// move Set: either the number of labels is invalid or labels are repeated.
type ConfigurationError struct {
	Count      int      // number of labels provided
	Duplicates []string // labels which appear more than once
}

func (err *ConfigurationError) Error() string {
	if len(err.Duplicates) > 0 {
		return fmt.Sprintf("moves must be non-repeating, found repeated %s", strings.Join(err.Duplicates, ", "))
	}

	return fmt.Sprintf("an odd number (>= %d) of moves is required, got %d", MinMoves, err.Count)
}
