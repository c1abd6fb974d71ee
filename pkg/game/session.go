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

// Package game ties the commitment scheme and the rule engine together into
// a single round between a human and the automated player.
package game

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/fairplay/pkg/commit"
	"laptudirm.com/x/fairplay/pkg/moves"
	"laptudirm.com/x/fairplay/pkg/rules"
)

var (
	ErrNotPublished  = errors.New("game: commitment must be published before playing")
	ErrAlreadyPlayed = errors.New("game: round already played")
)

// Options configures a new Session.
type Options struct {
	// KeyBytes is the size of the secret key, commit.KeySize if zero.
	KeyBytes int

	// Random is the source of randomness for the key and the automated
	// player's move. It must be cryptographically secure; crypto/rand's
	// Reader is used if it is nil.
	Random io.Reader
}

// Session is a single game between a human and the automated player. The
// automated player's move is committed to when the Session is created.
type Session struct {
	ID uuid.UUID

	set        *moves.Set
	commitment *commit.Commitment

	published bool
	played    bool
}

// New starts a new Session over the given move set.
func New(set *moves.Set, options Options) (*Session, error) {
	if options.KeyBytes == 0 {
		options.KeyBytes = commit.KeySize
	}

	commitment, err := commit.New(options.Random, set, options.KeyBytes)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	session := &Session{
		ID:         uuid.New(),
		set:        set,
		commitment: commitment,
	}

	logrus.WithField("game", session.ID).
		WithField("moves", set.Len()).
		Debug("Committed to the automated player's move")

	return session, nil
}

// Moves returns the move set the Session is played with.
func (session *Session) Moves() *moves.Set {
	return session.set
}

// Publish returns the commitment tag, which has to be shown to the human
// before their move is asked for. Play fails until Publish is called.
func (session *Session) Publish() string {
	session.published = true

	logrus.WithField("game", session.ID).
		WithField("hmac", session.commitment.Tag()).
		Trace("Published commitment")

	return session.commitment.Tag()
}

// Play resolves the round against the human's move and discloses the
// secret key in the returned Receipt. It can be called only once.
func (session *Session) Play(human moves.Move) (*Receipt, error) {
	switch {
	case !session.published:
		return nil, ErrNotPublished
	case session.played:
		return nil, ErrAlreadyPlayed
	}

	key, computer := session.commitment.Reveal()
	outcome, err := rules.Resolve(session.set, human, computer)
	if err != nil {
		return nil, err
	}

	session.played = true

	logrus.WithField("game", session.ID).
		WithField("human", human.Label).
		WithField("computer", computer.Label).
		Debugf("Round resolved: %s", outcome)

	return &Receipt{
		ID:       session.ID.String(),
		Moves:    session.set.Labels(),
		Tag:      session.commitment.Tag(),
		Key:      key,
		Human:    human.Label,
		Computer: computer.Label,
		Outcome:  outcome,
	}, nil
}
