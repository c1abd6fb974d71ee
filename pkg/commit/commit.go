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

// Package commit implements the commitment scheme which lets the automated
// player fix its move before the human moves, and prove afterwards that it
// did not change it.
//
// The commitment tag is HMAC-SHA256 over the move's label, keyed with a
// random secret key. The tag is published at once, while the key and the
// move are disclosed only after the round is over. Anyone can then
// recompute the tag from the disclosed key and move and compare it with the
// published one.
package commit

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math"

	"laptudirm.com/x/fairplay/pkg/moves"
)

// KeySize is the minimum size of a secret key in bytes (256 bits).
const KeySize = 32

var (
	ErrKeyTooShort       = errors.New("commit: key shorter than 256 bits")
	ErrInvalidCommitment = errors.New("commit: invalid commitment")
)

// GenerateKey reads size random bytes from reader and returns them encoded
// as a lowercase hexadecimal string. If reader is nil, crypto/rand's Reader
// is used; any other reader must be cryptographically secure as well.
func GenerateKey(reader io.Reader, size int) (string, error) {
	if size < KeySize {
		return "", fmt.Errorf("%w: %d bytes", ErrKeyTooShort, size)
	}

	if reader == nil {
		reader = rand.Reader
	}

	buf := make([]byte, size)
	if _, err := io.ReadFull(reader, buf); err != nil {
		return "", fmt.Errorf("generate key: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

// ChooseMove selects a move from the set uniformly at random using bytes
// read from reader (crypto/rand's Reader if nil).
func ChooseMove(reader io.Reader, set *moves.Set) (moves.Move, error) {
	if reader == nil {
		reader = rand.Reader
	}

	index, err := uniform(reader, uint64(set.Len()))
	if err != nil {
		return moves.Move{}, fmt.Errorf("choose move: %w", err)
	}

	move, _ := set.At(int(index))
	return move, nil
}

// uniform returns a uniformly distributed integer in [0, n). Random 64-bit
// values falling into the incomplete last block of n values are rejected
// so that the modulo reduction is unbiased.
func uniform(reader io.Reader, n uint64) (uint64, error) {
	// 2^64 mod n, i.e. the size of the incomplete block
	excess := (math.MaxUint64%n + 1) % n

	var buf [8]byte
	for {
		if _, err := io.ReadFull(reader, buf[:]); err != nil {
			return 0, err
		}

		value := binary.BigEndian.Uint64(buf[:])
		if excess == 0 || value <= math.MaxUint64-excess {
			return value % n, nil
		}
	}
}

// Sign computes the commitment tag of the given message under the given
// key: HMAC-SHA256 encoded as lowercase hexadecimal. The key is used as is,
// so a hex-encoded key from GenerateKey is keyed by its text.
func Sign(key, message string) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks that tag is the commitment tag of message under key.
func Verify(key, message, tag string) error {
	expected := Sign(key, message)
	if !hmac.Equal([]byte(expected), []byte(tag)) {
		return ErrInvalidCommitment
	}

	return nil
}

// Commitment is a commitment to a randomly chosen move. The key and the
// move are kept private until Reveal, while the tag can be published as
// soon as the Commitment is created.
type Commitment struct {
	key  string
	move moves.Move
	tag  string
}

// New generates a fresh key of the given size, chooses a random move from
// the set, and commits to it. Both are drawn from reader, which defaults
// to crypto/rand's Reader.
func New(reader io.Reader, set *moves.Set, size int) (*Commitment, error) {
	key, err := GenerateKey(reader, size)
	if err != nil {
		return nil, err
	}

	move, err := ChooseMove(reader, set)
	if err != nil {
		return nil, err
	}

	return &Commitment{
		key:  key,
		move: move,
		tag:  Sign(key, move.Label),
	}, nil
}

// Tag returns the public commitment tag.
func (commitment *Commitment) Tag() string {
	return commitment.tag
}

// Reveal discloses the secret key and the committed move.
func (commitment *Commitment) Reveal() (key string, move moves.Move) {
	return commitment.key, commitment.move
}
