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

package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/fairplay/internal/fairplay/config"
	"laptudirm.com/x/fairplay/internal/fairplay/console"
	"laptudirm.com/x/fairplay/pkg/commit"
	"laptudirm.com/x/fairplay/pkg/game"
	"laptudirm.com/x/fairplay/pkg/moves"
)

var defaults = config.Config{
	KeyBytes: commit.KeySize,
	Output:   config.OutputText,
	Color:    config.ColorNever,
}

func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := Root(defaults)
	root.SetArgs(args)
	root.SetIn(strings.NewReader(input))
	root.SetOut(&out)
	root.SetErr(&out)

	err := root.Execute()
	return out.String(), err
}

// receiptOf extracts the YAML receipt printed after a round.
func receiptOf(t *testing.T, out string) *game.Receipt {
	t.Helper()
	start := strings.Index(out, "---\n")
	require.NotEqual(t, -1, start, out)

	receipt, err := game.ReadReceipt(strings.NewReader(out[start:]))
	require.NoError(t, err)
	return receipt
}

func TestRootRejectsInvalidMoves(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"none", nil},
		{"two", []string{"rock", "paper"}},
		{"four", []string{"rock", "paper", "scissors", "lizard"}},
		{"repeated", []string{"rock", "paper", "rock"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "1\n", tt.args...)

			var configErr *moves.ConfigurationError
			require.True(t, errors.As(err, &configErr), "%v", err)
			assert.Contains(t, err.Error(), "example: fairplay rock paper scissors")
			assert.Empty(t, out)
		})
	}
}

func TestRootPlaysRound(t *testing.T) {
	out, err := execute(t, "2\n", "rock", "paper", "scissors")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "HMAC: "))
	assert.Contains(t, out, "Your move: paper\n")
	assert.Contains(t, out, "HMAC key: ")
	assert.NotContains(t, out, "---\n")
}

func TestRootYAMLReceipt(t *testing.T) {
	out, err := execute(t, "1\n", "--output", "yaml", "--key-bytes", "48", "rock", "paper", "scissors", "lizard", "spock")
	require.NoError(t, err)

	receipt := receiptOf(t, out)
	assert.Equal(t, "rock", receipt.Human)
	assert.Len(t, receipt.Key, 96)
	assert.Equal(t, []string{"rock", "paper", "scissors", "lizard", "spock"}, receipt.Moves)
	assert.Contains(t, out, "HMAC: "+receipt.Tag+"\n")
	assert.NoError(t, receipt.Verify())
}

func TestRootExit(t *testing.T) {
	out, err := execute(t, "0\n", "rock", "paper", "scissors")
	assert.NoError(t, err)
	assert.NotContains(t, out, "HMAC key:")
}

func TestRootNoInput(t *testing.T) {
	_, err := execute(t, "", "rock", "paper", "scissors")
	assert.ErrorIs(t, err, console.ErrNoInput)
}

func TestRootInvalidFlags(t *testing.T) {
	_, err := execute(t, "1\n", "--output", "json", "rock", "paper", "scissors")
	assert.ErrorContains(t, err, "unknown output format")

	_, err = execute(t, "1\n", "--key-bytes", "8", "rock", "paper", "scissors")
	assert.ErrorContains(t, err, "at least 32 bytes")
}

func TestRootMovesNamedLikeCommands(t *testing.T) {
	out, err := execute(t, "3\n", "--", "rules", "verify", "help")
	require.NoError(t, err)
	assert.Contains(t, out, "1 - rules\n2 - verify\n3 - help\n")
	assert.Contains(t, out, "Your move: help\n")
}

func TestRules(t *testing.T) {
	out, err := execute(t, "", "rules", "rock", "paper", "scissors")
	require.NoError(t, err)
	assert.Contains(t, out, "║ rock     │ Draw     │ Lose     │ Win      ║\n")

	_, err = execute(t, "", "rules", "rock", "paper")
	var configErr *moves.ConfigurationError
	assert.True(t, errors.As(err, &configErr))
}

func TestVerify(t *testing.T) {
	key, err := commit.GenerateKey(nil, commit.KeySize)
	require.NoError(t, err)
	tag := commit.Sign(key, "lizard")

	out, err := execute(t, "", "verify", "--key", key, "--tag", tag, "lizard")
	require.NoError(t, err)
	assert.Contains(t, out, "Commitment verified")

	_, err = execute(t, "", "verify", "--key", key, "--tag", tag, "spock")
	assert.ErrorIs(t, err, commit.ErrInvalidCommitment)

	_, err = execute(t, "", "verify", "--key", key, "lizard")
	assert.ErrorContains(t, err, "--tag are required")

	_, err = execute(t, "", "verify", "--key", key, "--tag", tag)
	assert.ErrorContains(t, err, "exactly one move")
}

func TestVerifyReceipt(t *testing.T) {
	out, err := execute(t, "3\n", "-o", "yaml", "rock", "paper", "scissors")
	require.NoError(t, err)
	yaml := out[strings.Index(out, "---\n"):]

	out, err = execute(t, yaml, "verify", "--receipt")
	require.NoError(t, err)
	assert.Contains(t, out, "Commitment verified")

	forged := strings.Replace(yaml, "computer: ", "computer: x", 1)
	_, err = execute(t, forged, "verify", "--receipt")
	assert.ErrorIs(t, err, commit.ErrInvalidCommitment)

	_, err = execute(t, yaml, "verify", "--receipt", "rock")
	assert.Error(t, err)
}
