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

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/fairplay/pkg/game"
	"laptudirm.com/x/fairplay/pkg/moves"
	"laptudirm.com/x/fairplay/pkg/rules"
)

// ErrNoInput is returned when the input ends, or an empty line is entered,
// before the human has chosen a move.
var ErrNoInput = errors.New("console: no move entered")

// Console plays a game.Session interactively, reading the human's choices
// line by line and writing the menu and the results.
type Console struct {
	in  *bufio.Reader
	out io.Writer

	win, lose, draw, key *color.Color
}

// New creates a Console reading from in and writing to out. Outcomes are
// colored only if paint is set.
func New(in io.Reader, out io.Writer, paint bool) *Console {
	console := Console{
		in:  bufio.NewReader(in),
		out: out,

		win:  color.New(color.FgGreen, color.Bold),
		lose: color.New(color.FgRed, color.Bold),
		draw: color.New(color.FgYellow),
		key:  color.New(color.FgCyan),
	}

	for _, c := range []*color.Color{console.win, console.lose, console.draw, console.key} {
		if paint {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return &console
}

// Run publishes the session's commitment, then prompts until the human
// picks a move or exits. The Receipt of the round is returned, or nil if
// the human chose to exit.
func (console *Console) Run(session *game.Session) (*game.Receipt, error) {
	set := session.Moves()

	console.printf("HMAC: %s\n", session.Publish())

	for {
		console.menu(set)

		line, err := console.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read move: %w", err)
		}

		input := strings.TrimSpace(line)
		if input == "" {
			return nil, ErrNoInput
		}

		switch choice, ok := parse(input, set.Len()); {
		case !ok:
			logrus.WithField("input", input).Debug("Rejected menu input")
			console.printf("Invalid input. Please try again.\n")

			// the line was the last of the input
			if errors.Is(err, io.EOF) {
				return nil, ErrNoInput
			}

		case choice == exit:
			console.printf("Exiting the game.\n")
			return nil, nil

		case choice == help:
			if _, err := rules.NewTable(set).WriteTo(console.out); err != nil {
				return nil, err
			}

			if errors.Is(err, io.EOF) {
				return nil, ErrNoInput
			}

		default:
			human, _ := set.At(choice - 1)
			receipt, err := session.Play(human)
			if err != nil {
				return nil, err
			}

			console.result(receipt)
			return receipt, nil
		}
	}
}

func (console *Console) menu(set *moves.Set) {
	console.printf("Available moves:\n")
	for i, label := range set.Labels() {
		console.printf("%d - %s\n", i+1, label)
	}
	console.printf("0 - exit\n")
	console.printf("? - help\n")
	console.printf("Enter your move: ")
}

func (console *Console) result(receipt *game.Receipt) {
	verdict := console.draw
	switch receipt.Outcome {
	case rules.FirstWins:
		verdict = console.win
	case rules.SecondWins:
		verdict = console.lose
	}

	console.printf("Your move: %s\n", receipt.Human)
	console.printf("Computer move: %s\n", receipt.Computer)
	console.printf("%s\n", verdict.Sprint(receipt.Verdict()))
	console.printf("HMAC key: %s\n", console.key.Sprint(receipt.Key))
}

func (console *Console) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(console.out, format, a...)
}

// Menu choices which aren't moves.
const (
	exit = 0
	help = -1
)

// parse interprets a line of menu input: 0 to exit, ? for help, or the
// number of a move in [1, n]. ok is false for anything else.
func parse(input string, n int) (choice int, ok bool) {
	if input == "?" {
		return help, true
	}

	choice, err := strconv.Atoi(input)
	if err != nil || choice < 0 || choice > n {
		return 0, false
	}

	return choice, true
}
