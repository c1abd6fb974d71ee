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

package game

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"laptudirm.com/x/fairplay/pkg/commit"
	"laptudirm.com/x/fairplay/pkg/rules"
)

// Receipt is the transcript of a resolved round. It carries everything
// needed to check the published commitment independently.
type Receipt struct {
	ID    string   `yaml:"id"`
	Moves []string `yaml:"moves"`

	Tag string `yaml:"hmac"`
	Key string `yaml:"key"`

	Human    string        `yaml:"human"`
	Computer string        `yaml:"computer"`
	Outcome  rules.Outcome `yaml:"outcome"` // human's move against the computer's
}

// Verify recomputes the commitment tag from the disclosed key and the
// computer's move and checks it against the published tag.
func (receipt *Receipt) Verify() error {
	return commit.Verify(receipt.Key, receipt.Computer, receipt.Tag)
}

// Verdict describes the Outcome from the human's point of view.
func (receipt *Receipt) Verdict() string {
	switch receipt.Outcome {
	case rules.FirstWins:
		return "You win!"
	case rules.SecondWins:
		return "Computer wins!"
	default:
		return "Draw"
	}
}

// WriteYAML writes the Receipt to w as a YAML document.
func (receipt *Receipt) WriteYAML(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(receipt); err != nil {
		return fmt.Errorf("encode receipt: %w", err)
	}

	return encoder.Close()
}

// ReadReceipt decodes a Receipt written by WriteYAML.
func ReadReceipt(r io.Reader) (*Receipt, error) {
	var receipt Receipt
	if err := yaml.NewDecoder(r).Decode(&receipt); err != nil {
		return nil, fmt.Errorf("decode receipt: %w", err)
	}

	return &receipt, nil
}
