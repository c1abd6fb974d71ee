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
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/fairplay/pkg/commit"
	"laptudirm.com/x/fairplay/pkg/game"
)

// fairplay verify
func Verify() *cobra.Command {
	var key, tag string
	var receipt bool

	cmd := &cobra.Command{
		Use:   "verify { --key key --tag hmac move | --receipt }",
		Short: "Check the computer's commitment after a round",
		Long: heredoc.Doc(`verify recomputes the HMAC of the computer's move using the key
			disclosed at the end of a round, and checks it against the HMAC that
			was shown before you chose your move.

			With --receipt, a YAML receipt printed by 'fairplay --output yaml'
			is read from the standard input instead.`),
		Example: heredoc.Doc(`
			$ fairplay verify --key 3f2a... --tag 9bc1... paper
			$ fairplay verify --receipt < receipt.yaml`),

		RunE: func(cmd *cobra.Command, args []string) error {
			if receipt {
				if len(args) > 0 {
					return errors.New("verify: no move expected with --receipt")
				}

				r, err := game.ReadReceipt(cmd.InOrStdin())
				if err != nil {
					return err
				}

				key, tag, args = r.Key, r.Tag, []string{r.Computer}
			}

			if len(args) != 1 {
				return fmt.Errorf("verify: expected exactly one move, got %d", len(args))
			}
			if key == "" || tag == "" {
				return errors.New("verify: both --key and --tag are required")
			}

			logrus.WithField("move", args[0]).WithField("hmac", tag).Debug("Verifying commitment")

			if err := commit.Verify(key, args[0], tag); err != nil {
				return fmt.Errorf("HMAC of %q does not match: %w", args[0], err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\x1b[32mCommitment verified\x1b[0m: %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "Secret key disclosed after the round")
	cmd.Flags().StringVar(&tag, "tag", "", "HMAC shown before the round")
	cmd.Flags().BoolVarP(&receipt, "receipt", "r", false, "Read a YAML receipt from the standard input")

	return cmd
}
