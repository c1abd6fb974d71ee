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

	"laptudirm.com/x/fairplay/internal/fairplay/config"
	"laptudirm.com/x/fairplay/internal/fairplay/console"
	"laptudirm.com/x/fairplay/pkg/game"
	"laptudirm.com/x/fairplay/pkg/moves"
)

const example = "fairplay rock paper scissors"

func Root(cfg config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "fairplay [flags] [--] move move move...",
		Short: "Play provably fair rock-paper-scissors with any odd number of moves",
		Long: heredoc.Doc(`fairplay plays a single round of a generalized rock-paper-scissors
			against the computer. The moves are given as arguments, their number
			must be odd and at least 3, and no move may be repeated.

			Before you choose, the computer commits to its move by showing an
			HMAC-SHA256 of it, keyed with a fresh random key. After the round the
			key is disclosed, so you can recompute the HMAC of the computer's move
			and check that it did not change its mind. See 'fairplay verify'.

			Every move beats the (n-1)/2 moves before it in the list, and loses to
			the (n-1)/2 moves after it, wrapping around at the ends.

			Use -- before the moves if one of them is named like a command.`),
		Example: heredoc.Doc(`
			$ fairplay rock paper scissors
			$ fairplay rock paper scissors lizard spock
			$ fairplay --output yaml -- rules verify help`),
		Args: cobra.ArbitraryArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := newSet(args)
			if err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			session, err := game.New(set, game.Options{KeyBytes: cfg.KeyBytes})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			receipt, err := console.New(cmd.InOrStdin(), out, cfg.Colorize(out)).Run(session)
			if err != nil || receipt == nil {
				return err
			}

			if cfg.Output == config.OutputYAML {
				fmt.Fprintln(out, "---")
				return receipt.WriteYAML(out)
			}

			return nil
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show Fairplay's Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")

	root.Flags().IntVar(&cfg.KeyBytes, "key-bytes", cfg.KeyBytes, "Size of the secret HMAC key in bytes (>= 32)")
	root.Flags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Format of the round's receipt: text or yaml")
	root.Flags().StringVar(&cfg.Color, "color", cfg.Color, "Color the outcome: auto, always, or never")

	versionStr := "v0.1.0\n"
	root.SetVersionTemplate(versionStr)
	root.Version = versionStr

	// The arguments are move names, not commands to complete.
	root.CompletionOptions.DisableDefaultCmd = true

	// Register the various commands.
	root.AddCommand(Rules())
	root.AddCommand(Verify())

	return root
}

// newSet builds the move set from the command line arguments, pointing the
// user to an example invocation if they can't be used.
func newSet(args []string) (*moves.Set, error) {
	set, err := moves.New(args...)

	var configErr *moves.ConfigurationError
	if errors.As(err, &configErr) {
		return nil, fmt.Errorf("%w (example: %s)", err, example)
	}

	return set, err
}
