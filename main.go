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

package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/fairplay/internal/fairplay/cmd"
	"laptudirm.com/x/fairplay/internal/fairplay/config"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := fairplay(); err != nil {
		logrus.Fatal(err)
	}
}

func fairplay() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	root := cmd.Root(cfg)
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
