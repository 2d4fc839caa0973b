// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/metocean-validator/pkg/serializer"
	"github.com/NVIDIA/metocean-validator/pkg/settings"
)

// Flags hold their parsed values, so every command tree gets its own.
func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatTable),
		Usage:   fmt.Sprintf("output format (supported: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

// parseOutputFormat reads and checks the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", f)
	}
	return f, nil
}

// runSettings builds the run options: defaults, then the settings file,
// then flags, then free-form option tokens. Unrecognized tokens are
// returned.
func runSettings(cmd *cli.Command, tokens []string) (settings.Settings, []string, error) {
	s := settings.Default()
	if path := cmd.String("config"); path != "" {
		loaded, err := settings.Load(path)
		if err != nil {
			return s, nil, err
		}
		s = loaded
	}

	if cmd.Bool("check-min-max-full") {
		s.CheckMinMaxFull = true
	}
	if cmd.Bool("skip-random-min-max-check") {
		s.SkipMinMaxCheck = true
	}
	if cmd.Bool("skip-warnings") {
		s.SkipWarnings = true
	}
	if cmd.IsSet("batch-size") {
		s.BatchSize = int(cmd.Int("batch-size"))
	}
	if cmd.IsSet("config-url") {
		s.ServiceURL = strings.TrimRight(cmd.String("config-url"), "/")
	}
	if cmd.IsSet("set-url-to-parameters") {
		// "--set-url-to-parameters =URL" arrives with the separator attached
		s.ParametersURL = strings.TrimSpace(strings.TrimPrefix(cmd.String("set-url-to-parameters"), "="))
	}
	if cmd.IsSet("seed") {
		s.Seed = uint64(cmd.Uint("seed"))
	}

	rest, err := s.Apply(tokens)
	return s, rest, err
}
