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
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/metocean-validator/pkg/finding"
	"github.com/NVIDIA/metocean-validator/pkg/runner"
	"github.com/NVIDIA/metocean-validator/pkg/serializer"
	"github.com/NVIDIA/metocean-validator/pkg/server"
	"github.com/NVIDIA/metocean-validator/pkg/settings"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Validate a dataset file or a directory of dataset files",
		ArgsUsage:             "PATH [OPTION...]",
		Description: `Validate a metocean dataset against the parameter configuration served by
the configuration service.

PATH is a single file or a directory of files (.nc, .json, .yaml) that make up
one dataset. Directories are validated in batches of files concatenated along
the Time dimension. The run stops at the first batch with errors.

Run options may be given as flags or as free-form tokens after PATH:
  --check-min-max-full          check min/max over the whole array
  --skip-random-min-max-check   skip the sampled min/max check
  --skip-warnings               do not run warning-level checks
  --batch-size=N                files per batch (default 1000)
  --set-url-to-parameters=URL   read parameter configuration from URL

# Examples

Validate a single file:
  metval validate /data/ws_20200101_20201231_T8784.nc

Validate a directory with a full min/max scan, failing the command on errors:
  metval validate /data/ws --check-min-max-full --fail-on-error

Write the result as JSON and expose metrics while the run is in progress:
  metval validate /data/ws -t json -o result.json --metrics-addr :9090`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "settings file (YAML or JSON)",
				Sources: cli.EnvVars("METVAL_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "config-url",
				Usage:   "configuration service base URL",
				Sources: cli.EnvVars("METVAL_CONFIG_URL"),
			},
			&cli.StringFlag{
				Name:  "set-url-to-parameters",
				Usage: "URL of the parameter configuration endpoint",
			},
			&cli.BoolFlag{
				Name:  "check-min-max-full",
				Usage: "check min/max over the whole array instead of a sample",
			},
			&cli.BoolFlag{
				Name:  "skip-random-min-max-check",
				Usage: "skip the sampled min/max check",
			},
			&cli.BoolFlag{
				Name:  "skip-warnings",
				Usage: "do not run warning-level checks",
			},
			&cli.IntFlag{
				Name:  "batch-size",
				Usage: "maximum number of files opened together",
			},
			&cli.UintFlag{
				Name:  "seed",
				Usage: "seed for the random samplers (default: random, logged at start)",
			},
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "exit with non-zero status if the dataset has errors",
			},
			&cli.StringFlag{
				Name:  "metrics-addr",
				Usage: "serve Prometheus metrics on this address during the run (e.g. :9090)",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) == 0 {
				return fmt.Errorf("a dataset path is required")
			}
			path := args[0]

			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			s, rest, err := runSettings(cmd, args[1:])
			if err != nil {
				return fmt.Errorf("invalid run options: %w", err)
			}
			if len(rest) > 0 {
				slog.Warn("ignoring unrecognized options", "options", rest)
			}

			if addr := cmd.String("metrics-addr"); addr != "" {
				stop := startMetricsServer(ctx, addr)
				defer stop()
			}

			result := validate(ctx, s, path)

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			var out any = newDocument(result, path)
			if outFormat == serializer.FormatTable {
				out = newReport(result)
			}
			if err := ser.Serialize(ctx, out); err != nil {
				return fmt.Errorf("failed to serialize validation result: %w", err)
			}

			if cmd.Bool("fail-on-error") && result.HasErrors() {
				return fmt.Errorf("validation failed: %d error(s) found", len(result.Errors))
			}
			return nil
		},
	}
}

func validate(ctx context.Context, s settings.Settings, path string) *finding.Result {
	slog.Info("validating dataset", "path", path, "batchSize", s.BatchSize)
	return runner.New(runner.WithSettings(s)).Run(ctx, path)
}

// startMetricsServer serves metrics for the duration of the run and
// returns the function that stops it.
func startMetricsServer(ctx context.Context, addr string) func() {
	ctx, cancel := context.WithCancel(ctx)
	srv := server.New(addr)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := srv.Start(ctx); err != nil {
			slog.Error("metrics server failed", "error", err)
		}
	}()
	srv.SetReady(true)
	return func() {
		srv.SetReady(false)
		cancel()
		<-done
	}
}
