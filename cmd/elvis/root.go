// Copyright 2025 walteh LLC
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

package main

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/elvis/cmd/elvis/commands"
	"github.com/walteh/elvis/cmd/elvis/opts"
	"github.com/walteh/elvis/pkg/config"
	"github.com/walteh/elvis/pkg/confirm"
	"gitlab.com/tozd/go/errors"
)

// newRootCmd builds the command tree around o
func newRootCmd(o *opts.RootOpts, logOut io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "elvis",
		Short: "Preview filesystem commands before running them",
		Long: `elvis plans touch, mv and rm, shows what would change, and applies the
plan only once you confirm it.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd, o.Debug, logOut)
			cmd.SetContext(ctx)
			return resolveOpts(cmd, o)
		},
	}

	addRootFlags(cmd, o)

	cmd.AddCommand(
		commands.NewTouchCmd(o),
		commands.NewMvCmd(o),
		commands.NewRmCmd(o),
		newVersionCmd(),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&o.ConfigFile, "config", "c", "", "config file path (default ./"+config.DefaultFile+" if present)")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&o.NoColor, "no-color", false, "disable colored output")
	cmd.PersistentFlags().BoolVar(&o.SummaryOnly, "summary-only", false, "only print the plan summary")
	cmd.PersistentFlags().IntVarP(&o.MaxEntries, "max-entries", "m", 50, "maximum actions listed per group")
	cmd.PersistentFlags().BoolVarP(&o.AssumeYes, "yes", "y", false, "apply without asking for confirmation")
}

// setupLogging configures zerolog based on flags
func setupLogging(cmd *cobra.Command, debug bool, out io.Writer) context.Context {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: out}).Level(level).With().Timestamp().Logger()
	return logger.WithContext(cmd.Context())
}

// resolveOpts loads the config file and fills in what flags left unset
func resolveOpts(cmd *cobra.Command, o *opts.RootOpts) error {
	ctx := cmd.Context()

	if o.Cwd == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return errors.Errorf("getting working directory: %w", err)
		}
		o.Cwd = cwd
	}

	cfg, err := config.Load(ctx, o.Cwd, o.ConfigFile)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}
	o.Config = cfg

	flags := cmd.Flags()
	if !flags.Changed("no-color") {
		o.NoColor = cfg.NoColor
	}
	if !flags.Changed("summary-only") {
		o.SummaryOnly = cfg.SummaryOnly
	}
	if !flags.Changed("max-entries") {
		o.MaxEntries = cfg.MaxEntries
	}
	if !flags.Changed("yes") {
		o.AssumeYes = cfg.AssumeYes
	}
	if o.MaxEntries < 1 {
		return errors.Errorf("--max-entries must be at least 1")
	}

	if o.Out == nil {
		o.Out = cmd.OutOrStdout()
	}
	if o.Confirmer == nil {
		o.Confirmer = confirm.NewPrompt()
	}

	return nil
}
