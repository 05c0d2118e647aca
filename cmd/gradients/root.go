package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gradients/internal/config"
	"github.com/alexisbeaulieu97/gradients/internal/gradient"
	"github.com/alexisbeaulieu97/gradients/internal/logger"
)

type rootFlags struct {
	verbose  bool
	logFile  string
	dataPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "gradients",
		Short:         "Browse a gallery of colour gradients filtered by tag",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, open the gallery with default options.
			return runGallery(cmd, flags, galleryOptions{})
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write JSON logs to this file")
	cmd.PersistentFlags().StringVar(&flags.dataPath, "data", "", "Gradient dataset YAML file (defaults to the built-in set)")

	cmd.AddCommand(newGalleryCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newTagsCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newLogger builds the command logger. Interactive commands own the terminal,
// so they only log when a log file was requested.
func (f *rootFlags) newLogger(cmd *cobra.Command, interactive bool) (*logger.Logger, func(), error) {
	level := "info"
	if f.verbose {
		level = "debug"
	}

	if f.logFile != "" {
		file, err := os.OpenFile(f.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		log, err := logger.New(logger.Options{Level: level, Writer: file, Component: "cli"})
		if err != nil {
			_ = file.Close()
			return nil, nil, err
		}
		return log, func() { _ = file.Close() }, nil
	}

	if interactive {
		return logger.Nop(), func() {}, nil
	}

	if !f.verbose {
		level = "warn"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr(), Component: "cli"})
	if err != nil {
		return nil, nil, err
	}
	return log, func() {}, nil
}

func (f *rootFlags) loadDataset(operation string, log *logger.Logger) (*gradient.Dataset, error) {
	source := f.dataPath
	if source == "" {
		source = config.BuiltinName
	}
	log = log.With("dataset", source)

	ds, err := config.LoadDataset(f.dataPath)
	if err != nil {
		log.Error(err, "failed to load gradient dataset")
		return nil, newCommandError(operation, "loading gradient dataset", err, "Check the --data file; every gradient needs a unique name and #RRGGBB start and end colours.")
	}

	log.WithFields(map[string]any{"gradients": ds.Len(), "tags": len(ds.UniqueTags())}).Debug("gradient dataset loaded")
	return ds, nil
}
