package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gradients/internal/tui/gallery"
)

type galleryOptions struct {
	strategy    string
	swatchWidth int
}

func newGalleryCmd(flags *rootFlags) *cobra.Command {
	opts := galleryOptions{}

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Open the interactive gradient gallery",
		Long: `Open the interactive gallery. Use the arrow keys to move between tags,
enter to filter by the focused tag and esc to show every gradient again.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.strategy, "strategy", string(gallery.StrategyContext), "How components receive the filter: context or explicit")
	cmd.Flags().IntVar(&opts.swatchWidth, "swatch-width", 0, "Width of each gradient bar in cells (0 for default)")

	return cmd
}

func runGallery(cmd *cobra.Command, flags *rootFlags, opts galleryOptions) error {
	strategy, err := gallery.ParseStrategy(opts.strategy)
	if err != nil {
		return newCommandError("open gallery", "parsing --strategy", err, "Use --strategy context or --strategy explicit.")
	}

	log, closeLog, err := flags.newLogger(cmd, true)
	if err != nil {
		return newCommandError("open gallery", "creating logger", err, "Check that the --log-file directory exists and is writable.")
	}
	defer closeLog()

	ds, err := flags.loadDataset("open gallery", log)
	if err != nil {
		return err
	}

	m := gallery.New(cmd.Context(), ds, gallery.Options{
		Strategy:    strategy,
		Logger:      log,
		SwatchWidth: opts.swatchWidth,
		UseUnicode:  supportsUnicode(os.Stdout),
	})
	defer m.Close()

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		log.Error(err, "gallery execution failed")
		return newCommandError("open gallery", "running the terminal UI", err, "Run gradients list for non-interactive output.")
	}

	return nil
}
