package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/gradients/internal/filter"
	"github.com/alexisbeaulieu97/gradients/internal/tui/gallery"
)

type listOptions struct {
	tag        string
	jsonOutput bool
	swatches   bool
	width      int
}

func newListCmd(flags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the gradients visible under a tag filter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			selected := filter.All
			if cmd.Flags().Changed("tag") {
				selected = filter.ByTag(opts.tag)
			}
			return runList(cmd, flags, opts, selected)
		},
	}

	cmd.Flags().StringVarP(&opts.tag, "tag", "t", "", "Only show gradients carrying this tag (omit to show all)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&opts.swatches, "swatches", false, "Render gradient swatches instead of a table")
	cmd.Flags().IntVar(&opts.width, "swatch-width", 0, "Width of each gradient bar in cells (0 for default)")

	return cmd
}

func runList(cmd *cobra.Command, flags *rootFlags, opts *listOptions, selected filter.Filter) error {
	log, closeLog, err := flags.newLogger(cmd, false)
	if err != nil {
		return newCommandError("list gradients", "creating logger", err, "Check that the --log-file directory exists and is writable.")
	}
	defer closeLog()

	ds, err := flags.loadDataset("list gradients", log)
	if err != nil {
		return err
	}

	// Same wiring as the gallery: the list observes a store and the filter is
	// applied through it.
	store := filter.NewStore(log)
	useUnicode := supportsUnicode(cmd.OutOrStdout())
	list := gallery.NewFilteredList(store, ds.Gradients(), gallery.NewSwatchRenderer(opts.width, useUnicode))
	defer list.Close()
	store.SetFilter(selected)

	items := list.Items()
	log.WithFields(map[string]any{"filter": selected.String(), "visible": len(items)}).Debug("list filtered")

	switch {
	case opts.jsonOutput:
		return renderListJSON(cmd, selected, items)
	case len(items) == 0:
		fmt.Fprintf(cmd.OutOrStdout(), "No gradients match filter %q.\n", selected.String())
		return nil
	case opts.swatches:
		fmt.Fprintln(cmd.OutOrStdout(), list.View(0))
		return nil
	default:
		return renderListTable(cmd, items)
	}
}

func renderListTable(cmd *cobra.Command, items []gallery.DisplayItem) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "NAME\tSTART\tEND\tTAGS")
	for _, item := range items {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n",
			item.Name,
			item.ColorStart.Hex(),
			item.ColorEnd.Hex(),
			valueOrFallback(strings.Join(item.Tags, ", "), "-"),
		)
	}

	return writer.Flush()
}

type listJSONPayload struct {
	Version   string                `json:"version"`
	Filter    string                `json:"filter"`
	All       bool                  `json:"all"`
	Count     int                   `json:"count"`
	Gradients []gallery.DisplayItem `json:"gradients"`
}

func renderListJSON(cmd *cobra.Command, selected filter.Filter, items []gallery.DisplayItem) error {
	payload := listJSONPayload{
		Version:   "1.0",
		Filter:    selected.String(),
		All:       selected.IsAll(),
		Count:     len(items),
		Gradients: items,
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func valueOrFallback(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
