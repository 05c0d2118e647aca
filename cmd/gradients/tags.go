package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type tagsOptions struct {
	counts bool
}

func newTagsCmd(flags *rootFlags) *cobra.Command {
	opts := &tagsOptions{}

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Print every tag in the dataset in sorted order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, closeLog, err := flags.newLogger(cmd, false)
			if err != nil {
				return newCommandError("list tags", "creating logger", err, "Check that the --log-file directory exists and is writable.")
			}
			defer closeLog()

			ds, err := flags.loadDataset("list tags", log)
			if err != nil {
				return err
			}

			tags := ds.UniqueTags()
			if len(tags) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tags in dataset.")
				return nil
			}

			if !opts.counts {
				for _, tag := range tags {
					fmt.Fprintln(cmd.OutOrStdout(), tag)
				}
				return nil
			}

			counts := ds.CountByTag()
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "TAG\tGRADIENTS")
			for _, tag := range tags {
				fmt.Fprintf(writer, "%s\t%d\n", tag, counts[tag])
			}
			return writer.Flush()
		},
	}

	cmd.Flags().BoolVar(&opts.counts, "counts", false, "Show how many gradients carry each tag")

	return cmd
}
