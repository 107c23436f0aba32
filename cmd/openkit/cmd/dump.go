package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sarchlab/openkit/datarecording"
	"github.com/sarchlab/openkit/recording"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the action records stored in a SQLite file.",
	Long:  "`dump --sqlite [file]` prints every record in sequence order.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		file, _ := cmd.Flags().GetString("sqlite")
		kind, _ := cmd.Flags().GetString("kind")

		return runDump(cmd.Context(), cmd.OutOrStdout(), file, kind)
	},
}

func init() {
	dumpCmd.Flags().String("sqlite", "", "The SQLite file to read.")
	dumpCmd.Flags().String("kind", "", "Only print records of this kind.")
	_ = dumpCmd.MarkFlagRequired("sqlite")
	rootCmd.AddCommand(dumpCmd)
}

func runDump(ctx context.Context, w io.Writer, file, kind string) error {
	if _, err := os.Stat(file); err != nil {
		return fmt.Errorf("open %s: %w", file, err)
	}

	reader, err := datarecording.NewReader(file)
	if err != nil {
		return err
	}
	defer reader.Close()

	reader.MapTable(recording.RecordTableName, recording.Record{})

	params := datarecording.QueryParams{OrderBy: "SequenceNo"}
	if kind != "" {
		params.Where = "Kind = ?"
		params.Args = []any{kind}
	}

	results, total, err := reader.Query(ctx, recording.RecordTableName, params)
	if err != nil {
		return err
	}

	for _, r := range results {
		e, ok := r.(*recording.Record)
		if !ok {
			return fmt.Errorf("unexpected record type %T", r)
		}

		fmt.Fprintln(w, recording.FormatRecord(*e))
	}

	fmt.Fprintf(w, "%d records\n", total)

	return nil
}
