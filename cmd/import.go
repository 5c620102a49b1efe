package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/larder/internal/cli"
	"github.com/theirongolddev/larder/internal/source"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var importCmd = &cobra.Command{
	Use:   "import <file|dir>",
	Short: "Import a JSON data dump, replacing the sections it contains",
	Long:  "Import a JSON data dump. Given a directory, the newest *.json file in it is used. Sections present in the dump replace stored data; malformed sections are skipped and reported.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.close()

	path, err := source.Resolve(args[0])
	if err != nil {
		return fmt.Errorf("finding dump: %w", err)
	}
	res := source.ReadDump(path)
	if res.Err != nil {
		return fmt.Errorf("reading %s: %w", path, res.Err)
	}
	for _, perr := range res.ParseErrors {
		e.log.Warn("skipping section", zap.String("file", path), zap.Error(perr))
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  skipped %v\n", perr)
		}
	}

	st, err := e.openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	stats, err := source.Apply(res.Dump, st)
	if err != nil {
		return err
	}

	fmt.Printf("  Imported %s\n", path)
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Section", "Records"},
		Rows: [][]string{
			{"Foods", cli.FormatNumber(int64(stats.Foods))},
			{"People", cli.FormatNumber(int64(stats.People))},
			{"Expenses", cli.FormatNumber(int64(stats.Expenses))},
			{"Meal days", cli.FormatNumber(int64(stats.MealSets))},
			{"Budget", yesNo(stats.Budget)},
		},
	}))
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
