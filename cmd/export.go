package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/larder/internal/source"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all data as a JSON dump (stdout when no file is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.close()

	st, err := e.openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	d, err := source.Export(st)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return source.EncodeDump(os.Stdout, d)
	}
	if err := source.WriteDump(args[0], d); err != nil {
		return err
	}
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Exported %d foods, %d people, %d meal days to %s\n",
			len(d.FoodCatalog), len(d.People), d.MealDays(), args[0])
	}
	return nil
}
