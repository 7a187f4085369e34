package export

import (
	"fmt"

	"github.com/spf13/cobra"

	"audio-insights/internal/app"
	historyexport "audio-insights/internal/app/analyzer/export"
)

var outputFilePath string

func init() {
	Cmd.Flags().StringVarP(&outputFilePath, "outputFilePath", "o", "", "set outputFilePath")

	Cmd.MarkFlagRequired("outputFilePath")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the run history to excel",
	Long: `Export the run history to excel

- Every analyze run, including failed ones, is recorded in the history store`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		db, err := app.InitializeRunDAO()
		if err != nil {
			return err
		}
		defer db.Close()

		records, err := db.GetAllRuns()
		if err != nil {
			return err
		}

		if err := historyexport.ToExcel(records, outputFilePath); err != nil {
			return err
		}
		fmt.Printf("export finished, exported file path: %v\n", outputFilePath)
		return nil
	},
}
