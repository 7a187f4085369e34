package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"audio-insights/cmd/a2i/cmd/analyze"
	"audio-insights/cmd/a2i/cmd/export"
	"audio-insights/cmd/a2i/cmd/version"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "a2i",
	Short: "Turn an audio file into a transcript, summary and analytics report",
	Long: `Turn an audio file into three artifacts using AI inference services:
- a full transcript (speech-to-text, language auto-detected)
- a 150-300 word summary
- a structured analytics report (word count, speaking speed, top topics)

Results are written as timestamped files and recorded in a local run history.`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(analyze.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
