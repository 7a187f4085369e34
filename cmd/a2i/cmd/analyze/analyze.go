package analyze

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"audio-insights/internal/app"
	"audio-insights/internal/app/analyzer"
	appconfig "audio-insights/internal/app/config"
	"audio-insights/internal/config"
)

var (
	apiKey     string
	outputDir  string
	noProgress bool
)

func init() {
	Cmd.Flags().StringVarP(&apiKey, "api-key", "k", "",
		"OpenAI API key (overrides the OPENAI_API_KEY environment variable)")
	Cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "",
		"directory for the generated artifacts (default: outputs)")
	Cmd.Flags().BoolVar(&noProgress, "no-progress", false,
		"disable the stage progress display")
}

// Cmd represents the analyze command
var Cmd = &cobra.Command{
	Use:   "analyze [audioFile]",
	Short: "Transcribe, summarize and analyze a single audio file",
	Long: `Transcribe, summarize and analyze a single audio file

- Supported formats: mp3, wav, m4a, mp4, mpeg, mpga, webm (max 25MB)
- Writes transcription_<ts>.md, summary_<ts>.md and analysis_<ts>.json
  sharing one timestamp into the output directory
- Without an audioFile argument the path is read interactively`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		if apiKey != "" {
			os.Setenv("OPENAI_API_KEY", apiKey)
		}
		if outputDir != "" {
			os.Setenv("A2I_OUTPUT_DIR", outputDir)
		}

		if err := requireCredentials(); err != nil {
			return err
		}

		filePath, err := resolveAudioFilePath(args)
		if err != nil {
			return err
		}

		verbose, _ := cmd.Flags().GetBool("verbose")
		a, err := app.InitializeAnalyzer(verbose)
		if err != nil {
			return err
		}
		defer a.Close()

		a.WithProgress(analyzer.ProgressConfig{
			Enabled: analyzer.ShouldShowProgress(noProgress),
		})

		result, err := a.Run(context.Background(), filePath)
		if err != nil {
			return err
		}

		fmt.Println("Processing completed successfully!")
		fmt.Printf("  Transcript: %s\n", result.TranscriptFile)
		fmt.Printf("  Summary:    %s\n", result.SummaryFile)
		fmt.Printf("  Analytics:  %s\n", result.AnalyticsFile)
		return nil
	},
}

// requireCredentials fails before any processing when the credential for
// the selected providers is missing.
func requireCredentials() error {
	apiKeys, err := config.GetAPIKeys()
	if err != nil {
		return err
	}
	if err := config.RequireTranscriptionKey(apiKeys); err != nil {
		return err
	}
	appCfg, err := appconfig.LoadAppConfig()
	if err != nil {
		return err
	}
	return config.RequireGenerationKey(apiKeys, appCfg.Generator)
}

// resolveAudioFilePath takes the positional argument, falling back to an
// interactive prompt when none was given.
func resolveAudioFilePath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("Enter the path to your audio file: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("failed to read file path: %w", err)
		}
		if path := strings.TrimSpace(line); path != "" {
			return path, nil
		}
		fmt.Println("Please enter a valid file path.")
	}
}
