package cli

import (
	"github.com/spf13/cobra"

	"codeberg.org/snonux/cloudtranslate/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cloudtranslate [text]",
		Short: "Cloud translation with a monthly character budget",
		Long: `cloudtranslate translates text with the Google Cloud Translation API
(or an OpenAI / Gemini model), counts every billed character against a
monthly limit and keeps a local log of past translations.

Configuration and state (config.json, usage.json, history.json) live in
the directory of the executable unless --config-dir points elsewhere.

Examples:
  cloudtranslate "Hello, world"              # en -> th by default
  cloudtranslate -f en -t de "Good morning"  # pick languages
  cloudtranslate -i letter.txt -o out.txt    # translate a file
  cloudtranslate --usage                     # show monthly usage
  cloudtranslate --history                   # show past translations`,
		Args:         cobra.MaximumNArgs(1),
		Version:      internal.Version,
		SilenceUsage: true,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.ConfigDir, "config-dir", "", "Directory with config.json and state files (default is the executable directory)")

	// Local flags
	cmd.Flags().StringVarP(&flags.From, "from", "f", flags.From, "Source language, as a code or a display form like 'English (en)'")
	cmd.Flags().StringVarP(&flags.To, "to", "t", flags.To, "Target language, as a code or a display form")
	cmd.Flags().StringVarP(&flags.InputFile, "input", "i", "", "Read the text to translate from a file instead of the argument")
	cmd.Flags().StringVarP(&flags.OutputFile, "output", "o", "", "Also write the translated text to a file")
	cmd.Flags().StringVar(&flags.Provider, "provider", "", "Translation provider: google, openai or gemini (default from config)")
	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Answer yes to every confirmation prompt")
	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging and print usage after translating")

	// Mode flags
	cmd.Flags().BoolVar(&flags.ShowLanguages, "languages", false, "List the available languages and exit")
	cmd.Flags().BoolVar(&flags.ShowUsage, "usage", false, "Show this month's character usage and exit")
	cmd.Flags().BoolVar(&flags.ShowHistory, "history", false, "Show the translation history and exit")
}
