package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/cloudtranslate/internal/cli"
	"codeberg.org/snonux/cloudtranslate/internal/config"
	"codeberg.org/snonux/cloudtranslate/internal/history"
	"codeberg.org/snonux/cloudtranslate/internal/lang"
	"codeberg.org/snonux/cloudtranslate/internal/logging"
	"codeberg.org/snonux/cloudtranslate/internal/quota"
	"codeberg.org/snonux/cloudtranslate/internal/session"
	"codeberg.org/snonux/cloudtranslate/internal/translation"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Handle --languages flag, the only mode that needs no configuration
	if flags.ShowLanguages {
		fmt.Println(cli.RenderLanguages())
		return nil
	}

	logger := logging.New(flags.Verbose)

	dir := flags.ConfigDir
	if dir == "" {
		dir = config.BaseDir()
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}
	if flags.Provider != "" {
		cfg.Provider = flags.Provider
	}

	ledger, err := quota.Load(cfg.UsagePath(), cfg.MonthlyLimit, logger)
	if err != nil {
		return fmt.Errorf("failed to load usage: %w", err)
	}
	log, err := history.Load(cfg.HistoryPath())
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	// Handle --usage flag
	if flags.ShowUsage {
		fmt.Println(cli.RenderUsage(ledger.Summary(), ledger.NextReset()))
		return nil
	}

	// Handle --history flag
	if flags.ShowHistory {
		for _, line := range log.Lines() {
			fmt.Println(line)
		}
		return nil
	}

	sourceLang := lang.ParseCode(strings.TrimSpace(flags.From))
	targetLang := lang.ParseCode(strings.TrimSpace(flags.To))
	if lang.IsSeparator(sourceLang) || lang.IsSeparator(targetLang) {
		return fmt.Errorf("separator rows are not languages, pick one like %q", lang.DisplayForCode("en"))
	}

	translator, err := translation.NewTranslator(translation.Config{
		Provider:     cfg.Provider,
		GoogleAPIKey: cfg.GoogleAPIKey,
		OpenAIAPIKey: cfg.OpenAIAPIKey,
		GeminiAPIKey: cfg.GeminiAPIKey,
	})
	if err != nil {
		return err
	}

	var confirmer session.Confirmer = cli.NewTerminalConfirmer(os.Stdin, os.Stderr)
	if flags.Yes {
		confirmer = cli.AutoConfirmer{}
	}

	controller, err := session.New(session.Config{
		Translator: translator,
		Ledger:     ledger,
		History:    log,
		Confirmer:  confirmer,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	text, err := cli.ReadInput(flags, args)
	if err != nil {
		return err
	}

	translated, err := controller.Translate(cmd.Context(), text, sourceLang, targetLang)
	if errors.Is(err, session.ErrCanceled) {
		fmt.Fprintln(os.Stderr, "Translation cancelled.")
		return nil
	}
	if errors.Is(err, session.ErrEmptyInput) {
		return fmt.Errorf("no text to translate, pass it as an argument or use --input")
	}
	if err != nil {
		return err
	}

	fmt.Println(translated)

	if flags.OutputFile != "" {
		if err := cli.WriteOutput(flags.OutputFile, translated); err != nil {
			return err
		}
		logger.Info("translated text saved", "path", flags.OutputFile)
	}

	if flags.Verbose {
		fmt.Fprintln(os.Stderr, cli.RenderUsage(controller.Usage(), controller.NextReset()))
	}

	return nil
}
