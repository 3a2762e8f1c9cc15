package cli

import (
	"fmt"
	"os"
)

// ReadInput returns the text to translate. The input file wins when
// given, otherwise the positional argument is used. An empty string is
// returned when neither is present.
func ReadInput(flags *Flags, args []string) (string, error) {
	if flags.InputFile != "" {
		data, err := os.ReadFile(flags.InputFile)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	}
	if len(args) > 0 {
		return args[0], nil
	}
	return "", nil
}

// WriteOutput saves the translated text to path.
func WriteOutput(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
