// Package cli provides command-line interface setup for the
// cloudtranslate application. It handles flag parsing, command
// creation, terminal confirmation prompts and output rendering.
package cli
