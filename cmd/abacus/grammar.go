package main

import (
	"github.com/deepfabric/abacus/pkg/grammar"
	"github.com/spf13/cobra"
)

func addGrammarFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("grammar", "g", grammar.IntegerName, "grammar: integer, signed or decimal")
	cmd.Flags().Bool("lenient", false, "ignore out of place ')' and '='")
	cmd.Flags().Bool("cancel-keys", false, "ESC and backspace cancel the expression")
	cmd.Flags().Bool("echo-ignored", false, "echo bytes outside the grammar")
	cmd.Flags().Int("fraction-digits", 6, "fractional digits of decimal results")
}

func grammarFromFlags(cmd *cobra.Command) (grammar.Config, error) {
	name, err := cmd.Flags().GetString("grammar")
	if err != nil {
		return grammar.Config{}, err
	}
	lenient, err := cmd.Flags().GetBool("lenient")
	if err != nil {
		return grammar.Config{}, err
	}
	cancelKeys, err := cmd.Flags().GetBool("cancel-keys")
	if err != nil {
		return grammar.Config{}, err
	}
	echoIgnored, err := cmd.Flags().GetBool("echo-ignored")
	if err != nil {
		return grammar.Config{}, err
	}
	digits, err := cmd.Flags().GetInt("fraction-digits")
	if err != nil {
		return grammar.Config{}, err
	}

	cfg, err := grammar.ByName(name,
		grammar.WithStrict(!lenient),
		grammar.WithCancelKeys(cancelKeys),
		grammar.WithEchoIgnored(echoIgnored),
		grammar.WithFractionDigits(digits))
	if err != nil {
		return grammar.Config{}, err
	}
	return cfg, cfg.Validate()
}
