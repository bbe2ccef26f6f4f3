package main

import (
	"fmt"
	"strings"

	"github.com/deepfabric/abacus/pkg/core"
	"github.com/spf13/cobra"
)

func NewEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval INPUT...",
		Short: "Evaluate the input bytes and print the terminal output",
		Args:  cobra.MinimumNArgs(1),
		RunE:  evalHandler,
	}
	addGrammarFlags(cmd)
	cmd.Flags().Bool("results", false, "print one line per computed expression instead of the raw output")
	return cmd
}

func evalHandler(cmd *cobra.Command, args []string) error {
	cfg, err := grammarFromFlags(cmd)
	if err != nil {
		return err
	}
	results, err := cmd.Flags().GetBool("results")
	if err != nil {
		return err
	}

	e, err := core.NewEvaluator(cfg)
	if err != nil {
		return err
	}
	defer e.Close()

	out := cmd.OutOrStdout()
	for _, arg := range args {
		if _, err := e.Write([]byte(arg)); err != nil {
			return err
		}

		output := e.Flush()
		if !results {
			// terminals return the carriage, a shell wants a newline
			fmt.Fprintln(out, strings.TrimRight(strings.ReplaceAll(string(output), "\r", "\n"), "\n"))
			continue
		}

		for _, r := range e.TakeResults() {
			line := fmt.Sprintf("%s %s %s = %s", r.Left, r.Op, r.Right, r.Value)
			if r.Err != nil {
				line += fmt.Sprintf(" (%s)", r.Err)
			}
			fmt.Fprintln(out, line)
		}
	}

	return nil
}
