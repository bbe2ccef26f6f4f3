package main

import (
	"os"

	"github.com/deepfabric/abacus/pkg/terminal"
	"github.com/spf13/cobra"
)

func NewReplCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Evaluate stdin as a terminal stream until EOF",
		Args:  cobra.NoArgs,
		RunE:  replHandler,
	}
	addGrammarFlags(cmd)
	return cmd
}

func replHandler(cmd *cobra.Command, args []string) error {
	cfg, err := grammarFromFlags(cmd)
	if err != nil {
		return err
	}

	t, err := terminal.New(0, terminal.NewStreamTransport(os.Stdin, cmd.OutOrStdout()), cfg)
	if err != nil {
		return err
	}
	defer t.Close()

	return t.Run(cmd.Context())
}
