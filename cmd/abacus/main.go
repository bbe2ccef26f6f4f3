package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "abacus",
		Short:        "Byte stream arithmetic evaluator",
		SilenceUsage: true,
	}

	root.AddCommand(
		NewEvalCmd(),
		NewTableCmd(),
		NewReplCmd(),
	)

	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
