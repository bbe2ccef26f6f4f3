package main

import (
	"github.com/deepfabric/abacus/pkg/automaton"
	"github.com/deepfabric/abacus/pkg/grammar"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func NewTableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the transition table of a grammar",
		Args:  cobra.NoArgs,
		RunE:  tableHandler,
	}
	addGrammarFlags(cmd)
	cmd.Flags().Bool("all", false, "include unreachable states")
	return cmd
}

func tableHandler(cmd *cobra.Command, args []string) error {
	cfg, err := grammarFromFlags(cmd)
	if err != nil {
		return err
	}
	all, err := cmd.Flags().GetBool("all")
	if err != nil {
		return err
	}

	t, err := automaton.Build(cfg)
	if err != nil {
		return err
	}

	header := []string{"STATE"}
	for _, sym := range grammar.Symbols() {
		header = append(header, sym.String())
	}

	states := t.Reachable()
	if all {
		states = states[:0]
		for s := 0; s < automaton.StateCount; s++ {
			states = append(states, automaton.State(s))
		}
	}

	var data [][]string
	for _, s := range states {
		line := []string{s.String()}
		for _, next := range t.Row(s) {
			if next == s {
				line = append(line, ".")
				continue
			}
			line = append(line, next.String())
		}
		data = append(data, line)
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("  ")
	table.AppendBulk(data)
	table.Render()

	return nil
}
