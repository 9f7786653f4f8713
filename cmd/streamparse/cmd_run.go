package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var inputFlag string

	cmd := &cobra.Command{
		Use:   "run <demo>",
		Short: "Run one of the built-in demo parsers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(args[0], inputFlag, nil)
		},
	}

	cmd.Flags().StringVar(&inputFlag, "input", "", "input text (reads stdin if omitted)")
	cmd.SetUsageTemplate(cmd.UsageTemplate() + "\nAvailable demos:\n" + demoList())

	return cmd
}

func demoList() string {
	var b strings.Builder
	for _, d := range demos {
		fmt.Fprintf(&b, "  %-10s %s\n", d.name, d.description)
	}
	return b.String()
}
