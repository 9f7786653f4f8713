package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

// stdLogger adapts the standard library's log.Logger to
// streamparse.Logger, the teacher's own preference for log.Printf over
// a structured logging dependency (see SPEC_FULL.md §7).
type stdLogger struct {
	*log.Logger
}

func (l stdLogger) Logf(format string, args ...any) { l.Printf(format, args...) }

func newTraceCmd() *cobra.Command {
	var inputFlag string

	cmd := &cobra.Command{
		Use:   "trace <demo>",
		Short: "Run a demo parser, logging every driver command as it executes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := stdLogger{log.New(os.Stderr, "streamparse: ", 0)}
			return runDemo(args[0], inputFlag, logger)
		},
	}

	cmd.Flags().StringVar(&inputFlag, "input", "", "input text (reads stdin if omitted)")

	return cmd
}
