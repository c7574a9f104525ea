package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var (
	Version = "0.1.0"
)

func newVersionCmd(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the CLI version",
		Example: "nexusctl version",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(out, Version)
		},
	}

	return cmd
}
