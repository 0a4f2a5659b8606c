package main

import (
	"fmt"

	"github.com/spf13/cobra"

	fieldwork "github.com/fieldwork-dev/fieldwork"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("fieldwork %s (library %s)\n", version, fieldwork.Version)
			if commit != "none" {
				fmt.Printf("  commit: %s\n", commit)
				fmt.Printf("  built:  %s\n", date)
			}
		},
	}
}
