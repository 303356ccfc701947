package cmd

import (
	"fmt"

	"github.com/apex/log"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the registry to its seeded catalog",
	Run: func(cmd *cobra.Command, args []string) {
		if err := newClient().Reset(); err != nil {
			log.Fatalf("Reset failed: %s", err)
		}

		fmt.Println("Activities reset")
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
