package cmd

import (
	"fmt"

	"github.com/apex/log"
	"github.com/spf13/cobra"
)

var unregisterCmd = &cobra.Command{
	Use:   "unregister <activity> <email>",
	Short: "Remove a student from an activity's roster",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		msg, err := newClient().Unregister(args[0], args[1])
		if err != nil {
			log.Fatalf("Unregister failed: %s", err)
		}

		fmt.Println(msg)
	},
}

func init() {
	rootCmd.AddCommand(unregisterCmd)
}
