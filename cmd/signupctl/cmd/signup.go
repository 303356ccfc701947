package cmd

import (
	"fmt"

	"github.com/apex/log"
	"github.com/spf13/cobra"
)

var signupCmd = &cobra.Command{
	Use:   "signup <activity> <email>",
	Short: "Sign a student up for an activity",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		msg, err := newClient().Signup(args[0], args[1])
		if err != nil {
			log.Fatalf("Signup failed: %s", err)
		}

		fmt.Println(msg)
	},
}

func init() {
	rootCmd.AddCommand(signupCmd)
}
