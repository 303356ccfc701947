package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/apex/log"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all activities and their rosters",
	Run: func(cmd *cobra.Command, args []string) {
		activities, err := newClient().ListActivities()
		if err != nil {
			log.Fatalf("Unable to list activities: %s", err)
		}

		names := make([]string, 0, len(activities))
		for name := range activities {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			activity := activities[name]
			fmt.Printf("%s (%d/%d)\n", name, len(activity.Participants), activity.MaxParticipants)
			fmt.Printf("  %s\n", activity.Description)
			fmt.Printf("  %s\n", activity.Schedule)
			if len(activity.Participants) != 0 {
				fmt.Printf("  Participants: %s\n", strings.Join(activity.Participants, ", "))
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
