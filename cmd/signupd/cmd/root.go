/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/apex/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mergington/signupd/pkg/actdb"
	"github.com/mergington/signupd/pkg/actdb/seed"
	"github.com/mergington/signupd/pkg/actdb/stor"
	"github.com/mergington/signupd/pkg/config"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "signupd",
	Short: "Run the signupd activities API server",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		e := echo.New()
		e.HideBanner = true
		e.HidePort = true
		e.Use(middleware.Recover())

		c := config.MustLoadFromDotenv(".env")

		db := actdb.MustConnectToDB()
		if err := actdb.RunMigrations(db); err != nil {
			log.Fatalf("Unable to run migrations: %s", err)
		}

		catalog, err := seed.Load(c.GetKeyWithDefault("SIGNUPD_ACTIVITIES_FILE", "activities.yaml"))
		if err != nil {
			log.Fatalf("Unable to load activities catalog: %s", err)
		}

		enforceCapacity := c.GetBoolKeyWithDefault("SIGNUPD_ENFORCE_CAPACITY", false)
		stors := stor.NewGormStors(db, enforceCapacity)

		activities, err := stors.ActivityStor.ListActivities()
		if err != nil {
			log.Fatalf("Unable to read activities: %s", err)
		}

		// Seed a brand new registry; an already populated one keeps its
		// current rosters across restarts.
		if len(activities) == 0 {
			if err := stors.ActivityStor.Reset(catalog); err != nil {
				log.Fatalf("Unable to seed activities: %s", err)
			}
			log.Infof("Seeded registry with %d activities", len(catalog))
		}

		setupRoutes(e, RouteOpts{
			activityStor: stors.ActivityStor,
			seed:         catalog,
			staticDir:    c.GetKeyWithDefault("SIGNUPD_STATIC_DIR", "static"),
		})

		if err := e.Start(":" + c.GetKeyWithDefault("SIGNUPD_PORT", "8000")); err != nil {
			log.Fatalf("Unable to start server: %v", err)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
