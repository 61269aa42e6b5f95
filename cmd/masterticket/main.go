package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/app"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(housekeepingCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "masterticket",
	Short: "MasterTicket organization service",
	Long: `MasterTicket serves organizations, teams, memberships and invitation codes
for the helpdesk. Configuration is read from the environment and an optional .env file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := app.LoadConfig()
		db, err := app.OpenDatabase(cfg, app.NewLogger(cfg))
		if err != nil {
			return err
		}
		return db.Close()
	},
}

var housekeepingCmd = &cobra.Command{
	Use:   "housekeeping",
	Short: "Delete stale sessions once and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := app.Housekeep(cmd.Context(), app.LoadConfig())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %d stale sessions\n", n)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion)
	},
}

func serve(ctx context.Context) error {
	application, err := app.New(app.LoadConfig())
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return application.Run(ctx)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("masterticket: %v", err)
		os.Exit(1)
	}
}
