package cmd

import (
	"bondcdp/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/spf13/cobra"
)

// command for migrating database tables and provisioning the rate config
var migrateCmd = &cobra.Command{
	Use:     "migrate",
	Aliases: []string{"setdb"},
	Short:   "migrate database tables",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		database := provideDatabase()
		defer database.Close()

		if err := db.Migrate(database); err != nil {
			cmd.PrintErrln("migrate database error:", err)
			return
		}

		admin, _ := cmd.Flags().GetString("admin")
		if admin == "" {
			return
		}

		rateBps, _ := cmd.Flags().GetUint64("bps")
		rates := provideRateStore(database)

		if _, err := rates.Find(ctx); err == nil {
			cmd.Println("rate config already provisioned")
			return
		}

		if err := rates.Save(ctx, &core.RateConfig{Admin: admin, BorrowRateBps: rateBps}); err != nil {
			cmd.PrintErrln("provision rate config error:", err)
			return
		}

		cmd.Println("rate config provisioned, admin:", admin)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)

	migrateCmd.Flags().String("admin", "", "admin user id for the rate config")
	migrateCmd.Flags().Uint64("bps", 0, "initial borrow rate in basis points")
}
