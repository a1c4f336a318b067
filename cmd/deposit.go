package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

var depositCmd = &cobra.Command{
	Use:     "deposit",
	Aliases: []string{"dp"},
	Short:   "deposit bond collateral units and borrow stablecoin against them",
	Run: func(cmd *cobra.Command, args []string) {
		user, e := cmd.Flags().GetString("user")
		if e != nil || user == "" {
			panic("invalid user")
		}

		units, e := cmd.Flags().GetUint64("units")
		if e != nil || units == 0 {
			panic("invalid units")
		}

		ctx := cmd.Context()
		database := provideDatabase()
		defer database.Close()

		vault, err := provideIssuanceService(database).DepositAndBorrow(ctx, user, units)
		if err != nil {
			panic(err)
		}

		vbs, err := json.MarshalIndent(vault, "", "    ")
		if err != nil {
			panic(err)
		}

		cmd.Println(string(vbs))
	},
}

func init() {
	rootCmd.AddCommand(depositCmd)

	depositCmd.Flags().StringP("user", "u", "", "vault owner user id")
	depositCmd.Flags().Uint64P("units", "q", 0, "collateral unit count")
}
