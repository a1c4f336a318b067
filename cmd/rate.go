package cmd

import (
	"bondcdp/pkg/number"

	"github.com/spf13/cobra"
)

// governing command for the borrow rate
var setRateCmd = &cobra.Command{
	Use:     "set-rate",
	Aliases: []string{"sr"},
	Short:   "set the per annum borrow rate in basis points",
	Run: func(cmd *cobra.Command, args []string) {
		caller, e := cmd.Flags().GetString("caller")
		if e != nil || caller == "" {
			panic("invalid caller")
		}

		rateBps, e := cmd.Flags().GetUint64("bps")
		if e != nil {
			panic(e)
		}

		ctx := cmd.Context()
		database := provideDatabase()
		defer database.Close()

		config, err := provideRateService(database).SetBorrowRate(ctx, caller, rateBps)
		if err != nil {
			panic(err)
		}

		cmd.Println("borrow rate:", config.BorrowRateBps, "bps =", number.Percent(config.BorrowRateBps).String()+"%")
	},
}

func init() {
	rootCmd.AddCommand(setRateCmd)

	setRateCmd.Flags().StringP("caller", "c", "", "caller user id, must be the config admin")
	setRateCmd.Flags().Uint64P("bps", "b", 0, "borrow rate in basis points")
}
