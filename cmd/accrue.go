package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

// maintenance command, callable by anyone
var accrueCmd = &cobra.Command{
	Use:     "accrue",
	Aliases: []string{"ac"},
	Short:   "accrue interest on a vault and pay it to the reward sink",
	Run: func(cmd *cobra.Command, args []string) {
		vaultID, e := cmd.Flags().GetUint64("vault")
		if e != nil || vaultID == 0 {
			panic("invalid vault id")
		}

		ctx := cmd.Context()
		database := provideDatabase()
		defer database.Close()

		vault, err := provideAccrualService(database).Accrue(ctx, vaultID)
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
	rootCmd.AddCommand(accrueCmd)

	accrueCmd.Flags().Uint64P("vault", "v", 0, "vault id")
}
