package cmd

import (
	"github.com/spf13/cobra"
)

var registerBondCmd = &cobra.Command{
	Use:     "register-bond",
	Aliases: []string{"rb"},
	Short:   "register an isin and issue its collateral unit",
	Run: func(cmd *cobra.Command, args []string) {
		user, e := cmd.Flags().GetString("user")
		if e != nil || user == "" {
			panic("invalid user")
		}

		isin, e := cmd.Flags().GetString("isin")
		if e != nil || isin == "" {
			panic("invalid isin")
		}

		ctx := cmd.Context()
		database := provideDatabase()
		defer database.Close()

		bond, err := provideBondService(database).RegisterAndIssue(ctx, user, isin)
		if err != nil {
			panic(err)
		}

		cmd.Println("bond registered:", bond.ISIN, "trace:", bond.TraceID)
	},
}

func init() {
	rootCmd.AddCommand(registerBondCmd)

	registerBondCmd.Flags().StringP("user", "u", "", "receiver user id")
	registerBondCmd.Flags().StringP("isin", "i", "", "instrument identifier, 12 characters or less")
}
