package cmd

import (
	"bondcdp/worker"
	"bondcdp/worker/accrual"
	"bondcdp/worker/payee"

	"github.com/drone/signal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "run the accrual sweep worker",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := signal.WithContext(cmd.Context())

		database := provideDatabase()
		defer database.Close()

		workers := []worker.IJob{
			payee.New(cfg.App.Location,
				provideConfig(),
				provideWalletService(),
				provideCustodyStore(database),
				providePropertyStore(database)),
			accrual.New(cfg.App.Location,
				provideVaultStore(database),
				provideAccrualService(database),
				providePropertyStore(database)),
		}

		for _, w := range workers {
			if err := w.Start(); err != nil {
				logrus.WithError(err).Fatal("start worker")
			}

			defer w.Stop()
		}

		<-ctx.Done()
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
