package accrual

import (
	"bondcdp/core"
	"bondcdp/worker"
	"context"
	"time"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/property"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

const (
	checkpointKey = "accrual_checkpoint"

	sweepCapacity = 8
)

// Worker accrual sweep worker.
//
// Accrual stays on demand in the engine; the sweep is just an external
// trigger walking every vault with outstanding debt.
type Worker struct {
	worker.BaseJob
	vaultStore     core.IVaultStore
	accrualService core.IAccrualService
	property       property.Store
}

// New new accrual sweep worker
func New(location string,
	vaultStr core.IVaultStore,
	accrualSrv core.IAccrualService,
	property property.Store) *Worker {
	job := Worker{
		vaultStore:     vaultStr,
		accrualService: accrualSrv,
		property:       property,
	}

	l, _ := time.LoadLocation(location)
	job.Cron = cron.New(cron.WithLocation(l))
	spec := "@every 60s"
	job.Cron.AddFunc(spec, job.Run)
	job.OnWork = func() error {
		return job.onWork(context.Background())
	}

	return &job
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "accrual")

	vaults, err := w.vaultStore.All(ctx)
	if err != nil {
		log.WithError(err).Errorln("list vaults")
		return err
	}

	sem := semaphore.NewWeighted(sweepCapacity)
	g := errgroup.Group{}

	for idx := range vaults {
		vault := vaults[idx]
		if vault.Borrowed == 0 {
			continue
		}

		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}

		g.Go(func() error {
			defer sem.Release(1)

			if _, err := w.accrualService.Accrue(ctx, vault.ID); err != nil {
				log.WithError(err).Errorln("accrue vault", vault.ID)
				return err
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if err := w.property.Save(ctx, checkpointKey, time.Now().UTC().Unix()); err != nil {
		log.WithError(err).Errorln("property.Save", checkpointKey)
		return err
	}

	return nil
}
