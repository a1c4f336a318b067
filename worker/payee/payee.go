package payee

import (
	"bondcdp/core"
	"bondcdp/worker"
	"context"
	"time"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/property"
	"github.com/robfig/cron/v3"
)

const (
	checkpointKey = "payee_checkpoint"

	limit = 500
)

// Worker payee worker.
//
// Polls the external ledger for inbound bond transfers and credits each
// sender's custody balance. The unique snapshot id on the custody entry
// keeps replays after a crash or checkpoint rewind harmless.
type Worker struct {
	worker.BaseJob
	cfg       *core.Config
	wallets   core.IWalletService
	custodies core.ICustodyStore
	property  property.Store
}

// New new payee worker
func New(location string,
	cfg *core.Config,
	wallets core.IWalletService,
	custodies core.ICustodyStore,
	property property.Store) *Worker {
	job := Worker{
		cfg:       cfg,
		wallets:   wallets,
		custodies: custodies,
		property:  property,
	}

	l, _ := time.LoadLocation(location)
	job.Cron = cron.New(cron.WithLocation(l))
	spec := "@every 5s"
	job.Cron.AddFunc(spec, job.Run)
	job.OnWork = func() error {
		return job.onWork(context.Background())
	}

	return &job
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "payee")

	v, err := w.property.Get(ctx, checkpointKey)
	if err != nil {
		log.WithError(err).Errorln("property.Get", checkpointKey)
		return err
	}

	offset := v.Time()
	snapshots, err := w.wallets.ListSnapshots(ctx, w.cfg.App.BondAssetID, offset, limit)
	if err != nil {
		log.WithError(err).Errorln("list snapshots")
		return err
	}

	for _, snapshot := range snapshots {
		if err := w.handleSnapshot(ctx, snapshot); err != nil {
			return err
		}

		if err := w.property.Save(ctx, checkpointKey, snapshot.CreatedAt); err != nil {
			log.WithError(err).Errorln("property.Save", checkpointKey)
			return err
		}
	}

	return nil
}

func (w *Worker) handleSnapshot(ctx context.Context, snapshot *core.Snapshot) error {
	// outbound transfers and sub-unit dust are not custody credits
	units := snapshot.Amount.IntPart()
	if snapshot.OpponentID == "" || units <= 0 {
		return nil
	}

	return w.custodies.Credit(ctx, &core.CustodyEntry{
		SnapshotID: snapshot.SnapshotID,
		UserID:     snapshot.OpponentID,
		Units:      uint64(units),
	})
}
