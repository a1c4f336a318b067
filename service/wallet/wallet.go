package wallet

import (
	"bondcdp/core"
	"context"
	"math"
	"time"

	"github.com/fox-one/mixin-sdk-go"
	"github.com/shopspring/decimal"
)

// New new wallet service
func New(mainWallet *core.Wallet) core.IWalletService {
	return &walletService{
		mainWallet: mainWallet,
	}
}

type walletService struct {
	mainWallet *core.Wallet
}

func (s *walletService) ListSnapshots(ctx context.Context, assetID string, offset time.Time, limit int) ([]*core.Snapshot, error) {
	raws, err := s.mainWallet.Client.ReadSnapshots(ctx, assetID, offset, "ASC", limit)
	if err != nil {
		return nil, err
	}

	snapshots := make([]*core.Snapshot, 0, len(raws))
	for _, raw := range raws {
		snapshots = append(snapshots, &core.Snapshot{
			SnapshotID: raw.SnapshotID,
			AssetID:    raw.AssetID,
			OpponentID: raw.OpponentID,
			Amount:     raw.Amount,
			Memo:       raw.Memo,
			CreatedAt:  raw.CreatedAt,
		})
	}

	return snapshots, nil
}

func (s *walletService) Issue(ctx context.Context, transfer *core.Transfer) error {
	if transfer.Amount > math.MaxInt64 {
		return core.ErrArithmeticOverflow
	}

	input := &mixin.TransferInput{
		AssetID:    transfer.AssetID,
		OpponentID: transfer.OpponentID,
		Amount:     decimal.New(int64(transfer.Amount), 0),
		TraceID:    transfer.TraceID,
		Memo:       transfer.Memo,
	}

	_, err := s.mainWallet.Client.Transfer(ctx, input, s.mainWallet.Pin)
	return err
}
