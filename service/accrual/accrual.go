package accrual

import (
	"bondcdp/core"
	"bondcdp/internal/cdp"
	"bondcdp/pkg/id"
	"context"
	"fmt"
	"time"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

type accrualService struct {
	cfg     *core.Config
	vaults  core.IVaultStore
	rates   core.IRateStore
	wallets core.IWalletService
	tx      func(fn func(tx *db.DB) error) error
}

// New new accrual service
func New(database *db.DB,
	cfg *core.Config,
	vaults core.IVaultStore,
	rates core.IRateStore,
	wallets core.IWalletService) core.IAccrualService {
	return &accrualService{
		cfg:     cfg,
		vaults:  vaults,
		rates:   rates,
		wallets: wallets,
		tx:      database.Tx,
	}
}

func (s *accrualService) Accrue(ctx context.Context, vaultID uint64) (*core.Vault, error) {
	log := logger.FromContext(ctx).WithField("service", "accrual")

	vault, err := s.vaults.FindByID(ctx, vaultID)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, core.ErrVaultNotFound
		}

		return nil, err
	}

	config, err := s.rates.Find(ctx)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, core.ErrRateConfigNotFound
		}

		return nil, err
	}

	now := time.Now().UTC().Unix()
	if now < vault.LastEventTimestamp {
		return nil, core.ErrInvalidClockOrdering
	}

	elapsed := uint64(now - vault.LastEventTimestamp)
	interest, ok := cdp.Interest(vault.Borrowed, config.BorrowRateBps, elapsed)
	if !ok {
		return nil, core.ErrArithmeticOverflow
	}

	// the accrual clock resets even when interest is zero
	vault.LastEventTimestamp = now

	// keyed by the vault version so a retry after an aborted transaction
	// reuses the trace and the ledger deduplicates the transfer
	trace := id.TraceIDFrom(fmt.Sprintf("accrue-%d-%d", vault.ID, vault.Version))
	err = s.tx(func(tx *db.DB) error {
		if err := s.vaults.Update(ctx, tx, vault); err != nil {
			return err
		}

		if interest == 0 {
			return nil
		}

		// interest credit goes to the reward sink, not the vault owner,
		// and vault.Borrowed stays untouched
		return s.wallets.Issue(ctx, &core.Transfer{
			AssetID:    s.cfg.App.StablecoinAssetID,
			OpponentID: s.cfg.App.RewardSinkID,
			Amount:     interest,
			TraceID:    trace,
			Memo:       "interest accrual",
		})
	})
	if err != nil {
		log.WithError(err).Errorln("accrue aborted")
		return nil, err
	}

	return vault, nil
}
