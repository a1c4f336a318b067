package issuance

import (
	"bondcdp/core"
	"bondcdp/internal/cdp"
	"bondcdp/pkg/id"
	"bondcdp/pkg/number"
	"context"
	"fmt"
	"time"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

type issuanceService struct {
	cfg       *core.Config
	vaults    core.IVaultStore
	custodies core.ICustodyStore
	wallets   core.IWalletService
	tx        func(fn func(tx *db.DB) error) error
}

// New new issuance service
func New(database *db.DB,
	cfg *core.Config,
	vaults core.IVaultStore,
	custodies core.ICustodyStore,
	wallets core.IWalletService) core.IIssuanceService {
	return &issuanceService{
		cfg:       cfg,
		vaults:    vaults,
		custodies: custodies,
		wallets:   wallets,
		tx:        database.Tx,
	}
}

func (s *issuanceService) DepositAndBorrow(ctx context.Context, userID string, unitCount uint64) (*core.Vault, error) {
	log := logger.FromContext(ctx).WithField("service", "issuance")

	if unitCount == 0 {
		return nil, core.ErrInvalidAmount
	}

	// the ceiling is valued per deposit, cumulative holdings are not revalued
	mintable, ok := cdp.Mintable(unitCount)
	if !ok {
		return nil, core.ErrArithmeticOverflow
	}

	// the caller's own custody balance backs the deposit, units other
	// users funded are out of reach
	custody, err := s.custodies.Find(ctx, userID)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, core.ErrInsufficientCollateral
		}

		log.WithError(err).Errorln("read custody balance")
		return nil, err
	}

	if custody.Units < unitCount {
		return nil, core.ErrInsufficientCollateral
	}

	vault := &core.Vault{UserID: userID}
	if err := s.vaults.Save(ctx, vault); err != nil {
		log.WithError(err).Errorln("upsert vault")
		return nil, err
	}

	units, ok := number.AddUint64(vault.CollateralUnits, unitCount)
	if !ok {
		return nil, core.ErrArithmeticOverflow
	}

	borrowed, ok := number.AddUint64(vault.Borrowed, mintable)
	if !ok {
		return nil, core.ErrArithmeticOverflow
	}

	vault.UserID = userID
	vault.CollateralUnits = units
	vault.Borrowed = borrowed
	vault.LastEventTimestamp = time.Now().UTC().Unix()

	custody.Units -= unitCount

	trace := id.TraceIDFrom(fmt.Sprintf("deposit-%s-%d-%d", userID, vault.ID, vault.Version))
	err = s.tx(func(tx *db.DB) error {
		if err := s.custodies.Update(ctx, tx, custody); err != nil {
			return err
		}

		if err := s.vaults.Update(ctx, tx, vault); err != nil {
			return err
		}

		// external issuance must succeed before the vault mutation commits
		return s.wallets.Issue(ctx, &core.Transfer{
			AssetID:    s.cfg.App.StablecoinAssetID,
			OpponentID: userID,
			Amount:     mintable,
			TraceID:    trace,
			Memo:       "deposit and borrow",
		})
	})
	if err != nil {
		log.WithError(err).Errorln("deposit and borrow aborted")
		return nil, err
	}

	return vault, nil
}
