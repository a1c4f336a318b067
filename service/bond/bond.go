package bond

import (
	"bondcdp/core"
	"bondcdp/pkg/id"
	"context"

	"github.com/asaskevich/govalidator"
	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

type bondService struct {
	cfg     *core.Config
	bonds   core.IBondStore
	wallets core.IWalletService
	tx      func(fn func(tx *db.DB) error) error
}

// New new bond registry service
func New(database *db.DB,
	cfg *core.Config,
	bonds core.IBondStore,
	wallets core.IWalletService) core.IBondService {
	return &bondService{
		cfg:     cfg,
		bonds:   bonds,
		wallets: wallets,
		tx:      database.Tx,
	}
}

func (s *bondService) RegisterAndIssue(ctx context.Context, userID, isin string) (*core.Bond, error) {
	log := logger.FromContext(ctx).WithField("service", "bond")

	if len(isin) > core.MaxISINLength {
		return nil, core.ErrInvalidIdentifierLength
	}

	if isin == "" || !govalidator.IsAlphanumeric(isin) {
		return nil, core.ErrInvalidIdentifier
	}

	if _, err := s.bonds.Find(ctx, isin); err == nil {
		return nil, core.ErrBondExists
	} else if !gorm.IsRecordNotFoundError(err) {
		return nil, err
	}

	bond := &core.Bond{
		ISIN:    isin,
		UserID:  userID,
		TraceID: id.GenTraceID(),
	}

	err := s.tx(func(tx *db.DB) error {
		if err := s.bonds.Create(ctx, tx, bond); err != nil {
			return err
		}

		// one isin binds exactly one collateral unit
		return s.wallets.Issue(ctx, &core.Transfer{
			AssetID:    s.cfg.App.BondAssetID,
			OpponentID: userID,
			Amount:     1,
			TraceID:    bond.TraceID,
			Memo:       "bond issue " + isin,
		})
	})
	if err != nil {
		log.WithError(err).Errorln("register and issue aborted")
		return nil, err
	}

	return bond, nil
}
