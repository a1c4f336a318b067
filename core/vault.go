package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
)

// Vault per-owner ledger of deposited collateral and outstanding debt.
//
// Borrowed is append only: there is no repayment or liquidation path,
// accrual pays interest to the reward sink without touching it.
type Vault struct {
	ID                 uint64    `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	UserID             string    `sql:"size:36" json:"user_id"`
	CollateralUnits    uint64    `sql:"default:0" json:"collateral_units"`
	Borrowed           uint64    `sql:"default:0" json:"borrowed"`
	LastEventTimestamp int64     `sql:"default:0" json:"last_event_timestamp"`
	Version            int64     `sql:"default:0" json:"version"`
	CreatedAt          time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt          time.Time `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// IVaultStore vault store interface
type IVaultStore interface {
	Save(ctx context.Context, vault *Vault) error
	Find(ctx context.Context, userID string) (*Vault, error)
	FindByID(ctx context.Context, id uint64) (*Vault, error)
	All(ctx context.Context) ([]*Vault, error)
	Update(ctx context.Context, tx *db.DB, vault *Vault) error
}

// IIssuanceService issuance engine interface
type IIssuanceService interface {
	DepositAndBorrow(ctx context.Context, userID string, unitCount uint64) (*Vault, error)
}

// IAccrualService accrual engine interface
//
// Accrue is a public maintenance operation, callable by anyone.
type IAccrualService interface {
	Accrue(ctx context.Context, vaultID uint64) (*Vault, error)
}
