package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
)

// Custody per-user balance of bond collateral units held by the dapp.
//
// Units are credited by the payee worker when the user's inbound bond
// transfer lands, and debited when a deposit locks them into a vault.
type Custody struct {
	ID        uint64    `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	UserID    string    `sql:"size:36" json:"user_id"`
	Units     uint64    `sql:"default:0" json:"units"`
	Version   int64     `sql:"default:0" json:"version"`
	CreatedAt time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// CustodyEntry one inbound bond transfer, keyed by its ledger snapshot.
// The unique snapshot id makes replayed snapshots a no-op.
type CustodyEntry struct {
	ID         uint64    `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	SnapshotID string    `sql:"size:36" json:"snapshot_id"`
	UserID     string    `sql:"size:36" json:"user_id"`
	Units      uint64    `sql:"default:0" json:"units"`
	CreatedAt  time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// ICustodyStore custody store interface
type ICustodyStore interface {
	Find(ctx context.Context, userID string) (*Custody, error)
	Credit(ctx context.Context, entry *CustodyEntry) error
	Update(ctx context.Context, tx *db.DB, custody *Custody) error
}
