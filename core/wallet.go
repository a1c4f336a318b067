package core

import (
	"context"
	"time"

	"github.com/fox-one/mixin-sdk-go"
	"github.com/shopspring/decimal"
)

// Wallet wallet
type Wallet struct {
	Client *mixin.Client `json:"client"`
	Pin    string        `json:"pin"`
}

// Transfer an issuance request against the external ledger.
//
// Amount is in indivisible token units, same unit as Vault.Borrowed.
type Transfer struct {
	AssetID    string `json:"asset_id"`
	OpponentID string `json:"opponent_id"`
	Amount     uint64 `json:"amount"`
	TraceID    string `json:"trace_id"`
	Memo       string `json:"memo"`
}

// Snapshot one transfer on the external ledger as seen by the dapp.
// Amount is positive for inbound transfers, negative for outbound.
type Snapshot struct {
	SnapshotID string          `json:"snapshot_id"`
	AssetID    string          `json:"asset_id"`
	OpponentID string          `json:"opponent_id"`
	Amount     decimal.Decimal `json:"amount"`
	Memo       string          `json:"memo"`
	CreatedAt  time.Time       `json:"created_at"`
}

// IWalletService external ledger capability.
//
// Issue must succeed before the triggering operation commits its own
// record mutation; callers run it inside the same transaction.
type IWalletService interface {
	ListSnapshots(ctx context.Context, assetID string, offset time.Time, limit int) ([]*Snapshot, error)
	Issue(ctx context.Context, transfer *Transfer) error
}
