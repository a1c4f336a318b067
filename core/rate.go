package core

import (
	"context"
	"time"
)

// RateConfig process wide borrow rate record, mutated only by its admin.
//
// No rate history is kept: accrual always reads the current rate, even for
// intervals that span a rate change.
type RateConfig struct {
	ID            uint64    `sql:"PRIMARY_KEY" json:"id"`
	Admin         string    `sql:"size:36" json:"admin"`
	BorrowRateBps uint64    `sql:"default:0" json:"borrow_rate_bps"`
	CreatedAt     time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// IRateStore rate config store interface
type IRateStore interface {
	Save(ctx context.Context, config *RateConfig) error
	Find(ctx context.Context) (*RateConfig, error)
}

// IRateService rate config service interface
type IRateService interface {
	SetBorrowRate(ctx context.Context, caller string, rateBps uint64) (*RateConfig, error)
}
