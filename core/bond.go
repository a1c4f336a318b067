package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
)

// MaxISINLength isin identifiers are at most 12 characters
const MaxISINLength = 12

// Bond immutable record binding an isin to a single issued collateral unit
type Bond struct {
	ID        uint64    `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	ISIN      string    `sql:"size:12" json:"isin"`
	UserID    string    `sql:"size:36" json:"user_id"`
	TraceID   string    `sql:"size:36" json:"trace_id"`
	CreatedAt time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// IBondStore bond store interface
type IBondStore interface {
	Create(ctx context.Context, tx *db.DB, bond *Bond) error
	Find(ctx context.Context, isin string) (*Bond, error)
	All(ctx context.Context) ([]*Bond, error)
}

// IBondService bond registry service interface
type IBondService interface {
	RegisterAndIssue(ctx context.Context, userID, isin string) (*Bond, error)
}
