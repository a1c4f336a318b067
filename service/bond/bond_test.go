package bond

import (
	"bondcdp/core"
	"context"
	"testing"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBondStore struct {
	bonds map[string]*core.Bond
}

func newFakeBondStore() *fakeBondStore {
	return &fakeBondStore{bonds: map[string]*core.Bond{}}
}

func (s *fakeBondStore) Create(ctx context.Context, tx *db.DB, bond *core.Bond) error {
	s.bonds[bond.ISIN] = bond
	return nil
}

func (s *fakeBondStore) Find(ctx context.Context, isin string) (*core.Bond, error) {
	if bond, ok := s.bonds[isin]; ok {
		return bond, nil
	}

	return nil, gorm.ErrRecordNotFound
}

func (s *fakeBondStore) All(ctx context.Context) ([]*core.Bond, error) {
	var bonds []*core.Bond
	for _, bond := range s.bonds {
		bonds = append(bonds, bond)
	}

	return bonds, nil
}

type fakeWallet struct {
	transfers []*core.Transfer
}

func (w *fakeWallet) ListSnapshots(ctx context.Context, assetID string, offset time.Time, limit int) ([]*core.Snapshot, error) {
	return nil, nil
}

func (w *fakeWallet) Issue(ctx context.Context, transfer *core.Transfer) error {
	w.transfers = append(w.transfers, transfer)
	return nil
}

func testService(bonds core.IBondStore, wallets core.IWalletService) *bondService {
	return &bondService{
		cfg: &core.Config{
			App: core.App{
				BondAssetID:       "bond-asset",
				StablecoinAssetID: "stable-asset",
			},
		},
		bonds:   bonds,
		wallets: wallets,
		tx: func(fn func(tx *db.DB) error) error {
			return fn(nil)
		},
	}
}

func TestRegisterAndIssue(t *testing.T) {
	ctx := context.Background()
	store := newFakeBondStore()
	wallet := &fakeWallet{}
	s := testService(store, wallet)

	bond, err := s.RegisterAndIssue(ctx, "alice", "US0378331005")
	require.Nil(t, err)
	assert.Equal(t, "US0378331005", bond.ISIN)
	assert.Equal(t, "alice", bond.UserID)

	// exactly one collateral unit per isin
	require.Len(t, wallet.transfers, 1)
	assert.Equal(t, "bond-asset", wallet.transfers[0].AssetID)
	assert.Equal(t, "alice", wallet.transfers[0].OpponentID)
	assert.Equal(t, uint64(1), wallet.transfers[0].Amount)
}

func TestRegisterAndIssueIdentifierTooLong(t *testing.T) {
	ctx := context.Background()
	s := testService(newFakeBondStore(), &fakeWallet{})

	_, err := s.RegisterAndIssue(ctx, "alice", "US03783310051")
	assert.Equal(t, core.ErrInvalidIdentifierLength, err)
}

func TestRegisterAndIssueInvalidIdentifier(t *testing.T) {
	ctx := context.Background()
	s := testService(newFakeBondStore(), &fakeWallet{})

	_, err := s.RegisterAndIssue(ctx, "alice", "")
	assert.Equal(t, core.ErrInvalidIdentifier, err)

	_, err = s.RegisterAndIssue(ctx, "alice", "US-037833")
	assert.Equal(t, core.ErrInvalidIdentifier, err)
}

func TestRegisterAndIssueDuplicate(t *testing.T) {
	ctx := context.Background()
	store := newFakeBondStore()
	s := testService(store, &fakeWallet{})

	_, err := s.RegisterAndIssue(ctx, "alice", "US0378331005")
	require.Nil(t, err)

	_, err = s.RegisterAndIssue(ctx, "bob", "US0378331005")
	assert.Equal(t, core.ErrBondExists, err)
}
