package accrual

import (
	"bondcdp/core"
	"bondcdp/pkg/id"
	"context"
	"testing"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVaultStore struct {
	vaults    map[uint64]*core.Vault
	updateErr error
}

func (s *fakeVaultStore) Save(ctx context.Context, vault *core.Vault) error {
	s.vaults[vault.ID] = vault
	return nil
}

func (s *fakeVaultStore) Find(ctx context.Context, userID string) (*core.Vault, error) {
	for _, vault := range s.vaults {
		if vault.UserID == userID {
			return vault, nil
		}
	}

	return nil, gorm.ErrRecordNotFound
}

func (s *fakeVaultStore) FindByID(ctx context.Context, id uint64) (*core.Vault, error) {
	if vault, ok := s.vaults[id]; ok {
		clone := *vault
		return &clone, nil
	}

	return nil, gorm.ErrRecordNotFound
}

func (s *fakeVaultStore) All(ctx context.Context) ([]*core.Vault, error) {
	var vaults []*core.Vault
	for _, vault := range s.vaults {
		vaults = append(vaults, vault)
	}

	return vaults, nil
}

func (s *fakeVaultStore) Update(ctx context.Context, tx *db.DB, vault *core.Vault) error {
	if s.updateErr != nil {
		return s.updateErr
	}

	vault.Version++
	clone := *vault
	s.vaults[vault.ID] = &clone
	return nil
}

type fakeRateStore struct {
	config *core.RateConfig
}

func (s *fakeRateStore) Save(ctx context.Context, config *core.RateConfig) error {
	s.config = config
	return nil
}

func (s *fakeRateStore) Find(ctx context.Context) (*core.RateConfig, error) {
	if s.config == nil {
		return nil, gorm.ErrRecordNotFound
	}

	return s.config, nil
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

func testService(vaults core.IVaultStore, rates core.IRateStore, wallets core.IWalletService) *accrualService {
	return &accrualService{
		cfg: &core.Config{
			App: core.App{
				BondAssetID:       "bond-asset",
				StablecoinAssetID: "stable-asset",
				RewardSinkID:      "reward-sink",
			},
		},
		vaults:  vaults,
		rates:   rates,
		wallets: wallets,
		tx: func(fn func(tx *db.DB) error) error {
			return fn(nil)
		},
	}
}

func TestAccrue(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC().Unix()

	vaults := &fakeVaultStore{vaults: map[uint64]*core.Vault{
		1: {ID: 1, UserID: "alice", CollateralUnits: 1, Borrowed: 950, LastEventTimestamp: now - 31536000},
	}}
	rates := &fakeRateStore{config: &core.RateConfig{Admin: "admin", BorrowRateBps: 500}}
	wallet := &fakeWallet{}
	s := testService(vaults, rates, wallet)

	vault, err := s.Accrue(ctx, 1)
	require.Nil(t, err)

	// interest goes to the reward sink, the vault's own debt is untouched
	assert.Equal(t, uint64(950), vault.Borrowed)
	assert.True(t, vault.LastEventTimestamp >= now)

	require.Len(t, wallet.transfers, 1)
	assert.Equal(t, "stable-asset", wallet.transfers[0].AssetID)
	assert.Equal(t, "reward-sink", wallet.transfers[0].OpponentID)
	assert.Equal(t, uint64(47), wallet.transfers[0].Amount)

	// trace keyed by the vault version read before the update, a retry
	// after an aborted transaction reuses it
	assert.Equal(t, id.TraceIDFrom("accrue-1-0"), wallet.transfers[0].TraceID)
}

func TestAccrueAbortsOnVaultConflict(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC().Unix()

	vaults := &fakeVaultStore{vaults: map[uint64]*core.Vault{
		1: {ID: 1, UserID: "alice", CollateralUnits: 1, Borrowed: 950, LastEventTimestamp: now - 31536000},
	}}
	vaults.updateErr = core.ErrOptimisticLock
	rates := &fakeRateStore{config: &core.RateConfig{Admin: "admin", BorrowRateBps: 500}}
	wallet := &fakeWallet{}
	s := testService(vaults, rates, wallet)

	_, err := s.Accrue(ctx, 1)
	assert.Equal(t, core.ErrOptimisticLock, err)
	assert.Len(t, wallet.transfers, 0)
}

func TestAccrueTwiceDoesNotDoubleAccrue(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC().Unix()

	vaults := &fakeVaultStore{vaults: map[uint64]*core.Vault{
		1: {ID: 1, UserID: "alice", CollateralUnits: 1, Borrowed: 950, LastEventTimestamp: now - 31536000},
	}}
	rates := &fakeRateStore{config: &core.RateConfig{Admin: "admin", BorrowRateBps: 500}}
	wallet := &fakeWallet{}
	s := testService(vaults, rates, wallet)

	first, err := s.Accrue(ctx, 1)
	require.Nil(t, err)

	// back to back call observes ~zero elapsed, still advances the clock
	second, err := s.Accrue(ctx, 1)
	require.Nil(t, err)
	assert.True(t, second.LastEventTimestamp >= first.LastEventTimestamp)

	assert.Len(t, wallet.transfers, 1)
}

func TestAccrueZeroInterestAdvancesClock(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC().Unix()

	vaults := &fakeVaultStore{vaults: map[uint64]*core.Vault{
		1: {ID: 1, UserID: "alice", Borrowed: 0, LastEventTimestamp: now - 3600},
	}}
	rates := &fakeRateStore{config: &core.RateConfig{Admin: "admin", BorrowRateBps: 500}}
	wallet := &fakeWallet{}
	s := testService(vaults, rates, wallet)

	vault, err := s.Accrue(ctx, 1)
	require.Nil(t, err)
	assert.True(t, vault.LastEventTimestamp >= now)
	assert.Len(t, wallet.transfers, 0)
}

func TestAccrueClockWentBackwards(t *testing.T) {
	ctx := context.Background()
	future := time.Now().UTC().Add(time.Hour).Unix()

	vaults := &fakeVaultStore{vaults: map[uint64]*core.Vault{
		1: {ID: 1, UserID: "alice", Borrowed: 950, LastEventTimestamp: future},
	}}
	rates := &fakeRateStore{config: &core.RateConfig{Admin: "admin", BorrowRateBps: 500}}
	s := testService(vaults, rates, &fakeWallet{})

	_, err := s.Accrue(ctx, 1)
	assert.Equal(t, core.ErrInvalidClockOrdering, err)
}

func TestAccrueOverflow(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC().Unix()

	vaults := &fakeVaultStore{vaults: map[uint64]*core.Vault{
		1: {ID: 1, UserID: "alice", Borrowed: ^uint64(0), LastEventTimestamp: now - 31536000},
	}}
	rates := &fakeRateStore{config: &core.RateConfig{Admin: "admin", BorrowRateBps: ^uint64(0)}}
	s := testService(vaults, rates, &fakeWallet{})

	_, err := s.Accrue(ctx, 1)
	assert.Equal(t, core.ErrArithmeticOverflow, err)
}

func TestAccrueVaultNotFound(t *testing.T) {
	ctx := context.Background()

	vaults := &fakeVaultStore{vaults: map[uint64]*core.Vault{}}
	rates := &fakeRateStore{config: &core.RateConfig{Admin: "admin", BorrowRateBps: 500}}
	s := testService(vaults, rates, &fakeWallet{})

	_, err := s.Accrue(ctx, 42)
	assert.Equal(t, core.ErrVaultNotFound, err)
}

func TestAccrueRateNotProvisioned(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC().Unix()

	vaults := &fakeVaultStore{vaults: map[uint64]*core.Vault{
		1: {ID: 1, UserID: "alice", Borrowed: 950, LastEventTimestamp: now},
	}}
	s := testService(vaults, &fakeRateStore{}, &fakeWallet{})

	_, err := s.Accrue(ctx, 1)
	assert.Equal(t, core.ErrRateConfigNotFound, err)
}
