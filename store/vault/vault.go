package vault

import (
	"bondcdp/core"
	"context"

	"github.com/fox-one/pkg/store/db"
)

type vaultStore struct {
	db *db.DB
}

// New new vault store
func New(db *db.DB) core.IVaultStore {
	return &vaultStore{
		db: db,
	}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Vault{})

		if err := tx.AutoMigrate(core.Vault{}).Error; err != nil {
			return err
		}

		if err := tx.AddUniqueIndex("idx_vaults_user_id", "user_id").Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *vaultStore) Save(ctx context.Context, vault *core.Vault) error {
	return s.db.Update().Where("user_id=?", vault.UserID).FirstOrCreate(vault).Error
}

func (s *vaultStore) Find(ctx context.Context, userID string) (*core.Vault, error) {
	var vault core.Vault
	if err := s.db.View().Where("user_id=?", userID).First(&vault).Error; err != nil {
		return nil, err
	}

	return &vault, nil
}

func (s *vaultStore) FindByID(ctx context.Context, id uint64) (*core.Vault, error) {
	var vault core.Vault
	if err := s.db.View().Where("id=?", id).First(&vault).Error; err != nil {
		return nil, err
	}

	return &vault, nil
}

func (s *vaultStore) All(ctx context.Context) ([]*core.Vault, error) {
	var vaults []*core.Vault
	if err := s.db.View().Find(&vaults).Error; err != nil {
		return nil, err
	}

	return vaults, nil
}

func (s *vaultStore) Update(ctx context.Context, tx *db.DB, vault *core.Vault) error {
	version := vault.Version
	vault.Version++

	update := tx.Update().Model(core.Vault{}).Where("id=? and version=?", vault.ID, version).Updates(vault)
	if update.Error != nil {
		return update.Error
	}

	// a lost optimistic race must abort the surrounding transaction,
	// the external issuance inside it must not commit
	if update.RowsAffected == 0 {
		return core.ErrOptimisticLock
	}

	return nil
}
