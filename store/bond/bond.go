package bond

import (
	"bondcdp/core"
	"context"

	"github.com/fox-one/pkg/store/db"
)

type bondStore struct {
	db *db.DB
}

// New new bond store
func New(db *db.DB) core.IBondStore {
	return &bondStore{
		db: db,
	}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Bond{})

		if err := tx.AutoMigrate(core.Bond{}).Error; err != nil {
			return err
		}

		if err := tx.AddUniqueIndex("idx_bonds_isin", "isin").Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *bondStore) Create(ctx context.Context, tx *db.DB, bond *core.Bond) error {
	return tx.Update().Create(bond).Error
}

func (s *bondStore) Find(ctx context.Context, isin string) (*core.Bond, error) {
	var bond core.Bond
	if err := s.db.View().Where("isin=?", isin).First(&bond).Error; err != nil {
		return nil, err
	}

	return &bond, nil
}

func (s *bondStore) All(ctx context.Context) ([]*core.Bond, error) {
	var bonds []*core.Bond
	if err := s.db.View().Find(&bonds).Error; err != nil {
		return nil, err
	}

	return bonds, nil
}
