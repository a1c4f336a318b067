package rate

import (
	"bondcdp/core"
	"context"

	"github.com/fox-one/pkg/store/db"
)

// single row table, the record is provisioned once by migrate
const configID = 1

type rateStore struct {
	db *db.DB
}

// New new rate config store
func New(db *db.DB) core.IRateStore {
	return &rateStore{
		db: db,
	}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.RateConfig{})

		if err := tx.AutoMigrate(core.RateConfig{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *rateStore) Save(ctx context.Context, config *core.RateConfig) error {
	config.ID = configID
	return s.db.Update().Where("id=?", configID).Assign(map[string]interface{}{
		"admin":           config.Admin,
		"borrow_rate_bps": config.BorrowRateBps,
	}).FirstOrCreate(config).Error
}

func (s *rateStore) Find(ctx context.Context) (*core.RateConfig, error) {
	var config core.RateConfig
	if err := s.db.View().Where("id=?", configID).First(&config).Error; err != nil {
		return nil, err
	}

	return &config, nil
}
