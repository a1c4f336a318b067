package custody

import (
	"bondcdp/core"
	"bondcdp/pkg/number"
	"context"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

type custodyStore struct {
	db *db.DB
}

// New new custody store
func New(db *db.DB) core.ICustodyStore {
	return &custodyStore{
		db: db,
	}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Custody{})

		if err := tx.AutoMigrate(core.Custody{}).Error; err != nil {
			return err
		}

		if err := tx.AddUniqueIndex("idx_custodies_user_id", "user_id").Error; err != nil {
			return err
		}

		entries := db.Update().Model(core.CustodyEntry{})

		if err := entries.AutoMigrate(core.CustodyEntry{}).Error; err != nil {
			return err
		}

		if err := entries.AddUniqueIndex("idx_custody_entries_snapshot_id", "snapshot_id").Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *custodyStore) Find(ctx context.Context, userID string) (*core.Custody, error) {
	var custody core.Custody
	if err := s.db.View().Where("user_id=?", userID).First(&custody).Error; err != nil {
		return nil, err
	}

	return &custody, nil
}

// Credit records one inbound transfer and adds its units to the user's
// custody balance. Replaying the same snapshot is a no-op.
func (s *custodyStore) Credit(ctx context.Context, entry *core.CustodyEntry) error {
	return s.db.Tx(func(tx *db.DB) error {
		var exist core.CustodyEntry
		if err := tx.Update().Where("snapshot_id=?", entry.SnapshotID).First(&exist).Error; err == nil {
			return nil
		} else if !gorm.IsRecordNotFoundError(err) {
			return err
		}

		if err := tx.Update().Create(entry).Error; err != nil {
			return err
		}

		custody := &core.Custody{UserID: entry.UserID}
		if err := tx.Update().Where("user_id=?", entry.UserID).FirstOrCreate(custody).Error; err != nil {
			return err
		}

		units, ok := number.AddUint64(custody.Units, entry.Units)
		if !ok {
			return core.ErrArithmeticOverflow
		}

		custody.Units = units
		return update(tx, custody)
	})
}

func (s *custodyStore) Update(ctx context.Context, tx *db.DB, custody *core.Custody) error {
	return update(tx, custody)
}

func update(tx *db.DB, custody *core.Custody) error {
	version := custody.Version
	custody.Version++

	// map updates so a debit down to zero units still lands
	result := tx.Update().Model(core.Custody{}).
		Where("id=? and version=?", custody.ID, version).
		Updates(map[string]interface{}{
			"units":   custody.Units,
			"version": custody.Version,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return core.ErrOptimisticLock
	}

	return nil
}
