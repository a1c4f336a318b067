package rate

import (
	"bondcdp/core"
	"context"

	"github.com/fox-one/pkg/logger"
	"github.com/jinzhu/gorm"
)

type rateService struct {
	rates core.IRateStore
}

// New new rate service
func New(rates core.IRateStore) core.IRateService {
	return &rateService{
		rates: rates,
	}
}

func (s *rateService) SetBorrowRate(ctx context.Context, caller string, rateBps uint64) (*core.RateConfig, error) {
	log := logger.FromContext(ctx).WithField("service", "rate")

	config, err := s.rates.Find(ctx)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, core.ErrRateConfigNotFound
		}

		return nil, err
	}

	if config.Admin != caller {
		return nil, core.ErrUnauthorized
	}

	if config.BorrowRateBps == rateBps {
		return config, nil
	}

	config.BorrowRateBps = rateBps
	if err := s.rates.Save(ctx, config); err != nil {
		log.WithError(err).Errorln("save rate config")
		return nil, err
	}

	return config, nil
}
