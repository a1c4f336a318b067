package rest

import (
	"bondcdp/core"
	"bondcdp/handler/render"
	"bondcdp/pkg/number"
	"encoding/json"
	"net/http"
	"time"

	"github.com/bluele/gcache"
	"github.com/jinzhu/gorm"
)

const rateCacheKey = "rate_config"

var rateCache = gcache.New(1).LRU().Build()

func rateHandler(rateStore core.IRateStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if v, err := rateCache.Get(rateCacheKey); err == nil {
			render.JSON(w, v)
			return
		}

		config, err := rateStore.Find(r.Context())
		if err != nil {
			if gorm.IsRecordNotFoundError(err) {
				err = core.ErrRateConfigNotFound
			}
			renderErr(w, err)
			return
		}

		view := render.H{
			"admin":               config.Admin,
			"borrow_rate_bps":     config.BorrowRateBps,
			"borrow_rate_percent": number.Percent(config.BorrowRateBps).String(),
			"updated_at":          config.UpdatedAt,
		}

		_ = rateCache.SetWithExpire(rateCacheKey, view, 10*time.Second)

		render.JSON(w, view)
	}
}

func setRateHandler(rateService core.IRateService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Caller        string `json:"caller"`
			BorrowRateBps uint64 `json:"borrow_rate_bps"`
		}

		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Caller == "" {
			render.BadRequest(w, core.ErrUnauthorized)
			return
		}

		config, err := rateService.SetBorrowRate(r.Context(), body.Caller, body.BorrowRateBps)
		if err != nil {
			renderErr(w, err)
			return
		}

		rateCache.Remove(rateCacheKey)

		render.JSON(w, render.H{"rate_config": config})
	}
}
