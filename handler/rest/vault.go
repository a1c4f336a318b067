package rest

import (
	"bondcdp/core"
	"bondcdp/handler/render"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/jinzhu/gorm"
	"github.com/spf13/cast"
)

func allVaultsHandler(vaultStore core.IVaultStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vaults, err := vaultStore.All(r.Context())
		if err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, render.H{"vaults": vaults})
	}
}

func vaultHandler(vaultStore core.IVaultStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := chi.URLParam(r, "user")

		vault, err := vaultStore.Find(r.Context(), user)
		if err != nil {
			if gorm.IsRecordNotFoundError(err) {
				err = core.ErrVaultNotFound
			}
			renderErr(w, err)
			return
		}

		render.JSON(w, render.H{"vault": vault})
	}
}

func accrueHandler(accrualService core.IAccrualService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vaultID := cast.ToUint64(chi.URLParam(r, "vault_id"))
		if vaultID == 0 {
			render.BadRequest(w, core.ErrVaultNotFound)
			return
		}

		vault, err := accrualService.Accrue(r.Context(), vaultID)
		if err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, render.H{"vault": vault})
	}
}

func depositHandler(issuanceService core.IIssuanceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			UserID    string `json:"user_id"`
			UnitCount uint64 `json:"unit_count"`
		}

		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.UserID == "" {
			render.BadRequest(w, core.ErrInvalidAmount)
			return
		}

		vault, err := issuanceService.DepositAndBorrow(r.Context(), body.UserID, body.UnitCount)
		if err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, render.H{"vault": vault})
	}
}
