package rest

import (
	"bondcdp/core"
	"bondcdp/handler/render"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/jinzhu/gorm"
)

func custodyHandler(custodyStore core.ICustodyStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := chi.URLParam(r, "user")

		custody, err := custodyStore.Find(r.Context(), user)
		if err != nil {
			// no record just means nothing deposited yet
			if gorm.IsRecordNotFoundError(err) {
				custody = &core.Custody{UserID: user}
			} else {
				renderErr(w, err)
				return
			}
		}

		render.JSON(w, render.H{"custody": custody})
	}
}
