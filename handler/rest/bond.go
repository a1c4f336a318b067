package rest

import (
	"bondcdp/core"
	"bondcdp/handler/render"
	"encoding/json"
	"net/http"
)

func allBondsHandler(bondStore core.IBondStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bonds, err := bondStore.All(r.Context())
		if err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, render.H{"bonds": bonds})
	}
}

func registerBondHandler(bondService core.IBondService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			UserID string `json:"user_id"`
			ISIN   string `json:"isin"`
		}

		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.UserID == "" {
			render.BadRequest(w, core.ErrInvalidIdentifier)
			return
		}

		bond, err := bondService.RegisterAndIssue(r.Context(), body.UserID, body.ISIN)
		if err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, render.H{"bond": bond})
	}
}
