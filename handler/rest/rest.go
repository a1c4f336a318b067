package rest

import (
	"bondcdp/core"
	"bondcdp/handler/codes"
	"bondcdp/handler/render"
	"errors"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/spf13/cast"
)

// Handle handle rest api request
func Handle(vaultStore core.IVaultStore,
	custodyStore core.ICustodyStore,
	rateStore core.IRateStore,
	bondStore core.IBondStore,
	issuanceService core.IIssuanceService,
	accrualService core.IAccrualService,
	rateService core.IRateService,
	bondService core.IBondService) http.Handler {
	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, errors.New("not found"))
	})

	router.Get("/vaults", allVaultsHandler(vaultStore))
	router.Get("/vaults/{user}", vaultHandler(vaultStore))
	router.Post("/vaults/{vault_id}/accrue", accrueHandler(accrualService))
	router.Get("/custody/{user}", custodyHandler(custodyStore))
	router.Post("/deposits", depositHandler(issuanceService))
	router.Get("/rate", rateHandler(rateStore))
	router.Put("/rate", setRateHandler(rateService))
	router.Get("/bonds", allBondsHandler(bondStore))
	router.Post("/bonds", registerBondHandler(bondService))

	return router
}

func renderErr(w http.ResponseWriter, err error) {
	twerr := codes.Twirp(err)
	render.Error(w, codes.HTTPStatus(twerr), cast.ToInt(twerr.Meta(codes.CustomCodeKey)), twerr)
}
