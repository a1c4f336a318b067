package cmd

import (
	"bondcdp/core"
	accrualservice "bondcdp/service/accrual"
	bondservice "bondcdp/service/bond"
	issuanceservice "bondcdp/service/issuance"
	rateservice "bondcdp/service/rate"
	walletservice "bondcdp/service/wallet"
	bondstore "bondcdp/store/bond"
	custodystore "bondcdp/store/custody"
	ratestore "bondcdp/store/rate"
	vaultstore "bondcdp/store/vault"

	"github.com/fox-one/mixin-sdk-go"
	"github.com/fox-one/pkg/property"
	"github.com/fox-one/pkg/store/db"
	propertystore "github.com/fox-one/pkg/store/property"
)

func provideDatabase() *db.DB {
	return db.MustOpen(cfg.DB)
}

func provideConfig() *core.Config {
	return &cfg
}

func provideMainWallet() *core.Wallet {
	c, err := mixin.NewFromKeystore(&cfg.MainWallet.Keystore)
	if err != nil {
		panic(err)
	}

	return &core.Wallet{Client: c, Pin: cfg.MainWallet.Pin}
}

// ---------------store-----------------------------------------

func providePropertyStore(db *db.DB) property.Store {
	return propertystore.New(db)
}

func provideVaultStore(db *db.DB) core.IVaultStore {
	return vaultstore.New(db)
}

func provideCustodyStore(db *db.DB) core.ICustodyStore {
	return custodystore.New(db)
}

func provideRateStore(db *db.DB) core.IRateStore {
	return ratestore.New(db)
}

func provideBondStore(db *db.DB) core.IBondStore {
	return bondstore.New(db)
}

// ------------------service------------------------------------

func provideWalletService() core.IWalletService {
	return walletservice.New(provideMainWallet())
}

func provideIssuanceService(database *db.DB) core.IIssuanceService {
	return issuanceservice.New(database,
		provideConfig(),
		provideVaultStore(database),
		provideCustodyStore(database),
		provideWalletService())
}

func provideAccrualService(database *db.DB) core.IAccrualService {
	return accrualservice.New(database,
		provideConfig(),
		provideVaultStore(database),
		provideRateStore(database),
		provideWalletService())
}

func provideRateService(database *db.DB) core.IRateService {
	return rateservice.New(provideRateStore(database))
}

func provideBondService(database *db.DB) core.IBondService {
	return bondservice.New(database,
		provideConfig(),
		provideBondStore(database),
		provideWalletService())
}
