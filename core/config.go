package core

import (
	"github.com/fox-one/mixin-sdk-go"
	"github.com/fox-one/pkg/store/db"
)

// Config bondcdp config
type Config struct {
	App        App        `json:"app"`
	DB         db.Config  `json:"db"`
	MainWallet MainWallet `json:"main_wallet"`
}

// App app config
type App struct {
	// BondAssetID collateral unit token on the external ledger
	BondAssetID string `json:"bond_asset_id" valid:"uuid,required"`
	// StablecoinAssetID issued credit token on the external ledger
	StablecoinAssetID string `json:"stablecoin_asset_id" valid:"uuid,required"`
	// RewardSinkID destination of accrued interest credit
	RewardSinkID string `json:"reward_sink_id" valid:"uuid,required"`
	Location     string `json:"location"`
}

// MainWallet custody dapp config
type MainWallet struct {
	mixin.Keystore
	ClientSecret string `json:"client_secret"`
	Pin          string `json:"pin"`
}
