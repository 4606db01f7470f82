package config

// Config holds all nftreg CLI configuration.
type Config struct {
	DefaultWallet string `json:"default_wallet"`
	RegistryFile  string `json:"registry_file"` // path to the registry snapshot (default: <dir>/registry.json)

	// internal: config dir path used for Save()
	configDir string
}
