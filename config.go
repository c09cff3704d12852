package chess

import "github.com/BurntSushi/toml"

// Engine configuration (C17). Grounded on frankkopp-FrankyGo's go.mod,
// which carries BurntSushi/toml for exactly this purpose. This package
// never reads EngineConfig for its own behavior — the move generator has
// no tunables — it only defines the shape the external search/eval
// collaborator described in spec.md §6 expects.
type EngineConfig struct {
	Search struct {
		DepthLimit   int `toml:"depth_limit"`
		SoftTimeMS   int `toml:"soft_time_ms"`
		HardTimeMS   int `toml:"hard_time_ms"`
	} `toml:"search"`
	Eval struct {
		PSTWeightsPath string `toml:"pst_weights_path"`
	} `toml:"eval"`
}

// LoadEngineConfig parses a TOML file at path into an EngineConfig.
func LoadEngineConfig(path string) (EngineConfig, error) {
	var cfg EngineConfig
	_, err := toml.DecodeFile(path, &cfg)
	return cfg, err
}
