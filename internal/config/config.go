package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFallbackAnswer is returned when no catalog entry clears the
// similarity threshold. It mirrors the catalog's language.
const DefaultFallbackAnswer = "দুঃখিত, আমি আপনার উপসর্গ ঠিকভাবে বুঝতে পারছি না। বিস্তারিত বলুন বা ডাক্তার দেখুন।"

// CatalogConfig locates the symptom catalog file (.csv or .xlsx).
type CatalogConfig struct {
	Path string `yaml:"path"`
}

// MatchConfig tunes the matcher. The threshold has no documented
// rationale upstream, so it is a config value rather than a constant.
type MatchConfig struct {
	Threshold float64 `yaml:"threshold"`
	Fallback  string  `yaml:"fallback"`
}

// RecordsConfig configures where exchange and appointment records go.
type RecordsConfig struct {
	Dir    string `yaml:"dir"`
	DBPath string `yaml:"db_path"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Match   MatchConfig   `yaml:"match"`
	Records RecordsConfig `yaml:"records"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	applyEnvOverrides(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/healthbot/config.yaml.
// If neither exists, it writes defaults to ~/.config/healthbot/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	applyEnvOverrides(cfg)
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "healthbot", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Catalog: CatalogConfig{Path: "symptom_responses.csv"},
		Match:   MatchConfig{Threshold: 0.2, Fallback: DefaultFallbackAnswer},
		Records: RecordsConfig{Dir: "chat_logs", DBPath: filepath.Join("chat_logs", "healthbot.db")},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Catalog.Path == "" {
		cfg.Catalog.Path = "symptom_responses.csv"
	}
	if cfg.Match.Threshold == 0 {
		cfg.Match.Threshold = 0.2
	}
	if cfg.Match.Fallback == "" {
		cfg.Match.Fallback = DefaultFallbackAnswer
	}
	if cfg.Records.Dir == "" {
		cfg.Records.Dir = "chat_logs"
	}
	if cfg.Records.DBPath == "" {
		cfg.Records.DBPath = filepath.Join(cfg.Records.Dir, "healthbot.db")
	}
}

// Environment beats file values so deployments can relocate paths
// without editing the config (a .env file is loaded by main).
func applyEnvOverrides(cfg *AppConfig) {
	get := func(k, cur string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return cur
	}
	cfg.Catalog.Path = get("HEALTHBOT_CATALOG", cfg.Catalog.Path)
	cfg.Records.Dir = get("HEALTHBOT_RECORDS_DIR", cfg.Records.Dir)
	cfg.Records.DBPath = get("HEALTHBOT_DB_PATH", cfg.Records.DBPath)
}
