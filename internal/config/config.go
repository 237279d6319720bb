package config

import (
	"encoding/json"
	"fmt"
	"os"
)

const (
	defaultWorksheet  = "bookmarks"
	defaultDBDSN      = "linkboard.db"
	defaultListenAddr = ":8080"
)

type Config struct {
	SpreadsheetID   string `json:"spreadsheet_id"`
	CredentialsFile string `json:"credentials_file"`
	Worksheet       string `json:"worksheet"`
	DBDSN           string `json:"db_dsn"`
	ListenAddr      string `json:"listen_addr"`
}

func Load(path string) (Config, error) {
	if path == "" {
		return Config{}, fmt.Errorf("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if cfg.SpreadsheetID == "" {
		return Config{}, fmt.Errorf("spreadsheet_id is required")
	}
	if cfg.CredentialsFile == "" {
		return Config{}, fmt.Errorf("credentials_file is required")
	}
	if cfg.Worksheet == "" {
		cfg.Worksheet = defaultWorksheet
	}
	if cfg.DBDSN == "" {
		cfg.DBDSN = defaultDBDSN
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = defaultListenAddr
	}

	return cfg, nil
}
