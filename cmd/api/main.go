package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"finratio/pkg/api/ratios"
	"finratio/pkg/core/store"
)

// ServerConfig is read from config/server.yaml. Every field has a working
// default so the file is optional.
type ServerConfig struct {
	Port     int    `yaml:"port"`
	CacheDir string `yaml:"cache_dir"`
	UseDB    bool   `yaml:"use_db"`
}

func loadConfig() ServerConfig {
	cfg := ServerConfig{Port: 8080}
	data, err := os.ReadFile("config/server.yaml")
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		fmt.Printf("[WARNING] Bad config/server.yaml, using defaults: %v\n", err)
		return ServerConfig{Port: 8080}
	}
	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	return cfg
}

func main() {
	// Load environment variables
	godotenv.Load()

	cfg := loadConfig()

	// Report persistence: Postgres when configured, file cache otherwise.
	if cfg.UseDB {
		if err := store.InitDB(context.Background()); err != nil {
			fmt.Printf("[WARNING] DB init failed, falling back to file store: %v\n", err)
		}
	}
	reportStore := store.NewReportStore(store.GetPool(), cfg.CacheDir)
	ratios.InitHandler(reportStore)

	http.HandleFunc("/api/ratios/analyze", ratios.HandleAnalyze)
	http.HandleFunc("/api/ratios/report", ratios.HandleGetReport)

	addr := fmt.Sprintf(":%d", cfg.Port)
	fmt.Printf("API server starting on %s...\n", addr)
	fmt.Println("  - POST /api/ratios/analyze")
	fmt.Println("  - GET  /api/ratios/report?id=<id>")

	if err := http.ListenAndServe(addr, nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
