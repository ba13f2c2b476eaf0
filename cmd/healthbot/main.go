package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"healthbot/internal/catalog"
	"healthbot/internal/config"
	"healthbot/internal/embedding"
	"healthbot/internal/matcher"
	"healthbot/internal/records"
	"healthbot/internal/service"
	"healthbot/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var cfgPath, catalogPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/healthbot/config.yaml if not provided)")
	flag.StringVar(&catalogPath, "catalog", "", "Path to symptom catalog (.csv or .xlsx); overrides config")
	flag.Parse()

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if catalogPath != "" {
		cfg.Catalog.Path = catalogPath
	}

	// Startup errors abort entirely: the assistant cannot run on a
	// partial reference set.
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("catalog load failed: %v", err)
	}
	space, err := embedding.Fit(cat.Phrases())
	if err != nil {
		log.Fatalf("vectorizer fit failed: %v", err)
	}

	answers := make([]string, cat.Len())
	for i := range answers {
		answers[i] = cat.Answer(i)
	}
	m := matcher.New(space, cat.Phrases(), answers, cfg.Match.Threshold, cfg.Match.Fallback)

	store, err := records.Open(cfg.Records.DBPath)
	if err != nil {
		log.Fatalf("record store open failed: %v", err)
	}

	svc := service.NewAssistant(m, store, cfg.Records.Dir)
	log.Printf("[healthbot] catalog=%s entries=%d dim=%d threshold=%.2f", cfg.Catalog.Path, cat.Len(), space.Dimension(), cfg.Match.Threshold)
	if exs, err := svc.Exchanges(); err == nil {
		aps, _ := svc.Appointments()
		log.Printf("[healthbot] record log: %d exchanges, %d appointments", len(exs), len(aps))
	}

	if _, err := tea.NewProgram(tui.New(svc, cat.Len())).Run(); err != nil {
		log.Fatal(err)
	}
}
