package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	DBDSN    string
	LogFile  string
	SeedDemo bool
}

func Load() Config {
	// Best effort; env vars win over .env and a missing file is fine.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "shambasoko.db" // sqlite file in project root
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./shambasoko.log"
	}
	// Demo catalog seeding on an empty products table. On by default for
	// development; set SEED_DEMO=false to keep a wiped table empty.
	seed := os.Getenv("SEED_DEMO") != "false"

	cfg := Config{Port: port, DBDSN: dsn, LogFile: logFile, SeedDemo: seed}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s SEED_DEMO=%v", cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.SeedDemo)
	return cfg
}
