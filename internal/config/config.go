package config

import (
	"log"
	"os"
)

type Config struct {
	Port       string
	DBDSN      string
	ServiceKey string
	LogFile    string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "shelfshare.db"
	} // sqlite file in project root
	key := os.Getenv("SERVICE_KEY")
	if key == "" {
		log.Fatal("[config] SERVICE_KEY is required")
	}
	logFile := os.Getenv("LOG_FILE")

	cfg := Config{Port: port, DBDSN: dsn, ServiceKey: key, LogFile: logFile}
	log.Printf("[config] PORT=%s DB_DSN=%s SERVICE_KEY=**** LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.LogFile)
	return cfg
}
