package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort    string
	MonitorPort string // /health, /metrics e websocket de notificações
	DatabaseDSN string
	RedisURL    string // vazio desliga o cache de listas
	JWTSecret   string
	CORSOrigins string
	LogLevel    string
}

func Load() *Config {
	// .env é opcional; em produção tudo vem do ambiente
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		MonitorPort: getEnv("MONITOR_PORT", "9090"),
		DatabaseDSN: getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=estoque port=5432 sslmode=disable"),
		RedisURL:    getEnv("REDIS_URL", ""),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		CORSOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET não definido! Obrigatório para emitir tokens.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET precisa ter pelo menos 32 caracteres!")
	}
	if cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=estoque port=5432 sslmode=disable" {
		log.Println("[WARN] DATABASE_DSN usando valor padrão; em produção defina a conexão do seu Postgres.")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS usando valor padrão; em produção defina o domínio do painel.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
