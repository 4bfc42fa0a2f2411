package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration resolved from the
// environment (and an optional .env file).
type Config struct {
	Port        string `mapstructure:"PORT"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	MySQLURL    string `mapstructure:"MYSQL_URL"`

	DBUser string `mapstructure:"DB_USER"`
	DBPass string `mapstructure:"DB_PASS"`
	DBHost string `mapstructure:"DB_HOST"`
	DBPort string `mapstructure:"DB_PORT"`
	DBName string `mapstructure:"DB_NAME"`

	JWTSecret   string `mapstructure:"JWT_SECRET"`
	CORSOrigins string `mapstructure:"CORS_ORIGINS"`
	SeedDemo    bool   `mapstructure:"SEED_DEMO"`
}

var AppConfig *Config

// LoadConfig loads .env (optional) and resolves the typed config from
// environment variables.
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DB_USER", "root")
	viper.SetDefault("DB_PASS", "")
	viper.SetDefault("DB_HOST", "127.0.0.1")
	viper.SetDefault("DB_PORT", "3306")
	viper.SetDefault("DB_NAME", "hostel_db")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("SEED_DEMO", false)

	viper.AutomaticEnv()

	// AutomaticEnv alone doesn't feed Unmarshal; bind the keys we use.
	for _, key := range []string{
		"PORT", "DATABASE_URL", "MYSQL_URL",
		"DB_USER", "DB_PASS", "DB_HOST", "DB_PORT", "DB_NAME",
		"JWT_SECRET", "CORS_ORIGINS", "SEED_DEMO",
	} {
		_ = viper.BindEnv(key)
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		log.Fatalf("❌ Unable to decode config: %v", err)
	}

	if cfg.JWTSecret == "" {
		log.Fatal("❌ ERROR: JWT_SECRET environment variable is not set. Cannot sign auth tokens.")
	}

	AppConfig = cfg
}
