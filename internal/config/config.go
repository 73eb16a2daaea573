package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all runtime configuration for the portfolio service.
// Values come from the environment (optionally via a .env file), with
// sensible defaults for local development.
type Config struct {
	AppPort     string
	DatabaseURL string

	JWTSecret    string
	AuthDisabled bool // when true, admin mutation routes are left unguarded

	SMTPHost    string
	SMTPPort    int
	SMTPUser    string
	SMTPPass    string
	ContactFrom string
	ContactTo   string

	CareerStartDate string // YYYY-MM-DD, anchor for the homepage tenure string
	DocsDir         string // where project documents live on disk
	DocsBaseURL     string // public URL prefix for those documents
}

// Load reads configuration from the environment. A missing .env file is
// not an error; explicit environment variables always win.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables only")
	}

	viper.SetDefault("APP_PORT", ":8001")
	viper.SetDefault("DATABASE_URL", "file:portfolio.db")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("AUTH_DISABLED", false)
	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASS", "")
	viper.SetDefault("CONTACT_FROM", "")
	viper.SetDefault("CONTACT_TO", "")
	viper.SetDefault("CAREER_START_DATE", "2018-04-01")
	viper.SetDefault("DOCS_DIR", "./static/documents")
	viper.SetDefault("DOCS_BASE_URL", "/static/documents")
	viper.AutomaticEnv()

	return &Config{
		AppPort:         viper.GetString("APP_PORT"),
		DatabaseURL:     viper.GetString("DATABASE_URL"),
		JWTSecret:       viper.GetString("JWT_SECRET"),
		AuthDisabled:    viper.GetBool("AUTH_DISABLED"),
		SMTPHost:        viper.GetString("SMTP_HOST"),
		SMTPPort:        viper.GetInt("SMTP_PORT"),
		SMTPUser:        viper.GetString("SMTP_USER"),
		SMTPPass:        viper.GetString("SMTP_PASS"),
		ContactFrom:     viper.GetString("CONTACT_FROM"),
		ContactTo:       viper.GetString("CONTACT_TO"),
		CareerStartDate: viper.GetString("CAREER_START_DATE"),
		DocsDir:         viper.GetString("DOCS_DIR"),
		DocsBaseURL:     viper.GetString("DOCS_BASE_URL"),
	}
}
