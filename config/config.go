package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Database     Database
	Payment      Payment
	Auth         Auth
	GeminiApiKey string
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Payment holds the merchant credentials for the hosted payment gateway.
// SecretKey participates in request signing and must never be logged.
type Payment struct {
	MerchantID string
	SecretKey  string
	GatewayURL string
	ReturnURL  string
	Currency   string
	Amount     float64
}

type Auth struct {
	JWTSecret string
	TokenTTL  time.Duration
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("PAYMENT_CURRENCY", "USD")
	viper.SetDefault("PAYMENT_AMOUNT", 1.99)
	viper.SetDefault("JWT_TTL", "72h")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Payment.MerchantID = viper.GetString("PAYMENT_MERCHANT_ID")
	config.Payment.SecretKey = viper.GetString("PAYMENT_SECRET_KEY")
	config.Payment.GatewayURL = viper.GetString("PAYMENT_GATEWAY_URL")
	config.Payment.ReturnURL = viper.GetString("PAYMENT_RETURN_URL")
	config.Payment.Currency = viper.GetString("PAYMENT_CURRENCY")
	config.Payment.Amount = viper.GetFloat64("PAYMENT_AMOUNT")

	config.Auth.JWTSecret = viper.GetString("JWT_SECRET")
	config.Auth.TokenTTL = viper.GetDuration("JWT_TTL")

	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")

	log.Info().Str("port", config.Server.Port).Str("db_host", config.Database.Host).Msg("Config loaded")
	return &config, nil
}
