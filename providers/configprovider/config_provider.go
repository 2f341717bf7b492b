package configprovider

import (
	"fmt"
	"log"
	"os"

	"inventaris/providers"

	"github.com/joho/godotenv"
)

type EnvConfigProvider struct {
	dbUser              string
	dbPassword          string
	dbHost              string
	dbPort              string
	dbName              string
	serverPort          string
	redisAddr           string
	jwtSecret           string
	ticketPrefix        string
	callOutgoingDefault string
}

func NewConfigProvider() providers.ConfigProvider {
	return &EnvConfigProvider{}
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (e *EnvConfigProvider) LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not loaded, using system envs")
	}

	e.dbUser = os.Getenv("DB_USER")
	e.dbPassword = os.Getenv("DB_PASSWORD")
	e.dbHost = os.Getenv("DB_HOST")
	e.dbPort = os.Getenv("DB_PORT")
	e.dbName = os.Getenv("DB_NAME")
	e.serverPort = getEnvOrDefault("SERVER_PORT", "8080")
	e.redisAddr = getEnvOrDefault("REDIS_ADDR", "localhost:6379")
	e.jwtSecret = os.Getenv("JWT_SECRET")

	// Business defaults that are configuration, not hard-coded meaning: the
	// problem-ticket prefix and the call-outgoing catalog value preselected
	// on new phone accounts.
	e.ticketPrefix = getEnvOrDefault("TICKET_PREFIX", "MG/MIS")
	e.callOutgoingDefault = getEnvOrDefault("CALL_OUTGOING_DEFAULT", "12")
	return nil
}

func (e *EnvConfigProvider) GetServerPort() string {
	return e.serverPort
}

func (e *EnvConfigProvider) GetDatabaseString() string {
	return fmt.Sprintf("user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		e.dbUser, e.dbPassword, e.dbHost, e.dbPort, e.dbName)
}

func (e *EnvConfigProvider) GetRedisAddr() string {
	return e.redisAddr
}

func (e *EnvConfigProvider) GetJWTSecret() string {
	return e.jwtSecret
}

func (e *EnvConfigProvider) GetTicketPrefix() string {
	return e.ticketPrefix
}

func (e *EnvConfigProvider) GetCallOutgoingDefault() string {
	return e.callOutgoingDefault
}
