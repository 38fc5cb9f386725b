package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP                string        // Host IP for the server
	RESTPort              int           // Port for the REST API
	GinMode               string        // Mode for the Gin framework (e.g., release, debug, test)
	Debug                 bool          // Enables debug level logging
	DBURI                 string        // Full MongoDB connection URI, built from the DB_* parts when unset
	DBName                string        // Name of the database
	RedisAddr             string        // Address of the Redis server
	RedisPassword         string        // Password for the Redis server
	RedisDB               int           // Redis logical database
	JWTSecret             string        // Secret key for JWT signing
	JWTIssuer             string        // Issuer claim for JWTs
	LeaderboardTTLSeconds int           // Lifetime of cached rankings
	ArchiveInterval       time.Duration // How often the leaderboard is archived
	ArchiveReset          bool          // Clear the leaderboard after archiving
}

// Addr returns the listen address of the REST API.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.HostIP, c.RESTPort)
}

// Load reads the .env file if present and populates Config from the environment.
// Missing or malformed required variables are reported as an error.
func Load() (cfg Config, err error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	cfg = Config{
		HostIP:                getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:              mustGetEnvAsInt("REST_PORT"),
		GinMode:               getEnvWithDefault("GIN_MODE", "release"),
		Debug:                 getEnvAsBool("DEBUG", false),
		DBURI:                 getEnvWithDefault("DB_URI", ""),
		DBName:                mustGetEnv("DB_NAME"),
		RedisAddr:             mustGetEnv("REDIS_ADDR"),
		RedisPassword:         getEnvWithDefault("REDIS_PASS", ""),
		RedisDB:               getEnvAsInt("REDIS_DB", 0),
		JWTSecret:             mustGetEnv("JWT_SECRET"),
		JWTIssuer:             getEnvWithDefault("JWT_ISSUER", "vinom-maze"),
		LeaderboardTTLSeconds: getEnvAsInt("LEADERBOARD_TTL_SECONDS", 24*60*60),
		ArchiveInterval:       getEnvAsDuration("ARCHIVE_INTERVAL", 24*time.Hour),
		ArchiveReset:          getEnvAsBool("ARCHIVE_RESET", false),
	}

	if cfg.DBURI == "" {
		cfg.DBURI = fmt.Sprintf("mongodb://%s:%s@%s:%d",
			mustGetEnv("DB_USER"), mustGetEnv("DB_PASS"), mustGetEnv("DB_HOST"), mustGetEnvAsInt("DB_PORT"))
	}

	return cfg, nil
}

// mustGetEnv retrieves the value of an environment variable or panics if not set.
// Load turns the panic into an error.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		panic(fmt.Sprintf("environment variable %s is not set", key))
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer or panics if not set or cannot be parsed.
func mustGetEnvAsInt(key string) int {
	valueStr := mustGetEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		panic(fmt.Sprintf("environment variable %s must be an integer: %v", key, err))
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		panic(fmt.Sprintf("environment variable %s must be an integer: %v", key, err))
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		panic(fmt.Sprintf("environment variable %s must be a boolean: %v", key, err))
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		panic(fmt.Sprintf("environment variable %s must be a duration: %v", key, err))
	}
	return value
}
