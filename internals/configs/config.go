package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment.
type Config struct {
	Port string

	JWTSecret      string
	AccessTokenTTL time.Duration

	DBDriver      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	DBAutoMigrate bool

	CORSOrigins []string

	// TrustedProxies may set X-Forwarded-For; empty means nobody can.
	TrustedProxies []string

	LogLevel string
	LogDir   string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	RateLimitEnabled bool

	AdminEmail    string
	AdminPassword string
	AdminName     string

	SeedQuestionaryFile string
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ .env file not found, using system ENV")
		} else {
			log.Println("✅ .env file loaded")
		}
	} else {
		log.Println("🚀 Running in Railway, using system ENV")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// Load builds Config from the current environment. Call LoadEnv first.
func Load() *Config {
	cfg := &Config{
		Port: GetEnv("PORT", "3000"),

		// SECRET_KEY is the older name, still honored
		JWTSecret:      GetEnv("JWT_SECRET", GetEnv("SECRET_KEY")),
		AccessTokenTTL: time.Duration(getInt("ACCESS_TOKEN_TTL_HOURS", 24)) * time.Hour,

		DBDriver:      strings.ToLower(GetEnv("DB_DRIVER", "postgres")),
		DBHost:        GetEnv("DB_HOST", "localhost"),
		DBUser:        GetEnv("DB_USER"),
		DBPassword:    GetEnv("DB_PASSWORD"),
		DBName:        GetEnv("DB_NAME", GetEnv("DB_SCHEMA")),
		DBSSLMode:     GetEnv("DB_SSLMODE", "disable"),
		DBAutoMigrate: getBool("DB_AUTO_MIGRATE", false),

		CORSOrigins:    splitCSV(GetEnv("CORS_ORIGINS", "http://localhost:5173")),
		TrustedProxies: splitCSV(GetEnv("TRUSTED_PROXIES")),

		LogLevel: GetEnv("LOG_LEVEL", "info"),
		LogDir:   GetEnv("LOG_DIR"),

		RedisAddr:     GetEnv("REDIS_ADDR"),
		RedisPassword: GetEnv("REDIS_PASSWORD"),
		RedisDB:       getInt("REDIS_DB", 0),

		RateLimitEnabled: getBool("RATE_LIMIT_ENABLED", true),

		AdminEmail:    GetEnv("ADMIN_EMAIL"),
		AdminPassword: GetEnv("ADMIN_PASSWORD"),
		AdminName:     GetEnv("ADMIN_NAME", "Administrator"),

		SeedQuestionaryFile: GetEnv("SEED_QUESTIONARY_FILE", "internals/seeds/questionary/data_questionary.json"),
	}

	defaultPort := "5432"
	if cfg.DBDriver == "mysql" {
		defaultPort = "3306"
	}
	cfg.DBPort = GetEnv("DB_PORT", defaultPort)

	if cfg.JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	} else {
		log.Println("✅ JWT_SECRET loaded.")
	}
	return cfg
}

func getInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("⚠️ %s=%q is not a number, using %d", key, v, def)
		return def
	}
	return n
}

func getBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
