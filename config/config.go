package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	AppEnv             string
	AppPort            string
	AllowedOrigins     string
	DBDriver           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSQLitePath       string
	DBMaxIdleConns     int
	DBMaxOpenConns     int
	NATSUrl            string
	JWTSecret          string
	JWTExpirationHours int
	PublicOrigin       string
	APIOrigin          string
	QuizAPIBase        string
	UploadBucketURL    string
	UploadPublicBase   string
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("%s not set, defaulting to %s", key, defaultValue)
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Printf("Invalid integer value for %s, defaulting to %d", key, defaultValue)
	}
	return defaultValue
}

func Load() Config {
	log.Println("Loading configuration...")

	return Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		AppPort:            getEnv("APP_PORT", "8080"),
		AllowedOrigins:     getEnv("ALLOWED_ORIGINS", "*"),
		DBDriver:           getEnv("DB_DRIVER", "postgres"),
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", "5432"),
		DBUser:             getEnv("DB_USER", "lpmaker"),
		DBPassword:         getEnv("DB_PASSWORD", "lpmaker"),
		DBName:             getEnv("DB_NAME", "lpmaker"),
		DBSQLitePath:       getEnv("DB_SQLITE_PATH", "lpmaker.db"),
		DBMaxIdleConns:     getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
		DBMaxOpenConns:     getEnvAsInt("DB_MAX_OPEN_CONNS", 100),
		NATSUrl:            getEnv("NATS_URL", "nats://localhost:4222"),
		JWTSecret:          getEnv("JWT_SECRET", "your-super-secret-key-change-this-in-production"),
		JWTExpirationHours: getEnvAsInt("JWT_EXPIRATION_HOURS", 24),
		PublicOrigin:       getEnv("PUBLIC_ORIGIN", "http://localhost:8080"),
		APIOrigin:          getEnv("API_ORIGIN", "http://localhost:8080"),
		QuizAPIBase:        getEnv("QUIZ_API_BASE", ""),
		UploadBucketURL:    getEnv("UPLOAD_BUCKET_URL", "file://./uploads"),
		UploadPublicBase:   getEnv("UPLOAD_PUBLIC_BASE", "http://localhost:8080/uploads"),
	}
}
