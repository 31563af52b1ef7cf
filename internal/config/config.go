package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	CORS      CORSConfig
	Generator GeneratorConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

type ServerConfig struct {
	Port    string
	GinMode string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// GeneratorConfig holds the dataset generation parameters. All values are
// fixed at startup; a zero seed means a fresh time-based seed per run.
type GeneratorConfig struct {
	Seed           int64
	PatientCount   int
	AdmissionCount int
	StartDate      time.Time
	EndDate        time.Time
	CSVDir         string
}

func LoadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "3306"),
			User:     getEnv("DB_USER", "root"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "hospital_analytics"),
		},
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		},
		Generator: GeneratorConfig{
			Seed:           parseInt64(getEnv("GEN_SEED", "42")),
			PatientCount:   parseInt(getEnv("GEN_PATIENTS", "3000")),
			AdmissionCount: parseInt(getEnv("GEN_ADMISSIONS", "3000")),
			StartDate:      parseDate(getEnv("GEN_START_DATE", "2025-08-01")),
			EndDate:        parseDate(getEnv("GEN_END_DATE", "2026-01-31")),
			CSVDir:         getEnv("CSV_DIR", "csv_data"),
		},
	}

	return config
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		fmt.Printf("Warning: Invalid integer '%s', using 0\n", s)
		return 0
	}
	return v
}

func parseInt64(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		fmt.Printf("Warning: Invalid integer '%s', using 0\n", s)
		return 0
	}
	return v
}

func parseDate(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		fmt.Printf("Warning: Invalid date '%s', using today\n", s)
		return time.Now().UTC().Truncate(24 * time.Hour)
	}
	return t
}

func parseOrigins(s string) []string {
	if s == "" {
		return []string{}
	}

	origins := []string{}
	current := ""
	for _, char := range s {
		if char == ',' {
			if current != "" {
				origins = append(origins, current)
				current = ""
			}
		} else {
			current += string(char)
		}
	}
	if current != "" {
		origins = append(origins, current)
	}

	return origins
}
