package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	LogLevel  string
	LogFormat string

	// CatalogSource is "csv" or "postgres".
	CatalogSource      string
	CatalogCareersPath string
	CatalogCoursesPath string
	DatabaseURL        string

	UploadDir      string
	UploadMaxBytes int64

	Report Report
}

// Report holds PDF layout constants, in points.
type Report struct {
	TopMargin    float64
	BodyStart    float64
	LineHeight   float64
	BlockSpacing float64
	PageBreakY   float64
	ChartSize    float64
	ChartGap     float64
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	return Config{
		Port:               getEnv("PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "console"),
		CatalogSource:      strings.ToLower(getEnv("CATALOG_SOURCE", "csv")),
		CatalogCareersPath: getEnv("CATALOG_CAREERS_PATH", "jobs.csv"),
		CatalogCoursesPath: getEnv("CATALOG_COURSES_PATH", "course_recommendations.csv"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		UploadDir:          getEnv("UPLOAD_DIR", "uploads"),
		UploadMaxBytes:     int64(getEnvInt("UPLOAD_MAX_BYTES", 15<<20)),
		Report: Report{
			TopMargin:    getEnvFloat("REPORT_TOP_MARGIN", 50),
			BodyStart:    getEnvFloat("REPORT_BODY_START", 100),
			LineHeight:   getEnvFloat("REPORT_LINE_HEIGHT", 20),
			BlockSpacing: getEnvFloat("REPORT_BLOCK_SPACING", 30),
			PageBreakY:   getEnvFloat("REPORT_PAGE_BREAK_Y", 200),
			ChartSize:    getEnvFloat("REPORT_CHART_SIZE", 200),
			ChartGap:     getEnvFloat("REPORT_CHART_GAP", 20),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			return f
		}
	}
	return def
}
