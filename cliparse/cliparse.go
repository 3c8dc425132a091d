package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
)

// Database types accepted by -t / DATABASE_TYPE
const (
	DatabasePostgres = "postgres"
	DatabaseSQLite   = "sqlite"
	DatabaseMemory   = "memory"
)

const (
	defaultPort           = 3318
	defaultRequestTimeout = 10 * time.Second
	defaultMaxBodySize    = "64 KiB"
)

type Config struct {
	Port           int
	DatabaseURL    string
	DatabaseType   string
	RequestTimeout time.Duration
	MaxBodyBytes   int64
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile, timeout, maxBody string

	flags := flag.NewFlagSet("survey-pulse", flag.ContinueOnError)

	flags.IntVar(&cfg.Port, "p", 0, "Server port")
	flags.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	flags.StringVar(&cfg.DatabaseType, "t", "", "Database type (postgres, sqlite or memory)")
	flags.StringVar(&timeout, "timeout", "", "Per-request timeout, e.g. 10s")
	flags.StringVar(&maxBody, "max-body", "", "Maximum request body size, e.g. 64KiB")
	flags.StringVar(&envFile, "env-file", ".env", "Optional dotenv file")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	// Values already in the environment win over the file
	if err := loadEnvFile(envFile); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = defaultPort
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = inferDatabaseType(cfg.DatabaseURL)
	}
	switch cfg.DatabaseType {
	case DatabasePostgres, DatabaseSQLite:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
	case DatabaseMemory:
	default:
		return Config{}, fmt.Errorf("unknown database type %q", cfg.DatabaseType)
	}

	if timeout == "" {
		timeout = os.Getenv("REQUEST_TIMEOUT")
	}
	if timeout == "" {
		cfg.RequestTimeout = defaultRequestTimeout
	} else {
		d, err := time.ParseDuration(timeout)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid request timeout %q", timeout)
		}
		cfg.RequestTimeout = d
	}

	if maxBody == "" {
		maxBody = os.Getenv("MAX_BODY_SIZE")
	}
	if maxBody == "" {
		maxBody = defaultMaxBodySize
	}
	n, err := humanize.ParseBytes(maxBody)
	if err != nil || n == 0 {
		return Config{}, fmt.Errorf("invalid max body size %q", maxBody)
	}
	cfg.MaxBodyBytes = int64(n)

	return cfg, nil
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func inferDatabaseType(url string) string {
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		return DatabasePostgres
	}
	return DatabaseSQLite
}
