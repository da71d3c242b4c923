package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/football-scouting/internal/domain/competition"
	"github.com/riskibarqy/football-scouting/internal/platform/logging"
)

const (
	StorageSpreadsheet = "spreadsheet"
	StoragePostgres    = "postgres"
	StorageMemory      = "memory"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                    string
	ServiceName               string
	ServiceVersion            string
	HTTPAddr                  string
	ReadTimeout               time.Duration
	WriteTimeout              time.Duration
	LogLevel                  logging.Level
	CORSAllowedOrigins        []string
	SwaggerEnabled            bool
	StorageDriver             string
	DataDir                   string
	DBURL                     string
	DBDisablePreparedBinary   bool
	CacheEnabled              bool
	CacheTTL                  time.Duration
	SessionTTL                time.Duration
	ScoutCredentials          string
	ScraperTimeout            time.Duration
	ScraperMaxRetries         int
	ScraperRatePerSec         float64
	ScraperUserAgent          string
	ScraperCircuitEnabled     bool
	ScraperCircuitFailures    int
	ScraperCircuitOpenTimeout time.Duration
	ScraperCircuitHalfOpenReq int
	ScraperRefreshWorkers     int
	Competitions              []competition.Competition
	ScheduleContainer         string
	ScheduleAllMatchesQuery   string
	FotMobEnabled             bool
	FotMobBaseURL             string
	FotMobTokenPageURL        string
	FotMobTokenHeader         string
	FotMobTokenTimeout        time.Duration
	FotMobTokenTTL            time.Duration
	PprofEnabled              bool
	PprofAddr                 string
	UptraceEnabled            bool
	UptraceDSN                string
	UptraceLogsEnabled        bool
	PyroscopeEnabled          bool
	PyroscopeServerAddress    string
	PyroscopeAppName          string
	PyroscopeAuthToken        string
	PyroscopeBasicAuthUser    string
	PyroscopeBasicAuthPass    string
	PyroscopeUploadRate       time.Duration
	LogShipEnabled            bool
	LogShipEndpoint           string
	LogShipToken              string
	LogShipTimeout            time.Duration
	LogShipMinLevel           logging.Level
	LogShipBatchSize          int
	LogShipFlushInterval      time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}
	swaggerEnabled, err := strconv.ParseBool(getEnv("SWAGGER_ENABLED", swaggerDefault))
	if err != nil {
		return Config{}, fmt.Errorf("parse SWAGGER_ENABLED: %w", err)
	}

	storageDriver, err := parseStorageDriver(getEnv("STORAGE_DRIVER", StorageSpreadsheet))
	if err != nil {
		return Config{}, err
	}
	dataDir := strings.TrimSpace(getEnv("DATA_DIR", "./data"))

	readTimeout, err := getEnvAsDuration("APP_READ_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}
	// Refresh scrapes every competition in one request.
	writeTimeout, err := getEnvAsDuration("APP_WRITE_TIMEOUT", "90s")
	if err != nil {
		return Config{}, err
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := getEnvAsDuration("CACHE_TTL", "5m")
	if err != nil {
		return Config{}, err
	}
	sessionTTL, err := getEnvAsDuration("SESSION_TTL", "12h")
	if err != nil {
		return Config{}, err
	}

	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	scraperTimeout, err := getEnvAsDuration("SCRAPER_TIMEOUT", "20s")
	if err != nil {
		return Config{}, err
	}
	scraperMaxRetries, err := getEnvAsInt("SCRAPER_MAX_RETRIES", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPER_MAX_RETRIES: %w", err)
	}
	if scraperMaxRetries < 1 {
		return Config{}, fmt.Errorf("SCRAPER_MAX_RETRIES must be >= 1")
	}
	scraperRate, err := strconv.ParseFloat(getEnv("SCRAPER_RATE_PER_SEC", "2"), 64)
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPER_RATE_PER_SEC: %w", err)
	}
	if scraperRate < 0 {
		return Config{}, fmt.Errorf("SCRAPER_RATE_PER_SEC must be >= 0")
	}
	scraperCircuitEnabled, err := strconv.ParseBool(getEnv("SCRAPER_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPER_CIRCUIT_ENABLED: %w", err)
	}
	scraperCircuitFailures, err := getEnvAsInt("SCRAPER_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPER_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if scraperCircuitFailures < 1 {
		return Config{}, fmt.Errorf("SCRAPER_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	scraperCircuitOpenTimeout, err := getEnvAsDuration("SCRAPER_CIRCUIT_OPEN_TIMEOUT", "30s")
	if err != nil {
		return Config{}, err
	}
	scraperCircuitHalfOpen, err := getEnvAsInt("SCRAPER_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPER_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if scraperCircuitHalfOpen < 1 {
		return Config{}, fmt.Errorf("SCRAPER_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}
	refreshWorkers, err := getEnvAsInt("SCRAPER_REFRESH_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPER_REFRESH_WORKERS: %w", err)
	}
	if refreshWorkers < 1 {
		return Config{}, fmt.Errorf("SCRAPER_REFRESH_WORKERS must be >= 1")
	}

	competitions, err := ParseCompetitions(getEnv("COMPETITIONS", ""))
	if err != nil {
		return Config{}, fmt.Errorf("parse COMPETITIONS: %w", err)
	}

	fotmobEnabled, err := strconv.ParseBool(getEnv("FOTMOB_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FOTMOB_ENABLED: %w", err)
	}
	fotmobTokenPageURL := strings.TrimSpace(getEnv("FOTMOB_TOKEN_PAGE_URL", "https://www.fotmob.com/"))
	if fotmobEnabled && fotmobTokenPageURL == "" {
		return Config{}, fmt.Errorf("FOTMOB_TOKEN_PAGE_URL is required when FOTMOB_ENABLED=true")
	}
	fotmobTokenTimeout, err := getEnvAsDuration("FOTMOB_TOKEN_TIMEOUT", "45s")
	if err != nil {
		return Config{}, err
	}
	fotmobTokenTTL, err := getEnvAsDuration("FOTMOB_TOKEN_TTL", "30m")
	if err != nil {
		return Config{}, err
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := getEnvAsDuration("PYROSCOPE_UPLOAD_RATE", "15s")
	if err != nil {
		return Config{}, err
	}

	logShipEnabled, err := strconv.ParseBool(getEnv("LOG_SHIP_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse LOG_SHIP_ENABLED: %w", err)
	}
	logShipEndpoint := strings.TrimSpace(getEnv("LOG_SHIP_ENDPOINT", ""))
	if logShipEnabled && logShipEndpoint == "" {
		return Config{}, fmt.Errorf("LOG_SHIP_ENDPOINT is required when LOG_SHIP_ENABLED=true")
	}
	logShipTimeout, err := getEnvAsDuration("LOG_SHIP_TIMEOUT", "3s")
	if err != nil {
		return Config{}, err
	}
	logShipBatchSize, err := getEnvAsInt("LOG_SHIP_BATCH_SIZE", 100)
	if err != nil {
		return Config{}, fmt.Errorf("parse LOG_SHIP_BATCH_SIZE: %w", err)
	}
	if logShipBatchSize < 1 {
		return Config{}, fmt.Errorf("LOG_SHIP_BATCH_SIZE must be >= 1")
	}
	logShipFlushInterval, err := getEnvAsDuration("LOG_SHIP_FLUSH_INTERVAL", "2s")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:                    appEnv,
		ServiceName:               getEnv("APP_SERVICE_NAME", "football-scouting-api"),
		ServiceVersion:            getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                  getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:               readTimeout,
		WriteTimeout:              writeTimeout,
		LogLevel:                  logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
		CORSAllowedOrigins:        splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		SwaggerEnabled:            swaggerEnabled,
		StorageDriver:             storageDriver,
		DataDir:                   dataDir,
		DBURL:                     strings.TrimSpace(getEnv("DB_URL", "")),
		DBDisablePreparedBinary:   dbDisablePreparedBinary,
		CacheEnabled:              cacheEnabled,
		CacheTTL:                  cacheTTL,
		SessionTTL:                sessionTTL,
		ScoutCredentials:          strings.TrimSpace(getEnv("SCOUT_CREDENTIALS", "")),
		ScraperTimeout:            scraperTimeout,
		ScraperMaxRetries:         scraperMaxRetries,
		ScraperRatePerSec:         scraperRate,
		ScraperUserAgent:          strings.TrimSpace(getEnv("SCRAPER_USER_AGENT", "")),
		ScraperCircuitEnabled:     scraperCircuitEnabled,
		ScraperCircuitFailures:    scraperCircuitFailures,
		ScraperCircuitOpenTimeout: scraperCircuitOpenTimeout,
		ScraperCircuitHalfOpenReq: scraperCircuitHalfOpen,
		ScraperRefreshWorkers:     refreshWorkers,
		Competitions:              competitions,
		ScheduleContainer:         strings.TrimSpace(getEnv("SCHEDULE_CONTAINER_SELECTOR", ".desktop-view")),
		ScheduleAllMatchesQuery:   strings.TrimSpace(getEnv("SCHEDULE_ALL_MATCHES_QUERY", "all=1")),
		FotMobEnabled:             fotmobEnabled,
		FotMobBaseURL:             strings.TrimSpace(getEnv("FOTMOB_BASE_URL", "https://www.fotmob.com")),
		FotMobTokenPageURL:        fotmobTokenPageURL,
		FotMobTokenHeader:         strings.TrimSpace(getEnv("FOTMOB_TOKEN_HEADER", "X-Mas")),
		FotMobTokenTimeout:        fotmobTokenTimeout,
		FotMobTokenTTL:            fotmobTokenTTL,
		PprofEnabled:              pprofEnabled,
		PprofAddr:                 pprofAddr,
		UptraceEnabled:            uptraceEnabled,
		UptraceDSN:                uptraceDSN,
		UptraceLogsEnabled:        uptraceLogsEnabled,
		PyroscopeEnabled:          pyroscopeEnabled,
		PyroscopeServerAddress:    pyroscopeServerAddress,
		PyroscopeAuthToken:        strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:    strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPass:    strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:       pyroscopeUploadRate,
		LogShipEnabled:            logShipEnabled,
		LogShipEndpoint:           logShipEndpoint,
		LogShipToken:              strings.TrimSpace(getEnv("LOG_SHIP_TOKEN", "")),
		LogShipTimeout:            logShipTimeout,
		LogShipMinLevel:           logging.ParseLevel(getEnv("LOG_SHIP_MIN_LEVEL", "warn")),
		LogShipBatchSize:          logShipBatchSize,
		LogShipFlushInterval:      logShipFlushInterval,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))

	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if cfg.StorageDriver == StoragePostgres && cfg.DBURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required when STORAGE_DRIVER=postgres")
	}
	if cfg.StorageDriver == StorageSpreadsheet && cfg.DataDir == "" {
		return Config{}, fmt.Errorf("DATA_DIR is required when STORAGE_DRIVER=spreadsheet")
	}
	if cfg.ScheduleContainer == "" {
		return Config{}, fmt.Errorf("SCHEDULE_CONTAINER_SELECTOR cannot be empty")
	}

	return cfg, nil
}

// ParseCompetitions reads "id|caption|url" or "id|name|caption|url" items
// separated by commas. The caption may be empty for schedule-only pages.
func ParseCompetitions(raw string) ([]competition.Competition, error) {
	var out []competition.Competition
	for _, part := range strings.Split(raw, ",") {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}

		segments := strings.Split(item, "|")
		for i := range segments {
			segments[i] = strings.TrimSpace(segments[i])
		}

		var c competition.Competition
		switch len(segments) {
		case 3:
			c = competition.Competition{ID: segments[0], Caption: segments[1], URL: segments[2]}
		case 4:
			c = competition.Competition{ID: segments[0], Name: segments[1], Caption: segments[2], URL: segments[3]}
		default:
			return nil, fmt.Errorf("invalid competition %q, expected id|caption|url", item)
		}
		out = append(out, c)
	}

	// NewCatalog applies the same rules the service relies on.
	if _, err := competition.NewCatalog(out); err != nil {
		return nil, err
	}
	return out, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsDuration(key, fallback string) (time.Duration, error) {
	out, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseStorageDriver(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case StorageSpreadsheet, StoragePostgres, StorageMemory:
		return value, nil
	default:
		return "", fmt.Errorf("invalid STORAGE_DRIVER %q: valid values are %s, %s, %s", v, StorageSpreadsheet, StoragePostgres, StorageMemory)
	}
}
