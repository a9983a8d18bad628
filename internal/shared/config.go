package shared

import "os"

type Config struct {
	AppEnv      string
	DataDir     string // starting point for record file discovery; empty = cwd
	ReportsAddr string // read-only reports API; empty = disabled
	MetricsAddr string // prometheus endpoint; empty = disabled
}

func Load() Config {
	return Config{
		AppEnv:      env("APP_ENV", "prod"),
		DataDir:     env("HOTEL_DATA_DIR", ""),
		ReportsAddr: env("REPORTS_ADDR", ""),
		MetricsAddr: env("METRICS_ADDR", ""),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
