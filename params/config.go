package params

import (
	"os"

	"github.com/joho/godotenv"
)

type Output struct {
	// VerboseTrades prints every settlement as it happens.
	VerboseTrades bool
	// Median prints per-stock median match prices at each timestamp advance.
	Median bool
	// TraderInfo prints per-trader totals at end of day.
	TraderInfo bool
	// TimeTravelers prints the per-stock hindsight round trips at end of day.
	TimeTravelers bool
}

type Config struct {
	Output Output

	// Input is the trace file path; empty means stdin.
	Input string
	// LogFile receives structured logs in addition to stderr; empty disables
	// the file sink.
	LogFile string
}

func Default() Config {
	return Config{}
}

// LoadFromEnv loads configuration from a .env file (if present) and
// environment variables. Priority: ENV > .env file > defaults. CLI flags
// are applied on top by the caller.
func LoadFromEnv(envPath string) Config {
	cfg := Default()

	if envPath != "" {
		_ = godotenv.Load(envPath)
	} else {
		_ = godotenv.Load()
	}

	if v := os.Getenv("MARKETSIM_INPUT"); v != "" {
		cfg.Input = v
	}
	if v := os.Getenv("MARKETSIM_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("MARKETSIM_VERBOSE"); v != "" {
		cfg.Output.VerboseTrades = v == "true"
	}
	if v := os.Getenv("MARKETSIM_MEDIAN"); v != "" {
		cfg.Output.Median = v == "true"
	}
	if v := os.Getenv("MARKETSIM_TRADER_INFO"); v != "" {
		cfg.Output.TraderInfo = v == "true"
	}
	if v := os.Getenv("MARKETSIM_TIME_TRAVELERS"); v != "" {
		cfg.Output.TimeTravelers = v == "true"
	}
	return cfg
}
