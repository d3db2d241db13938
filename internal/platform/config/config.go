package config

import (
	"os"
	"time"
)

// Server captures process level configuration.
type Server struct {
	Addr            string
	Environment     string
	DataDir         string
	PersistDebounce time.Duration
	RemoteURL       string
	RemoteFeedURL   string
	RemoteKey       string
}

// RemoteEnabled reports whether a remote row store is configured at all.
// Without it the process runs fully local.
func (s Server) RemoteEnabled() bool {
	return s.RemoteURL != ""
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("VCC_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	environment := os.Getenv("VCC_ENV")
	if environment == "" {
		environment = "development"
	}
	dataDir := os.Getenv("VCC_DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}

	debounce := 500 * time.Millisecond
	if raw := os.Getenv("VCC_PERSIST_DEBOUNCE"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			debounce = d
		}
	}

	return Server{
		Addr:            addr,
		Environment:     environment,
		DataDir:         dataDir,
		PersistDebounce: debounce,
		RemoteURL:       os.Getenv("VCC_REMOTE_URL"),
		RemoteFeedURL:   os.Getenv("VCC_REMOTE_FEED_URL"),
		RemoteKey:       os.Getenv("VCC_REMOTE_KEY"),
	}
}
