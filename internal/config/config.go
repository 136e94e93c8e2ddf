package config

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"sync"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/term"
)

var (
	cfg  *APIConfig
	once sync.Once
)

// APIConfig represents the root element.
type APIConfig struct {
	XMLName     xml.Name         `xml:"API"`
	RequestDump bool             `xml:"REQUEST_DUMP,attr"`
	Context     ContextConfig    `xml:"CONTEXT"`
	Pagination  PaginationConfig `xml:"PAGINATION"`
	DB          DBConfig         `xml:"DB"`
	Providers   ProvidersConfig  `xml:"PROVIDERS"`
	AI          AIConfig         `xml:"AI"`
}

// ContextConfig holds basic server settings.
type ContextConfig struct {
	Port     int    `xml:"PORT"`
	Host     string `xml:"HOST"`
	Path     string `xml:"PATH"`
	TimeZone string `xml:"TIME_ZONE"`
	LogDir   string `xml:"LOG_DIR"`
	WorkDir  string `xml:"WORK_DIR"`
}

// ProvidersConfig holds the external video search provider endpoints, in
// cascade order.
type ProvidersConfig struct {
	PipedURL        string  `xml:"PIPED_URL"`
	InvidiousURL    string  `xml:"INVIDIOUS_URL"`
	TimeoutSeconds  int     `xml:"TIMEOUT_SECONDS"`
	SearchRateLimit float64 `xml:"SEARCH_RATE_LIMIT"`
	SearchRateBurst int     `xml:"SEARCH_RATE_BURST"`
}

// AIConfig holds the external AI backend settings.
type AIConfig struct {
	BaseURL string `xml:"BASE_URL"`
	APIKey  string `xml:"API_KEY"`
}

// PaginationConfig holds pagination settings.
type PaginationConfig struct {
	PageSize int `xml:"PAGE_SIZE"`
}

// DBConfig holds database connection settings.
type DBConfig struct {
	Initialize bool         `xml:"INITIALIZE"`
	Host       string       `xml:"HOST"`
	Port       int          `xml:"PORT"`
	Name       string       `xml:"NAME"`
	SSLMode    string       `xml:"SSL_MODE"`
	Username   string       `xml:"USERNAME"`
	Password   DBPassword   `xml:"PASSWORD"`
	Pool       DBPoolConfig `xml:"POOL"`
}

// DBPassword holds password details. TYPE selects how the value is
// resolved: "plain" uses it verbatim, "env" reads the named environment
// variable, "prompt" asks on the terminal at startup.
type DBPassword struct {
	Type  string `xml:"TYPE,attr"`
	Value string `xml:",chardata"`
}

// DBPoolConfig holds database connection pooling settings.
type DBPoolConfig struct {
	MaxOpenConns    int `xml:"MAX_OPEN_CONNS"`
	MaxIdleConns    int `xml:"MAX_IDLE_CONNS"`
	ConnMaxLifetime int `xml:"CONN_MAX_LIFETIME"`
}

// Resolve returns the effective password per the TYPE attribute.
func (p DBPassword) Resolve() (string, error) {
	switch p.Type {
	case "", "plain":
		return p.Value, nil
	case "env":
		return os.Getenv(p.Value), nil
	case "prompt":
		fmt.Printf("Database password for %q: ", p.Value)
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(raw), nil
	default:
		return "", fmt.Errorf("unknown password type %q", p.Type)
	}
}

// LoadConfig loads and parses the XML configuration from the given file.
// A .env file, when present, is loaded first so env-typed secrets resolve.
func LoadConfig(xmlPath string) (*APIConfig, error) {
	once.Do(func() {
		_ = godotenv.Load()

		f, err := os.Open(xmlPath)
		if err != nil {
			return
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return
		}

		var newCfg APIConfig
		if err := xml.Unmarshal(data, &newCfg); err != nil {
			return
		}

		applyDefaults(&newCfg)
		cfg = &newCfg
	})

	if cfg == nil {
		return nil, os.ErrInvalid
	}
	return cfg, nil
}

func applyDefaults(c *APIConfig) {
	if c.Context.LogDir == "" {
		c.Context.LogDir = "logs"
	}
	if c.Context.WorkDir == "" {
		c.Context.WorkDir = "working"
	}
	if c.Providers.TimeoutSeconds <= 0 {
		c.Providers.TimeoutSeconds = 8
	}
	if c.Providers.SearchRateLimit <= 0 {
		c.Providers.SearchRateLimit = 5
	}
	if c.Providers.SearchRateBurst <= 0 {
		c.Providers.SearchRateBurst = 10
	}
	if c.AI.APIKey == "" {
		c.AI.APIKey = os.Getenv("AI_API_KEY")
	}
}

// GetConfig returns the loaded configuration.
func GetConfig() *APIConfig {
	return cfg
}
