package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultPort     = 5000
	configPathEnv   = "TECH_DASHBOARD_CONFIG"
	portEnv         = "PORT"
	hostEnv         = "HOST"
	newsFeedURLEnv  = "NEWS_FEED_URL"
	jobsAPIURLEnv   = "JOBS_API_URL"
	logLevelEnv     = "LOG_LEVEL"
	defaultNewsFeed = "https://rss.nytimes.com/services/xml/rss/nyt/Technology.xml"
	defaultJobsAPI  = "https://jobicy.com/api/v2/remote-jobs"
)

// Config holds high-level settings required across the application.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Feeds   FeedsConfig   `yaml:"feeds"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig describes the listening socket and HTTP server timeouts.
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
}

// Addr joins host and port into a listen address.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + strconv.Itoa(s.Port)
}

// FeedsConfig groups the upstream endpoints and their limits.
type FeedsConfig struct {
	NewsFeedURL  string        `yaml:"newsFeedUrl"`
	JobsAPIURL   string        `yaml:"jobsApiUrl"`
	JobsPageSize int           `yaml:"jobsPageSize"`
	MaxItems     int           `yaml:"maxItems"`
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"userAgent"`
}

// LoggingConfig selects the slog level (debug, info, warn, error).
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(portEnv); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			log.Printf("config: ignoring invalid %s=%q", portEnv, v)
		} else {
			c.Server.Port = port
		}
	}

	if v := os.Getenv(hostEnv); v != "" {
		c.Server.Host = v
	}

	if v := os.Getenv(newsFeedURLEnv); v != "" {
		c.Feeds.NewsFeedURL = v
	}

	if v := os.Getenv(jobsAPIURLEnv); v != "" {
		c.Feeds.JobsAPIURL = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Server.Host != "" {
		base.Server.Host = override.Server.Host
	}
	if override.Server.Port > 0 {
		base.Server.Port = override.Server.Port
	}
	if override.Server.ReadTimeout > 0 {
		base.Server.ReadTimeout = override.Server.ReadTimeout
	}
	if override.Server.WriteTimeout > 0 {
		base.Server.WriteTimeout = override.Server.WriteTimeout
	}
	if override.Server.ShutdownTimeout > 0 {
		base.Server.ShutdownTimeout = override.Server.ShutdownTimeout
	}

	if override.Feeds.NewsFeedURL != "" {
		base.Feeds.NewsFeedURL = override.Feeds.NewsFeedURL
	}
	if override.Feeds.JobsAPIURL != "" {
		base.Feeds.JobsAPIURL = override.Feeds.JobsAPIURL
	}
	if override.Feeds.JobsPageSize > 0 {
		base.Feeds.JobsPageSize = override.Feeds.JobsPageSize
	}
	if override.Feeds.MaxItems > 0 {
		base.Feeds.MaxItems = override.Feeds.MaxItems
	}
	if override.Feeds.Timeout > 0 {
		base.Feeds.Timeout = override.Feeds.Timeout
	}
	if override.Feeds.UserAgent != "" {
		base.Feeds.UserAgent = override.Feeds.UserAgent
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            defaultPort,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Feeds: FeedsConfig{
			NewsFeedURL:  defaultNewsFeed,
			JobsAPIURL:   defaultJobsAPI,
			JobsPageSize: 20,
			MaxItems:     10,
			Timeout:      15 * time.Second,
			UserAgent:    "TechDashboard/1.0",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}
