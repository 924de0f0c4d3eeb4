package app

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/teammap/pkg/constants"
	"github.com/agentstation/teammap/pkg/contributors"
)

// Registry modes.
const (
	RegistryHTTP  = "http"
	RegistryLocal = "local"
)

// Config holds the application configuration loaded from config files,
// environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Build configuration
	SnapshotPath string
	OutputDir    string
	BaseURL      string
	MailDomain   string
	Address      string
	SiteName     contributors.LocalizedText

	Registry RegistryConfig

	// Logging configuration
	LogLevel     string
	LogLevelFlag string
	LogFormat    string
	LogOutput    string
}

// RegistryConfig selects and configures the registries.
type RegistryConfig struct {
	Mode string

	// http mode
	UsersURL        string
	PublicationsURL string
	AuthHeader      string
	Timeout         time.Duration
	Retries         int

	// local mode
	UsersFile        string
	PublicationsFile string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables (TEAMMAP_*)
// 3. .env files
// 4. Config file (configFile, or .teammap.yaml in $HOME or the working directory)
// 5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	setDefaults()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(constants.DefaultConfigName)

		// Read config file (ignore error if not found)
		_ = viper.ReadInConfig()
	}

	config := &Config{
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no-color"),
		Format:  viper.GetString("format"),

		ConfigFile: viper.ConfigFileUsed(),

		SnapshotPath: viper.GetString("snapshot_path"),
		OutputDir:    viper.GetString("output_dir"),
		BaseURL:      viper.GetString("base_url"),
		MailDomain:   viper.GetString("mail_domain"),
		Address:      viper.GetString("address"),
		SiteName: contributors.LocalizedText{
			contributors.LocaleES: viper.GetString("site_name.es"),
			contributors.LocaleEN: viper.GetString("site_name.en"),
		},

		Registry: RegistryConfig{
			Mode:             strings.ToLower(viper.GetString("registry.mode")),
			UsersURL:         viper.GetString("registry.users_url"),
			PublicationsURL:  viper.GetString("registry.publications_url"),
			AuthHeader:       viper.GetString("registry.auth_header"),
			Timeout:          viper.GetDuration("registry.timeout"),
			Retries:          viper.GetInt("registry.retries"),
			UsersFile:        viper.GetString("registry.users_file"),
			PublicationsFile: viper.GetString("registry.publications_file"),
		},

		LogLevel:  getEnvOrDefault("LOG_LEVEL", viper.GetString("log.level")),
		LogFormat: getEnvOrDefault("LOG_FORMAT", viper.GetString("log.format")),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", viper.GetString("log.output")),
	}

	return config, nil
}

func setDefaults() {
	viper.SetDefault("snapshot_path", constants.DefaultSnapshotPath)
	viper.SetDefault("output_dir", constants.DefaultOutputDir)
	viper.SetDefault("mail_domain", constants.DefaultMailDomain)
	viper.SetDefault("registry.mode", RegistryHTTP)
	viper.SetDefault("registry.timeout", constants.RegistryFetchTimeout)
	viper.SetDefault("registry.retries", constants.MaxRetries)
	viper.SetDefault("log.format", "auto")
	viper.SetDefault("log.output", "stderr")
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if format != "" {
		c.Format = format
	}
	c.LogLevelFlag = logLevel
}

// loadEnvFiles loads environment variables from .env files. Variables
// already set are never replaced, so .env.local is loaded first to win
// over .env.
func loadEnvFiles() {
	envFiles := []string{
		".env.local",
		".env",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
