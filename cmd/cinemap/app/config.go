package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/agentstation/cinemap/pkg/constants"
	"github.com/agentstation/cinemap/pkg/errors"
)

// envPrefix is prepended to every configuration key when read from the environment.
const envPrefix = "CINEMAP"

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Sources
	DataDir    string
	MoviesFile string
	ActorsFile string
	GenresFile string
	Encoding   string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// flagKeys maps persistent flag names to configuration keys.
var flagKeys = map[string]string{
	"config":    "config",
	"data-dir":  "data_dir",
	"movies":    "movies_file",
	"actors":    "actors_file",
	"genres":    "genres_file",
	"encoding":  "encoding",
	"verbose":   "verbose",
	"quiet":     "quiet",
	"no-color":  "no_color",
	"format":    "format",
	"log-level": "log_level",
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Environment variables
// 2. .env files
// 3. Config file (~/.cinemap.yaml or ./.cinemap.yaml)
// 4. Defaults
func LoadConfig() (*Config, error) {
	return loadConfig(nil)
}

// LoadConfigWithFlags is LoadConfig with flags that were set explicitly
// taking precedence over every other source.
func LoadConfigWithFlags(flags *pflag.FlagSet) (*Config, error) {
	return loadConfig(flags)
}

func loadConfig(flags *pflag.FlagSet) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	// Unprefixed variables shared with the logging package
	for key, env := range map[string]string{
		"log_level":  "LOG_LEVEL",
		"log_format": "LOG_FORMAT",
		"log_output": "LOG_OUTPUT",
		"no_color":   "NO_COLOR",
	} {
		if err := v.BindEnv(key, envPrefix+"_"+strings.ToUpper(key), env); err != nil {
			return nil, errors.NewConfigError("env", "binding "+env, err)
		}
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	// Try to read config file if it exists
	configFile := v.GetString("config")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigType("yaml")
		v.SetConfigName(".cinemap")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// A missing default config file is fine; an explicit one must exist
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, errors.NewConfigError("file", "reading config file", err)
		}
	}

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color"),
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		DataDir:    v.GetString("data_dir"),
		MoviesFile: v.GetString("movies_file"),
		ActorsFile: v.GetString("actors_file"),
		GenresFile: v.GetString("genres_file"),
		Encoding:   v.GetString("encoding"),

		LogLevel:  v.GetString("log_level"),
		LogFormat: v.GetString("log_format"),
		LogOutput: v.GetString("log_output"),
	}

	return config, nil
}

// setDefaults registers the built-in value of every key.
func setDefaults(v *viper.Viper) {
	v.SetDefault("data_dir", ".")
	v.SetDefault("movies_file", constants.DefaultMoviesFile)
	v.SetDefault("actors_file", constants.DefaultActorsFile)
	v.SetDefault("genres_file", constants.DefaultGenresFile)
	v.SetDefault("encoding", constants.DefaultEncoding)
	v.SetDefault("log_level", "")
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")
}

// bindFlags binds every known flag present in flags. Viper only consults a
// bound flag when it was set on the command line.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return errors.NewConfigError("flags", "binding --"+name, err)
		}
	}
	return nil
}

// loadEnvFiles loads environment variables from .env files.
// Variables already set are never overridden, so .env.local wins over .env.
func loadEnvFiles() {
	envFiles := []string{
		".env.local",
		".env",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}
