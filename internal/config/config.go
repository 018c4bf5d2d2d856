package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/adrg/xdg"
	"github.com/goccy/go-yaml"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
)

const (
	APP_NAME            = "zen"
	CONFIG_FILE_RELPATH = APP_NAME + "/config.yaml"

	LOG_LEVEL_ENV_VARNAME = "ZEN_LOG_LEVEL"

	DEFAULT_SEPARATOR     = ","
	DEFAULT_LOG_LEVEL     = zerolog.WarnLevel
	DEFAULT_OUTPUT_FORMAT = JSON_FORMAT

	JSON_FORMAT = "json"
	YAML_FORMAT = "yaml"
)

var (
	FORMATS = []string{JSON_FORMAT, YAML_FORMAT}

	ErrUnknownFormat = errors.New("unknown format")

	FORCE_COLOR     bool
	NO_COLOR        bool
	SHOULD_COLORIZE bool

	//value of ZEN_LOG_LEVEL, empty if not set.
	LOG_LEVEL_OVERRIDE string
)

func init() {
	readEnv(os.LookupEnv)
}

func readEnv(lookup func(string) (string, bool)) {
	if s, ok := lookup("FORCE_COLOR"); ok {
		FORCE_COLOR = len(s) != 0 && s != "false" && s != "0"
	}

	if s, ok := lookup("NO_COLOR"); ok {
		NO_COLOR = len(s) != 0 && s != "false" && s != "0"
	}

	LOG_LEVEL_OVERRIDE, _ = lookup(LOG_LEVEL_ENV_VARNAME)

	SHOULD_COLORIZE = !NO_COLOR && (FORCE_COLOR || termenv.EnvColorProfile() != termenv.Ascii)
}

// Config holds the settings of the zen command, they are read from $XDG_CONFIG_HOME/zen/config.yaml.
type Config struct {
	Separator    string `yaml:"separator"`
	LogLevel     string `yaml:"log-level"`
	NaturalSort  bool   `yaml:"natural-sort"`
	OutputFormat string `yaml:"output-format"`
}

func Default() Config {
	return Config{
		Separator:    DEFAULT_SEPARATOR,
		LogLevel:     DEFAULT_LOG_LEVEL.String(),
		OutputFormat: DEFAULT_OUTPUT_FORMAT,
	}
}

// Load searches for the configuration file and parses it, the default configuration is returned
// if there is no configuration file.
func Load() (Config, string, error) {
	path, err := xdg.SearchConfigFile(CONFIG_FILE_RELPATH)
	if err != nil {
		return Default(), "", nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, path, err
	}

	config, err := Parse(content)
	if err != nil {
		return Config{}, path, fmt.Errorf("invalid configuration file %s: %w", path, err)
	}
	return config, path, nil
}

// Parse parses a YAML configuration, unspecified settings have their default value.
func Parse(content []byte) (Config, error) {
	config := Default()

	if err := yaml.Unmarshal(content, &config); err != nil {
		return Config{}, err
	}

	if err := CheckFormat(config.OutputFormat); err != nil {
		return Config{}, err
	}

	if _, err := zerolog.ParseLevel(config.LogLevel); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Level returns the log level, the ZEN_LOG_LEVEL environment variable takes precedence over the configuration.
func (c Config) Level() (zerolog.Level, error) {
	level := c.LogLevel
	if LOG_LEVEL_OVERRIDE != "" {
		level = LOG_LEVEL_OVERRIDE
	}
	if level == "" {
		return DEFAULT_LOG_LEVEL, nil
	}
	return zerolog.ParseLevel(strings.ToLower(level))
}

func CheckFormat(format string) error {
	if !slices.Contains(FORMATS, format) {
		return fmt.Errorf("%w %q, supported formats are %s", ErrUnknownFormat, format, strings.Join(FORMATS, ", "))
	}
	return nil
}

// NewOutput returns a termenv output writing to w, colors are disabled if SHOULD_COLORIZE is false.
func NewOutput(w io.Writer) *termenv.Output {
	if !SHOULD_COLORIZE {
		return termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	}
	return termenv.NewOutput(w, termenv.WithTTY(FORCE_COLOR))
}
