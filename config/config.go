package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

const (
	defaultWindowWidth     = 480
	defaultWindowHeight    = 720
	defaultWindowTitle     = "Candle Timer"
	defaultFrontend        = FrontendWindow
	defaultTerminalFrameMs = 16
	defaultLogLevel        = "info"
	defaultLogFile         = "candletimer.log"
	defaultDrips           = 3
)

// flagKeys maps command line flags to the environment-style keys they
// override, so a flag given on the command line beats the environment.
var flagKeys = map[string]string{
	"frontend":  "FRONTEND",
	"log-level": "LOG_LEVEL",
	"log-file":  "LOG_FILE",
}

type Config struct {
	config *viper.Viper
}

// RegisterFlags adds the flags Load understands to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("env", "", "config environment, selects config/config.<env>.yaml (default $ENV or local)")
	fs.String("frontend", "", "frontend to run: window or terminal")
	fs.String("log-level", "", "log level: debug, info, warn or error")
	fs.String("log-file", "", "log file used by the terminal frontend")
}

// Load reads config/config.<env>.yaml, then the environment, then any flags
// registered with RegisterFlags. fs may be nil.
func Load(env string, fs *pflag.FlagSet) (*Config, error) {

	if len(env) == 0 && fs != nil {
		if f := fs.Lookup("env"); f != nil {
			env = f.Value.String()
		}
	}
	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)

	viperConfig := viper.New()
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn(fmt.Sprintf("error reading config file, %s", err))
		}
	}
	viperConfig.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if err := viperConfig.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	cfg := &Config{
		config: viperConfig,
	}

	return cfg, nil
}

func (c *Config) GetWindowWidth() int {
	return c.getInt("WINDOW_WIDTH", "window.width", defaultWindowWidth)
}

func (c *Config) GetWindowHeight() int {
	return c.getInt("WINDOW_HEIGHT", "window.height", defaultWindowHeight)
}

func (c *Config) GetWindowTitle() string {
	return c.getString("WINDOW_TITLE", "window.title", defaultWindowTitle)
}

// GetFrontend returns FrontendWindow or FrontendTerminal.
func (c *Config) GetFrontend() (string, error) {
	frontend := c.getString("FRONTEND", "frontend", defaultFrontend)
	switch frontend {
	case FrontendWindow, FrontendTerminal:
		return frontend, nil
	}
	return "", fmt.Errorf("unknown frontend %q", frontend)
}

// GetTerminalFrameMillis is the redraw interval of the terminal frontend.
func (c *Config) GetTerminalFrameMillis() int {
	return c.getInt("TERMINAL_FRAME_MS", "terminal.frame_ms", defaultTerminalFrameMs)
}

func (c *Config) GetLogLevel() string {
	return c.getString("LOG_LEVEL", "log.level", defaultLogLevel)
}

func (c *Config) GetLogFile() string {
	return c.getString("LOG_FILE", "log.file", defaultLogFile)
}

// GetDrips is the number of wax drips drawn down the candle.
func (c *Config) GetDrips() int {
	drips := c.config.GetInt("CANDLE_DRIPS")
	if drips == 0 {
		drips = c.config.GetInt("candle.drips")
	}
	if drips <= 0 {
		drips = defaultDrips
	}

	return drips
}

func (c *Config) getInt(envKey, key string, fallback int) int {
	value := c.config.GetInt(envKey)
	if value == 0 {
		value = c.config.GetInt(key)
	}
	if value <= 0 {
		value = fallback
	}

	return value
}

func (c *Config) getString(envKey, key, fallback string) string {
	value := c.config.GetString(envKey)
	if len(value) == 0 {
		value = c.config.GetString(key)
	}
	if len(value) == 0 {
		value = fallback
	}

	return value
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
