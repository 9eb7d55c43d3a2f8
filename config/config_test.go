package config

import (
	"testing"

	"github.com/spf13/pflag"
)

// missingEnv names an environment with no config file, so only defaults,
// environment variables and flags apply.
const missingEnv = "does-not-exist"

func TestDefaultsWithoutConfigFile(t *testing.T) {
	cfg, err := Load(missingEnv, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := cfg.GetWindowWidth(); got != defaultWindowWidth {
		t.Errorf("GetWindowWidth() = %d, want %d", got, defaultWindowWidth)
	}
	if got := cfg.GetWindowHeight(); got != defaultWindowHeight {
		t.Errorf("GetWindowHeight() = %d, want %d", got, defaultWindowHeight)
	}
	if got := cfg.GetWindowTitle(); got != defaultWindowTitle {
		t.Errorf("GetWindowTitle() = %q, want %q", got, defaultWindowTitle)
	}
	if got, err := cfg.GetFrontend(); err != nil || got != FrontendWindow {
		t.Errorf("GetFrontend() = %q, %v, want %q", got, err, FrontendWindow)
	}
	if got := cfg.GetTerminalFrameMillis(); got != defaultTerminalFrameMs {
		t.Errorf("GetTerminalFrameMillis() = %d, want %d", got, defaultTerminalFrameMs)
	}
	if got := cfg.GetLogLevel(); got != defaultLogLevel {
		t.Errorf("GetLogLevel() = %q, want %q", got, defaultLogLevel)
	}
	if got := cfg.GetDrips(); got != defaultDrips {
		t.Errorf("GetDrips() = %d, want %d", got, defaultDrips)
	}
}

func TestLocalConfigFile(t *testing.T) {
	cfg, err := Load(envLocal, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := cfg.GetLogLevel(); got != "debug" {
		t.Errorf("GetLogLevel() = %q, want debug from config.local.yaml", got)
	}
	if got := cfg.GetWindowTitle(); got != "Candle Timer" {
		t.Errorf("GetWindowTitle() = %q", got)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("WINDOW_WIDTH", "800")
	t.Setenv("WINDOW_TITLE", "Vigil")
	t.Setenv("FRONTEND", "terminal")
	t.Setenv("CANDLE_DRIPS", "5")

	cfg, err := Load(envLocal, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := cfg.GetWindowWidth(); got != 800 {
		t.Errorf("GetWindowWidth() = %d, want 800", got)
	}
	if got := cfg.GetWindowTitle(); got != "Vigil" {
		t.Errorf("GetWindowTitle() = %q, want Vigil", got)
	}
	if got, _ := cfg.GetFrontend(); got != FrontendTerminal {
		t.Errorf("GetFrontend() = %q, want terminal", got)
	}
	if got := cfg.GetDrips(); got != 5 {
		t.Errorf("GetDrips() = %d, want 5", got)
	}
}

func TestEnvSelectsConfigFile(t *testing.T) {
	t.Setenv(keyEnv, missingEnv)

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := cfg.GetLogLevel(); got != defaultLogLevel {
		t.Errorf("GetLogLevel() = %q, want default %q", got, defaultLogLevel)
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("FRONTEND", "window")
	t.Setenv("LOG_LEVEL", "warn")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	if err := fs.Parse([]string{"--frontend=terminal", "--env", missingEnv}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	cfg, err := Load("", fs)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got, _ := cfg.GetFrontend(); got != FrontendTerminal {
		t.Errorf("GetFrontend() = %q, want terminal from flag", got)
	}
	// Not given on the command line, so the environment still applies.
	if got := cfg.GetLogLevel(); got != "warn" {
		t.Errorf("GetLogLevel() = %q, want warn from environment", got)
	}
}

func TestUnknownFrontend(t *testing.T) {
	t.Setenv("FRONTEND", "hologram")

	cfg, err := Load(missingEnv, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, err := cfg.GetFrontend(); err == nil {
		t.Error("GetFrontend() expected error for unknown frontend")
	}
}
