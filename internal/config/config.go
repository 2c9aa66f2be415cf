package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bundlekit/bundlekit/internal/branding"
	"github.com/bundlekit/bundlekit/internal/userdata"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Config keys.
const (
	KeyRenderer         = "ui.renderer"
	KeyTheme            = "ui.theme"
	KeyAccessible       = "ui.accessible"
	KeyStrict           = "validation.strict"
	KeyBundleTool       = "duffle.binary"
	KeyCredentialSource = "credentials.source"
	KeyCredentialsDir   = "credentials.dir"
	KeyListTimeout      = "credentials.list_timeout"
	KeyLogLevel         = "log.level"
)

// Renderer names accepted by ui.renderer.
const (
	RendererAuto = "auto"
	RendererTUI  = "tui"
	RendererLine = "line"
)

// Credential listing sources accepted by credentials.source.
const (
	SourceExec = "exec"
	SourceDir  = "dir"
)

// ErrUnknownKey is returned by Set for keys outside the known set.
var ErrUnknownKey = errors.New("unknown config key")

var defaults = map[string]any{
	KeyRenderer:         RendererAuto,
	KeyTheme:            "default",
	KeyAccessible:       false,
	KeyStrict:           false,
	KeyBundleTool:       branding.BundleTool(),
	KeyCredentialSource: SourceExec,
	KeyCredentialsDir:   "",
	KeyListTimeout:      "0s",
	KeyLogLevel:         "warn",
}

// Settings is a typed snapshot of the loaded configuration.
type Settings struct {
	Renderer         string
	Theme            string
	Accessible       bool
	Strict           bool
	BundleTool       string
	CredentialSource string
	CredentialsDir   string
	ListTimeout      time.Duration
	LogLevel         string
}

// Dir returns the path to the config directory (~/.bundlekit/ unless
// BUNDLEKIT_HOME points elsewhere).
func Dir() string {
	dir, err := userdata.GetHomeRoot()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return dir
}

// FilePath returns the full path to the config file (~/.bundlekit/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Keys returns every known config key, sorted.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Load initializes Viper to read from the config file and environment.
// Keys map to variables like BUNDLEKIT_UI_RENDERER.
func Load() {
	for k, v := range defaults {
		viper.SetDefault(k, v)
	}
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Current returns the loaded settings with unknown enum values replaced by
// their defaults.
func Current() Settings {
	s := Settings{
		Renderer:         strings.ToLower(viper.GetString(KeyRenderer)),
		Theme:            strings.ToLower(viper.GetString(KeyTheme)),
		Accessible:       viper.GetBool(KeyAccessible),
		Strict:           viper.GetBool(KeyStrict),
		BundleTool:       viper.GetString(KeyBundleTool),
		CredentialSource: strings.ToLower(viper.GetString(KeyCredentialSource)),
		CredentialsDir:   viper.GetString(KeyCredentialsDir),
		ListTimeout:      viper.GetDuration(KeyListTimeout),
		LogLevel:         viper.GetString(KeyLogLevel),
	}
	switch s.Renderer {
	case RendererAuto, RendererTUI, RendererLine:
	default:
		s.Renderer = RendererAuto
	}
	switch s.CredentialSource {
	case SourceExec, SourceDir:
	default:
		s.CredentialSource = SourceExec
	}
	if s.BundleTool == "" {
		s.BundleTool = branding.BundleTool()
	}
	if s.CredentialsDir == "" {
		if dir, err := userdata.GetCredentialsDir(); err == nil {
			s.CredentialsDir = dir
		}
	}
	if s.ListTimeout < 0 {
		s.ListTimeout = 0
	}
	return s
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if _, ok := defaults[key]; !ok {
		return fmt.Errorf("%w %q (known keys: %s)", ErrUnknownKey, key, strings.Join(Keys(), ", "))
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
