package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/build50/build50/internal/validation"
	siteerrors "github.com/build50/build50/pkg/errors"
)

// EnvPrefix namespaces environment overrides, e.g. BUILD50_STORAGE_DRIVER.
const EnvPrefix = "BUILD50"

// Storage drivers accepted by storage.driver.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Settings holds application configuration.
type Settings struct {
	Storage    StorageSettings    `mapstructure:"storage" yaml:"storage"`
	Submission SubmissionSettings `mapstructure:"submission" yaml:"submission"`
	Catalog    CatalogSettings    `mapstructure:"catalog" yaml:"catalog"`
	UI         UISettings         `mapstructure:"ui" yaml:"ui"`
	Log        LogSettings        `mapstructure:"log" yaml:"log"`

	// Source is the config file that was read, empty when only defaults and
	// environment were used.
	Source string `mapstructure:"-" yaml:"-"`
}

// StorageSettings selects where the theme preference and enquiries persist.
type StorageSettings struct {
	Driver string `mapstructure:"driver" yaml:"driver" validate:"oneof=file sqlite memory"`
	Path   string `mapstructure:"path" yaml:"path" validate:"required_unless=Driver memory"`
}

// SubmissionSettings tunes the simulated enquiry delivery.
type SubmissionSettings struct {
	Latency time.Duration `mapstructure:"latency" yaml:"latency" validate:"gte=0"`
	// FailEvery makes every Nth delivery fail; zero disables failures.
	FailEvery int  `mapstructure:"fail_every" yaml:"fail_every" validate:"gte=0"`
	Outbox    bool `mapstructure:"outbox" yaml:"outbox"`
}

// CatalogSettings points at an optional catalog override file.
type CatalogSettings struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// UISettings controls animation pacing.
type UISettings struct {
	Stagger   time.Duration `mapstructure:"stagger" yaml:"stagger" validate:"gte=0"`
	FadeSteps int           `mapstructure:"fade_steps" yaml:"fade_steps" validate:"gte=0,lte=20"`
}

// LogSettings controls where logs go and how verbose they are.
type LogSettings struct {
	Level string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Path  string `mapstructure:"path" yaml:"path"`
}

// DefaultDir returns ~/.build50, falling back to the working directory when
// the home directory cannot be resolved.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".build50"
	}
	return filepath.Join(home, ".build50")
}

func setDefaults(v *viper.Viper, dir string) {
	v.SetDefault("storage.driver", DriverFile)
	v.SetDefault("storage.path", filepath.Join(dir, "state.json"))
	v.SetDefault("submission.latency", 1500*time.Millisecond)
	v.SetDefault("submission.fail_every", 0)
	v.SetDefault("submission.outbox", true)
	v.SetDefault("catalog.path", "")
	v.SetDefault("ui.stagger", 80*time.Millisecond)
	v.SetDefault("ui.fade_steps", 4)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", filepath.Join(dir, "build50.log"))
}

// Defaults returns the settings used when no file or environment overrides
// are present.
func Defaults() Settings {
	v := viper.New()
	setDefaults(v, DefaultDir())
	var s Settings
	_ = v.Unmarshal(&s)
	return s
}

// Load reads configuration from defaults, then the YAML file, then env.
// With an explicit path the file must exist; otherwise ~/.build50/config.yaml
// is read when present.
func Load(path string) (Settings, error) {
	dir := DefaultDir()
	v := viper.New()
	setDefaults(v, dir)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(dir)
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			source := path
			if source == "" {
				source = filepath.Join(dir, "config.yaml")
			}
			return Settings{}, siteerrors.NewParseError(source, 0, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal config: %w", err)
	}
	s.Source = v.ConfigFileUsed()
	s.Storage.Driver = strings.ToLower(strings.TrimSpace(s.Storage.Driver))
	s.Log.Level = strings.ToLower(strings.TrimSpace(s.Log.Level))

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks value ranges and enumerations.
func (s Settings) Validate() error {
	return validation.Struct(s)
}
