// Package config loads configs/config.yml through viper, with FRIGDASH_*
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

const envPrefix = "FRIGDASH"

type Config struct {
	Port     string       `mapstructure:"port"`
	LogLevel string       `mapstructure:"log_level"`
	Logs     LogsConfig   `mapstructure:"logs"`
	Status   StatusConfig `mapstructure:"status"`
	Auth     AuthConfig   `mapstructure:"auth"`
	Memory   MemoryConfig `mapstructure:"memory"`
	Audit    AuditConfig  `mapstructure:"audit"`
}

type LogsConfig struct {
	Dir     string `mapstructure:"dir"`
	Pattern string `mapstructure:"pattern"`
}

type StatusConfig struct {
	Service string        `mapstructure:"service"`
	Backend string        `mapstructure:"backend"` // systemctl | dbus
	Timeout time.Duration `mapstructure:"timeout"`
}

// AuthConfig holds the shared secret. KeyHash (bcrypt) wins over Key.
type AuthConfig struct {
	Key     string `mapstructure:"key"`
	KeyHash string `mapstructure:"key_hash"`
}

type MemoryConfig struct {
	Dir string `mapstructure:"dir"`
}

type AuditConfig struct {
	DBPath string `mapstructure:"db_path"`
}

var defaults = map[string]any{
	"port":           "8000",
	"log_level":      "info",
	"logs.dir":       "logs",
	"logs.pattern":   "frigbot_*.jsonl",
	"status.service": "frigbot",
	"status.backend": "systemctl",
	"status.timeout": "3s",
	"auth.key":       "",
	"auth.key_hash":  "",
	"memory.dir":     "memories",
	"audit.db_path":  "data/audit.db",
}

// Loader owns the viper instance so the file can be watched after Load.
type Loader struct {
	v *viper.Viper
}

// NewLoader searches for config.yml in the given paths ("configs" if none).
func NewLoader(paths ...string) *Loader {
	v := viper.New()
	if len(paths) == 0 {
		paths = []string{"configs"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// deployments export the key as plain AUTH
	_ = v.BindEnv("auth.key", envPrefix+"_AUTH_KEY", "AUTH")

	return &Loader{v: v}
}

// Load reads the file (a missing file means defaults + env) and decodes it.
func (l *Loader) Load() (Config, error) {
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	return l.decode()
}

// File is the config file in use, empty when running on defaults.
func (l *Loader) File() string {
	return l.v.ConfigFileUsed()
}

// OnChange watches the config file and calls fn with the reloaded config.
// Decode errors are passed through so the caller can keep the old values.
func (l *Loader) OnChange(fn func(Config, error)) {
	if l.v.ConfigFileUsed() == "" {
		return
	}
	l.v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		fn(l.decode())
	})
	l.v.WatchConfig()
}

func (l *Loader) decode() (Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
