// Package config loads lnf settings from flags, LNF_* environment variables, .env files and an
// optional lnf.yaml, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf16"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyRole          = "role"
	KeyListen        = "listen"
	KeyParentURL     = "parent_url"
	KeyBackend       = "backend"
	KeyProfile       = "profile"
	KeyWatch         = "watch"
	KeyWatchDebounce = "watch_debounce"
	KeyPasswordChar  = "password_char"
	KeyEchoPassword  = "echo_password"
)

// Process roles.
const (
	RoleParent = "parent"
	RoleChild  = "child"
)

// EnvPrefix is prepended to every key when read from the environment.
const EnvPrefix = "LNF"

// Config is the resolved configuration of one lnf process.
type Config struct {
	Role          string
	Listen        string
	ParentURL     string
	Backend       string
	Profile       string
	Watch         bool
	WatchDebounce time.Duration

	// PasswordChar and EchoPassword override what the backend reports when set.
	PasswordChar *uint16
	EchoPassword *bool

	// File is the config file that was read, empty if none.
	File string
}

// Options controls where Load looks.
type Options struct {
	// ConfigFile is an explicit config file. When empty, lnf.yaml is searched in the working
	// directory and the user config directory.
	ConfigFile string
	// Flags are bound by name; a flag "parent-url" binds the key "parent_url".
	Flags *pflag.FlagSet
	// SkipDotEnv disables .env loading.
	SkipDotEnv bool
}

// Load resolves the configuration.
func Load(opts Options) (*Config, error) {
	if !opts.SkipDotEnv {
		if err := loadDotEnv(); err != nil {
			return nil, err
		}
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		if err := bindFlags(v, opts.Flags); err != nil {
			return nil, err
		}
	}

	file, err := readConfigFile(v, opts.ConfigFile)
	if err != nil {
		return nil, err
	}

	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}
	cfg.File = file
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyRole, RoleParent)
	v.SetDefault(KeyListen, "127.0.0.1:7878")
	v.SetDefault(KeyParentURL, "http://127.0.0.1:7878")
	v.SetDefault(KeyBackend, "profile")
	v.SetDefault(KeyProfile, "light")
	v.SetDefault(KeyWatch, false)
	v.SetDefault(KeyWatchDebounce, "150ms")
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, key := range []string{
		KeyRole, KeyListen, KeyParentURL, KeyBackend, KeyProfile,
		KeyWatch, KeyWatchDebounce, KeyPasswordChar, KeyEchoPassword,
	} {
		flag := flags.Lookup(strings.ReplaceAll(key, "_", "-"))
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flag.Name, err)
		}
	}
	return nil
}

func readConfigFile(v *viper.Viper, explicit string) (string, error) {
	if explicit != "" {
		v.SetConfigFile(explicit)
		if err := v.ReadInConfig(); err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", explicit, err)
		}
		return v.ConfigFileUsed(), nil
	}

	v.SetConfigName("lnf")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := UserConfigDir(); err == nil {
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read config: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

func decode(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Role:      strings.ToLower(cast.ToString(v.Get(KeyRole))),
		Listen:    cast.ToString(v.Get(KeyListen)),
		ParentURL: cast.ToString(v.Get(KeyParentURL)),
		Backend:   strings.ToLower(cast.ToString(v.Get(KeyBackend))),
		Profile:   cast.ToString(v.Get(KeyProfile)),
	}

	switch cfg.Role {
	case RoleParent, RoleChild:
	default:
		return nil, fmt.Errorf("invalid %s %q: expected %s or %s", KeyRole, cfg.Role, RoleParent, RoleChild)
	}

	switch cfg.Backend {
	case "profile", "terminal", "layered":
	default:
		return nil, fmt.Errorf("invalid %s %q: expected profile, terminal or layered", KeyBackend, cfg.Backend)
	}

	watch, err := cast.ToBoolE(v.Get(KeyWatch))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", KeyWatch, err)
	}
	cfg.Watch = watch

	debounce, err := cast.ToDurationE(v.Get(KeyWatchDebounce))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", KeyWatchDebounce, err)
	}
	cfg.WatchDebounce = debounce

	if raw := cast.ToString(v.Get(KeyPasswordChar)); raw != "" {
		c, err := PasswordCodeUnit(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", KeyPasswordChar, err)
		}
		cfg.PasswordChar = &c
	}

	if raw := v.Get(KeyEchoPassword); raw != nil && cast.ToString(raw) != "" {
		echo, err := cast.ToBoolE(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", KeyEchoPassword, err)
		}
		cfg.EchoPassword = &echo
	}

	return cfg, nil
}

// PasswordCodeUnit converts a one-character string to the single UTF-16 code unit a password
// mask is stored as.
func PasswordCodeUnit(s string) (uint16, error) {
	units := utf16.Encode([]rune(s))
	if len(units) != 1 {
		return 0, fmt.Errorf("password character %q must be exactly one UTF-16 code unit", s)
	}
	return units[0], nil
}

// UserConfigDir returns $XDG_CONFIG_HOME/lnf, falling back to ~/.config/lnf.
func UserConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configHome, "lnf"), nil
}

// loadDotEnv loads ./.env and then the user config directory's .env into the process
// environment. Variables already set are never overwritten, so the local file wins over the
// user one and the real environment wins over both.
func loadDotEnv() error {
	var files []string

	if wd, err := os.Getwd(); err == nil {
		files = append(files, filepath.Join(wd, ".env"))
	}
	if dir, err := UserConfigDir(); err == nil {
		files = append(files, filepath.Join(dir, ".env"))
	}

	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}
