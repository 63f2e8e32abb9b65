package mcnet

import (
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gstoney/mcnet/packet/v757"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

type RegistryConfig struct {
	SkipDuplicateCheck bool `toml:"skip_duplicate_check"`
}

type Config struct {
	Addr            string `toml:"addr"`
	DefaultProtocol int32  `toml:"default_protocol"`
	// Preload lists protocol numbers or version names built at startup.
	Preload []string `toml:"preload"`
	// CompressionThreshold is announced to clients during login. Negative
	// disables compression.
	CompressionThreshold int    `toml:"compression_threshold"`
	SentryDSN            string `toml:"sentry_dsn"`

	Transport TransportConfig `toml:"transport"`
	Codec     CodecConfig     `toml:"codec"`
	Registry  RegistryConfig  `toml:"registry"`
	Log       LogConfig       `toml:"log"`
}

func DefaultConfig() Config {
	return Config{
		Addr:                 ":25565",
		DefaultProtocol:      v757.Protocol,
		CompressionThreshold: -1,
		Transport:            DefaultTransportConfig(),
		Codec: CodecConfig{
			TrailingBytes: TrailingError,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig reads the TOML file at path over DefaultConfig, then applies
// environment overrides. envFiles are loaded into the environment first;
// missing ones are skipped. An empty path skips the file.
func LoadConfig(path string, envFiles ...string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return cfg, errors.Wrapf(err, "decode %s", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return cfg, errors.Errorf("%s: unknown key %s", path, undecoded[0])
		}
	}

	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, errors.Wrapf(err, "load %s", f)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (cfg *Config) applyEnv() error {
	if v, ok := os.LookupEnv("MCNET_ADDR"); ok {
		cfg.Addr = v
	}
	if v, ok := os.LookupEnv("MCNET_DEFAULT_PROTOCOL"); ok {
		p, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return errors.Wrap(err, "MCNET_DEFAULT_PROTOCOL")
		}
		cfg.DefaultProtocol = int32(p)
	}
	if v, ok := os.LookupEnv("MCNET_PRELOAD"); ok {
		cfg.Preload = nil
		for _, token := range strings.Split(v, ",") {
			if token = strings.TrimSpace(token); token != "" {
				cfg.Preload = append(cfg.Preload, token)
			}
		}
	}
	if v, ok := os.LookupEnv("MCNET_LOG_LEVEL"); ok {
		cfg.Log.Level = v
	}
	if v, ok := os.LookupEnv("MCNET_TRAILING_BYTES"); ok {
		if err := cfg.Codec.TrailingBytes.UnmarshalText([]byte(v)); err != nil {
			return errors.Wrap(err, "MCNET_TRAILING_BYTES")
		}
	}
	if v, ok := os.LookupEnv("SENTRY_DSN"); ok {
		cfg.SentryDSN = v
	}
	return nil
}
