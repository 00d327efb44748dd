package config

import (
	"log/slog"
	"net"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/spf13/viper"
)

const (
	EnvDev     = "dev"
	EnvStaging = "staging"
	EnvProd    = "prod"
)

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

const (
	SelectionWeighted = "weighted"
	SelectionUniform  = "uniform"
)

type ServerConfig struct {
	Address     string `mapstructure:"address"`
	Environment string `mapstructure:"environment"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

type UploadConfig struct {
	MaxBytes int64 `mapstructure:"max_bytes"`
}

type InferenceConfig struct {
	Selection     string  `mapstructure:"selection"`
	MinDelay      string  `mapstructure:"min_delay"`
	MaxDelay      string  `mapstructure:"max_delay"`
	MinConfidence float64 `mapstructure:"min_confidence"`
	MaxConfidence float64 `mapstructure:"max_confidence"`
}

type MetricsConfig struct {
	EventBuffer int `mapstructure:"event_buffer"`
}

type StaticConfig struct {
	Dir string `mapstructure:"dir"`
}

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Upload    UploadConfig    `mapstructure:"upload"`
	Inference InferenceConfig `mapstructure:"inference"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Static    StaticConfig    `mapstructure:"static"`
}

func Load() (*Config, error) {
	viper.SetDefault("server.address", ":8001")
	viper.SetDefault("server.environment", EnvDev)
	viper.SetDefault("logging.level", LogLevelInfo)
	viper.SetDefault("upload.max_bytes", 5*1024*1024)
	viper.SetDefault("inference.selection", SelectionWeighted)
	viper.SetDefault("inference.min_delay", "1.5s")
	viper.SetDefault("inference.max_delay", "3.2s")
	viper.SetDefault("inference.min_confidence", 88.0)
	viper.SetDefault("inference.max_confidence", 97.5)
	viper.SetDefault("metrics.event_buffer", 256)
	viper.SetDefault("static.dir", "./static")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Error("failed to read config file", slog.String("error", err.Error()))
			return nil, err
		}
		slog.Info("config file not found, using defaults and environment variables")
	} else {
		slog.Info("loaded config file", slog.String("file", viper.ConfigFileUsed()))
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		slog.Error("failed to unmarshal config", slog.String("error", err.Error()))
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Server,
			validation.Required,
			validation.By(func(value interface{}) error {
				sc, ok := value.(ServerConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a ServerConfig")
				}
				return validation.ValidateStruct(&sc,
					validation.Field(&sc.Environment,
						validation.Required,
						validation.In(EnvDev, EnvStaging, EnvProd),
					),
					validation.Field(&sc.Address,
						validation.Required,
						validation.By(validateHostPort),
					),
				)
			}),
		),
		validation.Field(&c.Logging,
			validation.Required,
			validation.By(func(value interface{}) error {
				lc, ok := value.(LoggingConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a LoggingConfig")
				}
				return validation.ValidateStruct(&lc,
					validation.Field(&lc.Level,
						validation.Required,
						validation.In(LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError),
					),
				)
			}),
		),
		validation.Field(&c.Upload,
			validation.Required,
			validation.By(func(value interface{}) error {
				uc, ok := value.(UploadConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be an UploadConfig")
				}
				if uc.MaxBytes < 1 {
					return validation.NewError("validation_invalid_max_bytes", "max_bytes must be at least 1")
				}
				return nil
			}),
		),
		validation.Field(&c.Inference,
			validation.Required,
			validation.By(validateInference),
		),
		validation.Field(&c.Metrics,
			validation.Required,
			validation.By(func(value interface{}) error {
				mc, ok := value.(MetricsConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a MetricsConfig")
				}
				if mc.EventBuffer < 1 {
					return validation.NewError("validation_invalid_event_buffer", "event_buffer must be at least 1")
				}
				return nil
			}),
		),
		validation.Field(&c.Static,
			validation.Required,
			validation.By(func(value interface{}) error {
				sc, ok := value.(StaticConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a StaticConfig")
				}
				return validation.ValidateStruct(&sc,
					validation.Field(&sc.Dir, validation.Required),
				)
			}),
		),
	)
}

func validateInference(value interface{}) error {
	ic, ok := value.(InferenceConfig)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be an InferenceConfig")
	}

	if err := validation.ValidateStruct(&ic,
		validation.Field(&ic.Selection,
			validation.Required,
			validation.In(SelectionWeighted, SelectionUniform),
		),
		validation.Field(&ic.MinDelay,
			validation.Required,
			validation.By(validateDuration),
		),
		validation.Field(&ic.MaxDelay,
			validation.Required,
			validation.By(validateDuration),
		),
	); err != nil {
		return err
	}

	minDelay, _ := time.ParseDuration(ic.MinDelay)
	maxDelay, _ := time.ParseDuration(ic.MaxDelay)

	if minDelay < 0 {
		return validation.NewError("validation_negative_delay", "min_delay cannot be negative")
	}
	if maxDelay < minDelay {
		return validation.NewError("validation_invalid_delay_range", "max_delay must be >= min_delay")
	}

	if ic.MinConfidence < 0 || ic.MaxConfidence > 100 {
		return validation.NewError("validation_invalid_confidence", "confidence range must stay within [0, 100]")
	}
	if ic.MinConfidence >= ic.MaxConfidence {
		return validation.NewError("validation_invalid_confidence_range", "min_confidence must be below max_confidence")
	}

	return nil
}

func validateHostPort(value interface{}) error {
	addr, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}

	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return validation.NewError("validation_invalid_hostport", "must be in host:port format")
	}

	if port == "" {
		return validation.NewError("validation_invalid_port", "port cannot be empty")
	}

	if host != "" {
		if err := is.Host.Validate(host); err != nil {
			return validation.NewError("validation_invalid_host", "invalid host")
		}
	}

	return nil
}

func validateDuration(value interface{}) error {
	durationStr, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}

	if _, err := time.ParseDuration(durationStr); err != nil {
		return validation.NewError("validation_invalid_duration", "must be a valid duration (e.g., 2s, 5m, 1h)")
	}

	return nil
}
