// Package config loads updater settings from a YAML file, an optional .env file and the environment.
package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/robotomize/valetfx"
	"github.com/robotomize/valetfx/internal/logging"
	"github.com/robotomize/valetfx/label"
	"github.com/robotomize/valetfx/provider/boc"
	"github.com/robotomize/valetfx/sink"
	"github.com/robotomize/valetfx/sink/badgersink"
	"github.com/robotomize/valetfx/sink/kafkasink"
	"go.uber.org/zap"
)

var ErrNoSink = errors.New("no sink configured")

type Config struct {
	Currencies []string `yaml:"currencies" env:"VALETFX_CURRENCIES" env-separator:"," env-default:"USD,EUR,CAD"`

	Source Source `yaml:"source"`
	Log    Log    `yaml:"log"`
	Badger Badger `yaml:"badger"`
	Kafka  Kafka  `yaml:"kafka"`
}

type Source struct {
	BaseURL        string        `yaml:"base_url" env:"VALETFX_BASE_URL"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"VALETFX_REQUEST_TIMEOUT" env-default:"10s"`
	RetryNum       uint64        `yaml:"retry_num" env:"VALETFX_RETRY_NUM" env-default:"0"`
	RetryDuration  time.Duration `yaml:"retry_duration" env:"VALETFX_RETRY_DURATION" env-default:"5s"`
}

type Log struct {
	Level  string `yaml:"level" env:"VALETFX_LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"VALETFX_LOG_FORMAT" env-default:"json"`
}

// Badger enables the badger sink when Path is set. InMemory is meant for tests
type Badger struct {
	Path     string `yaml:"path" env:"VALETFX_BADGER_PATH"`
	InMemory bool   `yaml:"in_memory" env:"VALETFX_BADGER_IN_MEMORY"`
}

// Kafka enables the kafka sink when Brokers is set
type Kafka struct {
	Brokers []string `yaml:"brokers" env:"VALETFX_KAFKA_BROKERS" env-separator:","`
	Topic   string   `yaml:"topic" env:"VALETFX_KAFKA_TOPIC" env-default:"valetfx.rates"`
}

// Load reads the YAML file at path, environment variables override it. With an empty path only the
// environment is read. Every dotenv file is loaded into the environment first, existing variables win
func Load(path string, dotenv ...string) (*Config, error) {
	if len(dotenv) > 0 {
		if err := godotenv.Load(dotenv...); err != nil {
			return nil, fmt.Errorf("load dotenv: %w", err)
		}
	}

	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("read env: %w", err)
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	return &cfg, nil
}

// Symbols parses the configured currency list
func (c *Config) Symbols() ([]label.Symbol, error) {
	return label.ParseList(c.Currencies)
}

// CurrencySource exposes the configured currencies to valetfx.Updater.RunFrom
func (c *Config) CurrencySource() valetfx.CurrencySource {
	return valetfx.CurrencySourceFunc(func(context.Context) ([]label.Symbol, error) {
		return c.Symbols()
	})
}

func (c *Config) UpdaterOptions() []valetfx.Option {
	return []valetfx.Option{
		valetfx.WithRequestTimeout(c.Source.RequestTimeout),
		valetfx.WithRetryNum(c.Source.RetryNum),
		valetfx.WithRetryDuration(c.Source.RetryDuration),
	}
}

func (c *Config) SourceOptions() ([]boc.Option, error) {
	if c.Source.BaseURL == "" {
		return nil, nil
	}

	u, err := url.Parse(c.Source.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", c.Source.BaseURL)
	}

	return []boc.Option{boc.WithBaseURL(*u)}, nil
}

func (c *Config) Logger() (*zap.Logger, error) {
	return logging.NewLogger(c.Log.Level, c.Log.Format)
}

// Sinks opens every configured sink and combines them with sink.Tee. The returned closer releases
// all of them
func (c *Config) Sinks() (sink.Sink, func() error, error) {
	var (
		sinks   []sink.Sink
		closers []func() error
	)

	closeAll := func() error {
		var merr *multierror.Error
		for _, fn := range closers {
			if err := fn(); err != nil {
				merr = multierror.Append(merr, err)
			}
		}

		return merr.ErrorOrNil()
	}

	if c.Badger.Path != "" || c.Badger.InMemory {
		path := c.Badger.Path
		if c.Badger.InMemory {
			path = ""
		}

		db, err := badgersink.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("open badger: %w", err)
		}

		sinks = append(sinks, badgersink.NewStore(db))
		closers = append(closers, db.Close)
	}

	if len(c.Kafka.Brokers) > 0 {
		p, err := kafkasink.NewPublisher(c.Kafka.Brokers, c.Kafka.Topic)
		if err != nil {
			_ = closeAll()
			return nil, nil, fmt.Errorf("kafka publisher: %w", err)
		}

		sinks = append(sinks, p)
		closers = append(closers, p.Close)
	}

	switch len(sinks) {
	case 0:
		return nil, nil, ErrNoSink
	case 1:
		return sinks[0], closeAll, nil
	default:
		return sink.Tee(sinks...), closeAll, nil
	}
}
