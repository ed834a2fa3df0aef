package config

import (
	"fmt"
	"log"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"

	"github.com/Astemirdum/libranet/library/internal/duration"
	"github.com/Astemirdum/libranet/pkg/logger"
)

type Fines struct {
	PerDay decimal.Decimal `yaml:"perDay" envconfig:"FINE_PER_DAY" default:"10"`
}

type Loan struct {
	DefaultDuration string `yaml:"defaultDuration" envconfig:"LOAN_DEFAULT_DURATION" default:"14 days"`
}

type Config struct {
	Fines Fines      `yaml:"fines"`
	Loan  Loan       `yaml:"loan"`
	Log   logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment. Options override the
// environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		config, err := Load(ops...)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

// Load is NewConfig without the process-wide caching.
func Load(ops ...Option) (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, err
	}
	for _, op := range ops {
		op(&config)
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) validate() error {
	if c.Fines.PerDay.IsNegative() {
		return fmt.Errorf("FINE_PER_DAY must not be negative: %s", c.Fines.PerDay)
	}
	if _, err := duration.Parse(c.Loan.DefaultDuration); err != nil {
		return fmt.Errorf("LOAN_DEFAULT_DURATION: %w", err)
	}
	return nil
}

func printConfig(cfg *Config) {
	jscfg, _ := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
