package config

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap/zapcore"
)

type Option func(*Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithFinePerDay(perDay decimal.Decimal) Option {
	return func(c *Config) {
		c.Fines.PerDay = perDay
	}
}

func WithDefaultLoanDuration(text string) Option {
	return func(c *Config) {
		c.Loan.DefaultDuration = text
	}
}
