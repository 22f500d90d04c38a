// Package config loads the module's tunable defaults from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/Ibrahimrosli95/invoicing-system-sub003/money"
	"github.com/Ibrahimrosli95/invoicing-system-sub003/pricing"
)

// Config holds the invoicing defaults a host hands to new invoice forms.
type Config struct {
	AppEnv    string
	LogLevel  string
	LogFormat string

	CurrencySymbol string
	// DefaultTaxPreset seeds new invoices; typical deployments use SST.
	DefaultTaxPreset pricing.TaxPreset
	// MaxTaxPercent is the UI-level cap suggested for custom rates. It is
	// advisory; the pricing policies do not enforce an upper bound.
	MaxTaxPercent int

	RoundingEnabled   bool
	RoundingMethod    money.RoundMethod
	RoundingPrecision money.Money

	SearchDebounce time.Duration
}

// Load reads configuration from environment variables and optional .env
// files.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		AppEnv:           valueOrDefault(k.String("APP_ENV"), "development"),
		LogLevel:         valueOrDefault(k.String("LOG_LEVEL"), "info"),
		LogFormat:        valueOrDefault(k.String("LOG_FORMAT"), "json"),
		CurrencySymbol:   valueOrDefault(k.String("CURRENCY_SYMBOL"), "RM"),
		DefaultTaxPreset: pricing.TaxPreset(strings.ToUpper(valueOrDefault(k.String("TAX_PRESET"), "SST"))),
		MaxTaxPercent:    100,
		RoundingEnabled:  parseBool(k.String("ROUNDING_ENABLED"), true),
		SearchDebounce:   parseDuration(k.String("SEARCH_DEBOUNCE"), "300ms"),
	}

	method, err := parseRoundMethod(valueOrDefault(k.String("ROUNDING_METHOD"), "nearest"))
	if err != nil {
		return nil, err
	}
	cfg.RoundingMethod = method

	precision, err := parsePrecision(valueOrDefault(k.String("ROUNDING_PRECISION"), "0.05"))
	if err != nil {
		return nil, err
	}
	cfg.RoundingPrecision = precision

	switch cfg.DefaultTaxPreset {
	case pricing.TaxSST, pricing.TaxGST, pricing.TaxVAT, pricing.TaxCustom:
	default:
		return nil, fmt.Errorf("config: unknown tax preset %q", cfg.DefaultTaxPreset)
	}

	return cfg, nil
}

// RoundingPolicy builds the default rounding policy for new invoices.
func (c *Config) RoundingPolicy() pricing.RoundingPolicy {
	return pricing.RoundingPolicy{
		Enabled:   c.RoundingEnabled,
		Method:    c.RoundingMethod,
		Precision: c.RoundingPrecision,
	}
}

func parseRoundMethod(value string) (money.RoundMethod, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "nearest":
		return money.RoundNearest, nil
	case "up":
		return money.RoundUp, nil
	case "down":
		return money.RoundDown, nil
	default:
		return "", fmt.Errorf("config: unknown rounding method %q", value)
	}
}

func parsePrecision(value string) (money.Money, error) {
	m, err := money.FromString(value)
	if err != nil {
		return 0, fmt.Errorf("config: rounding precision: %w", err)
	}
	var policy pricing.RoundingPolicy
	if err := policy.SetPrecision(m); err != nil {
		return 0, fmt.Errorf("config: rounding precision %q: %w", value, err)
	}
	return m, nil
}

func valueOrDefault(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}

func parseBool(value string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return def
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func parseDuration(value, fallback string) time.Duration {
	if strings.TrimSpace(value) == "" {
		value = fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		d, _ = time.ParseDuration(fallback)
	}
	return d
}
