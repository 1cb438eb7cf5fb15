package config

import (
	"io/ioutil"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

var Pricing *PricingConfig

// PricingConfig describes the upstream public pricing API. The defaults point
// at the Coinbase v2 endpoints the application was built against.
type PricingConfig struct {
	BaseURL           string `yaml:"base_url"`
	ReferenceCurrency string `yaml:"reference_currency"`
	TimeoutSec        int    `yaml:"timeout_sec"`
}

func LoadPricingConfig() error {
	c := &PricingConfig{
		BaseURL:           "https://api.coinbase.com",
		ReferenceCurrency: "USD",
		TimeoutSec:        10,
	}

	path := os.Getenv("PRICING_CONFIG")
	if path == "" {
		path = "config/pricing.yml"
	}

	buf, err := ioutil.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(buf, c); err != nil {
			return err
		}
	}

	Pricing = c

	return nil
}

func (c *PricingConfig) Timeout() time.Duration {
	if c.TimeoutSec <= 0 {
		return 10 * time.Second
	}

	return time.Duration(c.TimeoutSec) * time.Second
}
