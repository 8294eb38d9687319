package sandbox

import (
	"fmt"
	"time"

	"github.com/ardanlabs/questhub/business/data/catalog"
)

// Config holds the simulator settings.
type Config struct {
	WalletAddress  string
	FaucetAddress  string
	InitialBalance Amount
	Fee            Amount
	FaucetMin      Amount
	FaucetMax      Amount
	StepDelay      time.Duration
	Steps          []string
}

// ConfigFromCatalog converts the catalog settings into a config.
func ConfigFromCatalog(s catalog.Sandbox) (Config, error) {
	cfg := Config{
		WalletAddress: s.WalletAddress,
		FaucetAddress: s.FaucetAddress,
		Steps:         append([]string(nil), s.Steps...),
	}

	amounts := []struct {
		name string
		text string
		dst  *Amount
	}{
		{"initial_balance", s.InitialBalance, &cfg.InitialBalance},
		{"fee", s.Fee, &cfg.Fee},
		{"faucet_min", s.FaucetMin, &cfg.FaucetMin},
		{"faucet_max", s.FaucetMax, &cfg.FaucetMax},
	}

	for _, a := range amounts {
		v, err := ParseAmount(a.text)
		if err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", a.name, err)
		}
		*a.dst = v
	}

	d, err := time.ParseDuration(s.StepDelay)
	if err != nil {
		return Config{}, fmt.Errorf("parsing step_delay: %w", err)
	}
	cfg.StepDelay = d

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (cfg Config) validate() error {
	switch {
	case cfg.WalletAddress == "" || cfg.FaucetAddress == "":
		return fmt.Errorf("wallet and faucet addresses are required")
	case cfg.InitialBalance < 0:
		return fmt.Errorf("initial balance %s is negative", cfg.InitialBalance)
	case cfg.Fee < 0:
		return fmt.Errorf("fee %s is negative", cfg.Fee)
	case cfg.FaucetMin <= 0 || cfg.FaucetMax <= cfg.FaucetMin:
		return fmt.Errorf("faucet range [%s, %s) is invalid", cfg.FaucetMin, cfg.FaucetMax)
	case cfg.StepDelay <= 0:
		return fmt.Errorf("step delay %v must be positive", cfg.StepDelay)
	case len(cfg.Steps) == 0:
		return fmt.Errorf("at least one step is required")
	}
	return nil
}
