package game

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// LoanOffer is a bank menu entry: an advance amount and the seconds the
// player gets to repay it.
type LoanOffer struct {
	Amount  int `yaml:"amount"`
	Seconds int `yaml:"seconds"`
}

func (o LoanOffer) Term() time.Duration {
	return time.Duration(o.Seconds) * time.Second
}

type SlotConfig struct {
	Cost    int            `yaml:"cost"`
	DelayMS int            `yaml:"delay_ms"`
	Payouts map[string]int `yaml:"payouts"`
}

func (s SlotConfig) Delay() time.Duration {
	return time.Duration(s.DelayMS) * time.Millisecond
}

// Config holds the table tuning. Defaults are canonical; a YAML file can
// override individual values.
type Config struct {
	StartingMoney   int         `yaml:"starting_money"`
	BlackjackBet    int         `yaml:"blackjack_bet"`
	RouletteMinBet  int         `yaml:"roulette_min_bet"`
	RouletteBetStep int         `yaml:"roulette_bet_step"`
	Slots           SlotConfig  `yaml:"slots"`
	Loans           []LoanOffer `yaml:"loans"`
}

func DefaultConfig() Config {
	return Config{
		StartingMoney:   1000,
		BlackjackBet:    100,
		RouletteMinBet:  50,
		RouletteBetStep: 50,
		Slots: SlotConfig{
			Cost:    50,
			DelayMS: 800,
			Payouts: map[string]int{
				"CHERRY":  100,
				"LEMON":   150,
				"BELL":    300,
				"DIAMOND": 1000,
			},
		},
		Loans: []LoanOffer{
			{Amount: 500, Seconds: 60},
			{Amount: 1000, Seconds: 120},
		},
	}
}

// LoadConfig merges the YAML file at path over the defaults. An empty path
// returns the defaults untouched.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.StartingMoney < 0 {
		return fmt.Errorf("starting money must not be negative, got %d", c.StartingMoney)
	}
	if c.BlackjackBet <= 0 {
		return fmt.Errorf("blackjack bet must be positive, got %d", c.BlackjackBet)
	}
	if c.RouletteMinBet <= 0 || c.RouletteBetStep <= 0 {
		return fmt.Errorf("roulette bet tuning must be positive, got min %d step %d", c.RouletteMinBet, c.RouletteBetStep)
	}
	if c.Slots.Cost <= 0 || c.Slots.DelayMS < 0 {
		return fmt.Errorf("slot tuning invalid: cost %d delay %dms", c.Slots.Cost, c.Slots.DelayMS)
	}
	if len(c.Slots.Payouts) == 0 {
		return fmt.Errorf("slot payout table is empty")
	}
	for symbol, payout := range c.Slots.Payouts {
		if payout <= 0 {
			return fmt.Errorf("slot payout for %s must be positive, got %d", symbol, payout)
		}
	}
	if len(c.Loans) == 0 {
		return fmt.Errorf("no loan offers configured")
	}
	for _, offer := range c.Loans {
		if offer.Amount <= 0 || offer.Seconds <= 0 {
			return fmt.Errorf("loan offer invalid: $%d over %ds", offer.Amount, offer.Seconds)
		}
	}
	return nil
}
