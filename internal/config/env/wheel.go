package env

import (
	"fmt"
	"os"

	"wheel_backend/internal/config"
	"wheel_backend/internal/model"

	"gopkg.in/yaml.v3"
)

type wheelYAML struct {
	Wheel struct {
		SpinCost    int64 `yaml:"spin_cost"`
		MinWithdraw int64 `yaml:"min_withdraw"`
		Prizes      []struct {
			Label  string `yaml:"label"`
			Amount int64  `yaml:"amount"`
			Weight int    `yaml:"weight"`
		} `yaml:"prizes"`
	} `yaml:"wheel"`
}

type wheelConfig struct {
	prizes      []model.Prize
	spinCost    int64
	minWithdraw int64
}

// NewWheelConfigFromYAML loads the prize table and thresholds from the game
// config file. The table is validated once here so the selector can assume
// positive weights.
func NewWheelConfigFromYAML(path string) (config.WheelConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read wheel config: %w", err)
	}

	var parsed wheelYAML
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse wheel config: %w", err)
	}

	w := parsed.Wheel
	if len(w.Prizes) == 0 {
		return nil, fmt.Errorf("wheel config: prize table is empty")
	}
	if w.SpinCost <= 0 {
		return nil, fmt.Errorf("wheel config: spin cost must be positive")
	}
	if w.MinWithdraw <= 0 {
		return nil, fmt.Errorf("wheel config: min withdraw must be positive")
	}

	prizes := make([]model.Prize, 0, len(w.Prizes))
	for i, p := range w.Prizes {
		if p.Label == "" {
			return nil, fmt.Errorf("wheel config: prize %d has no label", i)
		}
		if p.Amount < 0 {
			return nil, fmt.Errorf("wheel config: prize %q has negative amount", p.Label)
		}
		if p.Weight <= 0 {
			return nil, fmt.Errorf("wheel config: prize %q has non-positive weight", p.Label)
		}
		prizes = append(prizes, model.Prize{
			Label:  p.Label,
			Amount: p.Amount,
			Weight: p.Weight,
		})
	}

	return &wheelConfig{
		prizes:      prizes,
		spinCost:    w.SpinCost,
		minWithdraw: w.MinWithdraw,
	}, nil
}

// Prizes returns a copy so callers cannot mutate the table at runtime.
func (cfg *wheelConfig) Prizes() []model.Prize {
	out := make([]model.Prize, len(cfg.prizes))
	copy(out, cfg.prizes)
	return out
}

func (cfg *wheelConfig) SpinCost() int64 {
	return cfg.spinCost
}

func (cfg *wheelConfig) MinWithdraw() int64 {
	return cfg.minWithdraw
}
