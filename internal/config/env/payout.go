package env

import (
	"fmt"
	"os"
	"time"

	"wheel_backend/internal/config"
)

const (
	payoutBaseURLEnvName = "PAYOUT_BASE_URL"
	payoutSecretEnvName  = "PAYOUT_SECRET_KEY"
	payoutTimeoutEnvName = "PAYOUT_TIMEOUT"

	defaultPayoutTimeout = 10 * time.Second
)

type payoutConfig struct {
	baseURL   string
	secretKey string
	timeout   time.Duration
}

func NewPayoutConfig() (config.PayoutConfig, error) {
	baseURL := os.Getenv(payoutBaseURLEnvName)
	if len(baseURL) == 0 {
		return nil, fmt.Errorf("payout base url not found")
	}

	secretKey := os.Getenv(payoutSecretEnvName)
	if len(secretKey) == 0 {
		return nil, fmt.Errorf("payout secret key not found")
	}

	timeout := defaultPayoutTimeout
	if raw := os.Getenv(payoutTimeoutEnvName); len(raw) != 0 {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid payout timeout: %w", err)
		}
		timeout = parsed
	}

	return &payoutConfig{
		baseURL:   baseURL,
		secretKey: secretKey,
		timeout:   timeout,
	}, nil
}

func (cfg *payoutConfig) BaseURL() string {
	return cfg.baseURL
}

func (cfg *payoutConfig) SecretKey() string {
	return cfg.secretKey
}

func (cfg *payoutConfig) Timeout() time.Duration {
	return cfg.timeout
}
