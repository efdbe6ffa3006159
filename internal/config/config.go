package config

import (
	"time"

	"wheel_backend/internal/model"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// WheelConfig is the immutable game configuration loaded at process start.
// Amounts, weights and both thresholds are server-held only; clients never
// supply any of them.
type WheelConfig interface {
	Prizes() []model.Prize
	SpinCost() int64
	MinWithdraw() int64
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}

type PayoutConfig interface {
	BaseURL() string
	SecretKey() string
	Timeout() time.Duration
}
