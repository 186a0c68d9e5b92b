package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_MissingPricingSectionGetsDefaults(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Pricing)
	assert.InDelta(t, 0.05, cfg.Pricing.DiscountRate, 1e-9)
	assert.Equal(t, 99, cfg.Pricing.FreeDeliveryThreshold)
	assert.Equal(t, 29, cfg.Pricing.DeliveryFee)
	assert.Equal(t, 2, cfg.Pricing.BWPageRate)
	assert.Equal(t, 10, cfg.Pricing.ColorPageRate)
}

func TestApplyDefaults_ExplicitZeroPricingIsPreserved(t *testing.T) {
	cfg := &Config{
		Pricing: &PricingConfig{
			DiscountRate:          0,
			FreeDeliveryThreshold: 50,
			DeliveryFee:           0,
			BWPageRate:            3,
			ColorPageRate:         12,
		},
	}

	applyDefaults(cfg)

	assert.Zero(t, cfg.Pricing.DiscountRate)
	assert.Zero(t, cfg.Pricing.DeliveryFee)
	assert.Equal(t, 50, cfg.Pricing.FreeDeliveryThreshold)
	assert.Equal(t, 3, cfg.Pricing.BWPageRate)
	assert.Equal(t, 12, cfg.Pricing.ColorPageRate)
}

func TestApplyDefaults_AuthTTLsFilledWhenUnset(t *testing.T) {
	cfg := &Config{Auth: &AuthConfig{SecretKey: "secret"}}

	applyDefaults(cfg)

	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 5*time.Minute, cfg.Auth.OTPTTL)
}
