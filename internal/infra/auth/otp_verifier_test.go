package auth

import (
	"bytes"
	"context"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"shopfront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var codePattern = regexp.MustCompile(`code=(\d{6})`)

func TestOTPVerifier_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	verifier := NewOTPVerifier(&config.Config{}, logger)
	ctx := context.Background()

	challengeID, err := verifier.RequestCode(ctx, "9876543210")
	require.NoError(t, err)
	assert.NotEmpty(t, challengeID)

	// The simulated channel is the log line.
	match := codePattern.FindStringSubmatch(buf.String())
	require.Len(t, match, 2)

	ok, err := verifier.VerifyCode(ctx, "9876543210", match[1])
	require.NoError(t, err)
	assert.True(t, ok)

	// The challenge is consumed on success.
	ok, err = verifier.VerifyCode(ctx, "9876543210", match[1])
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOTPVerifier_WrongCode(t *testing.T) {
	verifier := NewOTPVerifier(&config.Config{}, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	ctx := context.Background()

	_, err := verifier.RequestCode(ctx, "9876543210")
	require.NoError(t, err)

	ok, err := verifier.VerifyCode(ctx, "9876543210", "000000x")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOTPVerifier_ExpiredCode(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{Auth: &config.AuthConfig{OTPTTL: time.Nanosecond}}
	verifier := NewOTPVerifier(cfg, slog.New(slog.NewTextHandler(&buf, nil)))
	ctx := context.Background()

	_, err := verifier.RequestCode(ctx, "9876543210")
	require.NoError(t, err)

	match := codePattern.FindStringSubmatch(buf.String())
	require.Len(t, match, 2)

	time.Sleep(time.Millisecond)

	ok, err := verifier.VerifyCode(ctx, "9876543210", match[1])
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_RoundTrip(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("1234")
	require.NoError(t, err)

	require.NoError(t, hasher.Compare(hash, "1234"))
	require.Error(t, hasher.Compare(hash, "4321"))
}
