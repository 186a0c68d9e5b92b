// Package config loads the service configuration from a YAML file with
// environment variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Shop *ShopConfig `json:"shop" yaml:"shop"`

	Pricing *PricingConfig `json:"pricing" yaml:"pricing"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Payment *PaymentConfig `json:"payment" yaml:"payment"`

	// QRCode configuration for order deep-link QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

// ShopConfig identifies the storefront and its messaging endpoint.
type ShopConfig struct {
	Name           string `json:"name" yaml:"name"`
	City           string `json:"city" yaml:"city"`
	Currency       string `json:"currency" yaml:"currency"`
	WhatsAppNumber string `json:"whatsappNumber" yaml:"whatsappNumber"`
	MapsURL        string `json:"mapsUrl" yaml:"mapsUrl"`
}

// PricingConfig holds the pricing engine constants.
type PricingConfig struct {
	// DiscountRate is the flat discount applied to every cart, e.g. 0.05.
	DiscountRate float64 `json:"discountRate" yaml:"discountRate"`
	// FreeDeliveryThreshold is the subtotal above which delivery is free.
	FreeDeliveryThreshold int `json:"freeDeliveryThreshold" yaml:"freeDeliveryThreshold"`
	// DeliveryFee is the flat fee charged at or below the threshold.
	DeliveryFee int `json:"deliveryFee" yaml:"deliveryFee"`
	// BWPageRate and ColorPageRate price print-service jobs per page.
	BWPageRate    int `json:"bwPageRate" yaml:"bwPageRate"`
	ColorPageRate int `json:"colorPageRate" yaml:"colorPageRate"`
}

// AuthConfig defines authentication-related configuration.
type AuthConfig struct {
	// OperatorPhone is the single identity granted the operator role.
	OperatorPhone string `json:"operatorPhone" yaml:"operatorPhone"`
	// AdminPinHash is the bcrypt hash of the alternate admin-entry PIN.
	// When empty, AdminPin is hashed at startup instead.
	AdminPinHash string `json:"adminPinHash" yaml:"adminPinHash"`
	// AdminPin is the plaintext PIN for local setups without a provisioned hash.
	AdminPin  string        `json:"adminPin" yaml:"adminPin"`
	SecretKey string        `json:"secretKey" yaml:"secretKey"`
	TokenTTL  time.Duration `json:"tokenTtl" yaml:"tokenTtl"`
	// OTPTTL bounds how long a requested verification code stays valid.
	OTPTTL time.Duration `json:"otpTtl" yaml:"otpTtl"`
}

// StorageConfig locates the local keyed store.
type StorageConfig struct {
	Path string `json:"path" yaml:"path"`
}

// PaymentConfig selects the payment collaborator.
type PaymentConfig struct {
	// Provider is "local" for the offline stub or "http" for a widget endpoint.
	Provider string `json:"provider" yaml:"provider"`
	Endpoint string `json:"endpoint" yaml:"endpoint"`
	Currency string `json:"currency" yaml:"currency"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// QRCodeConfig defines QR code generation configuration.
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// LoadWithEnv loads a .yaml file through koanf and applies environment
// variable overrides (SHOP_WHATSAPPNUMBER -> shop.whatsappnumber).
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return strings.ReplaceAll(strings.ToLower(k), "_", "."), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	// Defaults apply only when the pricing section is absent. A provided
	// section is taken verbatim so that zero values (free delivery, no
	// discount) stay expressible.
	if cfg.Pricing == nil {
		cfg.Pricing = &PricingConfig{
			DiscountRate:          0.05,
			FreeDeliveryThreshold: 99,
			DeliveryFee:           29,
			BWPageRate:            2,
			ColorPageRate:         10,
		}
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{Path: "data"}
	}
	if cfg.Payment == nil {
		cfg.Payment = &PaymentConfig{Provider: "local", Currency: "INR"}
	}
	if cfg.Auth != nil && cfg.Auth.TokenTTL == 0 {
		cfg.Auth.TokenTTL = 24 * time.Hour
	}
	if cfg.Auth != nil && cfg.Auth.OTPTTL == 0 {
		cfg.Auth.OTPTTL = 5 * time.Minute
	}
}
