package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StorageDriverDynamoDB = "dynamodb"
	StorageDriverSQL      = "sql"

	MinRenderScale = 2

	// MaxCounterSeed matches the largest work order number a commit accepts.
	MaxCounterSeed int64 = 1<<53 - 2
)

// DefaultJWTSecret is only meant for local runs; see AuthConfig.UsesDefaultSecret.
const DefaultJWTSecret = "oscell-dev-secret"

const defaultWarrantyText = "A garantia cobre apenas erros de fabricação da peça. " +
	"Não haverá troca se a peça apresentar arranhões, trincados ou sinais de queda."

var (
	ErrInvalidSeed          = errors.New("WORK_ORDER_SEED must be an integer between 0 and 2^53-2")
	ErrInvalidRenderScale   = errors.New("RENDER_SCALE must be an integer >= 2")
	ErrInvalidStorageDriver = errors.New("STORAGE_DRIVER must be dynamodb or sql")
	ErrInvalidPort          = errors.New("PORT must be a positive integer")
	ErrInvalidJWTTTL        = errors.New("JWT_TTL must be a positive duration")
)

// Config is the whole runtime configuration of the service.
//
// It is read once at startup (see Load) and handed to constructors; nothing
// below cmd/ reads the environment on its own.
type Config struct {
	Port           int
	InstallationID string
	CounterSeed    int64
	RenderScale    int

	Shop     ShopConfig
	Storage  StorageConfig
	DynamoDB DynamoDBConfig
	Archive  ArchiveConfig
	Auth     AuthConfig
}

type ShopConfig struct {
	Name              string
	Tagline           string
	DefaultTechnician string
	WarrantyText      string
	CurrencyPrefix    string
}

type StorageConfig struct {
	Driver        string
	DatabaseURL   string
	CountersTable string
	ServicesTable string
}

// DynamoDBConfig holds the client settings. Local DynamoDB does not validate
// credentials, but the AWS SDK requires them, hence the "local" defaults.
type DynamoDBConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// ArchiveConfig enables S3 archival of downloaded PDFs when Bucket is set.
type ArchiveConfig struct {
	Bucket    string
	Region    string
	Endpoint  string
	PathStyle bool
}

func (a ArchiveConfig) Enabled() bool {
	return a.Bucket != ""
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// UsesDefaultSecret reports whether tokens would be signed with the public
// development secret.
func (a AuthConfig) UsesDefaultSecret() bool {
	return a.JWTSecret == DefaultJWTSecret
}

// Load builds a Config from the process environment.
func Load() (Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom builds a Config from an arbitrary lookup function.
func LoadFrom(getenv func(string) string) (Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	port, err := strconv.Atoi(get("PORT", "8080"))
	if err != nil || port <= 0 {
		return Config{}, ErrInvalidPort
	}

	seed, err := strconv.ParseInt(get("WORK_ORDER_SEED", "225"), 10, 64)
	if err != nil || seed < 0 || seed > MaxCounterSeed {
		return Config{}, ErrInvalidSeed
	}

	scale, err := strconv.Atoi(get("RENDER_SCALE", strconv.Itoa(MinRenderScale)))
	if err != nil || scale < MinRenderScale {
		return Config{}, ErrInvalidRenderScale
	}

	driver := strings.ToLower(get("STORAGE_DRIVER", StorageDriverDynamoDB))
	if driver != StorageDriverDynamoDB && driver != StorageDriverSQL {
		return Config{}, fmt.Errorf("%w: got %q", ErrInvalidStorageDriver, driver)
	}

	ttl, err := time.ParseDuration(get("JWT_TTL", "24h"))
	if err != nil || ttl <= 0 {
		return Config{}, ErrInvalidJWTTTL
	}

	pathStyle, _ := strconv.ParseBool(get("ARCHIVE_S3_PATH_STYLE", "false"))

	return Config{
		Port:           port,
		InstallationID: get("INSTALLATION_ID", "oscell"),
		CounterSeed:    seed,
		RenderScale:    scale,
		Shop: ShopConfig{
			Name:              get("SHOP_NAME", "Jordan Cell"),
			Tagline:           get("SHOP_TAGLINE", "Assistência Técnica Especializada"),
			DefaultTechnician: get("DEFAULT_TECHNICIAN", "Jordan Cell"),
			WarrantyText:      get("WARRANTY_TEXT", defaultWarrantyText),
			CurrencyPrefix:    get("CURRENCY_PREFIX", "R$"),
		},
		Storage: StorageConfig{
			Driver:        driver,
			DatabaseURL:   get("DATABASE_URL", "oscell.db"),
			CountersTable: get("COUNTERS_TABLE", "os_settings"),
			ServicesTable: get("SERVICES_TABLE", "services"),
		},
		DynamoDB: DynamoDBConfig{
			Region:          get("AWS_REGION", "us-east-1"),
			Endpoint:        get("DYNAMODB_ENDPOINT", ""),
			AccessKeyID:     get("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: get("AWS_SECRET_ACCESS_KEY", "local"),
		},
		Archive: ArchiveConfig{
			Bucket:    get("ARCHIVE_S3_BUCKET", ""),
			Region:    get("ARCHIVE_S3_REGION", "us-east-1"),
			Endpoint:  get("ARCHIVE_S3_ENDPOINT", ""),
			PathStyle: pathStyle,
		},
		Auth: AuthConfig{
			JWTSecret: get("JWT_SECRET", DefaultJWTSecret),
			TokenTTL:  ttl,
		},
	}, nil
}
