package config

import (
	"errors"
	"testing"
	"time"
)

func envOf(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(envOf(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 8080 || cfg.InstallationID != "oscell" || cfg.CounterSeed != 225 || cfg.RenderScale != 2 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Storage.Driver != StorageDriverDynamoDB || cfg.Storage.CountersTable != "os_settings" {
		t.Fatalf("unexpected storage defaults: %+v", cfg.Storage)
	}
	if cfg.Shop.CurrencyPrefix != "R$" || cfg.Shop.DefaultTechnician != "Jordan Cell" {
		t.Fatalf("unexpected shop defaults: %+v", cfg.Shop)
	}
	if cfg.Archive.Enabled() {
		t.Fatalf("archive must be disabled without bucket")
	}
	if !cfg.Auth.UsesDefaultSecret() {
		t.Fatalf("expected the development secret by default")
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Fatalf("unexpected ttl: %v", cfg.Auth.TokenTTL)
	}
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(envOf(map[string]string{
		"WORK_ORDER_SEED":       "999",
		"RENDER_SCALE":          "3",
		"STORAGE_DRIVER":        "SQL",
		"DATABASE_URL":          "postgres://u:p@db/oscell",
		"ARCHIVE_S3_BUCKET":     "work-orders",
		"ARCHIVE_S3_PATH_STYLE": "true",
		"INSTALLATION_ID":       "loja-2",
		"JWT_SECRET":            "s3cr3t",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CounterSeed != 999 || cfg.RenderScale != 3 || cfg.InstallationID != "loja-2" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Storage.Driver != StorageDriverSQL || cfg.Storage.DatabaseURL != "postgres://u:p@db/oscell" {
		t.Fatalf("unexpected storage: %+v", cfg.Storage)
	}
	if cfg.Auth.UsesDefaultSecret() {
		t.Fatalf("JWT_SECRET must override the development secret")
	}
	if !cfg.Archive.Enabled() || !cfg.Archive.PathStyle {
		t.Fatalf("unexpected archive: %+v", cfg.Archive)
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want error
	}{
		{"negative seed", map[string]string{"WORK_ORDER_SEED": "-1"}, ErrInvalidSeed},
		{"seed past the number limit", map[string]string{"WORK_ORDER_SEED": "9223372036854775807"}, ErrInvalidSeed},
		{"non numeric seed", map[string]string{"WORK_ORDER_SEED": "abc"}, ErrInvalidSeed},
		{"scale below two", map[string]string{"RENDER_SCALE": "1"}, ErrInvalidRenderScale},
		{"unknown driver", map[string]string{"STORAGE_DRIVER": "firestore"}, ErrInvalidStorageDriver},
		{"bad port", map[string]string{"PORT": "0"}, ErrInvalidPort},
		{"bad ttl", map[string]string{"JWT_TTL": "forever"}, ErrInvalidJWTTTL},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadFrom(envOf(tc.env))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
