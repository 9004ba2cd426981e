package config

import (
	"reflect"
	"testing"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("ADMIN_CODE", "admin")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DatabaseDriver != "sqlite" || cfg.DatabaseURL != "turfkings.db" || cfg.ServerPort != 8080 {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.CORSAllowedOrigins, []string{"*"}) {
		t.Errorf("unexpected CORS default %v", cfg.CORSAllowedOrigins)
	}
	if cfg.BackupUploadEnabled() {
		t.Error("backup upload must be off without R2 settings")
	}
}

func TestLoad_Lists(t *testing.T) {
	setRequired(t)
	t.Setenv("CAPTAIN_CODES", "enoch-1,mdu-2,nk-3")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")

	cfg, err := Load()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(cfg.CaptainCodes, []string{"enoch-1", "mdu-2", "nk-3"}) {
		t.Errorf("unexpected captain codes %v", cfg.CaptainCodes)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Errorf("unexpected origins %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing secret", map[string]string{"JWT_SECRET_KEY": "", "ADMIN_CODE": "admin"}},
		{"missing admin code", map[string]string{"JWT_SECRET_KEY": "s", "ADMIN_CODE": ""}},
		{"unknown driver", map[string]string{"JWT_SECRET_KEY": "s", "ADMIN_CODE": "a", "DATABASE_DRIVER": "mysql"}},
		{"bad port", map[string]string{"JWT_SECRET_KEY": "s", "ADMIN_CODE": "a", "SERVER_PORT": "70000"}},
		{"port not a number", map[string]string{"JWT_SECRET_KEY": "s", "ADMIN_CODE": "a", "SERVER_PORT": "http"}},
		{"empty captain code", map[string]string{"JWT_SECRET_KEY": "s", "ADMIN_CODE": "a", "CAPTAIN_CODES": "x,,y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestBackupUploadEnabled(t *testing.T) {
	cfg := Config{
		R2AccountID:       "acc",
		R2AccessKeyID:     "key",
		R2SecretAccessKey: "secret",
		R2BucketName:      "bucket",
		R2PublicBaseURL:   "https://files.example.com",
	}
	if !cfg.BackupUploadEnabled() {
		t.Error("expected upload enabled with full R2 config")
	}
	cfg.R2BucketName = ""
	if cfg.BackupUploadEnabled() {
		t.Error("expected upload disabled without bucket")
	}
}
