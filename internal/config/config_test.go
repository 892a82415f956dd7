package config

import (
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "LISTEN_ADDR", "DATABASE_DRIVER", "DATABASE_PATH", "UPLOAD_DIR", "UPLOAD_URL_PATH", "PAGE_EXCLUDE_SLUGS", "MAX_UPLOAD_BYTES"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.ListenAddr != ":8080" {
		t.Fatalf("expected default listen addr, got %q", cfg.ListenAddr)
	}
	if cfg.DatabaseDriver != "sqlite" {
		t.Fatalf("expected sqlite driver, got %q", cfg.DatabaseDriver)
	}
	if cfg.UploadURLPath != "/media" {
		t.Fatalf("expected /media upload path, got %q", cfg.UploadURLPath)
	}
	if !reflect.DeepEqual(cfg.PageExcludeSlugs, []string{"contact", "socialmedia"}) {
		t.Fatalf("unexpected exclude slugs: %v", cfg.PageExcludeSlugs)
	}
	if cfg.MaxUploadBytes != defaultMaxUploadBytes {
		t.Fatalf("expected default upload limit, got %d", cfg.MaxUploadBytes)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("DATABASE_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://studio@localhost/studio")
	t.Setenv("PAGE_EXCLUDE_SLUGS", " Contact , ,Footer")
	t.Setenv("MAX_UPLOAD_BYTES", "not-a-number")

	cfg := Load()

	if cfg.ListenAddr != ":9000" {
		t.Fatalf("expected listen addr derived from port, got %q", cfg.ListenAddr)
	}
	if cfg.DatabaseDriver != "postgres" {
		t.Fatalf("expected postgres driver, got %q", cfg.DatabaseDriver)
	}
	if !reflect.DeepEqual(cfg.PageExcludeSlugs, []string{"contact", "footer"}) {
		t.Fatalf("unexpected exclude slugs: %v", cfg.PageExcludeSlugs)
	}
	if cfg.MaxUploadBytes != defaultMaxUploadBytes {
		t.Fatalf("expected invalid limit to fall back, got %d", cfg.MaxUploadBytes)
	}
}
