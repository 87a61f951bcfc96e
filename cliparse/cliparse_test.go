// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
)

// unsetEnv clears keys for the duration of the test; the previous values
// come back on cleanup.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func noEnvFile(t *testing.T) string {
	return "-env=" + filepath.Join(t.TempDir(), "missing.env")
}

func TestParseFlags_EnvVars(t *testing.T) {
	unsetEnv(t, "ENV_FILE")
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")

	cfg, err := ParseFlags([]string{noEnvFile(t)})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected database type postgres, got %s", cfg.DatabaseType)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://env")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", noEnvFile(t)})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "file:test.db" {
		t.Errorf("CLI should override env: expected file:test.db, got %s", cfg.DatabaseURL)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	unsetEnv(t, "PORT", "DATABASE_TYPE")

	cfg, err := ParseFlags([]string{"-d", "habits.db", noEnvFile(t)})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3318 {
		t.Errorf("expected default port 3318, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default database type sqlite, got %s", cfg.DatabaseType)
	}
}

func TestParseFlags_MissingDatabaseURL(t *testing.T) {
	unsetEnv(t, "DATABASE_URL")

	if _, err := ParseFlags([]string{noEnvFile(t)}); err == nil {
		t.Error("expected error when database URL is missing")
	}
}

func TestParseFlags_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "eighty")

	if _, err := ParseFlags([]string{"-d", "habits.db", noEnvFile(t)}); err == nil {
		t.Error("expected error for non-numeric PORT")
	}
}

func TestParseFlags_UnsupportedDatabaseType(t *testing.T) {
	if _, err := ParseFlags([]string{"-d", "mongodb://localhost", "-t", "mongodb", noEnvFile(t)}); err == nil {
		t.Error("expected error for unsupported database type")
	}
}

func TestParseFlags_EnvFile(t *testing.T) {
	unsetEnv(t, "PORT", "DATABASE_URL", "DATABASE_TYPE")

	path := filepath.Join(t.TempDir(), "habits.env")
	contents := "PORT=4100\nDATABASE_URL=file:from-dotenv.db\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseFlags([]string{"-env", path})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 4100 {
		t.Errorf("expected port 4100 from env file, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "file:from-dotenv.db" {
		t.Errorf("expected database URL from env file, got %s", cfg.DatabaseURL)
	}
}

func TestParseFlags_EnvFileDoesNotOverrideEnv(t *testing.T) {
	unsetEnv(t, "DATABASE_URL")
	t.Setenv("PORT", "5000")

	path := filepath.Join(t.TempDir(), "habits.env")
	if err := os.WriteFile(path, []byte("PORT=4100\nDATABASE_URL=habits.db\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseFlags([]string{"-env", path})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 5000 {
		t.Errorf("environment should win over env file: expected 5000, got %d", cfg.Port)
	}
}
