package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hance08/sats/internal/config"
)

func testConfig(t *testing.T, driver string) *config.Config {
	t.Helper()
	cfg := config.NewDefault()
	cfg.Storage.Driver = driver
	cfg.Log.Level = "off"
	cfg.Resolve(t.TempDir())
	return cfg
}

func TestNewApp_CSV(t *testing.T) {
	cfg := testConfig(t, config.DriverCSV)

	application, cleanup, err := NewApp(cfg, nil)
	if err != nil {
		t.Fatalf("NewApp err=%v", err)
	}
	defer cleanup()

	acc, err := application.Service.Account.Create("john", "1500")
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if _, err := acc.Deposit("500"); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(cfg.Storage.AccountsFile)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "JOHN,2000\n" {
		t.Fatalf("accounts file=%q", raw)
	}
}

func TestNewApp_SQLite(t *testing.T) {
	cfg := testConfig(t, config.DriverSQLite)

	application, cleanup, err := NewApp(cfg, os.DirFS(filepath.Join("..", "..")))
	if err != nil {
		t.Fatalf("NewApp err=%v", err)
	}
	defer cleanup()

	if _, err := application.Service.Account.Create("john", "10"); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	acc, err := application.Service.Account.Open("JOHN")
	if err != nil {
		t.Fatalf("Open err=%v", err)
	}
	if acc.Balance() != 10 {
		t.Fatalf("balance=%d want=10", acc.Balance())
	}
	if _, err := os.Stat(cfg.Storage.DBFile); err != nil {
		t.Fatalf("database file missing: %v", err)
	}
}

func TestNewApp_UnknownDriver(t *testing.T) {
	cfg := testConfig(t, "postgres")

	_, _, err := NewApp(cfg, nil)
	if err == nil || !strings.Contains(err.Error(), "unknown storage driver") {
		t.Fatalf("want unknown driver error, got %v", err)
	}
}
