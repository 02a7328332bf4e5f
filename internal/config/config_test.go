package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultStations(t *testing.T) {
	cfg := Default()

	if len(cfg.Stations) != 5 {
		t.Fatalf("default has %d stations, want 5", len(cfg.Stations))
	}

	tables, consoles := 0, 0
	for _, s := range cfg.Stations {
		switch s.Type {
		case StationTable:
			tables++
		case StationConsole:
			consoles++
		default:
			t.Errorf("station %q has type %q", s.Name, s.Type)
		}
	}
	if tables != 3 || consoles != 2 {
		t.Fatalf("got %d tables and %d consoles, want 3 and 2", tables, consoles)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
database_path: /tmp/venue.db
stations:
  - name: "Billiards"
    type: table
    rate_per_hour: 45
  - name: "Xbox"
    type: console
    rate_per_hour: 35
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DatabasePath != "/tmp/venue.db" {
		t.Errorf("database path = %q", cfg.DatabasePath)
	}
	if len(cfg.Stations) != 2 {
		t.Fatalf("got %d stations, want 2", len(cfg.Stations))
	}
	if cfg.Stations[0].RatePerHour != 45 {
		t.Errorf("rate = %v, want 45", cfg.Stations[0].RatePerHour)
	}
}

func TestLoadRejectsBadStations(t *testing.T) {
	cases := map[string]string{
		"unknown type": `
stations:
  - name: "Pinball"
    type: arcade
    rate_per_hour: 10
`,
		"negative rate": `
stations:
  - name: "Table 1"
    type: table
    rate_per_hour: -5
`,
		"duplicate name": `
stations:
  - name: "Table 1"
    type: table
    rate_per_hour: 10
  - name: "Table 1"
    type: table
    rate_per_hour: 20
`,
	}

	for name, yaml := range cases {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
