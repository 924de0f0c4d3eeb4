package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/agentstation/teammap/pkg/logging"
)

func testApp(t *testing.T, cfg *Config) *App {
	t.Helper()
	app, err := New("1.0.0", "abc123", "2024-01-01", "test", WithConfig(cfg), WithLogger(logging.NewNopLogger()))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return app
}

// TestApp_New verifies app initialization.
func TestApp_New(t *testing.T) {
	app := testApp(t, &Config{SnapshotPath: "Team.json"})

	if app.Version() != "1.0.0" {
		t.Errorf("Version() = %s, want 1.0.0", app.Version())
	}
	if app.Commit() != "abc123" {
		t.Errorf("Commit() = %s, want abc123", app.Commit())
	}
	if app.SnapshotPath() != "Team.json" {
		t.Errorf("SnapshotPath() = %s, want Team.json", app.SnapshotPath())
	}
	if app.Logger() == nil {
		t.Error("Logger() returned nil")
	}
}

// TestApp_Builder_Local verifies a local-mode builder is created once.
func TestApp_Builder_Local(t *testing.T) {
	dir := t.TempDir()
	app := testApp(t, &Config{
		SnapshotPath: dir + "/Team.json",
		OutputDir:    dir + "/team",
		Registry:     RegistryConfig{Mode: RegistryLocal, UsersFile: dir + "/users.yaml"},
	})

	b1, err := app.Builder()
	if err != nil {
		t.Fatalf("Builder() failed: %v", err)
	}
	b2, err := app.Builder()
	if err != nil {
		t.Fatalf("Builder() failed on second call: %v", err)
	}
	if b1 != b2 {
		t.Error("Builder() returned different instances, expected singleton")
	}
}

// TestApp_Builder_Errors verifies configuration problems surface before a run.
func TestApp_Builder_Errors(t *testing.T) {
	tests := []struct {
		name     string
		registry RegistryConfig
		want     string
	}{
		{"unknown mode", RegistryConfig{Mode: "ftp"}, "unknown registry.mode"},
		{"local without users file", RegistryConfig{Mode: RegistryLocal}, "registry.users_file"},
		{"http without token", RegistryConfig{Mode: RegistryHTTP, UsersURL: "https://example.org/users"}, "TEAMMAP_REGISTRY_TOKEN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEAMMAP_REGISTRY_TOKEN", "")
			app := testApp(t, &Config{SnapshotPath: "Team.json", OutputDir: "team", Registry: tt.registry})
			_, err := app.Builder()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Builder() error = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

// TestApp_Execute_Version verifies the version command runs through Execute.
func TestApp_Execute_Version(t *testing.T) {
	app := testApp(t, &Config{Format: "json"})

	root := app.createRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out.String(), "teammap 1.0.0") {
		t.Errorf("version output = %q", out.String())
	}
}

// TestApp_Execute_BadFormat verifies an unknown --format is rejected.
func TestApp_Execute_BadFormat(t *testing.T) {
	app := testApp(t, &Config{})
	if err := app.Execute(context.Background(), []string{"version", "--format", "xml"}); err == nil {
		t.Error("expected error for --format xml")
	}
}
