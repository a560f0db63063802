package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
)

// TestInitRun tests the Init.Run command.
func TestInitRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		force   bool
		exists  bool
		wantErr error
	}{
		{name: "create_new_config"},
		{name: "overwrite_existing_with_force", force: true, exists: true},
		{name: "fail_without_force", exists: true, wantErr: ErrFileExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			confPath := filepath.Join(t.TempDir(), "config.yaml")

			if tt.exists {
				if err := os.WriteFile(confPath, []byte("existing: true\n"), 0o600); err != nil {
					t.Fatal(err)
				}
			}

			var cli struct {
				LogLevel string `default:"info" name:"log-level"`
			}

			parser, err := kong.New(&cli, kong.Vars{ConfigIdentifier: confPath})
			if err != nil {
				t.Fatal(err)
			}

			ktx, err := parser.Parse(nil)
			if err != nil {
				t.Fatal(err)
			}

			err = (&Init{Force: tt.force}).Run(WithContext(context.Background(), ktx))
			if !errors.Is(err, tt.wantErr) || (tt.wantErr == nil && err != nil) {
				t.Fatalf("Init.Run() error = %v, want %v", err, tt.wantErr)
			}

			if tt.wantErr != nil {
				return
			}

			content, err := os.ReadFile(confPath)
			if err != nil {
				t.Fatal(err)
			}

			var got map[string]any
			if err := yaml.Unmarshal(content, &got); err != nil {
				t.Fatalf("generated config is not valid YAML: %v", err)
			}

			if diff := cmp.Diff(map[string]any{"log-level": "info"}, got); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInitRun_NoContext(t *testing.T) {
	t.Parallel()

	if err := (&Init{}).Run(context.Background()); !errors.Is(err, ErrNoContext) {
		t.Errorf("Init.Run() error = %v, want ErrNoContext", err)
	}
}

// TestConfigValues tests that configValues skips unset and ignored flags.
func TestConfigValues(t *testing.T) {
	t.Parallel()

	var cli struct {
		Verbose bool     `name:"verbose"`
		Output  string   `name:"output"`
		Count   int      `name:"count"`
		Tags    []string `name:"tags"`
		Empty   string   `name:"empty"`
		Secret  string   `hidden:""        name:"secret"`
	}

	parser, err := kong.New(&cli)
	if err != nil {
		t.Fatal(err)
	}

	ktx, err := parser.Parse([]string{
		"--verbose", "--output=test.txt", "--count=5", "--tags=a,b", "--secret=x",
	})
	if err != nil {
		t.Fatal(err)
	}

	want := yaml.MapSlice{
		{Key: "verbose", Value: true},
		{Key: "output", Value: "test.txt"},
		{Key: "count", Value: 5},
		{Key: "tags", Value: []string{"a", "b"}},
	}

	if diff := cmp.Diff(want, configValues(ktx)); diff != "" {
		t.Errorf("configValues() mismatch (-want +got):\n%s", diff)
	}
}

// TestInitFlagValue tests the flagValue function with different types.
func TestInitFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  any
	}{
		{"nil", nil, nil},
		{"bool_false", false, false},
		{"string", "test", "test"},
		{"empty_string", "", nil},
		{"empty_slice", []string{}, nil},
		{"slice", []string{"x"}, []string{"x"}},
		{"int", 3, 3},
		{"stringer", time.Second, "1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tt.want, flagValue(tt.value)); diff != "" {
				t.Errorf("flagValue(%v) mismatch (-want +got):\n%s", tt.value, diff)
			}
		})
	}
}
