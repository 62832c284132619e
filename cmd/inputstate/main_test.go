package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/inputstate/internal/config"
)

func TestParseFlags(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "inputstate.toml")
	if err := os.WriteFile(cfgPath, []byte("log_level = \"debug\"\ntick_rate = \"20ms\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	iniPath := filepath.Join(dir, "inputstate.ini")
	if err := os.WriteFile(iniPath, []byte("[input]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		args    []string
		check   func(t *testing.T, cfg config.Config)
		wantErr bool
	}{
		{
			name: "defaults",
			args: nil,
			check: func(t *testing.T, cfg config.Config) {
				if cfg.TickRate != config.DefaultTickRate {
					t.Errorf("TickRate = %v", cfg.TickRate)
				}
			},
		},
		{
			name: "config file",
			args: []string{"-config", cfgPath},
			check: func(t *testing.T, cfg config.Config) {
				if cfg.LogLevel != "debug" || cfg.TickRate != 20*time.Millisecond {
					t.Errorf("cfg = %+v", cfg)
				}
			},
		},
		{
			name: "flags override file",
			args: []string{"-c", cfgPath, "-log-level", "warn", "-tick", "5ms", "-trace", "t.jsonl", "-metrics-addr", ":0"},
			check: func(t *testing.T, cfg config.Config) {
				if cfg.LogLevel != "warn" || cfg.TickRate != 5*time.Millisecond {
					t.Errorf("cfg = %+v", cfg)
				}
				if cfg.TracePath != "t.jsonl" || cfg.MetricsAddr != ":0" {
					t.Errorf("cfg = %+v", cfg)
				}
			},
		},
		{name: "invalid level", args: []string{"-log-level", "loud"}, wantErr: true},
		{name: "unknown flag", args: []string{"-nope"}, wantErr: true},
		{name: "positional", args: []string{"file.txt"}, wantErr: true},
		{name: "bad config", args: []string{"-config", iniPath}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			cfg, err := parseFlags(tt.args, &stdout, &stderr)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestParseFlags_VersionAndHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if _, err := parseFlags([]string{"-version"}, &stdout, &stderr); !errors.Is(err, errHelp) {
		t.Fatalf("-version error = %v", err)
	}
	if !strings.HasPrefix(stdout.String(), "inputstate dev") {
		t.Errorf("version output = %q", stdout.String())
	}

	stderr.Reset()
	if _, err := parseFlags([]string{"-h"}, &stdout, &stderr); !errors.Is(err, errHelp) {
		t.Fatalf("-h error = %v", err)
	}
	if !strings.Contains(stderr.String(), "Usage: inputstate") {
		t.Errorf("usage output = %q", stderr.String())
	}
}
