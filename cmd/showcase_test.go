package cmd

import (
	"testing"

	"github.com/spf13/pflag"

	"github.com/marcus/modalslot/internal/config"
)

func newShowcaseFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("showcase", pflag.ContinueOnError)
	addShowcaseFlags(flags)
	if err := flags.Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return flags
}

func TestResolveSettings(t *testing.T) {
	off := false
	on := true

	tests := []struct {
		name           string
		cfg            *config.Config
		args           []string
		wantCancelable bool
		wantDim        bool
	}{
		{
			name:           "defaults",
			cfg:            &config.Config{},
			wantCancelable: true,
			wantDim:        true,
		},
		{
			name:           "config values",
			cfg:            &config.Config{DefaultCancelable: &off, Dim: &off},
			wantCancelable: false,
			wantDim:        false,
		},
		{
			name:           "flags override config",
			cfg:            &config.Config{DefaultCancelable: &off, Dim: &on},
			args:           []string{"--default-cancelable=true", "--no-dim"},
			wantCancelable: true,
			wantDim:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := resolveSettings(newShowcaseFlags(t, tt.args...), tt.cfg)
			if err != nil {
				t.Fatalf("resolveSettings: %v", err)
			}
			if s.defaultCancelable != tt.wantCancelable {
				t.Errorf("defaultCancelable = %v, want %v", s.defaultCancelable, tt.wantCancelable)
			}
			if s.styles.Dim != tt.wantDim {
				t.Errorf("Dim = %v, want %v", s.styles.Dim, tt.wantDim)
			}
		})
	}
}

func TestResolveSettingsBadBorder(t *testing.T) {
	cfg := &config.Config{Root: config.Style{Border: "zigzag"}}
	if _, err := resolveSettings(newShowcaseFlags(t), cfg); err == nil {
		t.Fatal("expected error for unknown border")
	}
}
