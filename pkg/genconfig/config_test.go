package genconfig

import "testing"

func TestConfig_GetSource(t *testing.T) {
	cfg := &Config{Sources: []Source{{Name: "core", Path: "protocols/wayland.xml"}}}

	tests := []struct {
		name    string
		lookup  string
		wantErr bool
	}{
		{name: "found", lookup: "core", wantErr: false},
		{name: "missing", lookup: "nope", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := cfg.GetSource(tt.lookup)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetSource(%q) error = %v, wantErr %v", tt.lookup, err, tt.wantErr)
			}
			if err == nil && src.Name != tt.lookup {
				t.Errorf("GetSource(%q).Name = %q", tt.lookup, src.Name)
			}
		})
	}
}

func TestConfig_AddRemoveSource(t *testing.T) {
	cfg := &Config{}

	if err := cfg.AddSource(Source{Name: "core"}); err != nil {
		t.Fatalf("AddSource: %v", err)
	}
	if err := cfg.AddSource(Source{Name: "core"}); err == nil {
		t.Fatalf("AddSource duplicate should fail")
	}

	cfg.ActiveSource = "core"
	if err := cfg.RemoveSource("core"); err == nil {
		t.Fatalf("RemoveSource should refuse to remove the active source")
	}

	cfg.ActiveSource = ""
	if err := cfg.RemoveSource("core"); err != nil {
		t.Fatalf("RemoveSource: %v", err)
	}
	if len(cfg.Sources) != 0 {
		t.Errorf("Sources = %v, want empty", cfg.Sources)
	}
}

func TestApplyEnvironmentOverrides_Defaults(t *testing.T) {
	cfg := &Config{}
	applyEnvironmentOverrides(cfg)

	if cfg.Generate.OutPackage != "wlproto" {
		t.Errorf("OutPackage = %q, want wlproto", cfg.Generate.OutPackage)
	}
	if cfg.Generate.ParallelSources != DefaultParallelSources {
		t.Errorf("ParallelSources = %d, want %d", cfg.Generate.ParallelSources, DefaultParallelSources)
	}
}
