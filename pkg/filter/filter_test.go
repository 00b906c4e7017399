package filter

import "testing"

func TestInterfaceFilter_Match(t *testing.T) {
	names := []string{"wl_surface", "wl_compositor", "xdg_toplevel", "zwlr_data_control_manager_v1"}

	tests := []struct {
		name    string
		pattern string
		mode    Mode
		want    []string
	}{
		{name: "none matches all", pattern: "", mode: ModeNone, want: names},
		{name: "contains", pattern: "data_control", mode: ModeContains, want: []string{"zwlr_data_control_manager_v1"}},
		{name: "prefix", pattern: "wl_", mode: ModePrefix, want: []string{"wl_surface", "wl_compositor"}},
		{name: "regex", pattern: `^xdg_`, mode: ModeRegex, want: []string{"xdg_toplevel"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(tt.pattern, tt.mode)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			got := f.Apply(names)
			if len(got) != len(tt.want) {
				t.Fatalf("Apply = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Apply[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNew_InvalidRegex(t *testing.T) {
	if _, err := New("(", ModeRegex); err == nil {
		t.Fatalf("New with invalid regex should fail")
	}
}
