package stencil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseConfig(t *testing.T) {
	t.Run("Overrides", func(t *testing.T) {
		cfg, err := ParseConfig([]byte(`
vertical_spacing = 1
label_width = 20
relayout = "geometry"
`))
		if err != nil {
			t.Fatal(err)
		}
		if cfg.VerticalSpacing != 1 || cfg.LabelWidth != 20 || cfg.Relayout != "geometry" {
			t.Errorf("expected overrides applied, got %+v", cfg)
		}
		if cfg.HorizontalSpacing != DefaultConfig().HorizontalSpacing {
			t.Errorf("expected unset keys to keep defaults, got %+v", cfg)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		cfg, err := ParseConfig(nil)
		if err != nil {
			t.Fatal(err)
		}
		if cfg != DefaultConfig() {
			t.Errorf("expected defaults, got %+v", cfg)
		}
	})

	tests := []struct {
		name string
		toml string
		want string
	}{
		{"negative spacing", "horizontal_spacing = -1", "spacing"},
		{"too few passes", "max_passes_per_frame = 1", "max_passes_per_frame"},
		{"unknown policy", `relayout = "always"`, "relayout"},
		{"bad syntax", "label_width = ", "parse"},
		{"wrong type", `label_width = "wide"`, "parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.toml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("Missing", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(dir, "absent.toml"))
		if err != nil {
			t.Fatal(err)
		}
		if cfg != DefaultConfig() {
			t.Errorf("expected defaults, got %+v", cfg)
		}
	})

	t.Run("File", func(t *testing.T) {
		path := filepath.Join(dir, "stencil.toml")
		if err := os.WriteFile(path, []byte("text_area_height = 6\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.TextAreaHeight != 6 {
			t.Errorf("expected text_area_height 6, got %d", cfg.TextAreaHeight)
		}
	})
}

func TestConfigApplies(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TextAreaHeight = 5
	g, _, _ := newTestGUI(WithConfig(cfg))
	g.Frame(Rect{W: 20}, func(g *GUI) { g.TextArea("notes") })
	if _, h := g.Cache().Control(0).Size(); h != 5 {
		t.Errorf("expected text area height 5, got %d", h)
	}
}
