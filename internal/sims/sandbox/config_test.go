package sandbox

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFromMapOverridesDefaults(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":                 "64",
		"h":                 "48",
		"seed":              "-9",
		"scene":             SceneBasin,
		"fire_lifetime_min": "5",
		"fire_lifetime_max": "8",
		"ignite_chance":     "0.75",
	})
	want := Config{
		Width:  64,
		Height: 48,
		Seed:   -9,
		Scene:  SceneBasin,
		Params: Params{FireLifetimeMin: 5, FireLifetimeMax: 8, IgniteChance: 0.75},
	}
	if cfg != want {
		t.Fatalf("FromMap = %+v, want %+v", cfg, want)
	}
}

func TestFromMapIgnoresBadValues(t *testing.T) {
	def := DefaultConfig()
	cfg := FromMap(map[string]string{
		"w":                 "-3",
		"h":                 "tall",
		"seed":              "1.5",
		"scene":             "",
		"fire_lifetime_min": "0",
		"ignite_chance":     "often",
		"unknown":           "1",
	})
	if cfg != def {
		t.Fatalf("FromMap with bad values = %+v, want defaults %+v", cfg, def)
	}
	if got := FromMap(nil); got != def {
		t.Fatalf("FromMap(nil) = %+v, want defaults", got)
	}
}

func TestApplyKeepsLifetimeRangeOrdered(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Apply(map[string]string{"fire_lifetime_min": "50"})
	if cfg.Params.FireLifetimeMax != 50 {
		t.Fatalf("max lifetime = %d, want it raised to 50", cfg.Params.FireLifetimeMax)
	}
	cfg.Apply(map[string]string{"ignite_chance": "3"})
	if cfg.Params.IgniteChance != 1 {
		t.Fatalf("ignite chance = %v, want clamped to 1", cfg.Params.IgniteChance)
	}
}

func TestNewWorldNormalizesConfig(t *testing.T) {
	cfg := Config{Width: 0, Height: -2, Params: Params{FireLifetimeMin: 9, FireLifetimeMax: 3, IgniteChance: -1}}
	w := NewWithConfig(cfg)
	if got := w.Size(); got.W != 1 || got.H != 1 {
		t.Fatalf("size = %+v, want 1x1", got)
	}
	p := w.Config().Params
	if p.FireLifetimeMin != 9 || p.FireLifetimeMax != 9 || p.IgniteChance != 0 {
		t.Fatalf("params not normalized: %+v", p)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sandbox.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
width: 80
scene: oilfire
params:
  ignite_chance: 0.5
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	def := DefaultConfig()
	if cfg.Width != 80 || cfg.Height != def.Height {
		t.Fatalf("dimensions = %dx%d, want 80x%d", cfg.Width, cfg.Height, def.Height)
	}
	if cfg.Scene != SceneOilFire {
		t.Fatalf("scene = %q", cfg.Scene)
	}
	if cfg.Params.IgniteChance != 0.5 || cfg.Params.FireLifetimeMin != def.Params.FireLifetimeMin {
		t.Fatalf("params = %+v", cfg.Params)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("missing file error = %v, want fs.ErrNotExist", err)
	}

	path := writeConfig(t, "width: [1, 2\n")
	if _, err := LoadConfig(path); err == nil || !strings.Contains(err.Error(), path) {
		t.Fatalf("malformed yaml error = %v, want it to name %s", err, path)
	}

	path = writeConfig(t, "scene: volcano\n")
	if _, err := LoadConfig(path); err == nil || !strings.Contains(err.Error(), "volcano") {
		t.Fatalf("unknown scene error = %v", err)
	}
}

func TestParametersReflectConfig(t *testing.T) {
	w := New(12, 7)
	snap := w.Parameters()
	for key, want := range map[string]string{
		"w":                 "12",
		"h":                 "7",
		"seed":              "1337",
		"scene":             SceneEmpty,
		"fire_lifetime_min": "15",
		"fire_lifetime_max": "30",
		"ignite_chance":     "0.3",
	} {
		p, ok := snap.Lookup(key)
		if !ok {
			t.Fatalf("parameter %q missing", key)
		}
		if p.Value != want {
			t.Fatalf("parameter %q = %q, want %q", key, p.Value, want)
		}
	}
}

func TestParameterSetters(t *testing.T) {
	w := New(4, 4)

	if !w.SetIntParameter("fire_lifetime_max", 10) {
		t.Fatal("fire_lifetime_max should be settable")
	}
	p := w.Config().Params
	if p.FireLifetimeMax != 10 || p.FireLifetimeMin != 10 {
		t.Fatalf("lowering max below min should drag min along, got %+v", p)
	}

	w.SetIntParameter("fire_lifetime_min", 999)
	if got := w.Config().Params.FireLifetimeMin; got != 255 {
		t.Fatalf("min lifetime = %d, want clamped to 255", got)
	}

	if !w.SetFloatParameter("ignite_chance", 1.7) {
		t.Fatal("ignite_chance should be settable")
	}
	if got := w.Config().Params.IgniteChance; got != 1 {
		t.Fatalf("ignite chance = %v, want 1", got)
	}

	if w.SetIntParameter("ignite_chance", 1) {
		t.Fatal("float parameter accepted through the int setter")
	}
	if w.SetFloatParameter("w", 3) || w.SetIntParameter("w", 3) {
		t.Fatal("dimensions must not be adjustable at runtime")
	}
}

func TestConfigKeysAreExposedAsParameters(t *testing.T) {
	snap := New(2, 2).Parameters()
	for _, key := range ConfigKeys() {
		if _, ok := snap.Lookup(key); !ok {
			t.Fatalf("config key %q has no parameter entry", key)
		}
	}
}

func TestShippedConfigLoads(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("..", "..", "..", "configs", "sandbox.yaml"))
	if err != nil {
		t.Fatalf("shipped config: %v", err)
	}
	if cfg.Scene != SceneOilFire || cfg.Params != DefaultConfig().Params {
		t.Fatalf("shipped config = %+v", cfg)
	}
}
