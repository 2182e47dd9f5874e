package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"pixelsand/internal/sims/sandbox"
)

func TestParseSets(t *testing.T) {
	got, err := parseSets([]string{"ignite_chance=0.6", " fire_lifetime_max = 40"})
	if err != nil {
		t.Fatal(err)
	}
	if got["ignite_chance"] != "0.6" || got["fire_lifetime_max"] != "40" {
		t.Fatalf("parseSets = %v", got)
	}

	for _, bad := range []string{"ignite_chance", "=3", "gravity=9.8"} {
		if _, err := parseSets([]string{bad}); err == nil {
			t.Fatalf("parseSets(%q) should fail", bad)
		}
	}
}

func TestCensusLine(t *testing.T) {
	w := sandbox.New(3, 3)
	w.SetImmediate(0, 0, sandbox.Sand)
	w.SetImmediate(1, 0, sandbox.Sand)
	w.SetImmediate(2, 2, sandbox.Oil)
	want := "Wall=0 Sand=2 Water=0 Oil=1 Fire=0"
	if got := censusLine(w); got != want {
		t.Fatalf("censusLine = %q, want %q", got, want)
	}
}

func TestValidScene(t *testing.T) {
	if !validScene(sandbox.SceneHourglass) || validScene("moon") {
		t.Fatal("validScene disagrees with the scene list")
	}
}

func TestWritePNG(t *testing.T) {
	w := sandbox.New(4, 2)
	w.SetImmediate(1, 1, sandbox.Water)
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := writePNG(path, w, 2); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 4 {
		t.Fatalf("png bounds = %v, want 8x4", b)
	}
}
