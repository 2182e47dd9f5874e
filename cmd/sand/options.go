package main

import (
	"fmt"
	"slices"
	"strings"

	"pixelsand/internal/sims/sandbox"
)

// parseSets turns repeated key=value flags into a map for Config.Apply.
// Keys must be ones Apply understands.
func parseSets(sets []string) (map[string]string, error) {
	known := sandbox.ConfigKeys()
	out := make(map[string]string, len(sets))
	for _, kv := range sets {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("--set %q: want key=value", kv)
		}
		if !slices.Contains(known, key) {
			return nil, fmt.Errorf("--set %q: unknown key %q", kv, key)
		}
		out[key] = strings.TrimSpace(value)
	}
	return out, nil
}

func validScene(name string) bool {
	return slices.Contains(sandbox.SceneNames(), name)
}

// censusLine summarizes the placeable materials as "Name=count" pairs in id
// order.
func censusLine(w *sandbox.World) string {
	census := w.Census()
	var parts []string
	for _, m := range w.Registry().Placeable() {
		parts = append(parts, fmt.Sprintf("%s=%d", m.Name, census[m.ID]))
	}
	return strings.Join(parts, " ")
}
