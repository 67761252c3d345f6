package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadCharacters(t *testing.T) {
	spec, err := LoadCharacters()
	if err != nil {
		t.Fatalf("LoadCharacters: %v", err)
	}
	if len(spec.Characters) < 2 {
		t.Fatalf("got %d characters, want at least 2", len(spec.Characters))
	}
	for _, c := range spec.Characters {
		if c.ID == "" || c.Name == "" {
			t.Fatalf("character missing id or name: %+v", c)
		}
		if c.MoveSpeed <= 0 || c.FocusSpeed <= 0 {
			t.Fatalf("%s: bad speeds %f/%f", c.ID, c.MoveSpeed, c.FocusSpeed)
		}
		if c.FocusSpeed >= c.MoveSpeed {
			t.Fatalf("%s: focus speed %f must be slower than %f", c.ID, c.FocusSpeed, c.MoveSpeed)
		}
		if c.HitboxRadius <= 0 {
			t.Fatalf("%s: hitbox radius %f", c.ID, c.HitboxRadius)
		}
		if c.Shot.Interval <= 0 || c.Shot.Damage <= 0 {
			t.Fatalf("%s: bad shot spec %+v", c.ID, c.Shot)
		}
		if c.Bomb.Duration <= 0 || c.Bomb.Radius <= 0 {
			t.Fatalf("%s: bad bomb spec %+v", c.ID, c.Bomb)
		}
	}
}

func TestLoadArchetypes(t *testing.T) {
	spec, err := LoadArchetypes()
	if err != nil {
		t.Fatalf("LoadArchetypes: %v", err)
	}
	if len(spec.Archetypes) == 0 {
		t.Fatalf("no enemy archetypes")
	}
	ids := map[string]bool{}
	for _, a := range spec.Archetypes {
		if a.ID == "" {
			t.Fatalf("archetype missing id: %+v", a)
		}
		if ids[a.ID] {
			t.Fatalf("duplicate archetype id %s", a.ID)
		}
		ids[a.ID] = true
		if a.HP <= 0 || a.Radius <= 0 {
			t.Fatalf("%s: hp %d radius %f", a.ID, a.HP, a.Radius)
		}
	}
	for _, want := range []string{"fairy_small", "fairy_large", "midboss"} {
		if !ids[want] {
			t.Fatalf("archetype %s missing", want)
		}
	}
}

func TestLoadBullets(t *testing.T) {
	spec, err := LoadBullets()
	if err != nil {
		t.Fatalf("LoadBullets: %v", err)
	}
	if len(spec.Bullets) == 0 {
		t.Fatalf("no bullet archetypes")
	}
	ids := map[string]bool{}
	for _, b := range spec.Bullets {
		if b.ID == "" {
			t.Fatalf("bullet missing id: %+v", b)
		}
		if ids[b.ID] {
			t.Fatalf("duplicate bullet id %s", b.ID)
		}
		ids[b.ID] = true
		if b.Damage <= 0 || b.Radius <= 0 {
			t.Fatalf("%s: damage %d radius %f", b.ID, b.Damage, b.Radius)
		}
		if b.Lifetime < 0 {
			t.Fatalf("%s: negative lifetime %f", b.ID, b.Lifetime)
		}
	}
	for _, want := range []string{"default", "pellet", "rice", "star"} {
		if !ids[want] {
			t.Fatalf("bullet archetype %s missing", want)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("nope.yaml"); err == nil {
		t.Fatalf("loading a missing prefab must fail")
	}
}

func TestLoadAcceptsPrefixedPath(t *testing.T) {
	direct, err := Load("characters.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	prefixed, err := Load("prefabs/characters.yaml")
	if err != nil {
		t.Fatalf("Load with prefix: %v", err)
	}
	if string(direct) != string(prefixed) {
		t.Fatalf("prefixed path returned different data")
	}
}

func TestWatcherReportsYAMLEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "enemies.yaml"), []byte("archetypes: []\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "enemies.yaml" {
			t.Fatalf("event for %q, want enemies.yaml", name)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("no event for the edited file")
	}
}

func TestWatcherIgnoresNonSpecFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case name := <-w.Events:
		t.Fatalf("unexpected event for %q", name)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	// Both channels must drain and close once the run loop exits.
	deadline := time.After(2 * time.Second)
	for open := true; open; {
		select {
		case _, ok := <-w.Events:
			open = ok
		case <-deadline:
			t.Fatalf("Events never closed after Close")
		}
	}
}

func TestIsSpecFile(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"prefabs/enemies.yaml", true},
		{"prefabs/enemies.YML", true},
		{"prefabs/readme.txt", false},
		{"enemies.yaml.swp", false},
	}
	for _, c := range cases {
		if got := isSpecFile(c.path); got != c.want {
			t.Fatalf("isSpecFile(%q) = %v, want %v", c.path, got, c.want)
		}
	}
}
