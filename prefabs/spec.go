package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadSpec reads and unmarshals one prefab file into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type VecSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type ShotSpec struct {
	Interval       float64 `yaml:"interval"`
	Speed          float64 `yaml:"speed"`
	Damage         int     `yaml:"damage"`
	Count          int     `yaml:"count"`
	SpreadDeg      float64 `yaml:"spread_deg"`
	FocusSpreadDeg float64 `yaml:"focus_spread_deg"`
}

type OptionSpec struct {
	Max             int       `yaml:"max"`
	Damage          int       `yaml:"damage"`
	ShotSpeed       float64   `yaml:"shot_speed"`
	TransitionSpeed float64   `yaml:"transition_speed"`
	Offsets         []VecSpec `yaml:"offsets"`
	FocusOffsets    []VecSpec `yaml:"focus_offsets"`
}

type BombSpec struct {
	Duration       float64 `yaml:"duration"`
	Radius         float64 `yaml:"radius"`
	Damage         int     `yaml:"damage"`
	DamageInterval float64 `yaml:"damage_interval"`
}

// CharacterSpec is one playable character preset.
type CharacterSpec struct {
	ID           string  `yaml:"id"`
	Name         string  `yaml:"name"`
	MoveSpeed    float64 `yaml:"move_speed"`
	FocusSpeed   float64 `yaml:"focus_speed"`
	HitboxRadius float64 `yaml:"hitbox_radius"`
	GrazeRadius  float64 `yaml:"graze_radius"`
	Lives        int     `yaml:"lives"`
	Bombs        int     `yaml:"bombs"`
	Power        float64 `yaml:"power"`

	Shot    ShotSpec   `yaml:"shot"`
	Options OptionSpec `yaml:"options"`
	Bomb    BombSpec   `yaml:"bomb"`
}

type CharactersSpec struct {
	Characters []CharacterSpec `yaml:"characters"`
}

// LoadCharacters reads the playable character presets.
func LoadCharacters() (*CharactersSpec, error) {
	spec, err := LoadSpec[CharactersSpec]("characters.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// BulletSpec is one bullet archetype: the defaults a fired bullet starts
// from before per-shot overrides.
type BulletSpec struct {
	ID       string  `yaml:"id"`
	Damage   int     `yaml:"damage"`
	Radius   float64 `yaml:"radius"`
	Sprite   string  `yaml:"sprite"`
	Lifetime float64 `yaml:"lifetime"`
}

type BulletsSpec struct {
	Bullets []BulletSpec `yaml:"bullets"`
}

// LoadBullets reads the bullet archetype definitions.
func LoadBullets() (*BulletsSpec, error) {
	spec, err := LoadSpec[BulletsSpec]("bullets.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// PatternSpec is a declarative bullet pattern in data form; the game layer
// translates it into a pattern config.
type PatternSpec struct {
	Kind          string  `yaml:"kind"`
	Bullet        string  `yaml:"bullet"`
	BulletSpeed   float64 `yaml:"bullet_speed"`
	Count         int     `yaml:"count"`
	SpreadDeg     float64 `yaml:"spread_deg"`
	StartAngleDeg float64 `yaml:"start_angle_deg"`
	SpinSpeedDeg  float64 `yaml:"spin_speed_deg"`
	Script        string  `yaml:"script"`

	Interval     float64 `yaml:"interval"`
	Damage       int     `yaml:"damage"`
	BulletRadius float64 `yaml:"bullet_radius"`
}

type DropSpec struct {
	Power int `yaml:"power"`
	Point int `yaml:"point"`
	Bomb  int `yaml:"bomb"`
	Life  int `yaml:"life"`
}

// ArchetypeSpec is one enemy archetype: base stats, drops, and the default
// fire pattern. Factories apply overrides on top.
type ArchetypeSpec struct {
	ID      string      `yaml:"id"`
	HP      int         `yaml:"hp"`
	Radius  float64     `yaml:"radius"`
	Drops   DropSpec    `yaml:"drops"`
	Pattern PatternSpec `yaml:"pattern"`
}

type ArchetypesSpec struct {
	Archetypes []ArchetypeSpec `yaml:"archetypes"`
}

// LoadArchetypes reads the enemy archetype definitions.
func LoadArchetypes() (*ArchetypesSpec, error) {
	spec, err := LoadSpec[ArchetypesSpec]("enemies.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
