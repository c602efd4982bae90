package config

import (
	"fmt"
	"sort"
)

// BoardPreset is a named board size.
type BoardPreset struct {
	Name   string
	Title  string
	Width  int
	Height int
}

// SpeedPreset is a named tick interval.
type SpeedPreset struct {
	Name         string
	TickInterval float64
}

var boardPresets = map[string]BoardPreset{
	"classic": {Name: "classic", Title: "Classic", Width: 21, Height: 17},
	"small":   {Name: "small", Title: "Small", Width: 11, Height: 9},
	"large":   {Name: "large", Title: "Large", Width: 41, Height: 21},
}

var speedPresets = map[string]SpeedPreset{
	"slow":   {Name: "slow", TickInterval: 0.3},
	"normal": {Name: "normal", TickInterval: 0.2},
	"fast":   {Name: "fast", TickInterval: 0.1},
}

// BoardPresets returns all board presets ordered by area.
func BoardPresets() []BoardPreset {
	result := make([]BoardPreset, 0, len(boardPresets))
	for _, p := range boardPresets {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Width*result[i].Height < result[j].Width*result[j].Height
	})
	return result
}

// SpeedPresets returns all speed presets from slowest to fastest.
func SpeedPresets() []SpeedPreset {
	result := make([]SpeedPreset, 0, len(speedPresets))
	for _, p := range speedPresets {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].TickInterval > result[j].TickInterval
	})
	return result
}

// ApplyBoardPreset sets the board size from a named preset.
func ApplyBoardPreset(cfg *Config, name string) error {
	p, ok := boardPresets[name]
	if !ok {
		return fmt.Errorf("config: unknown board preset %q", name)
	}
	cfg.Board.Width = p.Width
	cfg.Board.Height = p.Height
	return nil
}

// ApplySpeedPreset sets the tick interval from a named preset.
func ApplySpeedPreset(cfg *Config, name string) error {
	p, ok := speedPresets[name]
	if !ok {
		return fmt.Errorf("config: unknown speed preset %q", name)
	}
	cfg.TickInterval = p.TickInterval
	return nil
}
