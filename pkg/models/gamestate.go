package models

import (
	"encoding/json"
	"os"
	"time"
)

// GameState is the rider's saved progress across races.
type GameState struct {
	Name         string    `json:"name"`
	BestDistance float64   `json:"best_distance"`
	RacesRun     int       `json:"races_run"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewGameState creates a new game state
func NewGameState(name string) *GameState {
	now := time.Now()
	return &GameState{
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// RecordRace counts a finished race and reports whether distance beat the
// best so far.
func (gs *GameState) RecordRace(distance float64) bool {
	gs.RacesRun++
	gs.UpdatedAt = time.Now()
	if distance > gs.BestDistance {
		gs.BestDistance = distance
		return true
	}
	return false
}

// SaveToFile saves the game state to a JSON file
func (gs *GameState) SaveToFile(filename string) error {
	gs.UpdatedAt = time.Now()

	data, err := json.MarshalIndent(gs, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filename, data, 0644)
}

// LoadFromFile loads a game state from a JSON file
func LoadFromFile(filename string) (*GameState, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var gs GameState
	if err := json.Unmarshal(data, &gs); err != nil {
		return nil, err
	}

	return &gs, nil
}

// LoadOrCreate loads the state at filename, or starts a fresh one named
// name when the file does not exist yet.
func LoadOrCreate(filename, name string) (*GameState, error) {
	gs, err := LoadFromFile(filename)
	if os.IsNotExist(err) {
		return NewGameState(name), nil
	}
	return gs, err
}
