package models

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRecordRace(t *testing.T) {
	gs := NewGameState("rider")
	if !gs.RecordRace(120) {
		t.Fatal("first race not a best")
	}
	if gs.RecordRace(80) {
		t.Fatal("shorter race counted as best")
	}
	if !gs.RecordRace(300.5) {
		t.Fatal("longer race not a best")
	}
	if gs.RacesRun != 3 || gs.BestDistance != 300.5 {
		t.Fatalf("state = %+v", gs)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	gs := NewGameState("rider")
	gs.RecordRace(512)
	if err := gs.SaveToFile(path); err != nil {
		t.Fatal(err)
	}

	got, err := LoadFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "rider" || got.BestDistance != 512 || got.RacesRun != 1 {
		t.Fatalf("loaded %+v", got)
	}
	if !got.UpdatedAt.Equal(gs.UpdatedAt) {
		t.Fatalf("UpdatedAt = %v, want %v", got.UpdatedAt, gs.UpdatedAt)
	}
}

func TestLoadOrCreate(t *testing.T) {
	dir := t.TempDir()
	gs, err := LoadOrCreate(filepath.Join(dir, "none.json"), "new")
	if err != nil || gs.Name != "new" || gs.RacesRun != 0 {
		t.Fatalf("LoadOrCreate = %+v, %v", gs, err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOrCreate(bad, "x"); err == nil {
		t.Fatal("corrupt save loaded")
	}
}
