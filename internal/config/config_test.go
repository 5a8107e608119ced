package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFile_Valid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("adjustment_groups:\n  - CO\n  - PR\n"), 0644)

	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if len(c.AdjustmentGroups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(c.AdjustmentGroups))
	}
	set := c.GroupSet()
	if !set["CO"] || !set["PR"] || set["OA"] {
		t.Errorf("unexpected group set: %v", set)
	}
}

func TestLoadFromFile_UnknownGroup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("adjustment_groups:\n  - CO\n  - BOGUS\n"), 0644)

	var c Config
	if err := c.LoadFromFile(path); err == nil {
		t.Fatal("expected error for unknown adjustment group")
	}
}

func TestGroupSet_EmptyMeansAll(t *testing.T) {
	var c Config
	if set := c.GroupSet(); set != nil {
		t.Errorf("empty config should return nil set, got %v", set)
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	var c Config
	if err := c.LoadFromFile("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate_RequiresFile(t *testing.T) {
	var c Config
	if err := c.Validate(); err == nil {
		t.Fatal("expected error when --file is unset")
	}
}
