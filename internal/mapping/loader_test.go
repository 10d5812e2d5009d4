package mapping

import (
	"os"
	"path/filepath"
	"testing"
)

const validMappingYAML = `
entity: tsla
mappings:
  AutomotiveRevenue:
    - pattern: "tsla:AutomotiveRevenues"
    - pattern: "tsla:AutomotiveSales"
      priority: 3
  EnergyRevenue:
    - pattern: "tsla:EnergyGenerationAndStorageRevenue"
hierarchy:
  Revenue:
    - AutomotiveRevenue
    - EnergyRevenue
`

func TestBuilder_LoadBytes(t *testing.T) {
	b := NewBuilder()
	if err := b.LoadBytes([]byte(validMappingYAML)); err != nil {
		t.Fatalf("LoadBytes() failed: %v", err)
	}

	store, err := b.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	matches := store.Lookup("tsla:AutomotiveRevenues")
	if len(matches) != 1 {
		t.Fatalf("Lookup() returned %d matches, want 1", len(matches))
	}
	if matches[0].Standard != AutomotiveRevenue {
		t.Errorf("standard = %s, want %s", matches[0].Standard, AutomotiveRevenue)
	}
	// Omitted priority defaults to the exact tier
	if matches[0].Priority != PriorityEntityExact {
		t.Errorf("priority = %d, want %d", matches[0].Priority, PriorityEntityExact)
	}

	high := store.Lookup("tsla:AutomotiveSales")
	if len(high) != 1 || high[0].Priority != PriorityEntityHigh {
		t.Errorf("explicit priority 3 not preserved: %v", high)
	}

	if !store.KnownEntity("tsla") {
		t.Error("loading an entity file should register its namespace prefix")
	}

	if !store.IsComponentOf(AutomotiveRevenue, Revenue) {
		t.Error("hierarchy from file not applied")
	}
}

func TestBuilder_LoadBytesRejectsUnknownFields(t *testing.T) {
	content := `
entity: tsla
mappings:
  Revenue:
    - pattern: "tsla:TotalRevenues"
surprise: true
`
	if err := NewBuilder().LoadBytes([]byte(content)); err == nil {
		t.Error("LoadBytes() should reject unknown top-level fields")
	}
}

func TestBuilder_LoadBytesValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing entity",
			content: `
mappings:
  Revenue:
    - pattern: "x:TotalRevenues"
`,
		},
		{
			name: "no mappings",
			content: `
entity: tsla
mappings: {}
`,
		},
		{
			name: "empty pattern",
			content: `
entity: tsla
mappings:
  Revenue:
    - pattern: ""
`,
		},
		{
			name: "priority out of range",
			content: `
entity: tsla
mappings:
  Revenue:
    - pattern: "tsla:TotalRevenues"
      priority: 9
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := NewBuilder().LoadBytes([]byte(tt.content)); err == nil {
				t.Error("LoadBytes() should fail validation")
			}
		})
	}
}

func TestBuilder_LoadDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "tsla.yaml"), []byte(validMappingYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	b := NewBuilder()
	if err := b.LoadDir(dir); err != nil {
		t.Fatalf("LoadDir() failed: %v", err)
	}

	store, err := b.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if len(store.Lookup("tsla:EnergyGenerationAndStorageRevenue")) != 1 {
		t.Error("LoadDir() should have loaded the yaml file")
	}
}
