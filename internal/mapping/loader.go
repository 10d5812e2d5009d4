package mapping

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// MappingFile is the on-disk shape of one entity-specific mapping set
type MappingFile struct {
	Entity    string                        `yaml:"entity"`
	Mappings  map[string][]MappingCandidate `yaml:"mappings"`
	Hierarchy map[string][]string           `yaml:"hierarchy,omitempty"`
}

// MappingCandidate is one pattern entry in a mapping file
type MappingCandidate struct {
	Pattern  string `yaml:"pattern"`
	Priority int    `yaml:"priority"`
}

// LoadFile parses one mapping YAML file into the builder.
// Unknown fields fail immediately, same policy as the strategy config loader.
func (b *Builder) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read mapping file: %w", err)
	}
	return b.LoadBytes(data)
}

// LoadBytes parses mapping YAML content into the builder
func (b *Builder) LoadBytes(data []byte) error {
	var file MappingFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true) // 알 수 없는 필드 발견 시 에러 반환
	if err := dec.Decode(&file); err != nil {
		return fmt.Errorf("failed to decode mapping file: %w", err)
	}

	if err := validateMappingFile(&file); err != nil {
		return err
	}

	origin := Origin(strings.ToLower(file.Entity))

	// Deterministic insertion order regardless of YAML map ordering
	standards := make([]string, 0, len(file.Mappings))
	for standard := range file.Mappings {
		standards = append(standards, standard)
	}
	sort.Strings(standards)

	for _, standard := range standards {
		for _, c := range file.Mappings[standard] {
			priority := c.Priority
			if priority == 0 {
				priority = PriorityEntityExact
			}
			b.Add(StandardConcept(standard), Candidate{
				Pattern:  c.Pattern,
				Origin:   origin,
				Priority: priority,
			})
		}
	}

	parents := make([]string, 0, len(file.Hierarchy))
	for parent := range file.Hierarchy {
		parents = append(parents, parent)
	}
	sort.Strings(parents)

	for _, parent := range parents {
		children := make([]StandardConcept, 0, len(file.Hierarchy[parent]))
		for _, child := range file.Hierarchy[parent] {
			children = append(children, StandardConcept(child))
		}
		b.AddHierarchy(StandardConcept(parent), children...)
	}

	return nil
}

// LoadDir loads every *.yaml / *.yml mapping file found in dir
func (b *Builder) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read mapping dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext == ".yaml" || ext == ".yml" {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		if err := b.LoadFile(filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("mapping file %s: %w", name, err)
		}
	}
	return nil
}

// validateMappingFile checks required fields and priority range
func validateMappingFile(file *MappingFile) error {
	if strings.TrimSpace(file.Entity) == "" {
		return fmt.Errorf("mapping file missing entity identifier")
	}
	if len(file.Mappings) == 0 {
		return fmt.Errorf("mapping file for %s has no mappings", file.Entity)
	}
	for standard, candidates := range file.Mappings {
		for _, c := range candidates {
			if strings.TrimSpace(c.Pattern) == "" {
				return fmt.Errorf("empty pattern under %s", standard)
			}
			if c.Priority < 0 || c.Priority > PriorityEntityExact {
				return fmt.Errorf("priority %d out of range under %s", c.Priority, standard)
			}
		}
	}
	return nil
}
