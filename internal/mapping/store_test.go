package mapping

import (
	"testing"
)

func TestStore_Lookup(t *testing.T) {
	store, err := NewBuilder().
		Add(Revenue, Candidate{Pattern: "us-gaap:Revenues", Origin: OriginCore, Priority: PriorityCoreDirect}).
		Add(Revenue, Candidate{Pattern: "us-gaap:SalesRevenueNet", Origin: OriginCore, Priority: PriorityCoreFallback}).
		Add(AutomotiveRevenue, Candidate{Pattern: "tsla:AutomotiveRevenues", Origin: "tsla", Priority: PriorityEntityExact}).
		Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	tests := []struct {
		name       string
		raw        string
		wantLen    int
		wantFirst  StandardConcept
		wantTopPri int
	}{
		{
			name:       "core direct hit",
			raw:        "us-gaap:Revenues",
			wantLen:    1,
			wantFirst:  Revenue,
			wantTopPri: PriorityCoreDirect,
		},
		{
			name:       "lookup is case-insensitive",
			raw:        "US-GAAP:REVENUES",
			wantLen:    1,
			wantFirst:  Revenue,
			wantTopPri: PriorityCoreDirect,
		},
		{
			name:       "entity pattern",
			raw:        "tsla:AutomotiveRevenues",
			wantLen:    1,
			wantFirst:  AutomotiveRevenue,
			wantTopPri: PriorityEntityExact,
		},
		{
			name:    "unknown concept",
			raw:     "us-gaap:SomethingElse",
			wantLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := store.Lookup(tt.raw)
			if len(matches) != tt.wantLen {
				t.Fatalf("Lookup(%q) returned %d matches, want %d", tt.raw, len(matches), tt.wantLen)
			}
			if tt.wantLen == 0 {
				return
			}
			if matches[0].Standard != tt.wantFirst {
				t.Errorf("first match = %s, want %s", matches[0].Standard, tt.wantFirst)
			}
			if matches[0].Priority != tt.wantTopPri {
				t.Errorf("first match priority = %d, want %d", matches[0].Priority, tt.wantTopPri)
			}
		})
	}
}

func TestStore_Hierarchy(t *testing.T) {
	store, err := NewBuilder().
		AddHierarchy(Revenue, AutomotiveRevenue, EnergyRevenue).
		AddHierarchy(AutomotiveRevenue, AutomotiveLeasingRevenue).
		Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	if !store.IsComponentOf(AutomotiveRevenue, Revenue) {
		t.Error("AutomotiveRevenue should be a component of Revenue")
	}

	if store.IsComponentOf(Revenue, AutomotiveRevenue) {
		t.Error("aggregate must not be a component of its child")
	}

	parent, ok := store.Parent(AutomotiveLeasingRevenue)
	if !ok || parent != AutomotiveRevenue {
		t.Errorf("Parent(AutomotiveLeasingRevenue) = %s, %v", parent, ok)
	}

	if children := store.Children(Revenue); len(children) != 2 {
		t.Errorf("Children(Revenue) = %d entries, want 2", len(children))
	}
}

func TestStore_VersionIsDeterministic(t *testing.T) {
	build := func() *Store {
		store, err := NewBuilder().
			Add(Revenue, Candidate{Pattern: "us-gaap:Revenues", Origin: OriginCore, Priority: PriorityCoreDirect}).
			Add(CostOfRevenue, Candidate{Pattern: "us-gaap:CostOfRevenue", Origin: OriginCore, Priority: PriorityCoreDirect}).
			AddHierarchy(Revenue, AutomotiveRevenue).
			Build()
		if err != nil {
			t.Fatalf("Build() failed: %v", err)
		}
		return store
	}

	a, b := build(), build()
	if a.Version() == "" {
		t.Fatal("Version() is empty")
	}
	if a.Version() != b.Version() {
		t.Errorf("same inputs produced different versions: %s vs %s", a.Version(), b.Version())
	}

	c, err := NewBuilder().
		Add(Revenue, Candidate{Pattern: "us-gaap:Revenues", Origin: OriginCore, Priority: PriorityCoreDirect}).
		Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if c.Version() == a.Version() {
		t.Error("different inputs produced the same version")
	}
}

func TestDefaultStore(t *testing.T) {
	store, err := DefaultStore()
	if err != nil {
		t.Fatalf("DefaultStore() failed: %v", err)
	}

	matches := store.Lookup("us-gaap:Revenues")
	if len(matches) == 0 || matches[0].Standard != Revenue {
		t.Errorf("default store should map us-gaap:Revenues to Revenue, got %v", matches)
	}

	if !store.IsComponentOf(AutomotiveLeasingRevenue, AutomotiveRevenue) {
		t.Error("default hierarchy should nest leasing under automotive revenue")
	}
}
