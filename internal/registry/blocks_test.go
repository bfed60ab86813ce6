package registry_test

import (
	"testing"

	"voxelworld/internal/registry"
	"voxelworld/internal/world"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		want    world.BlockType
		wantErr bool
	}{
		{"grass", world.BlockTypeGrass, false},
		{" Stone ", world.BlockTypeStone, false},
		{"LEAVES", world.BlockTypeLeaves, false},
		{"air", world.BlockTypeAir, false},
		{"lava", world.BlockTypeAir, true},
	}
	for _, tt := range tests {
		got, err := registry.Lookup(tt.name)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("Lookup(%q) = %v, %v", tt.name, got, err)
		}
	}
}

func TestLookupPlaceable(t *testing.T) {
	if _, err := registry.LookupPlaceable("air"); err == nil {
		t.Error("air should not be placeable")
	}
	if bt, err := registry.LookupPlaceable("wood"); err != nil || bt != world.BlockTypeWood {
		t.Errorf("LookupPlaceable(wood) = %v, %v", bt, err)
	}
}

func TestNamesInIDOrder(t *testing.T) {
	registry.InitRegistry()
	want := []string{"air", "grass", "dirt", "stone", "wood", "leaves"}
	got := registry.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	for _, def := range registry.Blocks {
		if def.IsSolid != def.ID.IsSolid() {
			t.Errorf("%s: IsSolid mismatch", def.Name)
		}
	}
}
