package registry

import (
	"fmt"
	"sort"
	"strings"

	"voxelworld/internal/world"
)

// BlockDefinition defines the properties of a block type
type BlockDefinition struct {
	ID      world.BlockType
	Name    string
	IsSolid bool
	// Placeable blocks may be held and placed by the viewer.
	Placeable bool
}

var (
	Blocks     = make(map[world.BlockType]*BlockDefinition)
	BlockNames = make(map[string]world.BlockType)
)

func RegisterBlock(def *BlockDefinition) {
	Blocks[def.ID] = def
	BlockNames[def.Name] = def.ID
}

func init() {
	InitRegistry()
}

// InitRegistry registers every block kind the world knows about. Calling
// it again is harmless.
func InitRegistry() {
	RegisterBlock(&BlockDefinition{
		ID:   world.BlockTypeAir,
		Name: "air",
	})

	for _, bt := range []world.BlockType{
		world.BlockTypeGrass,
		world.BlockTypeDirt,
		world.BlockTypeStone,
		world.BlockTypeWood,
		world.BlockTypeLeaves,
	} {
		RegisterBlock(&BlockDefinition{
			ID:        bt,
			Name:      bt.String(),
			IsSolid:   bt.IsSolid(),
			Placeable: true,
		})
	}
}

// Lookup resolves a block name, case-insensitively.
func Lookup(name string) (world.BlockType, error) {
	bt, ok := BlockNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return world.BlockTypeAir, fmt.Errorf("unknown block %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return bt, nil
}

// LookupPlaceable is Lookup restricted to blocks that can be placed.
func LookupPlaceable(name string) (world.BlockType, error) {
	bt, err := Lookup(name)
	if err != nil {
		return bt, err
	}
	if def := Blocks[bt]; def == nil || !def.Placeable {
		return world.BlockTypeAir, fmt.Errorf("block %q cannot be placed", name)
	}
	return bt, nil
}

// Names returns the registered block names in ID order.
func Names() []string {
	ids := make([]world.BlockType, 0, len(Blocks))
	for id := range Blocks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = Blocks[id].Name
	}
	return names
}
