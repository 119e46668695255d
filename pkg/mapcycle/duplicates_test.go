package mapcycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srcdskit/mapcycle/pkg/mapcycle"
)

func TestSharedPrefixGroups(t *testing.T) {
	t.Run("groups versioned variants", func(t *testing.T) {
		doc := mapcycle.Document{"ctf_2fort", "ctf_2fort_snowy", "koth_nucleus"}
		groups := mapcycle.SharedPrefixGroups(doc)

		assert.Equal(t, map[string][]string{
			"ctf_2fort": {"ctf_2fort", "ctf_2fort_snowy"},
		}, groups)
	})

	t.Run("single entry yields no groups", func(t *testing.T) {
		doc := mapcycle.Document{"cp_dustbowl"}
		assert.Empty(t, mapcycle.SharedPrefixGroups(doc))
	})

	t.Run("gamemode token alone is not a prefix", func(t *testing.T) {
		doc := mapcycle.Document{"cp_dustbowl", "cp_gravelpit"}
		assert.Empty(t, mapcycle.SharedPrefixGroups(doc))
	})

	t.Run("token prefixes of every width are found", func(t *testing.T) {
		doc := mapcycle.Document{"pl_borneo_pro_a", "pl_borneo_pro_b", "pl_upward"}
		groups := mapcycle.SharedPrefixGroups(doc)

		assert.Equal(t, map[string][]string{
			"pl_borneo":     {"pl_borneo_pro_a", "pl_borneo_pro_b"},
			"pl_borneo_pro": {"pl_borneo_pro_a", "pl_borneo_pro_b"},
		}, groups)
	})

	t.Run("comments and workshop entries are ignored", func(t *testing.T) {
		doc := mapcycle.Document{
			"// ctf_2fort",
			"workshop/ctf_2fort.ugc1",
			"ctf_2fort",
		}
		assert.Empty(t, mapcycle.SharedPrefixGroups(doc))
	})
}

func TestPrefixDuplicatesOf(t *testing.T) {
	t.Run("own prefix is always flagged", func(t *testing.T) {
		// A single matching entry is enough when its joined prefix equals
		// the queried name's own prefix of the same width.
		list := mapcycle.Document{"pl_barnblitz_final"}
		got := mapcycle.PrefixDuplicatesOf("pl_barnblitz_final", list)
		assert.Equal(t, []string{"pl_barnblitz", "pl_barnblitz_final"}, got)
	})

	t.Run("foreign prefix needs two entries", func(t *testing.T) {
		got := mapcycle.PrefixDuplicatesOf("koth_nucleus", mapcycle.Document{"cp_dustbowl_pro"})
		assert.Empty(t, got)

		got = mapcycle.PrefixDuplicatesOf("koth_viaduct", mapcycle.Document{
			"koth_nucleus_event",
			"koth_nucleus_pro",
		})
		assert.Equal(t, []string{"koth_nucleus"}, got)
	})

	t.Run("no duplicates for unrelated names", func(t *testing.T) {
		got := mapcycle.PrefixDuplicatesOf("ctf_turbine", mapcycle.Document{"cp_dustbowl", "pl_upward"})
		assert.Empty(t, got)
	})
}

func TestPossibleWorkshopDuplicates(t *testing.T) {
	t.Run("flags installed content against plain names", func(t *testing.T) {
		index := mapIndex{"123": "pl_barnblitz_final"}
		doc := mapcycle.Document{"workshop/123", "pl_barnblitz_final"}

		got := mapcycle.PossibleWorkshopDuplicates(doc, index)

		assert.Equal(t, map[string][]string{
			"workshop/123": {"pl_barnblitz", "pl_barnblitz_final"},
		}, got)
	})

	t.Run("nil index yields empty mapping", func(t *testing.T) {
		doc := mapcycle.Document{"workshop/123", "pl_barnblitz_final"}
		assert.Empty(t, mapcycle.PossibleWorkshopDuplicates(doc, nil))
	})

	t.Run("content without a local install is skipped", func(t *testing.T) {
		doc := mapcycle.Document{"workshop/999", "pl_barnblitz_final"}
		assert.Empty(t, mapcycle.PossibleWorkshopDuplicates(doc, mapIndex{}))
	})

	t.Run("non-colliding content is not reported", func(t *testing.T) {
		index := mapIndex{"123": "koth_octothorpe"}
		doc := mapcycle.Document{"workshop/123", "pl_upward"}
		assert.Empty(t, mapcycle.PossibleWorkshopDuplicates(doc, index))
	})

	t.Run("long-form entries are keyed by short form", func(t *testing.T) {
		index := mapIndex{"123": "pl_barnblitz_final"}
		doc := mapcycle.Document{"workshop/pl_barnblitz_final.ugc123", "pl_barnblitz_final"}

		got := mapcycle.PossibleWorkshopDuplicates(doc, index)

		assert.Contains(t, got, "workshop/123")
	})
}
