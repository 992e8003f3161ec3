package season

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignColors(t *testing.T) {
	t.Run("deterministic for a fixed identity order", func(t *testing.T) {
		identities := []string{"ruth", "naomi", "boaz"}

		first := AssignColors(identities)
		second := AssignColors(identities)

		assert.Equal(t, first, second)
		assert.Equal(t, Palette[0], first["ruth"])
		assert.Equal(t, Palette[1], first["naomi"])
		assert.Equal(t, Palette[2], first["boaz"])
	})

	t.Run("first seven identities get distinct colors", func(t *testing.T) {
		identities := make([]string, len(Palette))
		for i := range identities {
			identities[i] = fmt.Sprintf("member-%d", i)
		}

		colors := AssignColors(identities)

		distinct := make(map[string]bool)
		for _, color := range colors {
			distinct[color] = true
		}
		assert.Len(t, distinct, len(Palette))
	})

	t.Run("eighth identity wraps around to the first color", func(t *testing.T) {
		identities := make([]string, 8)
		for i := range identities {
			identities[i] = fmt.Sprintf("member-%d", i)
		}

		colors := AssignColors(identities)

		require.Len(t, colors, 8)
		assert.Equal(t, Palette[0], colors["member-7"])
		assert.Equal(t, colors["member-0"], colors["member-7"])
	})

	t.Run("empty input yields empty mapping", func(t *testing.T) {
		assert.Empty(t, AssignColors(nil))
	})
}
