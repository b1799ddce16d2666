package naming

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignCollisionGetsSuffix(t *testing.T) {
	a := NewAllocator()

	first, renamed := a.Assign("East Region")
	assert.Equal(t, "East_Region", first)
	assert.False(t, renamed)

	second, renamed := a.Assign("East-Region")
	assert.Equal(t, "East_Region_2", second)
	assert.True(t, renamed)

	third, _ := a.Assign("east region")
	assert.Equal(t, "east_region_3", third)

	assert.Equal(t, 3, a.Len())
	assert.Equal(t, 2, a.Renamed())
	assert.True(t, a.Taken("EAST_REGION_2"))
}

func TestAssignSuffixCollidesWithNaturalName(t *testing.T) {
	a := NewAllocator()

	a.Assign("East")
	suffixed, _ := a.Assign("East")
	natural, renamed := a.Assign("East 2")

	assert.Equal(t, "East_2", suffixed)
	assert.Equal(t, "East_2_2", natural)
	assert.True(t, renamed)
}

func TestAssignKeepsSuffixWithinLimit(t *testing.T) {
	a := NewAllocator()
	long := strings.Repeat("A", 79) + " B"

	names := make(map[string]struct{})

	for range 12 {
		name, _ := a.Assign(long)
		require.LessOrEqual(t, len(name), MaxLength)
		names[strings.ToLower(name)] = struct{}{}
	}

	assert.Len(t, names, 12)
	assert.True(t, a.Taken(strings.Repeat("A", 79)))
	assert.True(t, a.Taken(strings.Repeat("A", 78)+"_2"))
	assert.True(t, a.Taken(strings.Repeat("A", 77)+"_10"))
}

func TestAssignManyDistinct(t *testing.T) {
	a := NewAllocator()
	seen := make(map[string]string)

	for i := range 200 {
		display := fmt.Sprintf("Region %d", i%7)

		name, _ := a.Assign(display)
		_, dup := seen[strings.ToLower(name)]
		require.False(t, dup, "duplicate %s for %s", name, display)
		require.True(t, IsValid(name))

		seen[strings.ToLower(name)] = display
	}
}
