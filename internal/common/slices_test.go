package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type item struct {
	id     string
	parent string
}

func TestIndexByFirstWins(t *testing.T) {
	items := []item{{"1", "p"}, {"2", "p"}, {"1", "q"}, {"", "x"}}

	idx := IndexBy(items, func(i item) string { return i.id })

	assert.Len(t, idx, 2)
	assert.Equal(t, "p", idx["1"].parent)
	assert.NotContains(t, idx, "")
}

func TestGroupByPreservesOrder(t *testing.T) {
	items := []item{{"1", "p"}, {"2", "q"}, {"3", "p"}, {"4", ""}}

	groups := GroupBy(items, func(i item) string { return i.parent })

	assert.Equal(t, []item{{"1", "p"}, {"3", "p"}}, groups["p"])
	assert.Equal(t, []item{{"2", "q"}}, groups["q"])
	assert.NotContains(t, groups, "")
}

func TestFilter(t *testing.T) {
	even := Filter([]int{1, 2, 3, 4}, func(i int) bool { return i%2 == 0 })
	assert.Equal(t, []int{2, 4}, even)
	assert.Nil(t, Filter([]int{1}, func(int) bool { return false }))
}
