package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func slideNames(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(rune('A' + i))
	}
	return out
}

func TestBuildDisplayFiniteIsIdentity(t *testing.T) {
	items := slideNames(4)
	assert.Equal(t, items, BuildDisplay(items, 3, false))
}

func TestBuildDisplayInfiniteLayout(t *testing.T) {
	items := slideNames(8)
	got := BuildDisplay(items, 3, true)

	assert.Len(t, got, 8+3*3)
	assert.Equal(t, []string{"F", "G", "H"}, got[:3], "tail clone")
	assert.Equal(t, items, got[3:11])
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, got[11:], "head clone")
}

func TestBuildDisplayFewerItemsThanPage(t *testing.T) {
	items := slideNames(2)
	got := BuildDisplay(items, 3, true)

	assert.Len(t, got, 2+3*3)
	assert.Equal(t, []string{"B", "A", "B"}, got[:3])
	assert.Equal(t, []string{"A", "B", "A", "B", "A", "B"}, got[5:])
}

func TestBuildDisplayIsPeriodic(t *testing.T) {
	for _, total := range []int{1, 2, 5, 8} {
		for perPage := 1; perPage <= 4; perPage++ {
			items := slideNames(total)
			got := BuildDisplay(items, perPage, true)
			for i := total; i < len(got); i++ {
				assert.Equal(t, got[i-total], got[i], "total=%d perPage=%d i=%d", total, perPage, i)
			}
			for i := range got {
				assert.Equal(t, items[RealIndex(i, total, perPage, true)], got[i])
			}
		}
	}
}

func TestBuildDisplayEmpty(t *testing.T) {
	assert.Empty(t, BuildDisplay([]string{}, 3, true))
	assert.Equal(t, 0, DisplayLength(0, 3, true))
}
