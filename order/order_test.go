package order

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ericr/backdoor/tribool"
)

func TestOrderPush(t *testing.T) {
	assigns := []tribool.Tribool{tribool.True, tribool.False}
	activity := []float64{1, 2}

	ord := New(&assigns, &activity)
	ord.NewVar()
	ord.NewVar()

	require.Equal(t, 1, ord.vars[1])
}

func TestOrderPop(t *testing.T) {
	assigns := []tribool.Tribool{tribool.True, tribool.False}
	activity := []float64{1, 2}

	ord := New(&assigns, &activity)
	ord.NewVar()
	ord.NewVar()

	require.Equal(t, 0, ord.pop())
}

func TestOrderChooseSkipsAssigned(t *testing.T) {
	assigns := []tribool.Tribool{tribool.True, tribool.Undef}
	activity := []float64{5, 1}

	ord := New(&assigns, &activity)
	ord.NewVar()
	ord.NewVar()
	ord.Init()

	require.Equal(t, 2, ord.Choose(), "var 0 is assigned; only var 1 (1-based: 2) remains")
}
