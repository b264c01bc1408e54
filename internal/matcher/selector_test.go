package matcher

import (
	"testing"

	"github.com/stpnv0/TableBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectOptimal_SmallestAdequateWins(t *testing.T) {
	tables := []*domain.Table{
		{ID: "six", Capacity: 6, MinParty: 1, MaxParty: 6},
		{ID: "two", Capacity: 2, MinParty: 1, MaxParty: 2},
		{ID: "four", Capacity: 4, MinParty: 1, MaxParty: 4},
	}

	got := SelectOptimal(tables, 3, false)

	require.NotNil(t, got)
	assert.Equal(t, "four", got.ID)
}

func TestSelectOptimal_StableForEqualCapacity(t *testing.T) {
	tables := []*domain.Table{
		{ID: "t2", Capacity: 2, MinParty: 1, MaxParty: 2},
		{ID: "t4a", Capacity: 4, MinParty: 1, MaxParty: 4},
		{ID: "t4b", Capacity: 4, MinParty: 1, MaxParty: 4},
		{ID: "t6", Capacity: 6, MinParty: 1, MaxParty: 6},
	}

	got := SelectOptimal(tables, 3, false)
	require.NotNil(t, got)
	assert.Equal(t, "t4a", got.ID)

	reversed := []*domain.Table{tables[3], tables[2], tables[1], tables[0]}
	got = SelectOptimal(reversed, 3, false)
	require.NotNil(t, got)
	assert.Equal(t, "t4b", got.ID)
}

func TestSelectOptimal_ApproximateIsNoOp(t *testing.T) {
	tables := []*domain.Table{
		{ID: "big", Capacity: 10, MinParty: 1, MaxParty: 10},
		{ID: "mid", Capacity: 8, MinParty: 1, MaxParty: 8},
	}

	exact := SelectOptimal(tables, 2, false)
	approx := SelectOptimal(tables, 2, true)

	require.NotNil(t, approx)
	assert.Same(t, exact, approx)
	assert.Equal(t, "mid", approx.ID)
}

func TestSelectOptimal_RevalidatesBounds(t *testing.T) {
	tables := []*domain.Table{
		{ID: "min-too-high", Capacity: 2, MinParty: 2, MaxParty: 2},
		{ID: "ok", Capacity: 6, MinParty: 1, MaxParty: 6},
	}

	got := SelectOptimal(tables, 1, false)

	require.NotNil(t, got)
	assert.Equal(t, "ok", got.ID)
}

func TestSelectOptimal_None(t *testing.T) {
	assert.Nil(t, SelectOptimal(nil, 2, false))
	assert.Nil(t, SelectOptimal([]*domain.Table{{ID: "x", Capacity: 2, MinParty: 1, MaxParty: 2}}, 3, true))
}

func TestSelectOptimal_DoesNotReorderInput(t *testing.T) {
	tables := []*domain.Table{
		{ID: "b", Capacity: 6, MinParty: 1, MaxParty: 6},
		{ID: "a", Capacity: 2, MinParty: 1, MaxParty: 2},
	}

	_ = SelectOptimal(tables, 2, false)

	assert.Equal(t, []string{"b", "a"}, ids(tables))
}
