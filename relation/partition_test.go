package relation_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relclosure/relation"
)

func TestPartitionOf_Identity(t *testing.T) {
	t.Parallel()

	id, err := relation.Identity(3)
	require.NoError(t, err)
	require.True(t, relation.CheckAll(id).IsEquivalence())

	p := relation.PartitionOf(id)
	want := relation.Partition{
		{Seed: 0, Members: []int{0}},
		{Seed: 1, Members: []int{1}},
		{Seed: 2, Members: []int{2}},
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Fatalf("PartitionOf(identity) mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, [][]int{{1}, {2}, {3}}, p.Labels())
}

func TestPartitionOf_TwoBlocks(t *testing.T) {
	t.Parallel()

	// {0,2,4} and {1,3}
	r := MustRelation(t, [][]int{
		{1, 0, 1, 0, 1},
		{0, 1, 0, 1, 0},
		{1, 0, 1, 0, 1},
		{0, 1, 0, 1, 0},
		{1, 0, 1, 0, 1},
	})
	p := relation.PartitionOf(r)
	require.NoError(t, p.Validate(5))
	assert.Equal(t, 2, p.Len())
	if diff := cmp.Diff([][]int{{1, 3, 5}, {2, 4}}, p.Labels()); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}

	cl, ok := p.ClassOf(3)
	require.True(t, ok)
	assert.Equal(t, 1, cl.Seed)
	_, ok = p.ClassOf(7)
	assert.False(t, ok)
}

// Every equivalence closure partitions its set: classes are disjoint, cover
// {0..n-1}, and rebuilding the relation from the classes gives it back.
func TestPartitionOf_EquivalenceClosureRoundTrip(t *testing.T) {
	t.Parallel()

	for _, r := range sampleRelations(t) {
		eq := relation.EquivalenceClosure(r)
		p := relation.PartitionOf(eq)
		require.NoError(t, p.Validate(r.Size()), "relation:\n%s", r)

		back, err := p.Relation(r.Size())
		require.NoError(t, err)
		require.True(t, back.Equal(eq), "round trip mismatch for\n%s", r)

		for _, cl := range p {
			require.NotEmpty(t, cl.Members)
			require.Equal(t, cl.Seed, cl.Members[0], "seed is the smallest member")
		}
	}
}

func TestPartitionOf_NonEquivalenceNotEnforced(t *testing.T) {
	t.Parallel()

	// Not reflexive: element 0 opens a class without itself.
	r := MustRelation(t, [][]int{{0, 1}, {0, 1}})
	p := relation.PartitionOf(r)
	assert.Equal(t, relation.Partition{{Seed: 0, Members: []int{1}}}, p)
	AssertErrorIs(t, p.Validate(2), relation.ErrNotPartition)

	// Not symmetric: the classes seeded by 0 and 2 both contain 1.
	o := MustRelation(t, [][]int{{1, 1, 0}, {0, 1, 0}, {0, 1, 1}})
	AssertErrorIs(t, relation.PartitionOf(o).Validate(3), relation.ErrNotPartition)
}

func TestPartition_ValidateErrors(t *testing.T) {
	t.Parallel()

	AssertErrorIs(t, relation.Partition{{Seed: 0}}.Validate(1), relation.ErrNotPartition)
	AssertErrorIs(t, relation.Partition{}.Validate(-1), relation.ErrInvalidDimensions)
	AssertErrorIs(t, relation.Partition{{Seed: 0, Members: []int{0, 5}}}.Validate(2), relation.ErrNotPartition)
	AssertErrorIs(t, relation.Partition{{Seed: 0, Members: []int{0}}}.Validate(2), relation.ErrNotPartition)

	_, err := relation.Partition{{Seed: 0, Members: []int{0}}}.Relation(0)
	AssertErrorIs(t, err, relation.ErrInvalidDimensions)
}

func TestPartitionOf_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, relation.PartitionOf(nil))
	assert.Empty(t, relation.PartitionOf(&relation.Relation{}).Labels())
}
