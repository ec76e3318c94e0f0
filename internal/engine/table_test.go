package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFaceValueTableRoundTrip(t *testing.T) {
	table, err := NewFaceValueTable(DefaultFaceValues())
	require.NoError(t, err)

	for _, f := range allFaces {
		got, err := table.Face(table.Value(f))
		require.NoError(t, err)
		assert.Equal(t, f, got, "faceOf(valueOf(%s))", f)
	}
}

func TestFaceValueTableCustomValues(t *testing.T) {
	// values need not be 1..6, only distinct
	table, err := NewFaceValueTable(map[Face]int{
		FaceForward: 10,
		FaceUp:      20,
		FaceLeft:    30,
		FaceRight:   40,
		FaceDown:    50,
		FaceBack:    -5,
	})
	require.NoError(t, err)
	assert.Equal(t, 20, table.Value(FaceUp))

	f, err := table.Face(-5)
	require.NoError(t, err)
	assert.Equal(t, FaceBack, f)
}

func TestFaceValueTableRejectsMissingFace(t *testing.T) {
	entries := DefaultFaceValues()
	delete(entries, FaceBack)
	_, err := NewFaceValueTable(entries)
	assert.ErrorIs(t, err, ErrIncompleteTable)
}

func TestFaceValueTableRejectsDuplicateValues(t *testing.T) {
	entries := DefaultFaceValues()
	entries[FaceUp] = entries[FaceDown]
	_, err := NewFaceValueTable(entries)
	assert.ErrorIs(t, err, ErrDuplicateValue)
}

func TestFaceValueTableUnknownValue(t *testing.T) {
	table, err := NewFaceValueTable(DefaultFaceValues())
	require.NoError(t, err)

	_, err = table.Face(42)
	assert.ErrorIs(t, err, ErrValueNotMapped)
}
