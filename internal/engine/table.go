package engine

import "errors"

// ErrIncompleteTable indicates a face/value table is missing one or more faces.
var ErrIncompleteTable = errors.New("face value table must map all six faces")

// ErrDuplicateValue indicates two faces were assigned the same value.
var ErrDuplicateValue = errors.New("face value table values must be distinct")

// ErrValueNotMapped indicates a requested value has no face in the table.
var ErrValueNotMapped = errors.New("value not present in face value table")

// FaceValueTable is a bijective mapping between the six faces of a die and
// caller-assigned integer values. Values do not have to be 1..6, only
// distinct. Built once at die configuration time, immutable afterwards.
type FaceValueTable struct {
	values [FaceCount]int
	faces  map[int]Face
}

// NewFaceValueTable builds a table from the provided entries. Every face must
// be present and no two faces may share a value; misconfiguration is
// surfaced loudly instead of defaulting.
func NewFaceValueTable(entries map[Face]int) (*FaceValueTable, error) {
	if len(entries) != FaceCount {
		return nil, ErrIncompleteTable
	}
	t := &FaceValueTable{faces: make(map[int]Face, FaceCount)}
	for _, f := range allFaces {
		v, ok := entries[f]
		if !ok {
			return nil, ErrIncompleteTable
		}
		if _, dup := t.faces[v]; dup {
			return nil, ErrDuplicateValue
		}
		t.values[f] = v
		t.faces[v] = f
	}
	return t, nil
}

// DefaultFaceValues is the conventional western die layout: 1 up, 6 down,
// and opposite faces summing to 7.
func DefaultFaceValues() map[Face]int {
	return map[Face]int{
		FaceUp:      1,
		FaceDown:    6,
		FaceForward: 2,
		FaceBack:    5,
		FaceRight:   3,
		FaceLeft:    4,
	}
}

// Value returns the value assigned to f.
func (t *FaceValueTable) Value(f Face) int {
	return t.values[f]
}

// Face returns the face assigned to v, or ErrValueNotMapped if v is not in
// the table. Given the bijection invariant this only fires on caller input,
// never on resolved faces.
func (t *FaceValueTable) Face(v int) (Face, error) {
	f, ok := t.faces[v]
	if !ok {
		return 0, ErrValueNotMapped
	}
	return f, nil
}

// Values returns the table's values in face declaration order.
func (t *FaceValueTable) Values() []int {
	out := make([]int, FaceCount)
	copy(out, t.values[:])
	return out
}
