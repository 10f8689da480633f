package vectorspace

import (
	"math"
	"sort"
)

// Term is a single index-weight pair in a sparse vector.
type Term struct {
	Index  int
	Weight float64
}

// Vector is a sparse document vector over a fitted vocabulary, always
// sorted by Index for merge-join operations. The zero-length Vector is
// the zero vector.
type Vector []Term

// newVector creates a sorted Vector from an index-weight map,
// dropping zero weights.
func newVector(weights map[int]float64) Vector {
	if len(weights) == 0 {
		return nil
	}
	v := make(Vector, 0, len(weights))
	for idx, w := range weights {
		if w == 0 {
			continue
		}
		v = append(v, Term{Index: idx, Weight: w})
	}
	if len(v) == 0 {
		return nil
	}
	sort.Slice(v, func(i, j int) bool { return v[i].Index < v[j].Index })
	return v
}

// IsZero reports whether the vector has no non-zero components.
func (v Vector) IsZero() bool { return len(v) == 0 }

// Dot computes the dot product of two sorted sparse vectors with a
// merge-join. For two L2-normalized vectors this is their cosine
// similarity. Zero allocations, O(n+m) time.
func (v Vector) Dot(other Vector) float64 {
	var dot float64
	i, j := 0, 0
	for i < len(v) && j < len(other) {
		switch {
		case v[i].Index == other[j].Index:
			dot += v[i].Weight * other[j].Weight
			i++
			j++
		case v[i].Index < other[j].Index:
			i++
		default:
			j++
		}
	}
	return dot
}

// Norm returns the Euclidean norm.
func (v Vector) Norm() float64 {
	var sum float64
	for _, t := range v {
		sum += t.Weight * t.Weight
	}
	return math.Sqrt(sum)
}

// Weight returns the component at the given vocabulary index, 0 when absent.
func (v Vector) Weight(index int) float64 {
	i := sort.Search(len(v), func(i int) bool { return v[i].Index >= index })
	if i < len(v) && v[i].Index == index {
		return v[i].Weight
	}
	return 0
}

// normalized returns an L2-normalized copy. The zero vector stays zero
// rather than dividing by zero.
func (v Vector) normalized() Vector {
	norm := v.Norm()
	if norm == 0 {
		return nil
	}
	out := make(Vector, len(v))
	for i, t := range v {
		out[i] = Term{Index: t.Index, Weight: t.Weight / norm}
	}
	return out
}
