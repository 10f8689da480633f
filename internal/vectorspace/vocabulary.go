package vectorspace

// Vocabulary maps n-gram terms to stable column indexes and their
// inverse-document-frequency weights. Immutable once fit; refitting
// builds a new Vocabulary and invalidates vectors produced by the old
// one (index positions are not stable across fits).
type Vocabulary struct {
	indexes map[string]int
	terms   []string
	idf     []float64
}

// Size returns the number of terms in the vocabulary.
func (v *Vocabulary) Size() int { return len(v.terms) }

// Lookup returns the column index for a term.
func (v *Vocabulary) Lookup(term string) (int, bool) {
	idx, ok := v.indexes[term]
	return idx, ok
}

// Term returns the term at the given column index (reverse lookup).
func (v *Vocabulary) Term(index int) string {
	if index < 0 || index >= len(v.terms) {
		return ""
	}
	return v.terms[index]
}

// IDF returns the inverse-document-frequency weight at the given index.
func (v *Vocabulary) IDF(index int) float64 {
	if index < 0 || index >= len(v.idf) {
		return 0
	}
	return v.idf[index]
}

// Vectorize converts any document into an L2-normalized sparse vector
// over this vocabulary: weight = term count × idf, then normalization.
// A document with no vocabulary terms yields the zero vector. Vectorize
// never mutates the vocabulary, so one fitted Vocabulary serves both
// the corpus and arbitrary query strings.
func (v *Vocabulary) Vectorize(doc string) Vector {
	if v.Size() == 0 {
		return nil
	}
	counts := make(map[int]float64)
	for _, gram := range Ngrams(Tokenize(doc)) {
		if idx, ok := v.indexes[gram]; ok {
			counts[idx]++
		}
	}
	if len(counts) == 0 {
		return nil
	}
	for idx := range counts {
		counts[idx] *= v.idf[idx]
	}
	return newVector(counts).normalized()
}
