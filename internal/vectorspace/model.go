// Package vectorspace implements the TF-IDF vector-space model used for
// tutor retrieval: n-gram vocabulary fitting over a document corpus and
// sparse, L2-normalized document vectors. It holds no domain knowledge
// and no mutable shared state; every fit builds a fresh Vocabulary.
package vectorspace

import (
	"math"
	"sort"
)

// Vocabulary defaults, matching common vectorizer behavior.
const (
	DefaultMaxFeatures    = 5000
	DefaultMaxDocFraction = 0.95
	DefaultMinDocCount    = 1
)

// Config bounds the fitted vocabulary. The zero value takes defaults.
type Config struct {
	// MaxFeatures caps the vocabulary size.
	MaxFeatures int
	// MaxDocFraction drops terms present in more than ceil(fraction × N)
	// documents as uninformative. The ceiling keeps tiny corpora intact:
	// two identical documents must not prune each other's terms.
	MaxDocFraction float64
	// MinDocCount drops terms below this document frequency.
	MinDocCount int
}

func (c Config) withDefaults() Config {
	if c.MaxFeatures <= 0 {
		c.MaxFeatures = DefaultMaxFeatures
	}
	if c.MaxDocFraction <= 0 || c.MaxDocFraction > 1 {
		c.MaxDocFraction = DefaultMaxDocFraction
	}
	if c.MinDocCount <= 0 {
		c.MinDocCount = DefaultMinDocCount
	}
	return c
}

// Model fits vocabularies over document batches.
type Model struct {
	cfg Config
}

// NewModel creates a model with the given vocabulary bounds.
func NewModel(cfg Config) *Model {
	return &Model{cfg: cfg.withDefaults()}
}

// Fit builds a Vocabulary from the batch of normalized documents.
// Terms below MinDocCount or above the MaxDocFraction ceiling are
// discarded. Survivors are ranked by corpus-wide term frequency (ties
// broken lexicographically), capped at MaxFeatures, and indexed in that
// order.
// idf = ln((1+N)/(1+df)) + 1, strictly positive and monotone decreasing
// in document frequency. An empty batch yields an empty Vocabulary and
// never an error; vectorizing anything against it yields the zero vector.
func (m *Model) Fit(docs []string) *Vocabulary {
	df := make(map[string]int)
	tf := make(map[string]int)
	for _, doc := range docs {
		grams := Ngrams(Tokenize(doc))
		seen := make(map[string]struct{}, len(grams))
		for _, g := range grams {
			tf[g]++
			if _, ok := seen[g]; ok {
				continue
			}
			seen[g] = struct{}{}
			df[g]++
		}
	}

	n := len(docs)
	maxDF := int(math.Ceil(m.cfg.MaxDocFraction * float64(n)))
	kept := make([]string, 0, len(df))
	for term, count := range df {
		if count < m.cfg.MinDocCount || count > maxDF {
			continue
		}
		kept = append(kept, term)
	}
	sort.Slice(kept, func(i, j int) bool {
		if tf[kept[i]] != tf[kept[j]] {
			return tf[kept[i]] > tf[kept[j]]
		}
		return kept[i] < kept[j]
	})
	if len(kept) > m.cfg.MaxFeatures {
		kept = kept[:m.cfg.MaxFeatures]
	}

	voc := &Vocabulary{
		indexes: make(map[string]int, len(kept)),
		terms:   make([]string, len(kept)),
		idf:     make([]float64, len(kept)),
	}
	for i, term := range kept {
		voc.indexes[term] = i
		voc.terms[i] = term
		voc.idf[i] = math.Log(float64(1+n)/float64(1+df[term])) + 1
	}
	return voc
}
