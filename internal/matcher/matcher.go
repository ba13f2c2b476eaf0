package matcher

import (
	"math"

	"healthbot/internal/domain"
)

// Matcher scores questions against the fixed catalog. All state is
// established at construction and read-only afterwards, so a single
// Matcher is safe for unsynchronized concurrent use.
type Matcher struct {
	space     domain.Vectorizer
	vectors   [][]float64
	answers   []string
	threshold float64
	fallback  string
}

// New projects every catalog phrase into the fitted space and returns
// a ready matcher. phrases and answers must be index-aligned.
func New(space domain.Vectorizer, phrases, answers []string, threshold float64, fallback string) *Matcher {
	vectors := make([][]float64, len(phrases))
	for i, p := range phrases {
		vectors[i] = space.Project(p)
	}
	return &Matcher{
		space:     space,
		vectors:   vectors,
		answers:   answers,
		threshold: threshold,
		fallback:  fallback,
	}
}

// Match projects text and picks the catalog entry with the highest
// cosine similarity. Ties go to the lowest index. Below the threshold
// the fallback answer is returned with BestIndex -1; an empty or
// unknown-vocabulary question deterministically lands there because
// its projection is the zero vector.
func (m *Matcher) Match(text string) domain.MatchResult {
	query := m.space.Project(text)
	best := -1
	bestScore := 0.0
	for i, ref := range m.vectors {
		score := cosine(query, ref)
		if best == -1 || score > bestScore {
			best = i
			bestScore = score
		}
	}
	if best == -1 || bestScore < m.threshold {
		return domain.MatchResult{BestIndex: -1, Score: bestScore, Answer: m.fallback}
	}
	return domain.MatchResult{BestIndex: best, Score: bestScore, Answer: m.answers[best]}
}

// cosine is dot(a,b) / (|a||b|), defined as 0 when either vector has
// zero magnitude.
func cosine(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	den := math.Sqrt(na) * math.Sqrt(nb)
	if den == 0 {
		return 0
	}
	return dot / den
}
