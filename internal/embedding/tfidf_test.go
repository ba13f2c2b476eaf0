package embedding

import (
	"errors"
	"math"
	"testing"

	"healthbot/internal/domain"
)

var bengaliPhrases = []string{
	"আমার মাথা ব্যথা করছে",
	"আমার জ্বর হয়েছে",
}

func TestFitEmptyCorpus(t *testing.T) {
	if _, err := Fit(nil); !errors.Is(err, domain.ErrEmptyVocabulary) {
		t.Fatalf("expected ErrEmptyVocabulary, got %v", err)
	}
}

func TestFitTokenlessCorpus(t *testing.T) {
	if _, err := Fit([]string{"123 456", "!!! ???"}); !errors.Is(err, domain.ErrEmptyVocabulary) {
		t.Fatalf("expected ErrEmptyVocabulary, got %v", err)
	}
}

func TestProjectDeterministic(t *testing.T) {
	a, err := Fit(bengaliPhrases)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	b, err := Fit(bengaliPhrases)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	va := a.Project("আমার মাথা ব্যথা")
	vb := b.Project("আমার মাথা ব্যথা")
	if len(va) != len(vb) {
		t.Fatalf("dimension mismatch: %d vs %d", len(va), len(vb))
	}
	for i := range va {
		if va[i] != vb[i] {
			t.Fatalf("component %d differs: %v vs %v", i, va[i], vb[i])
		}
	}
}

func TestProjectUnitNorm(t *testing.T) {
	space, err := Fit(bengaliPhrases)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	for _, p := range bengaliPhrases {
		vec := space.Project(p)
		norm := 0.0
		for _, v := range vec {
			norm += v * v
		}
		if math.Abs(math.Sqrt(norm)-1.0) > 1e-9 {
			t.Fatalf("projection of %q not unit length: %v", p, math.Sqrt(norm))
		}
	}
}

func TestProjectOutOfVocabulary(t *testing.T) {
	space, err := Fit(bengaliPhrases)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	for _, text := range []string{"", "completely unrelated words", "পায়ে আঘাত"} {
		vec := space.Project(text)
		for i, v := range vec {
			if v != 0 {
				t.Fatalf("expected zero vector for %q, component %d is %v", text, i, v)
			}
		}
	}
}

func TestTokenizeCaseFolds(t *testing.T) {
	toks := Tokenize("Fever AND Headache")
	if len(toks) != 3 || toks[0] != "fever" || toks[1] != "and" || toks[2] != "headache" {
		t.Fatalf("unexpected tokens: %v", toks)
	}
}

func TestTokenizeBengali(t *testing.T) {
	toks := Tokenize("আমার মাথা ব্যথা করছে")
	if len(toks) != 4 {
		t.Fatalf("expected 4 tokens, got %v", toks)
	}
}
