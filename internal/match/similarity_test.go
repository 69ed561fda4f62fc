package match

import (
	"math"
	"testing"
)

func TestSimilarity_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"Modi free bike scheme 2025", "PM Modi did not announce a free bike scheme for Chhath Puja 2025"},
		{"the quick brown fox", "a lazy dog"},
		{"", "something"},
		{"BREAKING news today", "breaking News Today!"},
	}

	for _, p := range pairs {
		ab := Similarity(p[0], p[1])
		ba := Similarity(p[1], p[0])
		if ab != ba {
			t.Errorf("Similarity(%q, %q) = %v but reversed = %v", p[0], p[1], ab, ba)
		}
	}
}

func TestSimilarity_Identity(t *testing.T) {
	texts := []string{
		"Modi free bike scheme 2025",
		"The market crashed today.",
	}

	for _, s := range texts {
		if sim := Similarity(s, s); sim != 1.0 {
			t.Errorf("Similarity(%q, same) = %v, want 1.0", s, sim)
		}
	}
}

func TestSimilarity_EmptyInput(t *testing.T) {
	if sim := Similarity("", "some claim"); sim != 0.0 {
		t.Errorf("Similarity with empty input = %v, want 0.0", sim)
	}

	// Text that reduces to nothing after stopword removal
	if sim := Similarity("the a an of", "some claim"); sim != 0.0 {
		t.Errorf("Similarity with stopword-only input = %v, want 0.0", sim)
	}
}

func TestSimilarity_MatchAboveThreshold(t *testing.T) {
	// Query tokens: {modi, free, bike, scheme, 2025}
	// Claim tokens: {pm, modi, did, not, announce, free, bike, scheme, chhath, puja, 2025}
	// Intersection 5, union 11 -> 0.45
	query := "Modi free bike scheme 2025"
	claim := "PM Modi did not announce a free bike scheme for Chhath Puja 2025"

	sim := Similarity(query, claim)
	want := 5.0 / 11.0
	if math.Abs(sim-want) > 1e-9 {
		t.Errorf("Similarity = %v, want %v", sim, want)
	}
	if sim < 0.2 {
		t.Errorf("expected similarity %v to clear the 0.2 acceptance threshold", sim)
	}
}

func TestSimilarity_MismatchBelowThreshold(t *testing.T) {
	// Intersection {modi, 2025} = 2, union 15 -> 0.133
	query := "Narendra modi is the prime minister of India in 2025"
	claim := "PM Modi did not announce a free bike scheme for Chhath Puja 2025"

	sim := Similarity(query, claim)
	if sim >= 0.2 {
		t.Errorf("expected similarity %v below the 0.2 acceptance threshold", sim)
	}
}

func TestTokenize_StripsPunctuationAndStopwords(t *testing.T) {
	tokens := Tokenize("The market, crashed today. Why?")

	for _, want := range []string{"market", "crashed", "today", "why"} {
		if _, ok := tokens[want]; !ok {
			t.Errorf("expected token %q in %v", want, tokens)
		}
	}
	if _, ok := tokens["the"]; ok {
		t.Error("stopword 'the' should have been removed")
	}
}
