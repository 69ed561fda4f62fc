package heuristics

import (
	"strings"

	"github.com/vivekminipuri/AI-fake-news-detector/internal/model"
)

// lexiconEntry carries the polarity and subjectivity weight of one word.
// Polarity runs -1.0 (negative) to 1.0 (positive); subjectivity runs
// 0.0 (objective) to 1.0 (opinionated).
type lexiconEntry struct {
	polarity     float64
	subjectivity float64
}

// sentimentLexicon is a fixed word-level lexicon tuned for news language.
// Scores are averaged over matched words, so adding entries changes
// granularity, not scale.
var sentimentLexicon = map[string]lexiconEntry{
	// strongly negative, highly subjective
	"shocking": {-0.6, 0.9}, "horrific": {-1.0, 1.0}, "terrible": {-1.0, 1.0},
	"disaster": {-0.8, 0.7}, "catastrophe": {-0.9, 0.8}, "outrageous": {-0.8, 0.9},
	"disgusting": {-0.9, 1.0}, "evil": {-0.9, 0.9}, "corrupt": {-0.8, 0.8},
	"scandal": {-0.7, 0.7}, "fraud": {-0.8, 0.6}, "hoax": {-0.7, 0.7},
	"dangerous": {-0.6, 0.6}, "devastating": {-0.9, 0.8}, "chaos": {-0.7, 0.7},
	"crisis": {-0.6, 0.5}, "scam": {-0.8, 0.7}, "lies": {-0.7, 0.8},
	"fake": {-0.6, 0.6}, "threat": {-0.5, 0.4}, "panic": {-0.7, 0.7},
	"fear": {-0.6, 0.6}, "horror": {-0.9, 0.8}, "worst": {-1.0, 1.0},
	"destroy": {-0.7, 0.5}, "collapse": {-0.6, 0.4},

	// strongly positive, highly subjective
	"amazing": {0.75, 0.9}, "incredible": {0.9, 0.9}, "miracle": {0.8, 0.9},
	"wonderful": {1.0, 1.0}, "brilliant": {0.9, 0.9}, "fantastic": {0.9, 0.9},
	"perfect": {1.0, 1.0}, "best": {1.0, 0.3}, "stunning": {0.7, 0.8},
	"extraordinary": {0.8, 0.9}, "breakthrough": {0.6, 0.5}, "historic": {0.5, 0.5},
	"triumph": {0.8, 0.8}, "spectacular": {0.9, 0.9}, "unbelievable": {0.4, 1.0},

	// milder, mixed subjectivity
	"good": {0.7, 0.6}, "great": {0.8, 0.75}, "bad": {-0.7, 0.67},
	"poor": {-0.4, 0.6}, "strong": {0.4, 0.4}, "weak": {-0.4, 0.5},
	"success": {0.5, 0.4}, "failure": {-0.5, 0.5}, "win": {0.5, 0.4},
	"lose": {-0.4, 0.4}, "controversial": {-0.3, 0.8}, "allegedly": {0.0, 0.8},
	"reportedly": {0.0, 0.6}, "claims": {0.0, 0.5}, "rumor": {-0.2, 0.8},
	"believe": {0.0, 0.7}, "insane": {-0.5, 0.9}, "crazy": {-0.4, 0.9},
	"urgent": {-0.2, 0.6}, "exposed": {-0.4, 0.6}, "banned": {-0.4, 0.4},
	"secret": {-0.2, 0.6}, "explosive": {-0.3, 0.7}, "massive": {0.1, 0.6},
	"huge": {0.2, 0.6}, "viral": {0.0, 0.5},
}

// negators flip the polarity of the sentiment word that follows them
var negators = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "won't": {}, "wont": {},
	"isn't": {}, "wasn't": {}, "don't": {}, "doesn't": {}, "didn't": {},
}

// AnalyzeSentiment derives polarity and subjectivity from the full text
// by averaging the lexicon scores of matched words. A word preceded by a
// negator contributes inverted polarity. Text with no sentiment-bearing
// words is fully neutral and objective.
func AnalyzeSentiment(text string) model.Sentiment {
	words := strings.Fields(strings.ToLower(text))

	var polaritySum, subjectivitySum float64
	matched := 0
	negated := false

	for _, raw := range words {
		w := strings.Trim(raw, ".,!?;:\"'()[]")
		if _, ok := negators[w]; ok {
			negated = true
			continue
		}

		entry, ok := sentimentLexicon[w]
		if !ok {
			continue
		}

		p := entry.polarity
		if negated {
			p = -p
		}
		negated = false

		polaritySum += p
		subjectivitySum += entry.subjectivity
		matched++
	}

	if matched == 0 {
		return model.Sentiment{}
	}

	return model.Sentiment{
		Polarity:     clampF(polaritySum/float64(matched), -1.0, 1.0),
		Subjectivity: clampF(subjectivitySum/float64(matched), 0.0, 1.0),
	}
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
