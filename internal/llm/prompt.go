package llm

import (
	"fmt"
	"strings"
)

const systemPrompt = "You are a Senior Editor and Fact Checker. Output ONLY JSON."

// claimPromptLimit bounds how much claim text is embedded in the prompt
const claimPromptLimit = 1000

// BuildPrompt constructs the adjudication prompt: the claim, the
// provisional score with its weighting formula spelled out, and a
// compact evidence summary the oracle can reason over.
func BuildPrompt(req Request) string {
	claim := req.ClaimText
	if len(claim) > claimPromptLimit {
		claim = claim[:claimPromptLimit]
	}

	factCheckLine := "No direct fact-check found."
	if req.FactCheck != nil {
		factCheckLine = fmt.Sprintf("Reviewed by %s as %q (similarity %.2f to the claim).",
			req.FactCheck.Publisher, req.FactCheck.Rating, req.FactCheck.Similarity)
	}

	newsLine := "News coverage lookup unavailable."
	if req.NewsCoverage != nil {
		if len(req.NewsCoverage.TrustedArticles) > 0 {
			newsLine = fmt.Sprintf("Found %d articles, %d from trusted mainstream outlets (top: %s).",
				req.NewsCoverage.TotalArticles, len(req.NewsCoverage.TrustedArticles),
				req.NewsCoverage.TrustedArticles[0].Source)
		} else {
			newsLine = fmt.Sprintf("Found %d articles, none from trusted mainstream outlets.",
				req.NewsCoverage.TotalArticles)
		}
	}

	flagsLine := "None."
	if len(req.RedFlags) > 0 {
		flagsLine = strings.Join(req.RedFlags, "; ")
	}

	return fmt.Sprintf(`You are a senior journalist and fact-checking expert. Generate a final authoritative report based on the provided evidence.

Claim: %q

Calculated confidence score: %d/100. This is a weighted score from our pipeline: 0.45*FactCheck + 0.35*News + 0.20*Consistency.

Evidence:
1. Fact-check registry: %s
2. Mainstream news coverage: %s
3. System flags: %s

INSTRUCTIONS:
1. Weigh the calculated score against the evidence.
2. If the score is low but the evidence strongly supports the claim, override it. If the score is high but the evidence is hollow, override it.
3. Explain your reasoning to a non-technical reader.

OUTPUT FORMAT (strict JSON):
{
  "reasoning_summary": "A clear, neutral, evidence-based summary (3-4 sentences).",
  "verdict": "Real" | "Likely Fake" | "Partially True" | "Mixed/Suspicious" | "Reliable" | "Reliable but Biased",
  "category": "Politics" | "Entertainment" | "Technology" | "Health" | "Business" | "Others",
  "confidence_score": <int 0-100>,
  "warnings": ["specific misinformation risks, missing context, or biases detected"],
  "tone_analysis": {"subjectivity": <float 0.0-1.0>, "polarity": <float -1.0-1.0>}
}`, claim, req.ProvisionalScore, factCheckLine, newsLine, flagsLine)
}
