package character

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vampirenirmal/writermem/internal/memory"
)

// SpeechClassifier buckets a line of dialogue into a speech level. The
// default is a fixed-pattern classifier; a stronger language-specific
// analyzer can be swapped in without touching the lint contract.
type SpeechClassifier interface {
	// Classify returns one of "formal", "informal", "casual", or "mixed".
	Classify(line string) string
}

// patternClassifier counts sentence-final matches across three disjoint
// regexp families and picks the majority bucket. Korean speech registers are
// sentence-final, which is what makes a suffix classifier workable at all.
type patternClassifier struct{}

// NewPatternClassifier returns the default fixed-pattern speech classifier.
func NewPatternClassifier() SpeechClassifier {
	return patternClassifier{}
}

var (
	sentenceSplit = regexp.MustCompile(`[.!?…~\n]+`)

	// Precedence keeps the families disjoint: 습니다 would also match the
	// casual 다 ending, so formal is tested first, then the polite 요/죠
	// endings, then casual.
	formalEnding   = regexp.MustCompile(`(습니다|습니까|십니다|십시오)$`)
	informalEnding = regexp.MustCompile(`(요|죠)$`)
	casualEnding   = regexp.MustCompile(`(야|어|아|지|래|네|다|냐|니|거든|잖아)$`)
)

func (patternClassifier) Classify(line string) string {
	counts := map[string]int{}
	for _, raw := range sentenceSplit.Split(line, -1) {
		sentence := strings.TrimSpace(raw)
		sentence = strings.Trim(sentence, `"'“”‘’`)
		if sentence == "" {
			continue
		}
		switch {
		case formalEnding.MatchString(sentence):
			counts["formal"]++
		case informalEnding.MatchString(sentence):
			counts["informal"]++
		case casualEnding.MatchString(sentence):
			counts["casual"]++
		}
	}

	best, bestCount, tied := "", 0, false
	for _, level := range []string{"formal", "informal", "casual"} {
		switch {
		case counts[level] > bestCount:
			best, bestCount, tied = level, counts[level], false
		case counts[level] == bestCount && bestCount > 0:
			tied = true
		}
	}
	if bestCount == 0 || tied {
		return "mixed"
	}
	return best
}

// Check is one lint check outcome.
type Check struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
}

// LintResult aggregates the three checks. Status is "pass" with zero
// failures, "warn" with exactly one, "fail" otherwise.
type LintResult struct {
	Status string  `json:"status"`
	Checks []Check `json:"checks"`
}

// restrainedMarkers flag tone descriptions that imply a quiet register.
var restrainedMarkers = []string{
	"차분", "담담", "조용", "무뚝뚝", "절제", "냉정",
	"calm", "quiet", "restrained", "plain", "flat",
}

// LintDialogue runs the stateless three-check heuristic over one line of
// dialogue against the character's stored profile. It is a stylistic linter,
// not a semantic judge; false positives are expected and acceptable.
func LintDialogue(c *memory.Character, line string, cls SpeechClassifier) LintResult {
	if cls == nil {
		cls = NewPatternClassifier()
	}

	checks := make([]Check, 0, 3)

	tone := Check{Name: "tone", Passed: true}
	if isRestrainedTone(c.Tone) && strings.Count(line, "!") > 1 {
		tone.Passed = false
		tone.Detail = fmt.Sprintf("tone %q reads as restrained but the line has %d exclamation marks", c.Tone, strings.Count(line, "!"))
	}
	checks = append(checks, tone)

	speech := Check{Name: "speechLevel", Passed: true}
	detected := cls.Classify(line)
	if detected != "mixed" && c.SpeechLevel != "" && c.SpeechLevel != "mixed" && detected != c.SpeechLevel {
		speech.Passed = false
		speech.Detail = fmt.Sprintf("declared %q but the line reads as %q", c.SpeechLevel, detected)
	}
	checks = append(checks, speech)

	keyword := Check{Name: "keywords", Passed: true}
	if len(c.Keywords) > 0 {
		keyword.Passed = false
		keyword.Detail = "line contains none of the declared keywords"
		for _, kw := range c.Keywords {
			if strings.Contains(line, kw) {
				keyword.Passed = true
				keyword.Detail = ""
				break
			}
		}
	}
	checks = append(checks, keyword)

	failed := 0
	for _, ch := range checks {
		if !ch.Passed {
			failed++
		}
	}
	status := "pass"
	switch {
	case failed == 1:
		status = "warn"
	case failed >= 2:
		status = "fail"
	}
	return LintResult{Status: status, Checks: checks}
}

func isRestrainedTone(tone string) bool {
	lowered := strings.ToLower(tone)
	for _, marker := range restrainedMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}
