package character

import (
	"strings"

	"github.com/vampirenirmal/writermem/internal/memory"
)

// AddEmotionPoint appends to the character's emotion timeline. The timeline
// is append-only: points are never reordered or deduplicated. Intensity 0
// defaults to 3; an empty timestamp defaults to now. Returns nil when the
// character does not resolve.
func AddEmotionPoint(doc *memory.Document, nameOrAlias string, p memory.EmotionPoint) *memory.EmotionPoint {
	c := doc.ResolveCharacter(nameOrAlias)
	if c == nil {
		return nil
	}
	if p.Intensity == 0 {
		p.Intensity = 3
	}
	if p.Timestamp == "" {
		p.Timestamp = memory.Now()
	}
	c.EmotionTimeline = append(c.EmotionTimeline, p)
	c.Updated = memory.Now()
	return &c.EmotionTimeline[len(c.EmotionTimeline)-1]
}

// Timeline returns the full emotion timeline in insertion order.
func Timeline(doc *memory.Document, nameOrAlias string) []memory.EmotionPoint {
	c := doc.ResolveCharacter(nameOrAlias)
	if c == nil {
		return nil
	}
	return c.EmotionTimeline
}

// LatestEmotion returns the most recently appended point, or nil.
func LatestEmotion(doc *memory.Document, nameOrAlias string) *memory.EmotionPoint {
	c := doc.ResolveCharacter(nameOrAlias)
	if c == nil || len(c.EmotionTimeline) == 0 {
		return nil
	}
	return &c.EmotionTimeline[len(c.EmotionTimeline)-1]
}

// EmotionArc renders the timeline as a single arrow-joined string of emotion
// labels in insertion order.
func EmotionArc(doc *memory.Document, nameOrAlias string) string {
	c := doc.ResolveCharacter(nameOrAlias)
	if c == nil || len(c.EmotionTimeline) == 0 {
		return ""
	}
	labels := make([]string, len(c.EmotionTimeline))
	for i, p := range c.EmotionTimeline {
		labels[i] = p.Emotion
	}
	return strings.Join(labels, " → ")
}
