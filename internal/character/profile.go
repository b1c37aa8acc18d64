package character

import (
	"fmt"
	"strings"

	"github.com/vampirenirmal/writermem/internal/memory"
)

// ProfileMarkdown renders a character profile. Only non-empty fields produce
// a section, so a partially filled character still reads cleanly. The output
// is deterministic for identical input.
func ProfileMarkdown(c *memory.Character) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", c.Name)

	if len(c.Aliases) > 0 {
		fmt.Fprintf(&b, "\n**Aliases**: %s\n", strings.Join(c.Aliases, ", "))
	}
	writeSection(&b, "Arc", c.Arc)
	writeSection(&b, "Tone", c.Tone)
	writeSection(&b, "Speech Level", c.SpeechLevel)
	if len(c.Keywords) > 0 {
		writeSection(&b, "Keywords", strings.Join(c.Keywords, ", "))
	}
	writeSection(&b, "Attitude", c.Attitude)
	if len(c.Taboos) > 0 {
		b.WriteString("\n## Taboos\n")
		for _, t := range c.Taboos {
			fmt.Fprintf(&b, "- %s\n", t)
		}
	}
	writeSection(&b, "Emotional Baseline", c.EmotionalBaseline)
	if len(c.EmotionalTriggers) > 0 {
		writeSection(&b, "Emotional Triggers", strings.Join(c.EmotionalTriggers, ", "))
	}
	if len(c.EmotionTimeline) > 0 {
		b.WriteString("\n## Emotion Timeline\n")
		for _, p := range c.EmotionTimeline {
			line := fmt.Sprintf("- %s (%d/5)", p.Emotion, p.Intensity)
			if p.Trigger != "" {
				line += " - " + p.Trigger
			}
			b.WriteString(line + "\n")
		}
	}
	writeSection(&b, "Notes", c.Notes)

	return b.String()
}

func writeSection(b *strings.Builder, title, body string) {
	if body == "" {
		return
	}
	fmt.Fprintf(b, "\n## %s\n%s\n", title, body)
}
