package scene

import (
	"sort"

	"github.com/vampirenirmal/writermem/internal/memory"
)

// ByChapter returns the scenes with the given chapter label, in order.
func ByChapter(doc *memory.Document, chapter string) []*memory.Scene {
	return filter(doc, func(s *memory.Scene) bool { return s.Chapter == chapter })
}

// ByCharacter returns the scenes the named character participates in.
func ByCharacter(doc *memory.Document, name string) []*memory.Scene {
	return filter(doc, func(s *memory.Scene) bool {
		for _, c := range s.Characters {
			if c == name {
				return true
			}
		}
		return false
	})
}

// ByEmotion returns the scenes carrying the given emotion tag.
func ByEmotion(doc *memory.Document, tag string) []*memory.Scene {
	return filter(doc, func(s *memory.Scene) bool {
		for _, t := range s.Emotions {
			if t == tag {
				return true
			}
		}
		return false
	})
}

func filter(doc *memory.Document, keep func(*memory.Scene) bool) []*memory.Scene {
	var out []*memory.Scene
	for _, s := range doc.ScenesInOrder() {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

// TagCount is one row of the emotion frequency table.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// EmotionStats counts emotion tags across all scenes, descending by count,
// ties broken alphabetically.
func EmotionStats(doc *memory.Document) []TagCount {
	counts := map[string]int{}
	for _, s := range doc.Scenes {
		for _, t := range s.Emotions {
			counts[t]++
		}
	}
	out := make([]TagCount, 0, len(counts))
	for tag, n := range counts {
		out = append(out, TagCount{Tag: tag, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	return out
}

// FlowEntry is one row of the linear pacing summary.
type FlowEntry struct {
	Position   int      `json:"position"`
	Title      string   `json:"title"`
	Chapter    string   `json:"chapter,omitempty"`
	Emotion    string   `json:"emotion"`
	Characters []string `json:"characters,omitempty"`
	CutCount   int      `json:"cutCount"`
}

// Flow projects the scene list into a 1-indexed pacing summary. The emotion
// column shows the first tag, or "unset" when the scene has none.
func Flow(doc *memory.Document) []FlowEntry {
	scenes := doc.ScenesInOrder()
	out := make([]FlowEntry, len(scenes))
	for i, s := range scenes {
		emotion := "unset"
		if len(s.Emotions) > 0 {
			emotion = s.Emotions[0]
		}
		out[i] = FlowEntry{
			Position:   i + 1,
			Title:      s.Title,
			Chapter:    s.Chapter,
			Emotion:    emotion,
			Characters: s.Characters,
			CutCount:   len(s.Cuts),
		}
	}
	return out
}
