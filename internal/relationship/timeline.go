package relationship

import (
	"sort"
	"strings"

	"github.com/vampirenirmal/writermem/internal/memory"
)

// AddEvent appends to the pair's evolution timeline. Appends may arrive out
// of chronological order; reads re-sort by timestamp string instead of
// trusting insertion order. An empty timestamp defaults to now. Returns nil
// when the pair is not linked.
func AddEvent(doc *memory.Document, a, b string, ev memory.RelationshipEvent) *memory.RelationshipEvent {
	r := Find(doc, a, b)
	if r == nil {
		return nil
	}
	if ev.Timestamp == "" {
		ev.Timestamp = memory.Now()
	}
	r.Evolution = append(r.Evolution, ev)
	return &r.Evolution[len(r.Evolution)-1]
}

// Events returns the pair's evolution timeline sorted by timestamp.
// RFC3339 strings sort lexicographically in chronological order.
func Events(doc *memory.Document, a, b string) []memory.RelationshipEvent {
	r := Find(doc, a, b)
	if r == nil {
		return nil
	}
	out := make([]memory.RelationshipEvent, len(r.Evolution))
	copy(out, r.Evolution)
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp < out[j].Timestamp })
	return out
}

// EvolutionArc joins the change descriptions in timestamp order.
func EvolutionArc(doc *memory.Document, a, b string) string {
	events := Events(doc, a, b)
	if len(events) == 0 {
		return ""
	}
	changes := make([]string, len(events))
	for i, ev := range events {
		changes[i] = ev.Change
	}
	return strings.Join(changes, " → ")
}
