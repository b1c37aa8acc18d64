// Package synopsis provides full-text search across the document and the
// derived synopsis views: element extraction, the completeness checklist, and
// the full/brief/pitch renderers.
package synopsis

import (
	"fmt"
	"strings"

	"github.com/vampirenirmal/writermem/internal/memory"
)

// snippetLimit caps result snippets, in runes.
const snippetLimit = 100

// Result is one search hit. Relevance is a coarse tag: "name" or "title"
// when the query hit an identity field, "content" otherwise. There is no
// scoring; results follow domain iteration order.
type Result struct {
	Type      string `json:"type"`
	ID        string `json:"id"`
	Title     string `json:"title"`
	Relevance string `json:"relevance"`
	Snippet   string `json:"snippet,omitempty"`
}

// Search scans every entity collection once with case-folded substring
// matching.
func Search(doc *memory.Document, query string) []Result {
	q := strings.ToLower(query)
	if q == "" {
		return nil
	}
	results := []Result{}

	for _, name := range doc.CharacterNames() {
		c := doc.Characters[name]
		switch {
		case matches(q, c.Name) || matchesAny(q, c.Aliases):
			results = append(results, Result{
				Type: "character", ID: c.ID, Title: c.Name,
				Relevance: "name",
				Snippet:   snippet(c.Arc, c.Attitude),
			})
		case matches(q, c.Arc, c.Tone, c.Attitude, c.Notes) || matchesAny(q, c.Keywords):
			results = append(results, Result{
				Type: "character", ID: c.ID, Title: c.Name,
				Relevance: "content",
				Snippet:   snippet(c.Arc, c.Attitude, c.Notes),
			})
		}
	}

	for _, r := range doc.Relationships {
		title := fmt.Sprintf("%s <-> %s", r.From, r.To)
		switch {
		case matches(q, r.From, r.To):
			results = append(results, Result{
				Type: "relationship", ID: r.ID, Title: title,
				Relevance: "name",
				Snippet:   snippet(r.Dynamic),
			})
		case matches(q, r.Type, r.Dynamic, r.Notes):
			results = append(results, Result{
				Type: "relationship", ID: r.ID, Title: title,
				Relevance: "content",
				Snippet:   snippet(r.Dynamic, r.Notes),
			})
		}
	}

	for _, s := range doc.ScenesInOrder() {
		if matches(q, s.Title) {
			results = append(results, Result{
				Type: "scene", ID: s.ID, Title: s.Title,
				Relevance: "title",
				Snippet:   snippet(s.Notes),
			})
			continue
		}
		hit := matches(q, s.Chapter, s.Notes) || matchesAny(q, s.Characters) || matchesAny(q, s.Emotions)
		var cutText string
		for _, cut := range s.Cuts {
			if matches(q, cut.Content) {
				hit = true
				cutText = cut.Content
				break
			}
		}
		if hit {
			results = append(results, Result{
				Type: "scene", ID: s.ID, Title: s.Title,
				Relevance: "content",
				Snippet:   snippet(cutText, s.Notes),
			})
		}
	}

	for _, t := range doc.Themes {
		switch {
		case matches(q, t.Name):
			results = append(results, Result{
				Type: "theme", ID: t.ID, Title: t.Name,
				Relevance: "name",
				Snippet:   snippet(t.Description),
			})
		case matches(q, t.Description) || matchesAny(q, t.Keywords):
			results = append(results, Result{
				Type: "theme", ID: t.ID, Title: t.Name,
				Relevance: "content",
				Snippet:   snippet(t.Description),
			})
		}
	}

	w := doc.World
	worldHit := matches(q, w.Era, w.Atmosphere, w.CulturalNotes, w.Notes)
	for _, rule := range w.Rules {
		worldHit = worldHit || matches(q, rule.Category, rule.Description)
	}
	for _, loc := range w.Locations {
		worldHit = worldHit || matches(q, loc.Name, loc.Description, loc.Atmosphere)
	}
	if matches(q, w.Name) {
		results = append(results, Result{
			Type: "world", ID: "world", Title: w.Name,
			Relevance: "name",
			Snippet:   snippet(w.Atmosphere),
		})
	} else if worldHit {
		title := w.Name
		if title == "" {
			title = "world"
		}
		results = append(results, Result{
			Type: "world", ID: "world", Title: title,
			Relevance: "content",
			Snippet:   snippet(w.Atmosphere, w.CulturalNotes, w.Notes),
		})
	}

	return results
}

func matches(q string, fields ...string) bool {
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func matchesAny(q string, list []string) bool {
	return matches(q, list...)
}

// snippet joins up to three non-empty fields and truncates at snippetLimit
// runes with a trailing ellipsis.
func snippet(fields ...string) string {
	var parts []string
	for _, f := range fields {
		if f != "" {
			parts = append(parts, f)
		}
		if len(parts) == 3 {
			break
		}
	}
	joined := strings.Join(parts, " / ")
	runes := []rune(joined)
	if len(runes) <= snippetLimit {
		return joined
	}
	return string(runes[:snippetLimit]) + "…"
}
