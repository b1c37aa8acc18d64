package synopsis

import (
	"fmt"
	"strings"

	"github.com/vampirenirmal/writermem/internal/memory"
	"github.com/vampirenirmal/writermem/internal/relationship"
)

// Placeholder strings are part of the contract: callers detect incomplete
// elements by comparing against these exact values.
const (
	PlaceholderAttitude      = "protagonist attitude not yet provided"
	PlaceholderRelationships = "core relationships not yet provided"
	PlaceholderTheme         = "emotional theme not yet provided"
	PlaceholderContrast      = "genre-vs-emotion contrast not yet provided"
	PlaceholderAftertaste    = "ending aftertaste not yet provided"
)

// Elements are the five narrative slots derived from current state.
type Elements struct {
	Protagonist         string `json:"protagonist,omitempty"`
	ProtagonistAttitude string `json:"protagonistAttitude"`
	CoreRelationships   string `json:"coreRelationships"`
	EmotionalTheme      string `json:"emotionalTheme"`
	GenreContrast       string `json:"genreContrast"`
	EndingAftertaste    string `json:"endingAftertaste"`
}

// protagonist picks the character with the earliest created timestamp, name
// as tiebreaker. Map iteration order would not be stable.
func protagonist(doc *memory.Document) *memory.Character {
	var first *memory.Character
	for _, name := range doc.CharacterNames() {
		c := doc.Characters[name]
		if first == nil || c.Created < first.Created {
			first = c
		}
	}
	return first
}

// Extract derives the five elements from the document, falling back to the
// exported placeholders when a source is absent.
func Extract(doc *memory.Document) Elements {
	e := Elements{
		ProtagonistAttitude: PlaceholderAttitude,
		CoreRelationships:   PlaceholderRelationships,
		EmotionalTheme:      PlaceholderTheme,
		GenreContrast:       PlaceholderContrast,
		EndingAftertaste:    PlaceholderAftertaste,
	}

	p := protagonist(doc)
	if p != nil {
		e.Protagonist = p.Name
		var parts []string
		if p.Arc != "" {
			parts = append(parts, p.Arc)
		}
		if p.Attitude != "" {
			parts = append(parts, p.Attitude)
		}
		if len(parts) > 0 {
			e.ProtagonistAttitude = strings.Join(parts, " / ")
		}

		var rels []string
		for _, conn := range relationship.Connections(doc, p.Name) {
			desc := fmt.Sprintf("%s (%s)", conn.Other, relationship.TypeLabel(conn.Type))
			if conn.Dynamic != "" {
				desc += ": " + conn.Dynamic
			}
			rels = append(rels, desc)
		}
		if len(rels) > 0 {
			e.CoreRelationships = strings.Join(rels, "; ")
		}
	}

	var themes []string
	for _, t := range doc.Themes {
		if t.Description != "" {
			themes = append(themes, t.Description)
		}
	}
	if len(themes) > 0 {
		e.EmotionalTheme = strings.Join(themes, "; ")
	}

	if s := doc.Synopsis; s != nil {
		if s.GenreContrast != "" {
			e.GenreContrast = s.GenreContrast
		}
		if s.EndingAftertaste != "" {
			e.EndingAftertaste = s.EndingAftertaste
		}
	}
	return e
}

// UpdateState merges non-empty slots into the stored synopsis state and
// stamps GeneratedAt.
func UpdateState(doc *memory.Document, u memory.SynopsisState) *memory.SynopsisState {
	if doc.Synopsis == nil {
		doc.Synopsis = &memory.SynopsisState{}
	}
	s := doc.Synopsis
	if u.ProtagonistAttitude != "" {
		s.ProtagonistAttitude = u.ProtagonistAttitude
	}
	if u.CoreRelationships != "" {
		s.CoreRelationships = u.CoreRelationships
	}
	if u.EmotionalTheme != "" {
		s.EmotionalTheme = u.EmotionalTheme
	}
	if u.GenreContrast != "" {
		s.GenreContrast = u.GenreContrast
	}
	if u.EndingAftertaste != "" {
		s.EndingAftertaste = u.EndingAftertaste
	}
	s.GeneratedAt = memory.Now()
	return s
}

// ChecklistItem pairs one element's completeness with a corrective action.
type ChecklistItem struct {
	Element    string `json:"element"`
	Status     string `json:"status"` // complete, partial, missing
	Suggestion string `json:"suggestion,omitempty"`
}

// Checklist computes completeness per element from concrete thresholds.
func Checklist(doc *memory.Document) []ChecklistItem {
	items := make([]ChecklistItem, 0, 5)
	p := protagonist(doc)

	status, suggestion := "missing", "add a character with an arc and an attitude"
	if p != nil {
		switch {
		case p.Arc != "" && p.Attitude != "":
			status, suggestion = "complete", ""
		case p.Arc != "" || p.Attitude != "":
			status, suggestion = "partial", fmt.Sprintf("fill in both arc and attitude for %s", p.Name)
		default:
			suggestion = fmt.Sprintf("give %s an arc and an attitude", p.Name)
		}
	}
	items = append(items, ChecklistItem{Element: "protagonistAttitude", Status: status, Suggestion: suggestion})

	relCount := 0
	if p != nil {
		relCount = len(relationship.Connections(doc, p.Name))
	}
	switch {
	case relCount >= 2:
		items = append(items, ChecklistItem{Element: "coreRelationships", Status: "complete"})
	case relCount == 1:
		items = append(items, ChecklistItem{Element: "coreRelationships", Status: "partial", Suggestion: "add at least one more relationship around the protagonist"})
	default:
		items = append(items, ChecklistItem{Element: "coreRelationships", Status: "missing", Suggestion: "add relationships touching the protagonist"})
	}

	described := 0
	for _, t := range doc.Themes {
		if t.Description != "" {
			described++
		}
	}
	switch {
	case described > 0:
		items = append(items, ChecklistItem{Element: "emotionalTheme", Status: "complete"})
	case len(doc.Themes) > 0:
		items = append(items, ChecklistItem{Element: "emotionalTheme", Status: "partial", Suggestion: "describe the themes you have registered"})
	default:
		items = append(items, ChecklistItem{Element: "emotionalTheme", Status: "missing", Suggestion: "register a theme with a description"})
	}

	contrast := doc.Synopsis != nil && doc.Synopsis.GenreContrast != ""
	switch {
	case contrast:
		items = append(items, ChecklistItem{Element: "genreContrast", Status: "complete"})
	case doc.Project.Genre != "":
		items = append(items, ChecklistItem{Element: "genreContrast", Status: "partial", Suggestion: "write how real emotion cuts against the genre"})
	default:
		items = append(items, ChecklistItem{Element: "genreContrast", Status: "missing", Suggestion: "set the project genre, then write the contrast"})
	}

	if doc.Synopsis != nil && doc.Synopsis.EndingAftertaste != "" {
		items = append(items, ChecklistItem{Element: "endingAftertaste", Status: "complete"})
	} else {
		items = append(items, ChecklistItem{Element: "endingAftertaste", Status: "missing", Suggestion: "write the feeling the ending should leave behind"})
	}

	return items
}

// RenderFull renders the long-form synopsis.
func RenderFull(doc *memory.Document) string {
	e := Extract(doc)
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", doc.Project.Name)
	if doc.Project.Genre != "" {
		fmt.Fprintf(&b, "Genre: %s\n", doc.Project.Genre)
	}
	fmt.Fprintf(&b, "\n## Protagonist\n%s\n", e.ProtagonistAttitude)
	fmt.Fprintf(&b, "\n## Core Relationships\n%s\n", e.CoreRelationships)
	fmt.Fprintf(&b, "\n## Emotional Theme\n%s\n", e.EmotionalTheme)
	fmt.Fprintf(&b, "\n## Genre vs Emotion\n%s\n", e.GenreContrast)
	fmt.Fprintf(&b, "\n## Aftertaste\n%s\n", e.EndingAftertaste)
	return b.String()
}

// RenderBrief renders a paragraph-sized synopsis.
func RenderBrief(doc *memory.Document) string {
	e := Extract(doc)
	return fmt.Sprintf("%s: %s. %s. %s",
		doc.Project.Name, e.ProtagonistAttitude, e.CoreRelationships, e.EmotionalTheme)
}

// RenderPitch renders a one-line pitch.
func RenderPitch(doc *memory.Document) string {
	e := Extract(doc)
	pitch := e.ProtagonistAttitude
	if e.Protagonist != "" {
		pitch = fmt.Sprintf("%s: %s", e.Protagonist, pitch)
	}
	return fmt.Sprintf("%s (%s)", pitch, e.EndingAftertaste)
}
