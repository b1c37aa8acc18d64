// Package validate checks a loaded document for structural and referential
// soundness. Errors mark defects that make the document unsafe to use
// programmatically; warnings mark authoring gaps. Validation never mutates
// or repairs anything.
package validate

import (
	"fmt"

	"github.com/vampirenirmal/writermem/internal/memory"
)

type Result struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func Check(doc *memory.Document) Result {
	r := Result{Errors: []string{}, Warnings: []string{}}

	if doc.Version != memory.Version {
		r.Errors = append(r.Errors, fmt.Sprintf("unsupported version %q, this build supports %q", doc.Version, memory.Version))
	}
	if doc.Project.Name == "" {
		r.Errors = append(r.Errors, "project name is missing")
	}
	if doc.Project.Created == "" {
		r.Errors = append(r.Errors, "project created timestamp is missing")
	}
	if doc.Project.Genre == "" {
		r.Warnings = append(r.Warnings, "project genre is missing")
	}

	sceneIDs := make(map[string]bool, len(doc.Scenes))
	for _, s := range doc.Scenes {
		if sceneIDs[s.ID] {
			r.Errors = append(r.Errors, fmt.Sprintf("duplicate scene id %q", s.ID))
		}
		sceneIDs[s.ID] = true
	}

	for _, key := range doc.CharacterNames() {
		c := doc.Characters[key]
		if c.Name == "" {
			r.Errors = append(r.Errors, fmt.Sprintf("character under key %q has no name", key))
		} else if key != c.Name {
			r.Errors = append(r.Errors, fmt.Sprintf("character key %q does not match name %q", key, c.Name))
		}
		for _, p := range c.EmotionTimeline {
			if p.Intensity < 1 || p.Intensity > 5 {
				r.Warnings = append(r.Warnings, fmt.Sprintf("character %q emotion point intensity %d is outside [1,5]", key, p.Intensity))
			}
			if p.SceneID != "" && !sceneIDs[p.SceneID] {
				r.Warnings = append(r.Warnings, fmt.Sprintf("character %q emotion point references unknown scene %q", key, p.SceneID))
			}
		}
	}

	for _, rel := range doc.Relationships {
		if _, ok := doc.Characters[rel.From]; !ok {
			r.Errors = append(r.Errors, fmt.Sprintf("relationship %s references unknown character %q", rel.ID, rel.From))
		}
		if _, ok := doc.Characters[rel.To]; !ok {
			r.Errors = append(r.Errors, fmt.Sprintf("relationship %s references unknown character %q", rel.ID, rel.To))
		}
		if rel.From == rel.To {
			r.Warnings = append(r.Warnings, fmt.Sprintf("relationship %s links character %q to itself", rel.ID, rel.From))
		}
	}

	for _, s := range doc.Scenes {
		for _, name := range s.Characters {
			if _, ok := doc.Characters[name]; !ok {
				r.Warnings = append(r.Warnings, fmt.Sprintf("scene %q references unknown character %q", s.ID, name))
			}
		}
		if len(s.Cuts) == 0 {
			r.Warnings = append(r.Warnings, fmt.Sprintf("scene %q has no cuts", s.ID))
		}
	}

	for _, t := range doc.Themes {
		for _, name := range t.Characters {
			if _, ok := doc.Characters[name]; !ok {
				r.Warnings = append(r.Warnings, fmt.Sprintf("theme %q references unknown character %q", t.Name, name))
			}
		}
		for _, id := range t.Scenes {
			if !sceneIDs[id] {
				r.Warnings = append(r.Warnings, fmt.Sprintf("theme %q references unknown scene %q", t.Name, id))
			}
		}
	}

	r.Valid = len(r.Errors) == 0
	return r
}
