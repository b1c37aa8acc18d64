// Package character implements character CRUD, alias resolution, the emotion
// timeline, and the dialogue consistency linter. All operations are pure
// functions over the loaded document; the service layer owns persistence.
package character

import (
	"errors"

	"github.com/vampirenirmal/writermem/internal/memory"
)

// ErrExists is returned by Add when the name key is already taken.
var ErrExists = errors.New("character already exists")

// Summary is the list view of a character.
type Summary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Arc           string `json:"arc,omitempty"`
	Tone          string `json:"tone,omitempty"`
	TimelineCount int    `json:"timelineCount"`
	Updated       string `json:"updated"`
}

// Update carries a partial-field merge. Zero-valued fields are left alone;
// identity fields (id, name, created) cannot be set through an update.
type Update struct {
	Arc               string   `json:"arc,omitempty"`
	Tone              string   `json:"tone,omitempty"`
	SpeechLevel       string   `json:"speechLevel,omitempty"`
	Keywords          []string `json:"keywords,omitempty"`
	Attitude          string   `json:"attitude,omitempty"`
	Notes             string   `json:"notes,omitempty"`
	Taboos            []string `json:"taboos,omitempty"`
	EmotionalBaseline string   `json:"emotionalBaseline,omitempty"`
	EmotionalTriggers []string `json:"emotionalTriggers,omitempty"`
}

// Add inserts a new character keyed by name. Fails with ErrExists when the
// name is already taken.
func Add(doc *memory.Document, c memory.Character) (*memory.Character, error) {
	if c.Name == "" {
		return nil, errors.New("character name is required")
	}
	if _, taken := doc.Characters[c.Name]; taken {
		return nil, ErrExists
	}
	now := memory.Now()
	c.ID = memory.NewID("char")
	c.Created = now
	c.Updated = now
	doc.Characters[c.Name] = &c
	return &c, nil
}

// Apply merges the update into the character resolved by name or alias.
// Returns nil when no character matches.
func Apply(doc *memory.Document, nameOrAlias string, u Update) *memory.Character {
	c := doc.ResolveCharacter(nameOrAlias)
	if c == nil {
		return nil
	}
	if u.Arc != "" {
		c.Arc = u.Arc
	}
	if u.Tone != "" {
		c.Tone = u.Tone
	}
	if u.SpeechLevel != "" && memory.ValidSpeechLevels[u.SpeechLevel] {
		c.SpeechLevel = u.SpeechLevel
	}
	if u.Keywords != nil {
		c.Keywords = u.Keywords
	}
	if u.Attitude != "" {
		c.Attitude = u.Attitude
	}
	if u.Notes != "" {
		c.Notes = u.Notes
	}
	if u.Taboos != nil {
		c.Taboos = u.Taboos
	}
	if u.EmotionalBaseline != "" {
		c.EmotionalBaseline = u.EmotionalBaseline
	}
	if u.EmotionalTriggers != nil {
		c.EmotionalTriggers = u.EmotionalTriggers
	}
	c.Updated = memory.Now()
	return c
}

// Remove deletes the character resolved by name or alias. Relationships,
// scenes, and themes that reference it are left alone; the dangling names
// surface as validator warnings.
func Remove(doc *memory.Document, nameOrAlias string) bool {
	c := doc.ResolveCharacter(nameOrAlias)
	if c == nil {
		return false
	}
	delete(doc.Characters, c.Name)
	return true
}

// List returns character summaries in name order.
func List(doc *memory.Document) []Summary {
	out := make([]Summary, 0, len(doc.Characters))
	for _, name := range doc.CharacterNames() {
		c := doc.Characters[name]
		out = append(out, Summary{
			ID:            c.ID,
			Name:          c.Name,
			Arc:           c.Arc,
			Tone:          c.Tone,
			TimelineCount: len(c.EmotionTimeline),
			Updated:       c.Updated,
		})
	}
	return out
}

// AddAlias attaches an alias to a character. Adding an alias that is already
// present is a no-op success. Returns false only when the character does not
// resolve.
func AddAlias(doc *memory.Document, nameOrAlias, alias string) bool {
	c := doc.ResolveCharacter(nameOrAlias)
	if c == nil {
		return false
	}
	for _, a := range c.Aliases {
		if a == alias {
			return true
		}
	}
	c.Aliases = append(c.Aliases, alias)
	c.Updated = memory.Now()
	return true
}

// RemoveAlias detaches an alias. Removing an absent alias is a no-op success.
func RemoveAlias(doc *memory.Document, nameOrAlias, alias string) bool {
	c := doc.ResolveCharacter(nameOrAlias)
	if c == nil {
		return false
	}
	for i, a := range c.Aliases {
		if a == alias {
			c.Aliases = append(c.Aliases[:i], c.Aliases[i+1:]...)
			c.Updated = memory.Now()
			return true
		}
	}
	return true
}
