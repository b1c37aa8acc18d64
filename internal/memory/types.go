// Package memory defines the persistent document model for a writing project:
// characters, relationships, scenes, themes, the world, and the synopsis.
package memory

// Version is the only document version this build reads or writes.
// A document carrying any other value is rejected by validation.
const Version = "1.0"

// Document is the entire writer-memory state for one project.
type Document struct {
	Version       string                `json:"version"`
	Project       Project               `json:"project"`
	Characters    map[string]*Character `json:"characters"`
	Relationships []*Relationship       `json:"relationships"`
	Scenes        []*Scene              `json:"scenes"`
	Themes        []*Theme              `json:"themes"`
	World         World                 `json:"world"`
	Synopsis      *SynopsisState        `json:"synopsis,omitempty"`
}

type Project struct {
	Name    string `json:"name"`
	Genre   string `json:"genre,omitempty"`
	Created string `json:"created"`
	Updated string `json:"updated"`
}

// Character is keyed by Name in Document.Characters. Name doubles as the
// primary key, so renaming a referenced character leaves stale references
// behind; the validator surfaces those as warnings.
type Character struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Aliases           []string       `json:"aliases,omitempty"`
	Arc               string         `json:"arc,omitempty"`
	Tone              string         `json:"tone,omitempty"`
	SpeechLevel       string         `json:"speechLevel,omitempty"`
	Keywords          []string       `json:"keywords,omitempty"`
	Attitude          string         `json:"attitude,omitempty"`
	Notes             string         `json:"notes,omitempty"`
	Taboos            []string       `json:"taboos,omitempty"`
	EmotionalBaseline string         `json:"emotionalBaseline,omitempty"`
	EmotionalTriggers []string       `json:"emotionalTriggers,omitempty"`
	EmotionTimeline   []EmotionPoint `json:"emotionTimeline,omitempty"`
	Created           string         `json:"created"`
	Updated           string         `json:"updated"`
}

// EmotionPoint is one append-only entry on a character's emotion timeline.
type EmotionPoint struct {
	Timestamp string `json:"timestamp"`
	SceneID   string `json:"sceneId,omitempty"`
	Emotion   string `json:"emotion"`
	Trigger   string `json:"trigger,omitempty"`
	Intensity int    `json:"intensity"`
}

// ValidSpeechLevels are the allowed character speech registers.
var ValidSpeechLevels = map[string]bool{
	"formal":   true,
	"informal": true,
	"casual":   true,
	"mixed":    true,
}

// Relationship links an unordered pair of character names. From/To keep the
// orientation they were created with for display, but lookup treats the pair
// as symmetric.
type Relationship struct {
	ID          string              `json:"id"`
	From        string              `json:"from"`
	To          string              `json:"to"`
	Type        string              `json:"type"`
	Dynamic     string              `json:"dynamic,omitempty"`
	SpeechLevel string              `json:"speechLevel,omitempty"`
	Evolution   []RelationshipEvent `json:"evolution,omitempty"`
	Notes       string              `json:"notes,omitempty"`
	Created     string              `json:"created"`
}

// RelationshipEvent is one append-only entry on a relationship's evolution
// timeline. Reads sort by Timestamp string, so out-of-order appends are fine.
type RelationshipEvent struct {
	Timestamp string `json:"timestamp"`
	Change    string `json:"change"`
	Catalyst  string `json:"catalyst,omitempty"`
	SceneID   string `json:"sceneId,omitempty"`
}

// ValidRelationshipTypes are the allowed relationship kinds.
var ValidRelationshipTypes = map[string]bool{
	"romantic":     true,
	"familial":     true,
	"friendship":   true,
	"antagonistic": true,
	"professional": true,
	"mentor":       true,
	"complex":      true,
}

// Scene is one narrative beat. Order is dense and zero-based across the
// document; Cuts carry the same discipline one level down.
type Scene struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Chapter       string   `json:"chapter,omitempty"`
	Order         int      `json:"order"`
	Characters    []string `json:"characters,omitempty"`
	Emotions      []string `json:"emotions,omitempty"`
	Cuts          []Cut    `json:"cuts"`
	NarrationTone string   `json:"narrationTone,omitempty"`
	Notes         string   `json:"notes,omitempty"`
	Created       string   `json:"created"`
}

// Cut is the smallest narrative unit inside a scene.
type Cut struct {
	Order     int    `json:"order"`
	Type      string `json:"type"`
	Content   string `json:"content"`
	Character string `json:"character,omitempty"`
	Emotion   string `json:"emotion,omitempty"`
}

// ValidCutTypes are the allowed cut kinds.
var ValidCutTypes = map[string]bool{
	"dialogue":  true,
	"narration": true,
	"action":    true,
	"internal":  true,
}

// Theme holds soft references to characters and scenes; existence is checked
// by the validator, never enforced on write.
type Theme struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	Characters  []string `json:"characters,omitempty"`
	Scenes      []string `json:"scenes,omitempty"`
}

// World is the project's singleton setting model.
type World struct {
	Name          string      `json:"name,omitempty"`
	Era           string      `json:"era,omitempty"`
	Atmosphere    string      `json:"atmosphere,omitempty"`
	Rules         []WorldRule `json:"rules,omitempty"`
	Locations     []Location  `json:"locations,omitempty"`
	CulturalNotes string      `json:"culturalNotes,omitempty"`
	Notes         string      `json:"notes,omitempty"`
}

type WorldRule struct {
	ID          string `json:"id"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description"`
}

type Location struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Atmosphere  string   `json:"atmosphere,omitempty"`
	Connections []string `json:"connections,omitempty"`
}

// SynopsisState holds the five authorable synopsis slots. Absent slots are
// empty strings; renderers substitute explicit placeholders.
type SynopsisState struct {
	ProtagonistAttitude string `json:"protagonistAttitude,omitempty"`
	CoreRelationships   string `json:"coreRelationships,omitempty"`
	EmotionalTheme      string `json:"emotionalTheme,omitempty"`
	GenreContrast       string `json:"genreContrast,omitempty"`
	EndingAftertaste    string `json:"endingAftertaste,omitempty"`
	GeneratedAt         string `json:"generatedAt,omitempty"`
}
