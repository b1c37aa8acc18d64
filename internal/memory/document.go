package memory

import "sort"

// NewDocument creates an empty document for a project.
func NewDocument(name, genre string) *Document {
	now := Now()
	return &Document{
		Version: Version,
		Project: Project{
			Name:    name,
			Genre:   genre,
			Created: now,
			Updated: now,
		},
		Characters:    make(map[string]*Character),
		Relationships: []*Relationship{},
		Scenes:        []*Scene{},
		Themes:        []*Theme{},
	}
}

// CharacterNames returns the character map keys in sorted order, giving list
// and search operations a deterministic iteration order.
func (d *Document) CharacterNames() []string {
	names := make([]string, 0, len(d.Characters))
	for name := range d.Characters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveCharacter looks a character up by name first, then by alias scan.
// The name lookup is a direct map hit; the alias scan is linear over all
// characters. Returns nil when nothing matches.
func (d *Document) ResolveCharacter(nameOrAlias string) *Character {
	if c, ok := d.Characters[nameOrAlias]; ok {
		return c
	}
	for _, name := range d.CharacterNames() {
		c := d.Characters[name]
		for _, alias := range c.Aliases {
			if alias == nameOrAlias {
				return c
			}
		}
	}
	return nil
}

// SceneByID returns the scene with the given id, or nil.
func (d *Document) SceneByID(id string) *Scene {
	for _, s := range d.Scenes {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// ScenesInOrder returns scenes sorted by their Order field.
func (d *Document) ScenesInOrder() []*Scene {
	out := make([]*Scene, len(d.Scenes))
	copy(out, d.Scenes)
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}
