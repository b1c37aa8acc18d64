package validate

import (
	"strings"
	"testing"

	"github.com/vampirenirmal/writermem/internal/memory"
)

func validDocument() *memory.Document {
	doc := memory.NewDocument("밤의 서고", "romance")
	doc.Characters["서연"] = &memory.Character{ID: "c1", Name: "서연", Created: memory.Now(), Updated: memory.Now()}
	doc.Characters["민준"] = &memory.Character{ID: "c2", Name: "민준", Created: memory.Now(), Updated: memory.Now()}
	doc.Relationships = []*memory.Relationship{
		{ID: "r1", From: "서연", To: "민준", Type: "romantic", Created: memory.Now()},
	}
	doc.Scenes = []*memory.Scene{
		{ID: "s1", Title: "첫 만남", Order: 0, Characters: []string{"서연"}, Cuts: []memory.Cut{{Order: 0, Type: "narration", Content: "비가 내렸다."}}},
	}
	return doc
}

func TestValidDocument(t *testing.T) {
	r := Check(validDocument())
	if !r.Valid {
		t.Fatalf("expected valid, errors: %v", r.Errors)
	}
	if len(r.Errors) != 0 {
		t.Errorf("unexpected errors: %v", r.Errors)
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*memory.Document)
		want   string
	}{
		{
			"unsupported version",
			func(d *memory.Document) { d.Version = "2.0" },
			"unsupported version",
		},
		{
			"missing project name",
			func(d *memory.Document) { d.Project.Name = "" },
			"project name",
		},
		{
			"missing created timestamp",
			func(d *memory.Document) { d.Project.Created = "" },
			"created timestamp",
		},
		{
			"key name mismatch",
			func(d *memory.Document) { d.Characters["서연"].Name = "서연2" },
			"does not match name",
		},
		{
			"character missing name",
			func(d *memory.Document) { d.Characters["서연"].Name = "" },
			"has no name",
		},
		{
			"duplicate scene id",
			func(d *memory.Document) {
				d.Scenes = append(d.Scenes, &memory.Scene{ID: "s1", Title: "dup", Order: 1, Cuts: []memory.Cut{{Content: "x"}}})
			},
			"duplicate scene id",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDocument()
			tt.mutate(doc)
			r := Check(doc)
			if r.Valid {
				t.Fatal("expected invalid")
			}
			found := false
			for _, e := range r.Errors {
				if strings.Contains(e, tt.want) {
					found = true
				}
			}
			if !found {
				t.Errorf("no error containing %q in %v", tt.want, r.Errors)
			}
		})
	}
}

func TestDeletedCharacterYieldsOneNamedError(t *testing.T) {
	doc := validDocument()
	delete(doc.Characters, "민준")

	r := Check(doc)
	if r.Valid {
		t.Fatal("expected invalid")
	}
	if len(r.Errors) != 1 {
		t.Fatalf("expected exactly one error, got %v", r.Errors)
	}
	if !strings.Contains(r.Errors[0], "r1") || !strings.Contains(r.Errors[0], "민준") {
		t.Errorf("error should name the relationship id and missing character: %q", r.Errors[0])
	}
}

func TestWarnings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*memory.Document)
		want   string
	}{
		{
			"missing genre",
			func(d *memory.Document) { d.Project.Genre = "" },
			"genre",
		},
		{
			"intensity out of range",
			func(d *memory.Document) {
				d.Characters["서연"].EmotionTimeline = []memory.EmotionPoint{{Emotion: "분노", Intensity: 9}}
			},
			"outside [1,5]",
		},
		{
			"emotion point unknown scene",
			func(d *memory.Document) {
				d.Characters["서연"].EmotionTimeline = []memory.EmotionPoint{{Emotion: "분노", Intensity: 3, SceneID: "ghost"}}
			},
			"unknown scene",
		},
		{
			"self relationship",
			func(d *memory.Document) {
				d.Relationships = append(d.Relationships, &memory.Relationship{ID: "r2", From: "서연", To: "서연", Type: "complex"})
			},
			"itself",
		},
		{
			"scene unknown character",
			func(d *memory.Document) { d.Scenes[0].Characters = []string{"유령"} },
			"unknown character",
		},
		{
			"scene with no cuts",
			func(d *memory.Document) { d.Scenes[0].Cuts = nil },
			"no cuts",
		},
		{
			"theme unknown references",
			func(d *memory.Document) {
				d.Themes = append(d.Themes, &memory.Theme{ID: "t1", Name: "상실", Characters: []string{"유령"}, Scenes: []string{"ghost"}})
			},
			"theme",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDocument()
			tt.mutate(doc)
			r := Check(doc)
			if !r.Valid {
				t.Fatalf("warnings must not block validity, errors: %v", r.Errors)
			}
			found := false
			for _, w := range r.Warnings {
				if strings.Contains(w, tt.want) {
					found = true
				}
			}
			if !found {
				t.Errorf("no warning containing %q in %v", tt.want, r.Warnings)
			}
		})
	}
}
