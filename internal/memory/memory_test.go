package memory

import (
	"strings"
	"testing"
	"time"
)

func TestNewIDShape(t *testing.T) {
	id := NewID("char")
	if !strings.HasPrefix(id, "char-") {
		t.Errorf("id %q missing prefix", id)
	}
	parts := strings.Split(id, "-")
	if len(parts) != 3 {
		t.Fatalf("id %q should have prefix, stamp, and suffix", id)
	}
	if len(parts[1]) != 14 {
		t.Errorf("stamp %q should be 14 digits", parts[1])
	}
	if len(parts[2]) != 8 {
		t.Errorf("suffix %q should be 8 characters", parts[2])
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := NewID("scene")
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestNowIsSortableRFC3339(t *testing.T) {
	stamp := Now()
	if _, err := time.Parse(time.RFC3339, stamp); err != nil {
		t.Fatalf("Now() %q is not RFC3339: %v", stamp, err)
	}
	if !strings.HasSuffix(stamp, "Z") {
		t.Errorf("Now() %q should be UTC", stamp)
	}
}

func TestResolveCharacter(t *testing.T) {
	doc := NewDocument("test", "")
	doc.Characters["서연"] = &Character{ID: "c1", Name: "서연", Aliases: []string{"연이", "막내"}}
	doc.Characters["민준"] = &Character{ID: "c2", Name: "민준"}

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"by name", "서연", "c1"},
		{"by alias", "연이", "c1"},
		{"second alias", "막내", "c1"},
		{"other character", "민준", "c2"},
		{"unknown", "지우", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := doc.ResolveCharacter(tt.query)
			if tt.want == "" {
				if c != nil {
					t.Errorf("expected no match for %q, got %q", tt.query, c.Name)
				}
				return
			}
			if c == nil || c.ID != tt.want {
				t.Errorf("ResolveCharacter(%q) = %v, want id %q", tt.query, c, tt.want)
			}
		})
	}
}

func TestScenesInOrder(t *testing.T) {
	doc := NewDocument("test", "")
	doc.Scenes = []*Scene{
		{ID: "s2", Order: 2},
		{ID: "s0", Order: 0},
		{ID: "s1", Order: 1},
	}
	ordered := doc.ScenesInOrder()
	for i, s := range ordered {
		if s.Order != i {
			t.Errorf("position %d holds order %d", i, s.Order)
		}
	}
	// The stored slice is untouched.
	if doc.Scenes[0].ID != "s2" {
		t.Error("ScenesInOrder mutated the stored slice")
	}
}
