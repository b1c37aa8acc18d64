package synopsis

import (
	"strings"
	"testing"

	"github.com/vampirenirmal/writermem/internal/memory"
)

func searchDoc() *memory.Document {
	doc := memory.NewDocument("밤의 서고", "romance")
	doc.Characters["서연"] = &memory.Character{
		ID: "c1", Name: "서연", Aliases: []string{"연이"},
		Arc: "경계에서 신뢰로", Keywords: []string{"서고"},
	}
	doc.Characters["민준"] = &memory.Character{
		ID: "c2", Name: "민준", Notes: "옛 서고의 관리인",
	}
	doc.Relationships = []*memory.Relationship{
		{ID: "r1", From: "서연", To: "민준", Type: "romantic", Dynamic: "밀고 당기기"},
	}
	doc.Scenes = []*memory.Scene{
		{ID: "s1", Title: "첫 만남", Order: 0, Cuts: []memory.Cut{
			{Order: 0, Type: "dialogue", Content: "우산 있어요?", Character: "서연"},
		}},
	}
	doc.Themes = []*memory.Theme{
		{ID: "t1", Name: "상실", Description: "잃어버린 것들에 대한 이야기"},
	}
	doc.World = memory.World{Name: "야간 서고", Atmosphere: "조용하고 축축한 밤"}
	return doc
}

func TestSearchRelevanceTags(t *testing.T) {
	doc := searchDoc()

	tests := []struct {
		name          string
		query         string
		wantType      string
		wantID        string
		wantRelevance string
	}{
		{"character by name", "서연", "character", "c1", "name"},
		{"character by alias", "연이", "character", "c1", "name"},
		{"character by notes", "관리인", "character", "c2", "content"},
		{"relationship by endpoint", "민준", "relationship", "r1", "name"},
		{"relationship by dynamic", "밀고", "relationship", "r1", "content"},
		{"scene by title", "첫 만남", "scene", "s1", "title"},
		{"scene by cut content", "우산", "scene", "s1", "content"},
		{"theme by name", "상실", "theme", "t1", "name"},
		{"theme by description", "잃어버린", "theme", "t1", "content"},
		{"world by name", "야간 서고", "world", "world", "name"},
		{"world by atmosphere", "축축한", "world", "world", "content"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := Search(doc, tt.query)
			for _, r := range results {
				if r.Type == tt.wantType && r.ID == tt.wantID {
					if r.Relevance != tt.wantRelevance {
						t.Errorf("relevance = %q, want %q", r.Relevance, tt.wantRelevance)
					}
					return
				}
			}
			t.Errorf("no %s/%s hit for %q in %+v", tt.wantType, tt.wantID, tt.query, results)
		})
	}
}

func TestSearchCaseFolded(t *testing.T) {
	doc := searchDoc()
	doc.Characters["Mary"] = &memory.Character{ID: "c3", Name: "Mary"}
	if len(Search(doc, "mary")) == 0 {
		t.Error("case-folded match failed")
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	if got := Search(searchDoc(), ""); got != nil {
		t.Errorf("empty query returned results: %v", got)
	}
}

func TestSnippetCap(t *testing.T) {
	long := strings.Repeat("가", 300)
	s := snippet(long)
	runes := []rune(s)
	if len(runes) != snippetLimit+1 {
		t.Fatalf("snippet length %d runes, want %d plus ellipsis", len(runes), snippetLimit)
	}
	if runes[len(runes)-1] != '…' {
		t.Error("snippet not ellipsis-terminated")
	}

	if snippet("short") != "short" {
		t.Error("short snippet modified")
	}
	if snippet("", "a", "", "b", "c", "d") != "a / b / c" {
		t.Errorf("snippet field selection wrong: %q", snippet("", "a", "", "b", "c", "d"))
	}
}
