package relationship

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vampirenirmal/writermem/internal/memory"
)

// typeLabels and typeSymbols drive the human-readable and ASCII-map
// renderings. The tables are fixed: an unknown type falls through to the raw
// type string and a plain dash.
var typeLabels = map[string]string{
	"romantic":     "Romantic",
	"familial":     "Family",
	"friendship":   "Friendship",
	"antagonistic": "Antagonistic",
	"professional": "Professional",
	"mentor":       "Mentor",
	"complex":      "Complex",
}

var typeSymbols = map[string]string{
	"romantic":     "<3",
	"familial":     "==",
	"friendship":   "--",
	"antagonistic": "><",
	"professional": "::",
	"mentor":       "=>",
	"complex":      "~~",
}

// TypeLabel returns the display label for a relationship type.
func TypeLabel(relType string) string {
	if label, ok := typeLabels[relType]; ok {
		return label
	}
	return relType
}

// Connection is one edge as seen from a queried character. Direction is
// always "mutual": the model does not track asymmetric directionality at the
// query layer even for types like mentor that could carry one.
type Connection struct {
	Other     string `json:"other"`
	Type      string `json:"type"`
	Dynamic   string `json:"dynamic,omitempty"`
	Direction string `json:"direction"`
}

// Connections returns every relationship touching the named character, with
// the other party's name.
func Connections(doc *memory.Document, name string) []Connection {
	var out []Connection
	for _, r := range doc.Relationships {
		var other string
		switch name {
		case r.From:
			other = r.To
		case r.To:
			other = r.From
		default:
			continue
		}
		out = append(out, Connection{
			Other:     other,
			Type:      r.Type,
			Dynamic:   r.Dynamic,
			Direction: "mutual",
		})
	}
	return out
}

// Edge is one relationship in the web view, with display decorations.
type Edge struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Type    string `json:"type"`
	Label   string `json:"label"`
	Dynamic string `json:"dynamic,omitempty"`
}

// Web is the full node/edge view of the relationship graph. Nodes include
// every name appearing at an endpoint, whether or not it resolves to a
// stored character, so broken references surface here too.
type Web struct {
	Nodes []string `json:"nodes"`
	Edges []Edge   `json:"edges"`
}

// BuildWeb projects the relationship list into a node/edge graph.
func BuildWeb(doc *memory.Document) Web {
	seen := map[string]bool{}
	web := Web{Nodes: []string{}, Edges: []Edge{}}
	for _, r := range doc.Relationships {
		seen[r.From] = true
		seen[r.To] = true
		web.Edges = append(web.Edges, Edge{
			From:    r.From,
			To:      r.To,
			Type:    r.Type,
			Label:   TypeLabel(r.Type),
			Dynamic: r.Dynamic,
		})
	}
	for name := range seen {
		web.Nodes = append(web.Nodes, name)
	}
	sort.Strings(web.Nodes)
	return web
}

// RenderMap renders the graph as plain text, one relationship per line using
// the fixed symbol table.
func RenderMap(doc *memory.Document) string {
	if len(doc.Relationships) == 0 {
		return "(no relationships)"
	}
	var b strings.Builder
	for _, r := range doc.Relationships {
		symbol, ok := typeSymbols[r.Type]
		if !ok {
			symbol = "--"
		}
		fmt.Fprintf(&b, "%s %s %s  [%s]", r.From, symbol, r.To, TypeLabel(r.Type))
		if r.Dynamic != "" {
			fmt.Fprintf(&b, " %s", r.Dynamic)
		}
		b.WriteString("\n")
	}
	return b.String()
}
