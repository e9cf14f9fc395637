package dot

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/bugra/fakedatagen/pkg/ferrors"
	"github.com/bugra/fakedatagen/pkg/model"
)

// Render welds models into a single DOT document (spec.md §4.8): one
// "id" [label = "id:generatedName"] statement per node, one "src" -> "dst"
// statement per edge, generated names expanded to gvRecursion levels before
// bare ids are substituted.
//
// When multiple models are welded, every node id carries a single-character
// prefix (a, b, c, …) naming its origin model so ids never collide across
// graphs; a lone model keeps its bare ids.
func Render(models []*model.Model, gvRecursion int) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("digraph{\n")

	for gi, m := range models {
		prefix := weldPrefix(gi, len(models))
		writeNodes(&buf, m, prefix, gvRecursion)
	}
	for gi, m := range models {
		prefix := weldPrefix(gi, len(models))
		writeEdges(&buf, m, prefix)
	}

	buf.WriteString("}\n")

	if err := validate(buf.Bytes()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func weldPrefix(index, total int) string {
	if total <= 1 {
		return ""
	}
	return string(rune('a' + index))
}

func writeNodes(buf *bytes.Buffer, m *model.Model, prefix string, gvRecursion int) {
	for _, n := range m.Nodes {
		id := prefix + n.ID
		label := fmt.Sprintf("%s:%s", id, n.GenerateName(gvRecursion))
		fmt.Fprintf(buf, "  %q [label = %q];\n", id, label)
	}
}

func writeEdges(buf *bytes.Buffer, m *model.Model, prefix string) {
	for _, n := range m.Nodes {
		for _, p := range n.Inputs {
			fmt.Fprintf(buf, "  %q -> %q;\n", prefix+p.ID, prefix+n.ID)
		}
	}
}

// validate round-trips doc through goccy/go-graphviz's parser as a syntax
// check; it never renders or lays the graph out.
func validate(doc []byte) error {
	g, err := graphviz.ParseBytes(doc)
	if err != nil {
		return ferrors.Wrap(ferrors.ErrCodeIO, err, "dot: render produced invalid DOT")
	}
	defer g.Close()
	return nil
}
