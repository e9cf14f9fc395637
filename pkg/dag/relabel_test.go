package dag

import "testing"

func TestLetterIDSequenceAndWrap(t *testing.T) {
	cases := map[int]string{0: "A", 1: "B", 25: "Z", 26: "AA", 27: "AB", 51: "AZ", 52: "BA"}
	for n, want := range cases {
		if got := letterID(n); got != want {
			t.Errorf("letterID(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestRelabelAssignsLettersToSeedsAndAtNToTheRest(t *testing.T) {
	g := New()
	g.AddNode(Node{ID: "0"})
	g.AddNode(Node{ID: "1"})
	g.AddNode(Node{ID: "2"})
	g.AddNode(Node{ID: "3"})
	g.AddEdge(Edge{From: "0", To: "2"})
	g.AddEdge(Edge{From: "1", To: "2"})
	g.AddEdge(Edge{From: "2", To: "3"})

	out := Relabel(g)

	wantIDs := map[string]bool{"A": true, "B": true, "@1": true, "@2": true}
	for _, n := range out.Nodes() {
		if !wantIDs[n.ID] {
			t.Errorf("unexpected relabeled id %q", n.ID)
		}
	}
	if len(out.Nodes()) != 4 {
		t.Fatalf("expected 4 nodes, got %d", len(out.Nodes()))
	}
	if len(out.Edges()) != 3 {
		t.Fatalf("expected 3 edges, got %d", len(out.Edges()))
	}

	// The two seeds ("0" and "1", both in-degree 0) feed node "2", which
	// must have received an "@n" id since it has incoming edges.
	var letters, atIDs int
	for _, n := range out.Nodes() {
		if out.InDegree(n.ID) == 0 {
			letters++
			if len(n.ID) == 0 || n.ID[0] < 'A' || n.ID[0] > 'Z' {
				t.Errorf("seed node got non-letter id %q", n.ID)
			}
		} else {
			atIDs++
			if n.ID[0] != '@' {
				t.Errorf("downstream node got non-@n id %q", n.ID)
			}
		}
	}
	if letters != 2 || atIDs != 2 {
		t.Fatalf("expected 2 letter ids and 2 @n ids, got %d and %d", letters, atIDs)
	}
}

func TestRelabelPreservesInsertionOrderNumbering(t *testing.T) {
	g := New()
	g.AddNode(Node{ID: "seed"})
	g.AddNode(Node{ID: "mid"})
	g.AddNode(Node{ID: "leaf"})
	g.AddEdge(Edge{From: "seed", To: "mid"})
	g.AddEdge(Edge{From: "mid", To: "leaf"})

	out := Relabel(g)
	nodes := out.Nodes()
	if nodes[0].ID != "A" {
		t.Errorf("first (seed) node = %q, want A", nodes[0].ID)
	}
	if nodes[1].ID != "@1" {
		t.Errorf("second node = %q, want @1", nodes[1].ID)
	}
	if nodes[2].ID != "@2" {
		t.Errorf("third node = %q, want @2", nodes[2].ID)
	}
}

func TestRelabelPreservesMetadata(t *testing.T) {
	g := New()
	g.AddNode(Node{ID: "0", Meta: Metadata{"k": "v"}})
	out := Relabel(g)
	n, ok := out.Node("A")
	if !ok {
		t.Fatal("expected relabeled node A to exist")
	}
	if n.Meta["k"] != "v" {
		t.Errorf("metadata not preserved: got %v", n.Meta)
	}
}
