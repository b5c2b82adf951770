package nfa

import "testing"

func TestEdgeSetSemantics(t *testing.T) {
	s1 := NewState[string, rune]("one")
	s2 := NewState[string, rune]("two")
	e := NewEdge[string, rune]('x')

	if !e.Add(s1) {
		t.Error("adding a new destination should change the set")
	}
	if e.Add(s1) {
		t.Error("re-adding a destination should be a no-op")
	}
	if e.Add(nil) {
		t.Error("adding nil should be a no-op")
	}
	e.Add(s2)
	if e.Len() != 2 || !e.Contains(s1) || !e.Contains(s2) {
		t.Errorf("destinations = %d, want {s1, s2}", e.Len())
	}

	if !e.Remove(s1) {
		t.Error("removing a member should change the set")
	}
	if e.Remove(s1) {
		t.Error("removing a non-member should be a no-op")
	}
	if e.Contains(s1) || !e.Contains(s2) {
		t.Error("only s2 should remain")
	}
}

func TestEdgeConstructorMergesDuplicates(t *testing.T) {
	s := NewState[string, rune]("s")
	e := NewEdge('y', s, s)
	if e.Len() != 1 {
		t.Errorf("duplicate constructor destinations should merge, got %d", e.Len())
	}
}

func TestStateAddEdge(t *testing.T) {
	s := NewState[string, rune]("origin")
	d1 := NewState[string, rune]("d1")
	d2 := NewState[string, rune]("d2")

	s.AddEdge(nil) // ignored
	e1 := NewEdge('a', d1)
	e2 := NewEdge('a', d2)
	e3 := NewEdge('b', d1)
	s.AddEdge(e1)
	s.AddEdge(e2)
	s.AddEdge(e3)

	// Two distinct same-tag edges co-reside: the nondeterministic case.
	if got := s.TaggedEdges('a'); len(got) != 2 || got[0] != e1 || got[1] != e2 {
		t.Errorf("TaggedEdges('a') = %v", got)
	}
	if got := s.TaggedEdges('z'); len(got) != 0 {
		t.Errorf("TaggedEdges('z') should be empty, got %v", got)
	}

	tags := s.EdgeTags()
	if len(tags) != 2 || tags[0] != 'a' || tags[1] != 'b' {
		t.Errorf("EdgeTags = %q, want [a b]", tags)
	}
	if s.NumEdges() != 3 {
		t.Errorf("NumEdges = %d, want 3", s.NumEdges())
	}

	// No identity dedupe: the same edge object twice is two entries.
	s.AddEdge(e1)
	if len(s.TaggedEdges('a')) != 3 {
		t.Error("AddEdge does not deduplicate by reference")
	}
}
