package nfa

import "testing"

func TestIntDispatcher(t *testing.T) {
	d := NewIntDispatcher(10)
	if d.NextTag() != 10 || d.NextTag() != 11 || d.NextTag() != 12 {
		t.Error("tags must increase monotonically from the seed")
	}
}

func TestNewDispatcherNFANilDispatcher(t *testing.T) {
	_, err := NewDispatcherNFA(Descriptor[int, rune]{Initial: 0}, nil)
	if err != ErrNilDispatcher {
		t.Errorf("err = %v, want ErrNilDispatcher", err)
	}
}

func TestDispatcherDisjunctionSynthesizesFreshTags(t *testing.T) {
	disp := NewIntDispatcher(100)
	a, err := NewDispatcherNFA(Descriptor[int, rune]{
		Transitions: []Transition[int, rune]{{From: 0, Label: 'a', To: 1}},
		Initial:     0,
		Accepting:   []int{1},
	}, disp)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewDispatcherNFA(Descriptor[int, rune]{
		Transitions: []Transition[int, rune]{{From: 2, Label: 'b', To: 3}},
		Initial:     2,
		Accepting:   []int{3},
	}, disp)
	if err != nil {
		t.Fatal(err)
	}

	d := a.Disjunction(b.NFA, 0)
	if got := d.Initial().Tag(); got != 100 {
		t.Errorf("synthesized start tag = %d, want 100", got)
	}
	if d.Dispatcher() != disp {
		t.Error("result must keep the shared dispatcher")
	}

	k := d.KleeneStar(0)
	if got := k.Initial().Tag(); got != 101 {
		t.Errorf("second synthesized tag = %d, want 101", got)
	}

	// Fresh tags never collide with registered state tags.
	for _, tag := range k.StateTags() {
		if tag == 102 {
			t.Error("tag 102 must still be unused")
		}
	}
	if disp.NextTag() != 102 {
		t.Error("dispatcher should resume after the synthesized tags")
	}
}

func TestDispatcherConcatenateDispatchesNothing(t *testing.T) {
	disp := NewIntDispatcher(50)
	a, _ := NewDispatcherNFA(Descriptor[int, rune]{
		Transitions: []Transition[int, rune]{{From: 0, Label: 'a', To: 1}},
		Initial:     0,
		Accepting:   []int{1},
	}, disp)
	b, _ := NewDispatcherNFA(Descriptor[int, rune]{
		Transitions: []Transition[int, rune]{{From: 2, Label: 'b', To: 3}},
		Initial:     2,
		Accepting:   []int{3},
	}, disp)

	a.Concatenate(b.NFA, 0)
	if disp.NextTag() != 50 {
		t.Error("concatenation synthesizes no states and must not consume tags")
	}
}

func TestDispatcherDisjunctionNilOther(t *testing.T) {
	disp := NewIntDispatcher(7)
	a, _ := NewDispatcherNFA(Descriptor[int, rune]{Initial: 0}, disp)
	c := a.Disjunction(nil, 0)
	if c.NumStates() != 1 || c.Initial() != a.Initial() {
		t.Error("nil other should clone")
	}
	if disp.NextTag() != 7 {
		t.Error("cloning must not consume a tag")
	}
}
