package nfa

import "testing"

const eps = 'ε'

// edgeCount sums the epsilon edges leaving s.
func epsilonEdges(s *State[string, rune]) int {
	return len(s.TaggedEdges(eps))
}

func TestConcatenateStructure(t *testing.T) {
	a := chain("a")
	b := chain("b")

	c := a.Concatenate(b, eps)

	if c.Initial() != a.Initial() {
		t.Error("result keeps the first operand's initial state")
	}
	// Accepting states are exactly the second operand's.
	accTags := c.AcceptingStateTags()
	if len(accTags) != 1 || accTags[0] != "b" {
		t.Errorf("accepting tags = %v, want [b]", accTags)
	}
	if c.IsAccepting("a") {
		t.Error("the first operand's accepting state must lose its status in the result")
	}

	// The bridge: a's accepting state grew an epsilon edge to b's initial.
	bridge := a.RegisterState("a")
	if epsilonEdges(bridge) != 1 || !bridge.TaggedEdges(eps)[0].Contains(b.Initial()) {
		t.Error("missing epsilon bridge to the second operand's initial state")
	}

	// Both operands' states are in the result's table.
	if c.NumStates() != a.NumStates()+b.NumStates() {
		t.Errorf("NumStates = %d, want %d", c.NumStates(), a.NumStates()+b.NumStates())
	}
}

func TestConcatenateNilOther(t *testing.T) {
	a := chain("a")
	c := a.Concatenate(nil, eps)
	if c == a {
		t.Fatal("result must be a distinct automaton")
	}
	if c.NumStates() != a.NumStates() || c.Initial() != a.Initial() {
		t.Error("nil other should produce a plain shallow clone")
	}
	if got := c.AcceptingStateTags(); len(got) != 1 || got[0] != "a" {
		t.Errorf("clone accepting tags = %v", got)
	}
	if epsilonEdges(a.RegisterState("a")) != 0 {
		t.Error("no epsilon edges may be added for a nil other")
	}
}

func TestConcatenateIdempotentBridges(t *testing.T) {
	a := chain("a")
	b := chain("b")
	a.Concatenate(b, eps)
	a.Concatenate(b, eps)
	// The shared accepting state must not accumulate duplicate bridges.
	if got := epsilonEdges(a.RegisterState("a")); got != 1 {
		t.Errorf("epsilon bridges = %d, want 1", got)
	}
}

func TestDisjunctionStructure(t *testing.T) {
	a := chain("a")
	b := chain("b")

	d := a.Disjunction(b, eps, "start")

	start := d.Initial()
	if start.Tag() != "start" {
		t.Fatalf("initial tag = %q, want start", start.Tag())
	}
	if start == a.Initial() || start == b.Initial() {
		t.Fatal("initial state must be freshly synthesized")
	}
	es := start.TaggedEdges(eps)
	if len(es) == 0 {
		t.Fatal("start state needs epsilon edges")
	}
	reachable := map[*State[string, rune]]bool{}
	for _, e := range es {
		for _, s := range e.States() {
			reachable[s] = true
		}
	}
	if !reachable[a.Initial()] || !reachable[b.Initial()] {
		t.Error("start must epsilon-reach both operands' initial states")
	}

	// Accepting union.
	if !d.IsAccepting("a") || !d.IsAccepting("b") {
		t.Errorf("accepting tags = %v, want union", d.AcceptingStateTags())
	}
	if d.NumStates() != a.NumStates()+b.NumStates()+1 {
		t.Errorf("NumStates = %d", d.NumStates())
	}
}

func TestDisjunctionNilOther(t *testing.T) {
	a := chain("a")
	d := a.Disjunction(nil, eps, "unused")
	if d.NumStates() != a.NumStates() || d.Initial() != a.Initial() {
		t.Error("nil other should produce a plain shallow clone")
	}
	if d.IsAccepting("unused") {
		t.Error("no synthesized state may appear for a nil other")
	}
}

func TestKleeneStarStructure(t *testing.T) {
	a := chain("a")

	k := a.KleeneStar(eps, "loop")

	start := k.Initial()
	if start.Tag() != "loop" || start == a.Initial() {
		t.Fatal("star needs a fresh initial state")
	}
	if !k.IsAcceptingState(start) {
		t.Error("the fresh state must accept the empty sequence")
	}

	// start --ε--> a's initial.
	if len(start.TaggedEdges(eps)) != 1 || !start.TaggedEdges(eps)[0].Contains(a.Initial()) {
		t.Error("missing epsilon edge into the operand")
	}
	// a's accepting state --ε--> start, enabling repetition.
	back := a.RegisterState("a")
	if epsilonEdges(back) != 1 || !back.TaggedEdges(eps)[0].Contains(start) {
		t.Error("missing repetition epsilon edge back to the fresh state")
	}
	if k.NumStates() != a.NumStates()+1 {
		t.Errorf("NumStates = %d, want %d", k.NumStates(), a.NumStates()+1)
	}
}

func TestCombinationAliasing(t *testing.T) {
	// The documented trade-off: operators splice epsilon edges into shared
	// states, so the mutation is observable through the operand too.
	a := chain("a")
	before := epsilonEdges(a.RegisterState("a"))
	a.KleeneStar(eps, "loop")
	if epsilonEdges(a.RegisterState("a")) != before+1 {
		t.Error("shared-state aliasing should expose the spliced edge")
	}
}
