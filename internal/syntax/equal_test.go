package syntax

import "testing"

func mustParse(t *testing.T, src string) []Def {
	t.Helper()
	defs, _, err := Parse(src, recordingTranslate)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return defs
}

func TestEqualIsReflexive(t *testing.T) {
	defs := mustParse(t, "program { x := 1 + 2 }")
	if !Equal(defs[0], defs[0]) {
		t.Fatal("a node should be syntactically equal to itself")
	}
}

func TestEqualIsSymmetricAndIgnoresPositions(t *testing.T) {
	a := mustParse(t, "program { x := 1 }")
	b := mustParse(t, "program   {   x := 1   }")

	if !Equal(a[0], b[0]) {
		t.Fatal("structurally identical programs at different positions should be equal")
	}
	if !Equal(b[0], a[0]) {
		t.Fatal("Equal should be symmetric")
	}
}

func TestEqualIsTransitive(t *testing.T) {
	a := mustParse(t, "program { x := 1 }")
	b := mustParse(t, "program { x := 1 }")
	c := mustParse(t, "program { x := 1 }")

	if !Equal(a[0], b[0]) || !Equal(b[0], c[0]) {
		t.Fatal("precondition: a, b, c should pairwise equal")
	}
	if !Equal(a[0], c[0]) {
		t.Fatal("Equal should be transitive")
	}
}

func TestEqualDetectsDifference(t *testing.T) {
	a := mustParse(t, "program { x := 1 }")
	b := mustParse(t, "program { x := 2 }")
	if Equal(a[0], b[0]) {
		t.Fatal("programs with different literals should not be equal")
	}
}

func TestEqualHandlesNilElseBranch(t *testing.T) {
	withElse := mustParse(t, "program { if (x) then { } else { } }")
	withoutElse := mustParse(t, "program { if (x) then { } }")

	if Equal(withElse[0], withoutElse[0]) {
		t.Fatal("an if with an else branch should not equal one without")
	}
	if !Equal(withoutElse[0], withoutElse[0]) {
		t.Fatal("an if without an else branch should equal itself")
	}
}

func TestEqualRejectsDifferentTags(t *testing.T) {
	a := mustParse(t, "program { x := 1 }")
	b := mustParse(t, "procedure P() { }")
	if Equal(a[0], b[0]) {
		t.Fatal("nodes with different tags should never be equal")
	}
}
