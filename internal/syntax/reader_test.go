package syntax

import "testing"

func TestReaderAdvanceTracksLineAndColumn(t *testing.T) {
	r := NewReader("a.gbs", "ab\ncd")

	r = r.ConsumeCharacter() // 'a'
	r = r.ConsumeCharacter() // 'b'
	if pos := r.Pos(); pos.Line != 1 || pos.Column != 3 {
		t.Fatalf("after two chars, pos = %+v", pos)
	}

	r = r.ConsumeCharacter() // '\n'
	if pos := r.Pos(); pos.Line != 2 || pos.Column != 1 {
		t.Fatalf("after newline, pos = %+v", pos)
	}

	r = r.ConsumeString("cd")
	if !r.Eof() {
		t.Fatal("expected EOF after consuming entire text")
	}
}

func TestReaderIsImmutable(t *testing.T) {
	r1 := NewReader("a.gbs", "xy")
	r2 := r1.ConsumeCharacter()

	if r1.Eof() {
		t.Fatal("original reader was mutated")
	}
	ch, ok := r1.Peek()
	if !ok || ch != 'x' {
		t.Fatalf("original reader cursor moved: peek = %q, %v", ch, ok)
	}
	ch2, ok := r2.Peek()
	if !ok || ch2 != 'y' {
		t.Fatalf("advanced reader did not move: peek = %q, %v", ch2, ok)
	}
}

func TestInvisibleAdvanceLeavesPositionUnchanged(t *testing.T) {
	r := NewReader("a.gbs", "/*@x@*/rest")
	start := r.Pos()

	r = r.ConsumeInvisibleString("/*@x@*/")
	if got := r.Pos(); got.Line != start.Line || got.Column != start.Column {
		t.Fatalf("invisible advance changed position: %+v", got)
	}
	ch, ok := r.Peek()
	if !ok || ch != 'r' {
		t.Fatalf("cursor did not move past pragma text: %q, %v", ch, ok)
	}
}

func TestRegionStackPushPop(t *testing.T) {
	r := NewReader("a.gbs", "text")
	if got := r.Pos().Region; got != "a.gbs" {
		t.Fatalf("initial region = %q, want file name", got)
	}

	r = r.BeginRegion("inner")
	if got := r.Pos().Region; got != "inner" {
		t.Fatalf("region after BeginRegion = %q", got)
	}

	r = r.EndRegion()
	if got := r.Pos().Region; got != "a.gbs" {
		t.Fatalf("region after EndRegion = %q, want file name", got)
	}

	// Unbalanced EndRegion is a no-op, not a panic.
	r = r.EndRegion()
	if got := r.Pos().Region; got != "a.gbs" {
		t.Fatalf("unbalanced EndRegion changed region to %q", got)
	}
}

func TestPeekAtPastEnd(t *testing.T) {
	r := NewReader("a.gbs", "ab")
	if _, ok := r.PeekAt(5); ok {
		t.Fatal("PeekAt past end of text should report false")
	}
	ch, ok := r.PeekAt(1)
	if !ok || ch != 'b' {
		t.Fatalf("PeekAt(1) = %q, %v, want 'b', true", ch, ok)
	}
}
