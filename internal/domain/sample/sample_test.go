package sample

import "testing"

func TestSet_DuplicateXLastWriteWins(t *testing.T) {
	s := NewSet()
	s.Put(2, 20)
	s.Put(1, 10)
	s.Put(2, 25)
	s.Put(3, 30)
	s.Put(1, 11)

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}

	want := []Sample{{1, 11}, {2, 25}, {3, 30}}
	got := s.Samples()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Samples()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSet_ValuesSortedByX(t *testing.T) {
	s := NewSet()
	s.Put(5, 1)
	s.Put(-1, 2)
	s.Put(3, 3)

	xs, ys := s.Values()
	wantX := []float64{-1, 3, 5}
	wantY := []float64{2, 3, 1}
	for i := range wantX {
		if xs[i] != wantX[i] || ys[i] != wantY[i] {
			t.Errorf("point %d = (%v, %v), want (%v, %v)", i, xs[i], ys[i], wantX[i], wantY[i])
		}
	}
}

func TestSet_Empty(t *testing.T) {
	s := NewSet()
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	if len(s.Samples()) != 0 {
		t.Error("Samples() should be empty")
	}
	if _, _, _, _, ok := s.Bounds(); ok {
		t.Error("Bounds() ok should be false for empty set")
	}
}

func TestSet_Bounds(t *testing.T) {
	s := NewSet()
	s.Put(4, -2)
	s.Put(1, 7)
	s.Put(9, 3)

	minX, maxX, minY, maxY, ok := s.Bounds()
	if !ok {
		t.Fatal("Bounds() ok = false")
	}
	if minX != 1 || maxX != 9 {
		t.Errorf("x bounds = [%v, %v], want [1, 9]", minX, maxX)
	}
	if minY != -2 || maxY != 7 {
		t.Errorf("y bounds = [%v, %v], want [-2, 7]", minY, maxY)
	}
}
