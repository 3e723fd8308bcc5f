package life

import (
	"errors"
	"slices"
	"testing"
)

func mustSet(t *testing.T, e *Engine, x, y int, alive bool) {
	t.Helper()
	if err := e.Set(x, y, alive); err != nil {
		t.Fatalf("Set(%d,%d): %v", x, y, err)
	}
}

func checkOnly(t *testing.T, e *Engine, want map[[2]int]bool, context string) {
	t.Helper()
	size := e.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			alive := e.Alive(x, y)
			_, shouldBeAlive := want[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", context, x, y, alive, shouldBeAlive)
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	e := New(5, 5, 1)
	mustSet(t, e, 1, 2, true)
	mustSet(t, e, 2, 2, true)
	mustSet(t, e, 3, 2, true)

	e.Step()
	checkOnly(t, e, map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}, "after first step")

	e.Step()
	checkOnly(t, e, map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}, "after second step")
}

func TestBlockStillLife(t *testing.T) {
	e := New(6, 6, 1)
	block := map[[2]int]bool{
		{2, 2}: true,
		{3, 2}: true,
		{2, 3}: true,
		{3, 3}: true,
	}
	for pos := range block {
		mustSet(t, e, pos[0], pos[1], true)
	}

	e.Step()
	checkOnly(t, e, block, "after one step")
	e.Step()
	checkOnly(t, e, block, "after two steps")
}

func TestIsolatedCellDies(t *testing.T) {
	e := New(5, 5, 1)
	mustSet(t, e, 2, 2, true)
	e.Step()
	checkOnly(t, e, nil, "isolated cell must die of underpopulation")
}

func TestCornerCellDies(t *testing.T) {
	// A lone cell at the innermost logical corner reads all eight
	// neighbors from the halo and dies exactly like an interior cell.
	e := New(5, 5, 1)
	mustSet(t, e, 0, 0, true)
	e.Step()
	checkOnly(t, e, nil, "corner cell must die of underpopulation")
}

func TestBirthRule(t *testing.T) {
	e := New(5, 5, 1)
	mustSet(t, e, 1, 1, true)
	mustSet(t, e, 2, 1, true)
	mustSet(t, e, 1, 2, true)

	e.Step()
	// The three cells form an L; (2,2) has exactly three live
	// neighbors and is born, completing a block.
	checkOnly(t, e, map[[2]int]bool{
		{1, 1}: true,
		{2, 1}: true,
		{1, 2}: true,
		{2, 2}: true,
	}, "birth on exactly three neighbors")
}

func TestOverpopulationRule(t *testing.T) {
	e := New(5, 5, 1)
	// Plus shape: the center has four live neighbors and dies.
	mustSet(t, e, 2, 2, true)
	mustSet(t, e, 2, 1, true)
	mustSet(t, e, 2, 3, true)
	mustSet(t, e, 1, 2, true)
	mustSet(t, e, 3, 2, true)

	e.Step()
	if e.Alive(2, 2) {
		t.Fatal("center cell with four neighbors must die of overpopulation")
	}
	for _, pos := range [][2]int{{2, 1}, {2, 3}, {1, 2}, {3, 2}} {
		if !e.Alive(pos[0], pos[1]) {
			t.Fatalf("arm cell (%d,%d) with two neighbors must survive", pos[0], pos[1])
		}
	}
}

func TestHaloStaysDead(t *testing.T) {
	e := New(4, 4, 1)
	// Fill the entire logical interior so every edge cell pushes
	// against the halo on each step.
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			mustSet(t, e, x, y, true)
		}
	}

	for step := 0; step < 8; step++ {
		e.Step()
		cells := e.grid.Cells()
		stride := e.grid.Stride()
		for y := 0; y <= e.grid.H+1; y++ {
			for x := 0; x <= e.grid.W+1; x++ {
				if x >= 1 && x <= e.grid.W && y >= 1 && y <= e.grid.H {
					continue
				}
				c := cells[y*stride+x]
				if c.Current || c.Previous {
					t.Fatalf("step %d: halo cell (%d,%d) = %+v, want dead", step, x, y, c)
				}
			}
		}
	}
}

func TestStepDeterminism(t *testing.T) {
	pattern := [][2]int{{1, 1}, {2, 1}, {3, 1}, {3, 2}, {2, 3}}
	build := func() *Engine {
		e := New(8, 8, 1)
		for _, pos := range pattern {
			mustSet(t, e, pos[0], pos[1], true)
		}
		return e
	}

	a := build()
	b := build()
	for i := 0; i < 5; i++ {
		a.Step()
		b.Step()
	}

	bufA := make([]uint8, 8*8)
	bufB := make([]uint8, 8*8)
	if err := a.Snapshot(bufA); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if err := b.Snapshot(bufB); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if !slices.Equal(bufA, bufB) {
		t.Fatal("identical boards diverged after identical steps")
	}
}

func TestClearIdempotent(t *testing.T) {
	e := New(6, 6, 1)
	e.Randomize(0.7)
	e.Clear()
	once := make([]uint8, 6*6)
	if err := e.Snapshot(once); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	e.Clear()
	twice := make([]uint8, 6*6)
	if err := e.Snapshot(twice); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if !slices.Equal(once, twice) {
		t.Fatal("second Clear changed the board")
	}
	for i, v := range once {
		if v != 0 {
			t.Fatalf("cell %d alive after Clear", i)
		}
	}
}

func TestResetDeterministic(t *testing.T) {
	a := New(10, 10, 3)
	b := New(10, 10, 99)
	a.Reset(777)
	b.Reset(777)

	bufA := make([]uint8, 10*10)
	bufB := make([]uint8, 10*10)
	if err := a.Snapshot(bufA); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if err := b.Snapshot(bufB); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if !slices.Equal(bufA, bufB) {
		t.Fatal("Reset with the same seed must produce the same board")
	}
}

func TestRandomizeLeavesHaloDead(t *testing.T) {
	e := New(10, 10, 7)
	e.Randomize(1)

	cells := e.grid.Cells()
	stride := e.grid.Stride()
	for y := 0; y <= e.grid.H+1; y++ {
		for x := 0; x <= e.grid.W+1; x++ {
			interior := x >= 1 && x <= e.grid.W && y >= 1 && y <= e.grid.H
			c := cells[y*stride+x]
			if interior {
				if !c.Current {
					t.Fatalf("interior cell (%d,%d) dead after Randomize(1)", x, y)
				}
				if c.Previous {
					t.Fatalf("interior cell (%d,%d) kept its prior-generation bit", x, y)
				}
				continue
			}
			if c.Current || c.Previous {
				t.Fatalf("halo cell (%d,%d) touched by Randomize", x, y)
			}
		}
	}
}

func TestSetOutOfBounds(t *testing.T) {
	e := New(5, 5, 1)
	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {5, 0}, {0, 5}, {-1, -1}, {5, 5}} {
		err := e.Set(pos[0], pos[1], true)
		if !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Set(%d,%d) error = %v, want ErrOutOfBounds", pos[0], pos[1], err)
		}
	}
	if err := e.Set(4, 4, true); err != nil {
		t.Fatalf("Set at the far logical corner: %v", err)
	}
}

func TestSnapshotLengthMismatch(t *testing.T) {
	e := New(5, 5, 1)
	if err := e.Snapshot(make([]uint8, 24)); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("short buffer error = %v, want ErrInvalidDimensions", err)
	}
	if err := e.Snapshot(make([]uint8, 26)); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("long buffer error = %v, want ErrInvalidDimensions", err)
	}
}

func TestSnapshotProjection(t *testing.T) {
	e := New(8, 8, 1)
	mustSet(t, e, 3, 4, true)

	buf := make([]uint8, 8*8)
	if err := e.Snapshot(buf); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	for i, v := range buf {
		want := uint8(0)
		if i == 4*8+3 {
			want = 1
		}
		if v != want {
			t.Fatalf("buf[%d] = %d, want %d", i, v, want)
		}
	}
}
