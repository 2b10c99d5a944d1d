package engine

import (
	"errors"
	"math"
	"testing"

	"termflip/types"
)

// boardFromRows builds a board from rows of 'X' (black), 'O' (white) and '.'.
func boardFromRows(t *testing.T, rows ...string) *Board {
	t.Helper()
	b, err := NewBoard(len(rows[0]), len(rows))
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	for y, row := range rows {
		for x, ch := range row {
			cell := types.Empty
			switch ch {
			case 'X':
				cell = types.Black
			case 'O':
				cell = types.White
			}
			b.Apply(CellChange{Loc: types.Loc(x, y), Cell: cell})
		}
	}
	return b
}

func newStandardBoard(t *testing.T) *Board {
	t.Helper()
	b, err := NewBoard(8, 8)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	return b
}

func locsOf(changes []CellChange) []types.Location {
	var locs []types.Location
	for _, c := range changes {
		locs = append(locs, c.Loc)
	}
	return locs
}

func sameLocs(a, b []types.Location) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewBoardStartingPattern(t *testing.T) {
	b := newStandardBoard(t)

	want := map[types.Location]types.Cell{
		types.Loc(3, 3): types.Black,
		types.Loc(4, 4): types.Black,
		types.Loc(4, 3): types.White,
		types.Loc(3, 4): types.White,
	}
	for _, loc := range b.Locations() {
		expected, ok := want[loc]
		if !ok {
			expected = types.Empty
		}
		if got := b.CellAt(loc); got != expected {
			t.Errorf("CellAt(%v) = %v, want %v", loc, got, expected)
		}
	}

	if b.Count(types.Black) != 2 || b.Count(types.White) != 2 || b.Count(types.Empty) != 60 {
		t.Fatalf("unexpected counts: black=%d white=%d empty=%d",
			b.Count(types.Black), b.Count(types.White), b.Count(types.Empty))
	}
	if b.IsTerminal() {
		t.Fatal("starting board should not be terminal")
	}
	if b.Outcome() != InProgress {
		t.Fatalf("Outcome() = %v, want InProgress", b.Outcome())
	}
}

func TestNewBoardOddSize(t *testing.T) {
	b, err := NewBoard(5, 7)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	if b.CellAt(types.Loc(2, 3)) != types.Black || b.CellAt(types.Loc(1, 2)) != types.Black {
		t.Errorf("black diagonal misplaced:\n%s", b)
	}
	if b.CellAt(types.Loc(2, 2)) != types.White || b.CellAt(types.Loc(1, 3)) != types.White {
		t.Errorf("white diagonal misplaced:\n%s", b)
	}
	if b.Width() != 5 || b.Height() != 7 {
		t.Fatalf("dimensions = %dx%d, want 5x7", b.Width(), b.Height())
	}
}

func TestNewBoardTooSmall(t *testing.T) {
	for _, dims := range [][2]int{{1, 8}, {8, 1}, {0, 0}, {-2, 4}} {
		if _, err := NewBoard(dims[0], dims[1]); !errors.Is(err, ErrBoardSize) {
			t.Errorf("NewBoard(%d, %d) error = %v, want ErrBoardSize", dims[0], dims[1], err)
		}
	}
}

func TestCellAtOutOfRangePanics(t *testing.T) {
	b := newStandardBoard(t)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range location")
		}
	}()
	b.CellAt(types.Loc(8, 0))
}

func TestOpeningMoves(t *testing.T) {
	b := newStandardBoard(t)
	moves := b.LegalMoves(types.Black)
	if len(moves) != 4 {
		t.Fatalf("expected 4 opening moves, got %d", len(moves))
	}

	// equal scores keep scan order
	want := []types.Location{types.Loc(4, 2), types.Loc(5, 3), types.Loc(2, 4), types.Loc(3, 5)}
	for i, mv := range moves {
		if !mv.IsValid() {
			t.Fatalf("move %d is invalid", i)
		}
		if mv.Captures() != 1 {
			t.Errorf("move %d captures %d, want 1", i, mv.Captures())
		}
		placement, _ := mv.Placement()
		if placement.Loc != want[i] || placement.Cell != types.Black {
			t.Errorf("move %d placement = %+v, want Black at %v", i, placement, want[i])
		}
	}
}

func TestPlaceFlipsExactlyOne(t *testing.T) {
	b := newStandardBoard(t)
	before := b.Clone()

	mv := NewMovement(b, types.Loc(2, 4), types.Black)
	if !mv.IsValid() {
		t.Fatal("expected a valid movement")
	}
	mv.PlayAll(b)

	changed := map[types.Location]types.Cell{
		types.Loc(2, 4): types.Black,
		types.Loc(3, 4): types.Black,
	}
	for _, loc := range b.Locations() {
		want, ok := changed[loc]
		if !ok {
			want = before.CellAt(loc)
		}
		if got := b.CellAt(loc); got != want {
			t.Errorf("CellAt(%v) = %v, want %v", loc, got, want)
		}
	}

	if got := b.Count(types.Black); got != before.Count(types.Black)+2 {
		t.Errorf("black count = %d, want %d", got, before.Count(types.Black)+2)
	}
	if got := b.Count(types.White); got != before.Count(types.White)-1 {
		t.Errorf("white count = %d, want %d", got, before.Count(types.White)-1)
	}
}

func TestPlaceOnOccupiedIsInvalid(t *testing.T) {
	b := newStandardBoard(t)
	before := b.String()

	for _, loc := range []types.Location{types.Loc(3, 3), types.Loc(4, 3)} {
		mv := NewMovement(b, loc, types.Black)
		if mv.IsValid() {
			t.Fatalf("movement on occupied %v should be invalid", loc)
		}
		if mv.PlayOne(b) {
			t.Fatal("PlayOne on invalid movement should return false")
		}
		mv.PlayAll(b)
	}

	if b.String() != before {
		t.Fatalf("board changed:\n%s\nwant:\n%s", b, before)
	}
	if b.Count(types.Black) != 2 || b.Count(types.White) != 2 || b.IsTerminal() {
		t.Fatal("counts or terminal flag changed")
	}
}

func TestMovementRejectsBadInput(t *testing.T) {
	b := newStandardBoard(t)
	if NewMovement(b, types.Loc(-1, 2), types.Black).IsValid() {
		t.Error("off-board location should be invalid")
	}
	if NewMovement(b, types.Loc(4, 8), types.Black).IsValid() {
		t.Error("off-board location should be invalid")
	}
	if NewMovement(b, types.Loc(4, 2), types.Empty).IsValid() {
		t.Error("Empty is not a player")
	}
	if NewMovement(b, types.Loc(0, 0), types.Black).IsValid() {
		t.Error("placement without captures should be invalid")
	}
}

func TestCapturesAllEightDirectionsInOrder(t *testing.T) {
	b := boardFromRows(t,
		"X.X.X",
		".OOO.",
		"XO.OX",
		".OOO.",
		"X.X.X",
	)
	mv := NewMovement(b, types.Loc(2, 2), types.Black)
	want := []types.Location{
		types.Loc(2, 2),
		types.Loc(1, 1), types.Loc(1, 2), types.Loc(1, 3),
		types.Loc(2, 1), types.Loc(2, 3),
		types.Loc(3, 1), types.Loc(3, 2), types.Loc(3, 3),
	}
	if got := locsOf(mv.Changes()); !sameLocs(got, want) {
		t.Fatalf("changes = %v, want %v", got, want)
	}
	for _, c := range mv.Changes() {
		if c.Cell != types.Black {
			t.Fatalf("change %+v should write Black", c)
		}
	}
}

func TestRayRules(t *testing.T) {
	tests := []struct {
		name     string
		rows     []string
		at       types.Location
		captures []types.Location // nil means invalid
	}{
		{
			name:     "near to far, bracket excluded",
			rows:     []string{".OOOX.", "......"},
			at:       types.Loc(0, 0),
			captures: []types.Location{types.Loc(1, 0), types.Loc(2, 0), types.Loc(3, 0)},
		},
		{
			name: "empty mid-ray",
			rows: []string{".O.X.", "....."},
			at:   types.Loc(0, 0),
		},
		{
			name: "runs off board",
			rows: []string{".OOO", "...."},
			at:   types.Loc(0, 0),
		},
		{
			name: "starts with own color",
			rows: []string{".XO", "..."},
			at:   types.Loc(0, 0),
		},
		{
			name:     "zero-length ray beside a capturing one",
			rows:     []string{"XX.OOX", "......"},
			at:       types.Loc(2, 0),
			captures: []types.Location{types.Loc(3, 0), types.Loc(4, 0)},
		},
	}
	for _, tt := range tests {
		b := boardFromRows(t, tt.rows...)
		mv := NewMovement(b, tt.at, types.Black)
		if tt.captures == nil {
			if mv.IsValid() {
				t.Errorf("%s: expected invalid movement, got %v", tt.name, locsOf(mv.Changes()))
			}
			if b.IsLegalMove(tt.at, types.Black) {
				t.Errorf("%s: IsLegalMove should be false", tt.name)
			}
			continue
		}
		want := append([]types.Location{tt.at}, tt.captures...)
		if got := locsOf(mv.Changes()); !sameLocs(got, want) {
			t.Errorf("%s: changes = %v, want %v", tt.name, got, want)
		}
		if !b.IsLegalMove(tt.at, types.Black) {
			t.Errorf("%s: IsLegalMove should be true", tt.name)
		}
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		at   types.Location
		want int
	}{
		{"corner", []string{".OX.", "O...", "X...", "...."}, types.Loc(0, 0), 202},
		{"edge", []string{"....", ".OX.", "....", "...."}, types.Loc(0, 1), 1},
		{"interior", []string{"....", "..OX", "....", "...."}, types.Loc(1, 1), 101},
	}
	for _, tt := range tests {
		b := boardFromRows(t, tt.rows...)
		mv := NewMovement(b, tt.at, types.Black)
		if got := mv.Score(b); got != tt.want {
			t.Errorf("%s: Score() = %d, want %d", tt.name, got, tt.want)
		}
	}

	b := newStandardBoard(t)
	if got := (Movement{}).Score(b); got != math.MinInt {
		t.Errorf("invalid movement Score() = %d, want math.MinInt", got)
	}
}

func TestLegalMovesSortedByScore(t *testing.T) {
	b := boardFromRows(t,
		".OX.",
		"O...",
		"X.OX",
		"....",
	)
	moves := b.LegalMoves(types.Black)
	if len(moves) < 2 {
		t.Fatalf("expected several moves, got %d", len(moves))
	}
	first, _ := moves[0].Placement()
	if first.Loc != types.Loc(0, 0) {
		t.Errorf("best move = %v, want corner (0, 0)", first.Loc)
	}
	for i := 1; i < len(moves); i++ {
		if moves[i-1].Score(b) < moves[i].Score(b) {
			t.Fatalf("moves not sorted: %d before %d", moves[i-1].Score(b), moves[i].Score(b))
		}
	}
}

func TestApply(t *testing.T) {
	b := newStandardBoard(t)
	if b.Apply(CellChange{Loc: types.Loc(3, 3), Cell: types.Black}) {
		t.Error("writing the same value should report no change")
	}
	if !b.Apply(CellChange{Loc: types.Loc(0, 0), Cell: types.White}) {
		t.Error("writing a new value should report a change")
	}
	if b.Count(types.White) != 3 || b.Count(types.Empty) != 59 {
		t.Errorf("counts not refreshed: white=%d empty=%d", b.Count(types.White), b.Count(types.Empty))
	}
}

func TestTerminalAndOutcome(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want Outcome
	}{
		{"black only", []string{"XXXX", "XXXX", "XXX."}, BlackWins},
		{"white majority", []string{"OOOX", "OOOX"}, WhiteWins},
		{"full board tie", []string{"XXOO", "XXOO"}, Draw},
	}
	for _, tt := range tests {
		b := boardFromRows(t, tt.rows...)
		if !b.IsTerminal() {
			t.Errorf("%s: expected terminal board:\n%s", tt.name, b)
			continue
		}
		if moves := b.LegalMoves(types.Black); len(moves) != 0 {
			t.Errorf("%s: terminal board returned %d moves", tt.name, len(moves))
		}
		if got := b.Outcome(); got != tt.want {
			t.Errorf("%s: Outcome() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPlayOneMatchesPlayAll(t *testing.T) {
	b := newStandardBoard(t)
	turn := types.Black
	for step := 0; step < 80 && !b.IsTerminal(); step++ {
		moves := b.LegalMoves(turn)
		if len(moves) == 0 {
			turn = turn.Opposite()
			continue
		}

		stepped := b.Clone()
		single := moves[len(moves)-1]
		for single.PlayOne(stepped) {
		}
		all := moves[len(moves)-1]
		all.PlayAll(b)

		if b.String() != stepped.String() {
			t.Fatalf("step %d: PlayOne result\n%s\ndiffers from PlayAll\n%s", step, stepped, b)
		}
		if single.IsValid() || all.IsValid() {
			t.Fatal("drained movements should be invalid")
		}
		checkInvariants(t, b)
		turn = turn.Opposite()
	}
}

// checkInvariants compares the cached board info with a fresh tally.
func checkInvariants(t *testing.T, b *Board) {
	t.Helper()
	tally := map[types.Cell]int{}
	for _, loc := range b.Locations() {
		tally[b.CellAt(loc)]++
	}
	total := 0
	for _, c := range []types.Cell{types.Empty, types.Black, types.White} {
		if tally[c] != b.Count(c) {
			t.Fatalf("Count(%v) = %d, tally %d", c, b.Count(c), tally[c])
		}
		total += b.Count(c)
	}
	if total != b.Width()*b.Height() {
		t.Fatalf("counts sum to %d, want %d", total, b.Width()*b.Height())
	}
	noMoves := len(b.findLegalMoves(types.Black)) == 0 && len(b.findLegalMoves(types.White)) == 0
	if b.IsTerminal() != noMoves {
		t.Fatalf("IsTerminal() = %v but no-moves = %v", b.IsTerminal(), noMoves)
	}
}
