package ranking

import (
	"testing"

	"github.com/stackframe/bentographer/internal/domain/collection/field"
)

const number field.Type = "com.filemaker.bento.field.core.number"

func makeField(t *testing.T, name string, ft field.Type) field.Field {
	t.Helper()
	f, err := field.New(name, ft, name)
	if err != nil {
		t.Fatalf("field.New: %v", err)
	}
	return f
}

func names(fields []field.Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Name()
	}
	return out
}

func assertOrder(t *testing.T, got []field.Field, want ...string) {
	t.Helper()
	g := names(got)
	if len(g) != len(want) {
		t.Fatalf("got %v, want %v", g, want)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("got %v, want %v", g, want)
		}
	}
}

// priorityOf mirrors the precedence tiers for property checks; lower ranks first.
func priorityOf(ft field.Type, order []field.Type) int {
	for i, t := range order {
		if ft == t {
			return i
		}
	}
	return len(order)
}

func TestRankX_Scenario(t *testing.T) {
	a := makeField(t, "A", field.Date)
	b := makeField(t, "B", field.Text)
	c := makeField(t, "C", field.DateCreated)
	d := makeField(t, "D", number)
	p := Default()

	xs := p.RankX([]field.Field{a, b, c, d})
	assertOrder(t, xs, "A", "C", "D")

	ys := p.RankY([]field.Field{a, b, c, d}, a)
	assertOrder(t, ys, "C", "D")
}

func TestRankX_EmptyInput(t *testing.T) {
	p := Default()
	if got := p.RankX(nil); len(got) != 0 {
		t.Errorf("RankX(nil) = %v, want empty", names(got))
	}
	if got := p.RankY(nil, field.Field{}); len(got) != 0 {
		t.Errorf("RankY(nil) = %v, want empty", names(got))
	}
}

func TestRankX_AllIgnorable(t *testing.T) {
	p := Default()
	fields := []field.Field{
		makeField(t, "sep", field.HorizontalSeparator),
		makeField(t, "notes", field.Text),
		makeField(t, "box", field.TextBox),
		makeField(t, "div", field.ColumnDivider),
		makeField(t, "photo", field.Media),
	}
	if got := p.RankX(fields); len(got) != 0 {
		t.Errorf("RankX() = %v, want empty", names(got))
	}
}

func TestRankX_FullPrecedence(t *testing.T) {
	p := Default()
	fields := []field.Field{
		makeField(t, "n1", number),
		makeField(t, "mod", field.DateModified),
		makeField(t, "n2", number),
		makeField(t, "created", field.DateCreated),
		makeField(t, "date1", field.Date),
		makeField(t, "date2", field.Date),
	}
	assertOrder(t, p.RankX(fields), "date1", "date2", "created", "mod", "n1", "n2")
}

func TestRankY_ReversePrecedence(t *testing.T) {
	p := Default()
	x := makeField(t, "x", number)
	fields := []field.Field{
		makeField(t, "n1", number),
		makeField(t, "date", field.Date),
		x,
		makeField(t, "created", field.DateCreated),
		makeField(t, "n2", number),
		makeField(t, "mod", field.DateModified),
	}
	assertOrder(t, p.RankY(fields, x), "mod", "created", "date", "n1", "n2")
}

func TestRank_PrecedenceProperty(t *testing.T) {
	p := Default()
	types := []field.Type{number, field.Date, field.Text, field.DateModified, field.DateCreated, field.Media, number, field.Date}
	var fields []field.Field
	for i, ft := range types {
		fields = append(fields, makeField(t, string(rune('a'+i)), ft))
	}

	check := func(name string, got []field.Field, order []field.Type) {
		for i := 1; i < len(got); i++ {
			prev := priorityOf(got[i-1].FieldType(), order)
			cur := priorityOf(got[i].FieldType(), order)
			if prev > cur {
				t.Errorf("%s: %s (%s) ranked before %s (%s)", name,
					got[i-1].Name(), got[i-1].FieldType().Short(), got[i].Name(), got[i].FieldType().Short())
			}
		}
	}
	check("RankX", p.RankX(fields), xPriority)
	check("RankY", p.RankY(fields, fields[0]), yPriority)
}

func TestRank_NeverIncludesIgnorable(t *testing.T) {
	p := Default()
	fields := []field.Field{
		makeField(t, "notes", field.Text),
		makeField(t, "date", field.Date),
		makeField(t, "photo", field.Media),
		makeField(t, "n", number),
	}
	for _, f := range p.RankX(fields) {
		if field.DefaultIgnorable().Contains(f.FieldType()) {
			t.Errorf("RankX included ignorable field %s", f.Name())
		}
	}
	for _, f := range p.RankY(fields, fields[1]) {
		if field.DefaultIgnorable().Contains(f.FieldType()) {
			t.Errorf("RankY included ignorable field %s", f.Name())
		}
	}
}

func TestRankY_RemovesChosenXByIdentity(t *testing.T) {
	p := Default()
	// Two fields with identical label, type and column differ only by identity.
	first := makeField(t, "Weight", number)
	second := makeField(t, "Weight", number)
	fields := []field.Field{first, second}

	ys := p.RankY(fields, first)
	if len(ys) != 1 {
		t.Fatalf("RankY() len = %d, want 1", len(ys))
	}
	if !ys[0].Same(second) {
		t.Error("RankY() kept the chosen X instead of its twin")
	}
	for _, f := range ys {
		if f.Same(first) {
			t.Error("chosen X must never be a Y candidate")
		}
	}
}

func TestRankY_ChosenXNotInPool(t *testing.T) {
	p := Default()
	fields := []field.Field{makeField(t, "a", number), makeField(t, "b", number)}
	stranger := makeField(t, "a", number)
	assertOrder(t, p.RankY(fields, stranger), "a", "b")
}

func TestRank_Deterministic(t *testing.T) {
	p := Default()
	fields := []field.Field{
		makeField(t, "n1", number),
		makeField(t, "n2", number),
		makeField(t, "created", field.DateCreated),
		makeField(t, "n3", number),
		makeField(t, "date", field.Date),
	}
	first := names(p.RankX(fields))
	second := names(p.RankX(fields))
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("RankX not deterministic: %v vs %v", first, second)
		}
	}
	y1 := names(p.RankY(fields, fields[4]))
	y2 := names(p.RankY(fields, fields[4]))
	for i := range y1 {
		if y1[i] != y2[i] {
			t.Fatalf("RankY not deterministic: %v vs %v", y1, y2)
		}
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	p := Default()
	fields := []field.Field{
		makeField(t, "n", number),
		makeField(t, "notes", field.Text),
		makeField(t, "date", field.Date),
	}
	_ = p.RankX(fields)
	_ = p.RankY(fields, fields[2])
	assertOrder(t, fields, "n", "notes", "date")
}

func TestRank_SingleCandidateStillOffered(t *testing.T) {
	p := Default()
	only := makeField(t, "only", number)
	assertOrder(t, p.RankX([]field.Field{only}), "only")
}

func TestNew_CustomIgnorable(t *testing.T) {
	p := New(field.NewTypeSet(number))
	fields := []field.Field{
		makeField(t, "n", number),
		makeField(t, "notes", field.Text),
	}
	assertOrder(t, p.RankX(fields), "notes")
}

func TestNew_NilIgnorable(t *testing.T) {
	p := New(nil)
	fields := []field.Field{makeField(t, "notes", field.Text)}
	assertOrder(t, p.Filter(fields), "notes")
}
