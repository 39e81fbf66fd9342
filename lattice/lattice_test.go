package lattice

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/wakame/dict"
)

// miniDict builds a small hand-checkable dictionary: zero connection
// costs everywhere, so path costs are plain sums of word weights.
func miniDict(t *testing.T) *dict.Dict {
	t.Helper()
	keys := []string{"うち", "す", "すもも", "の", "も", "もも"}
	ids := []int32{0, 1, 2, 3, 4, 5}
	idx, err := dict.BuildIndexTable(keys, ids)
	if err != nil {
		t.Fatalf("building index: %v", err)
	}
	morph := func(w int16) dict.Morph { return dict.Morph{LeftID: 1, RightID: 1, Weight: w} }
	return &dict.Dict{
		Morphs: []dict.Morph{
			morph(100), // うち
			morph(300), // す
			morph(100), // すもも
			morph(50),  // の
			morph(100), // も
			morph(150), // もも
		},
		POSTable: dict.POSTable{
			NameList: []string{"名詞"},
			POSs:     [][]uint32{{0}, {0}, {0}, {0}, {0}, {0}},
		},
		ContentsMeta: dict.ContentsMeta{},
		Contents: dict.Contents{
			{"*"}, {"*"}, {"*"}, {"*"}, {"*"}, {"*"},
		},
		Connection: dict.ConnectionTable{Row: 2, Col: 2, Vec: []int16{0, 0, 0, 0}},
		Index:      idx,
		CharDef:    dict.Fallback().CharDef,
		UnkDict: dict.UnkDict{
			Morphs: []dict.Morph{
				{LeftID: 7, RightID: 7, Weight: 500},  // HIRAGANA
				{LeftID: 9, RightID: 9, Weight: 500},  // ALPHA
				{LeftID: 11, RightID: 11, Weight: 800}, // KANJI
			},
			Index: map[int32]int32{
				int32(dict.Hiragana): 0,
				int32(dict.Alpha):    1,
				int32(dict.Kanji):    2,
			},
			IndexDup:     map[int32]int32{},
			ContentsMeta: dict.ContentsMeta{dict.POSStartIndex: 0, dict.POSHierarchy: 2},
			Contents: dict.Contents{
				{"名詞", "一般"},
				{"名詞", "固有名詞"},
				{"名詞", "一般"},
			},
		},
	}
}

func analyze(t *testing.T, d *dict.Dict, input string, mode Mode) ([]*Node, *Lattice) {
	t.Helper()
	la := New(d, nil)
	la.Build(input)
	la.Forward(mode)
	la.Backward(mode)
	return la.Output(), la
}

func surfaces(nodes []*Node) []string {
	var ss []string
	for _, n := range nodes {
		if n.Surface != "" {
			ss = append(ss, n.Surface)
		}
	}
	return ss
}

func TestBuildBuckets(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	d := miniDict(t)
	la := New(d, nil)
	defer la.Free()
	la.Build("すもも")

	if len(la.list) != 5 {
		t.Fatalf("got %d buckets, want 5", len(la.list))
	}
	bos := la.node(la.list[0][0])
	if !bos.IsBosEos() || bos.Class != Dummy {
		t.Errorf("bucket 0 should hold BOS, got %+v", bos)
	}
	eos := la.node(la.list[4][0])
	if !eos.IsBosEos() || eos.Start != 3 || eos.Position != int32(len("すもも")) {
		t.Errorf("EOS = %+v", eos)
	}
	// bucket 3 collects every node ending at character 3:
	// すもも (0..3), もも (1..3), も (2..3)
	var ends []string
	for _, ref := range la.list[3] {
		ends = append(ends, la.node(ref).Surface)
	}
	want := map[string]bool{"すもも": true, "もも": true, "も": true}
	if len(ends) != 3 {
		t.Fatalf("bucket 3 = %v, want 3 nodes", ends)
	}
	for _, s := range ends {
		if !want[s] {
			t.Errorf("unexpected node %q in bucket 3", s)
		}
	}
}

func TestViterbiBestPath(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	d := miniDict(t)
	out, la := analyze(t, d, "すもものうち", Normal)
	defer la.Free()

	// すもも(100) の(50) うち(100) beats every alternative
	got := surfaces(out)
	want := []string{"すもも", "の", "うち"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("best path = %v, want %v", got, want)
	}
	if out[0].Class != Dummy || out[len(out)-1].Class != Dummy {
		t.Errorf("path must be delimited by BOS/EOS")
	}
	if eos := out[len(out)-1]; eos.Cost != 250 {
		t.Errorf("EOS cost = %d, want 250", eos.Cost)
	}
}

func TestCostMonotonicity(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	d := miniDict(t)
	out, la := analyze(t, d, "すもももももももものうち", Normal)
	defer la.Free()
	for i := 1; i < len(out); i++ {
		if out[i].Cost < out[i-1].Cost {
			t.Errorf("cost decreases along the path: %d after %d (node %q)",
				out[i].Cost, out[i-1].Cost, out[i].Surface)
		}
	}
}

func TestCoverageAndFaithfulness(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	d := miniDict(t)
	inputs := []string{"すもも", "すもものうち", "もものうち", "ABCのうち", "日月火水"}
	for _, input := range inputs {
		out, la := analyze(t, d, input, Normal)
		chars := 0
		for _, n := range out {
			if n.IsBosEos() {
				continue
			}
			chars += countChars(n.Surface)
			if got := input[n.Position : int(n.Position)+len(n.Surface)]; got != n.Surface {
				t.Errorf("%s: surface %q does not match input at %d", input, n.Surface, n.Position)
			}
		}
		if chars != countChars(input) {
			t.Errorf("%s: best path covers %d chars, want %d", input, chars, countChars(input))
		}
		la.Free()
	}
}

func TestTieBreakEarliestPredecessor(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	// two homograph entries for あ with identical weights produce two
	// equal-cost predecessors for the following node
	idx, err := dict.BuildIndexTable([]string{"あ", "あ", "い"}, []int32{0, 1, 2})
	if err != nil {
		t.Fatalf("building index: %v", err)
	}
	d := miniDict(t)
	d.Morphs = []dict.Morph{
		{LeftID: 1, RightID: 1, Weight: 100},
		{LeftID: 1, RightID: 1, Weight: 100},
		{LeftID: 1, RightID: 1, Weight: 100},
	}
	d.Index = idx

	la := New(d, nil)
	defer la.Free()
	la.Build("あい")
	la.Forward(Normal)

	if len(la.list[1]) != 2 {
		t.Fatalf("bucket 1 = %d nodes, want the two homographs", len(la.list[1]))
	}
	target := la.node(la.list[2][0])
	if target.prev != la.list[1][0] {
		t.Errorf("tie must resolve to the first predecessor discovered")
	}
}

func TestUnknownGrouping(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	d := miniDict(t)
	out, la := analyze(t, d, "ABC", Normal)
	defer la.Free()

	got := surfaces(out)
	if len(got) != 1 || got[0] != "ABC" {
		t.Fatalf("best path = %v, want one grouped unknown node ABC", got)
	}
	for _, n := range out {
		if n.Surface == "ABC" && n.Class != Unknown {
			t.Errorf("ABC should be Unknown, is %s", n.Class)
		}
	}
}

func TestUnknownTruncatedNodes(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	d := miniDict(t)
	la := New(d, nil)
	defer la.Free()
	la.Build("ABC")

	// grouping at position 0 adds both the full span and the span
	// shortened by one character
	var atTwo, atThree []string
	for _, ref := range la.list[2] {
		atTwo = append(atTwo, la.node(ref).Surface)
	}
	for _, ref := range la.list[3] {
		atThree = append(atThree, la.node(ref).Surface)
	}
	if !contains(atTwo, "AB") {
		t.Errorf("bucket 2 = %v, want truncated node AB", atTwo)
	}
	if !contains(atThree, "ABC") {
		t.Errorf("bucket 3 = %v, want full node ABC", atThree)
	}
}

func contains(ss []string, s string) bool {
	for _, x := range ss {
		if x == s {
			return true
		}
	}
	return false
}

func TestUnmappedCategory(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	d := miniDict(t)
	out, la := analyze(t, d, "ℵ", Normal) // no unknown template for DEFAULT
	defer la.Free()

	got := surfaces(out)
	if len(got) != 1 || got[0] != "ℵ" {
		t.Fatalf("best path = %v, want the connectivity node", got)
	}
	for _, n := range out {
		if n.Surface == "ℵ" {
			if n.Class != Unknown || n.ID != UnmappedID {
				t.Errorf("connectivity node = %+v, want Unknown with ID %d", n, UnmappedID)
			}
		}
	}
}

func TestEmptyInput(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	d := miniDict(t)
	out, la := analyze(t, d, "", Normal)
	defer la.Free()
	if len(out) != 2 {
		t.Fatalf("empty input: %d nodes, want BOS and EOS", len(out))
	}
	for _, n := range out {
		if !n.IsBosEos() || n.Surface != "" {
			t.Errorf("empty input must yield only sentinels, got %+v", n)
		}
	}
}

func TestMalformedUTF8(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	d := miniDict(t)
	out, la := analyze(t, d, "あ\xffい", Normal)
	defer la.Free()

	got := surfaces(out)
	if len(got) != 2 || got[0] != "あ" || got[1] != "い" {
		t.Errorf("best path = %v, want the two valid characters", got)
	}
	if eos := out[len(out)-1]; eos.Cost == MaximumCost {
		t.Errorf("path must stay connected across skipped bytes")
	}
}

func TestExtendedSplit(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	d := miniDict(t)
	out, la := analyze(t, d, "ABCD", Extended)
	defer la.Free()

	got := surfaces(out)
	want := []string{"A", "B", "C", "D"}
	if strings.Join(got, "") != "ABCD" || len(got) != 4 {
		t.Fatalf("extended split = %v, want %v", got, want)
	}
	pos := int32(0)
	for _, n := range out {
		if n.IsBosEos() {
			continue
		}
		if n.Class != Dummy {
			t.Errorf("split node %q class = %s, want DUMMY", n.Surface, n.Class)
		}
		if n.Position != pos {
			t.Errorf("split node %q position = %d, want %d", n.Surface, n.Position, pos)
		}
		pos += int32(len(n.Surface))
	}
}

func TestModeOrdering(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	d := miniDict(t)
	for _, input := range []string{"ABCDEFGHIJ", "日月火水", "すもものうち"} {
		costs := make(map[Mode]int32)
		for _, mode := range []Mode{Normal, Search, Extended} {
			out, la := analyze(t, d, input, mode)
			// compare pre-split totals: the EOS node carries the path cost
			costs[mode] = out[len(out)-1].Cost
			la.Free()
		}
		if costs[Normal] > costs[Search] || costs[Search] > costs[Extended] {
			t.Errorf("%s: mode ordering violated: normal=%d search=%d extended=%d",
				input, costs[Normal], costs[Search], costs[Extended])
		}
	}
}

func TestSearchPenaltyKanji(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	d := miniDict(t)

	outN, laN := analyze(t, d, "日月火水", Normal)
	costN := outN[len(outN)-1].Cost
	laN.Free()
	outS, laS := analyze(t, d, "日月火水", Search)
	costS := outS[len(outS)-1].Cost
	laS.Free()

	if costS <= costN {
		t.Errorf("a 4-kanji unknown run must be penalized in search mode: %d vs %d", costS, costN)
	}
}

func TestLatticeDot(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	d := miniDict(t)
	la := New(d, nil)
	defer la.Free()
	la.Build("すもも")
	la.Forward(Normal)
	la.Backward(Normal)

	var sb strings.Builder
	la.Dot(&sb)
	dot := sb.String()
	if !strings.HasPrefix(dot, "graph lattice {") {
		t.Errorf("dot output does not start a graph: %q", dot[:min(40, len(dot))])
	}
	if !strings.Contains(dot, "BOS") || !strings.Contains(dot, "EOS") {
		t.Errorf("dot output misses the sentinels")
	}
	if !strings.Contains(dot, "すもも") {
		t.Errorf("dot output misses the best-path node")
	}
}

func TestPoolReuse(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	d := miniDict(t)
	for i := 0; i < 3; i++ {
		out, la := analyze(t, d, "すもものうち", Normal)
		if got := strings.Join(surfaces(out), "|"); got != "すもも|の|うち" {
			t.Errorf("round %d: best path = %s", i, got)
		}
		la.Free()
	}
}
