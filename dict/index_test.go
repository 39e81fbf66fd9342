package dict

import (
	"testing"
)

func buildTestIndex(t *testing.T) *IndexTable {
	t.Helper()
	keys := []string{"うち", "す", "すもも", "の", "も", "も", "もも"}
	ids := []int32{0, 1, 2, 3, 4, 5, 6}
	idx, err := BuildIndexTable(keys, ids)
	if err != nil {
		t.Fatalf("building index: %v", err)
	}
	return idx
}

func TestIndexExactSearch(t *testing.T) {
	idx := buildTestIndex(t)
	ids := idx.Search("すもも")
	if len(ids) != 1 || ids[0] != 2 {
		t.Errorf("Search(すもも) = %v, want [2]", ids)
	}
	if ids := idx.Search("すも"); ids != nil {
		t.Errorf("Search(すも) = %v, want no match", ids)
	}
	if ids := idx.Search(""); ids != nil {
		t.Errorf("Search(\"\") = %v, want no match", ids)
	}
}

func TestIndexSearchDup(t *testing.T) {
	idx := buildTestIndex(t)
	// も is registered twice with consecutive IDs
	ids := idx.Search("も")
	if len(ids) != 2 || ids[0] != 4 || ids[1] != 5 {
		t.Errorf("Search(も) = %v, want [4 5]", ids)
	}
}

func TestIndexCommonPrefixSearch(t *testing.T) {
	idx := buildTestIndex(t)
	type hit struct{ id, length int }
	var hits []hit
	idx.CommonPrefixSearchCallback("すもものうち", func(id, length int) {
		hits = append(hits, hit{id, length})
	})
	want := []hit{
		{1, len("す")},
		{2, len("すもも")},
	}
	if len(hits) != len(want) {
		t.Fatalf("common prefix search: %v, want %v", hits, want)
	}
	for i := range want {
		if hits[i] != want[i] {
			t.Errorf("hit #%d = %v, want %v", i, hits[i], want[i])
		}
	}
	// prefix lengths must come out in increasing order
	for i := 1; i < len(hits); i++ {
		if hits[i].length <= hits[i-1].length {
			t.Errorf("prefix lengths not increasing: %v", hits)
		}
	}
}

func TestIndexCommonPrefixSearchExpandsDup(t *testing.T) {
	idx := buildTestIndex(t)
	var ids []int
	idx.CommonPrefixSearchCallback("もも", func(id, length int) {
		ids = append(ids, id)
	})
	// も twice (homograph), then もも
	if len(ids) != 3 || ids[0] != 4 || ids[1] != 5 || ids[2] != 6 {
		t.Errorf("dup expansion: ids = %v, want [4 5 6]", ids)
	}
}

func TestIndexNoMatch(t *testing.T) {
	idx := buildTestIndex(t)
	called := false
	idx.CommonPrefixSearchCallback("xyz", func(id, length int) { called = true })
	if called {
		t.Errorf("common prefix search on unrelated input should not match")
	}
}

func TestIndexGroupedCommonPrefixSearch(t *testing.T) {
	idx := buildTestIndex(t)
	matches := idx.CommonPrefixSearch("もも")
	if len(matches) != 2 {
		t.Fatalf("got %d match groups, want 2", len(matches))
	}
	if len(matches[0].IDs) != 2 || matches[0].Len != len("も") {
		t.Errorf("first group = %+v, want IDs [4 5] at len %d", matches[0], len("も"))
	}
	if len(matches[1].IDs) != 1 || matches[1].IDs[0] != 6 {
		t.Errorf("second group = %+v, want IDs [6]", matches[1])
	}
}

func TestBuildIndexRejectsBadInput(t *testing.T) {
	if _, err := BuildIndexTable([]string{""}, []int32{0}); err == nil {
		t.Errorf("empty key must be rejected")
	}
	if _, err := BuildIndexTable([]string{"あ", "あ"}, []int32{0, 2}); err == nil {
		t.Errorf("non-consecutive homograph IDs must be rejected")
	}
	if _, err := BuildIndexTable([]string{"あ"}, []int32{0, 1}); err == nil {
		t.Errorf("length mismatch must be rejected")
	}
}
