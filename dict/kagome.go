package dict

import (
	kdict "github.com/ikawaha/kagome-dict/dict"
)

// kagomeIndex adapts the kagome-dict double array to the local Index
// interface. The kagome index already expands homograph duplicates in
// its prefix callback, matching the IndexTable contract.
type kagomeIndex struct {
	idx kdict.IndexTable
}

func (k kagomeIndex) Search(input string) []int {
	return k.idx.Search(input)
}

func (k kagomeIndex) CommonPrefixSearchCallback(input string, callback func(id, length int)) {
	k.idx.CommonPrefixSearchCallback(input, callback)
}

// FromKagome converts a kagome-dict dictionary into the local table
// model. The conversion copies the flat tables and wraps the prefix
// index; the source dictionary is not retained beyond the index.
func FromKagome(src *kdict.Dict) *Dict {
	d := new(Dict)

	d.Morphs = make([]Morph, len(src.Morphs))
	for i, m := range src.Morphs {
		d.Morphs[i] = Morph{LeftID: m.LeftID, RightID: m.RightID, Weight: m.Weight}
	}

	d.POSTable.NameList = append([]string(nil), src.POSTable.NameList...)
	d.POSTable.POSs = make([][]uint32, len(src.POSTable.POSs))
	for i, pe := range src.POSTable.POSs {
		row := make([]uint32, len(pe))
		for j, id := range pe {
			row[j] = uint32(id)
		}
		d.POSTable.POSs[i] = row
	}

	d.ContentsMeta = make(ContentsMeta, len(src.ContentsMeta))
	for k, v := range src.ContentsMeta {
		d.ContentsMeta[k] = int(v)
	}
	d.Contents = make(Contents, len(src.Contents))
	for i, row := range src.Contents {
		d.Contents[i] = row
	}

	d.Connection = ConnectionTable{
		Row: int64(src.Connection.Row),
		Col: int64(src.Connection.Col),
		Vec: src.Connection.Vec,
	}
	d.Index = kagomeIndex{idx: src.Index}

	d.CharDef = CharDef{
		ClassNames: append([]string(nil), src.CharClass...),
		Category:   append([]byte(nil), src.CharCategory...),
		Invoke:     append([]bool(nil), src.InvokeList...),
		Group:      append([]bool(nil), src.GroupList...),
	}

	d.UnkDict.Morphs = make([]Morph, len(src.UnkDict.Morphs))
	for i, m := range src.UnkDict.Morphs {
		d.UnkDict.Morphs[i] = Morph{LeftID: m.LeftID, RightID: m.RightID, Weight: m.Weight}
	}
	d.UnkDict.Index = make(map[int32]int32, len(src.UnkDict.Index))
	for k, v := range src.UnkDict.Index {
		d.UnkDict.Index[int32(k)] = int32(v)
	}
	d.UnkDict.IndexDup = make(map[int32]int32, len(src.UnkDict.IndexDup))
	for k, v := range src.UnkDict.IndexDup {
		d.UnkDict.IndexDup[int32(k)] = int32(v)
	}
	d.UnkDict.ContentsMeta = make(ContentsMeta, len(src.UnkDict.ContentsMeta))
	for k, v := range src.UnkDict.ContentsMeta {
		d.UnkDict.ContentsMeta[k] = int(v)
	}
	d.UnkDict.Contents = make(Contents, len(src.UnkDict.Contents))
	for i, row := range src.UnkDict.Contents {
		d.UnkDict.Contents[i] = row
	}
	return d
}
