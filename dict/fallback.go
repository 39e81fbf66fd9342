package dict

// Fallback returns the minimal built-in dictionary. It carries no
// lexicon — its system index matches nothing — but a full character
// table and per-category unknown-word templates, so that any input is
// analyzable through the unknown-word path. It keeps an analyzer
// functional when no dictionary archive can be located.
func Fallback() *Dict {
	unkIndex := map[int32]int32{
		int32(Default):  0,
		int32(Space):    1,
		int32(Numeric):  2,
		int32(Alpha):    3,
		int32(Symbol):   4,
		int32(Hiragana): 5,
		int32(Katakana): 6,
		int32(Kanji):    7,
		int32(Greek):    8,
		int32(Cyrillic): 8,
	}
	unkMorphs := []Morph{
		{1, 1, 1000},   // DEFAULT
		{13, 13, 500},  // SPACE
		{19, 19, 1500}, // NUMERIC
		{15, 15, 2000}, // ALPHA
		{2, 2, 3000},   // SYMBOL
		{38, 39, 800},  // HIRAGANA
		{40, 41, 1200}, // KATAKANA
		{36, 37, 1000}, // KANJI
		{15, 15, 2000}, // GREEK / CYRILLIC
	}
	unkContents := Contents{
		{"名詞", "一般", "*", "*", "*", "*", "*", "*", "*"},
		{"記号", "空白", "*", "*", "*", "*", "*", "*", "*"},
		{"名詞", "数", "*", "*", "*", "*", "*", "*", "*"},
		{"名詞", "固有名詞", "一般", "*", "*", "*", "*", "*", "*"},
		{"記号", "一般", "*", "*", "*", "*", "*", "*", "*"},
		{"助詞", "格助詞", "一般", "*", "*", "*", "*", "*", "*"},
		{"名詞", "一般", "*", "*", "*", "*", "*", "*", "*"},
		{"名詞", "一般", "*", "*", "*", "*", "*", "*", "*"},
		{"名詞", "固有名詞", "一般", "*", "*", "*", "*", "*", "*"},
	}
	meta := ContentsMeta{
		POSStartIndex:      0,
		POSHierarchy:       3,
		InflectionalType:   4,
		InflectionalForm:   5,
		BaseFormIndex:      6,
		ReadingIndex:       7,
		PronunciationIndex: 8,
	}
	return &Dict{
		POSTable: POSTable{
			NameList: []string{"名詞", "動詞", "形容詞"},
			POSs:     [][]uint32{{0}, {1}, {2}},
		},
		ContentsMeta: meta,
		Connection:   ConnectionTable{Row: 0, Col: 0},
		Index:        &IndexTable{},
		CharDef:      builtinCharDef(),
		UnkDict: UnkDict{
			Morphs:       unkMorphs,
			Index:        unkIndex,
			IndexDup:     map[int32]int32{},
			ContentsMeta: meta,
			Contents:     unkContents,
		},
		Info: &Info{Name: "Fallback Dictionary", Src: "builtin"},
	}
}
