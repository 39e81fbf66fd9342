package dict

// Morph carries the morphological connection data of one dictionary
// entry: the context IDs used to address the connection matrix and the
// base weight of the entry.
type Morph struct {
	LeftID  int16
	RightID int16
	Weight  int16
}

// POSTable maps morpheme IDs to part-of-speech tag paths. Tag names
// are interned in NameList; POSs[id] lists indices into NameList.
type POSTable struct {
	NameList []string
	POSs     [][]uint32
}

// ContentsMeta maps well-known feature keys to column offsets within a
// feature row. Missing keys make the token view fall back to the IPA
// positional layout.
type ContentsMeta map[string]int

// Well-known ContentsMeta keys.
const (
	POSStartIndex      = "_pos_start"
	POSHierarchy       = "_pos_hierarchy"
	InflectionalType   = "_inflectional_type"
	InflectionalForm   = "_inflectional_form"
	BaseFormIndex      = "_base"
	ReadingIndex       = "_reading"
	PronunciationIndex = "_pronunciation"
)

// Contents holds one feature row per morpheme ID.
type Contents [][]string

// Info describes the provenance of a loaded dictionary.
type Info struct {
	Name string
	Src  string
}

// UnkDict is the unknown-word dictionary: template morphemes selected
// by character category. Index maps a category to the base morpheme
// ID, IndexDup to the number of additional consecutive IDs.
type UnkDict struct {
	Morphs       []Morph
	Index        map[int32]int32
	IndexDup     map[int32]int32
	ContentsMeta ContentsMeta
	Contents     Contents
}

// Dict is a complete system dictionary. It is immutable after loading
// and may be shared by any number of concurrent analyses.
type Dict struct {
	Morphs       []Morph
	POSTable     POSTable
	ContentsMeta ContentsMeta
	Contents     Contents
	Connection   ConnectionTable
	Index        Index
	CharDef      CharDef
	UnkDict      UnkDict
	Info         *Info
}

// CharacterCategory classifies a code point (see CharDef).
func (d *Dict) CharacterCategory(r rune) CharCategory {
	return d.CharDef.CharacterCategory(r)
}

// ShouldInvoke reports the invoke flag of the category (see
// CharDef.ShouldInvoke; the lattice builder does not consult it).
func (d *Dict) ShouldInvoke(c CharCategory) bool {
	return d.CharDef.ShouldInvoke(c)
}

// ShouldGroup reports whether consecutive characters of the category
// are grouped into one unknown-word span.
func (d *Dict) ShouldGroup(c CharCategory) bool {
	return d.CharDef.ShouldGroup(c)
}
