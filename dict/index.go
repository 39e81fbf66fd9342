package dict

// Index is the prefix-search surface the lattice builder consults.
// IndexTable implements it, as does the kagome-dict backend wrapper.
type Index interface {
	// Search performs an exact lookup and returns all morpheme IDs
	// registered for the input, or nil if the input is not an entry.
	Search(input string) []int

	// CommonPrefixSearchCallback invokes callback for every dictionary
	// entry that is a prefix of input, in order of increasing prefix
	// byte length. Entries sharing one surface (homographs) trigger one
	// invocation per morpheme ID.
	CommonPrefixSearchCallback(input string, callback func(id, length int))
}

// DANode is one slot of the double array.
type DANode struct {
	Base  int32
	Check int32
}

// IndexTable is a dictionary index over UTF-8 byte sequences,
// represented as a double-array trie. State p moves on byte b to
// q = Da[p].Base + b, valid iff Da[q].Check == p. The zero byte acts
// as terminator; a terminator slot with Base <= 0 marks a match with
// morpheme ID -Base. Dup lists, per base ID, the number of additional
// consecutive IDs attached to the same surface.
type IndexTable struct {
	Da  []DANode
	Dup map[int32]int32
}

func (t *IndexTable) find(input string) (id int, ok bool) {
	if len(t.Da) == 0 || len(input) == 0 {
		return 0, false
	}
	bufLen := int32(len(t.Da))
	p, q := int32(0), int32(0)
	for i := 0; i < len(input); i++ {
		if input[i] == 0 {
			return 0, false
		}
		p = q
		q = t.Da[p].Base + int32(input[i])
		if q < 0 || q >= bufLen || t.Da[q].Check != p {
			return 0, false
		}
	}
	p = q
	q = t.Da[p].Base // terminator is byte 0
	if q < 0 || q >= bufLen || t.Da[q].Check != p || t.Da[q].Base > 0 {
		return 0, false
	}
	return int(-t.Da[q].Base), true
}

// Search performs an exact lookup. See interface Index.
func (t *IndexTable) Search(input string) []int {
	id, ok := t.find(input)
	if !ok {
		return nil
	}
	dup := t.Dup[int32(id)]
	ids := make([]int, 0, dup+1)
	for i := int32(0); i <= dup; i++ {
		ids = append(ids, id+int(i))
	}
	return ids
}

// CommonPrefixSearchCallback enumerates all entries that are prefixes
// of input. See interface Index.
func (t *IndexTable) CommonPrefixSearchCallback(input string, callback func(id, length int)) {
	if len(t.Da) == 0 || len(input) == 0 {
		return
	}
	bufLen := int32(len(t.Da))
	p, q := int32(0), int32(0)
	for i := 0; i < len(input); i++ {
		if input[i] == 0 {
			return
		}
		p = q
		q = t.Da[p].Base + int32(input[i])
		if q < 0 || q >= bufLen || t.Da[q].Check != p {
			return
		}
		ahead := t.Da[q].Base // probe the terminator
		if ahead >= 0 && ahead < bufLen && t.Da[ahead].Check == q && t.Da[ahead].Base <= 0 {
			id := int(-t.Da[ahead].Base)
			dup := t.Dup[int32(id)]
			for k := int32(0); k <= dup; k++ {
				callback(id+int(k), i+1)
			}
		}
	}
}

// PrefixMatch is one result of CommonPrefixSearch: the IDs registered
// at one terminal and the byte length of the matched prefix.
type PrefixMatch struct {
	IDs []int
	Len int
}

// CommonPrefixSearch collects all prefix matches, grouped by surface.
func (t *IndexTable) CommonPrefixSearch(input string) []PrefixMatch {
	var matches []PrefixMatch
	last := -1
	t.CommonPrefixSearchCallback(input, func(id, length int) {
		if length != last {
			matches = append(matches, PrefixMatch{Len: length})
			last = length
		}
		m := &matches[len(matches)-1]
		m.IDs = append(m.IDs, id)
	})
	return matches
}
