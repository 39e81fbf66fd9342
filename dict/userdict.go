package dict

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// UserEntry is one custom dictionary record: a part-of-speech label,
// the sub-tokens the surface splits into, and their readings.
type UserEntry struct {
	POS    string
	Tokens []string
	Yomi   []string
}

// UserDict supplements a system dictionary with custom entries. It is
// immutable after loading.
type UserDict struct {
	Contents []UserEntry
	Index    Index
}

// NewUserDict reads a user dictionary in CSV form. Each record is
//
//	surface,tokens,yomi,pos
//
// with tokens and yomi holding space-separated sub-fields, e.g.
//
//	日本経済新聞,日本 経済 新聞,ニホン ケイザイ シンブン,カスタム名詞
//
// Lines starting with # are comments. Entries are indexed by surface;
// duplicate surfaces are rejected.
func NewUserDict(r io.Reader) (*UserDict, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = 4
	cr.TrimLeadingSpace = true

	type raw struct {
		surface string
		entry   UserEntry
	}
	var records []raw
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dict: user dictionary: %w", err)
		}
		if rec[0] == "" {
			return nil, fmt.Errorf("dict: user dictionary: empty surface")
		}
		records = append(records, raw{
			surface: rec[0],
			entry: UserEntry{
				Tokens: strings.Fields(rec[1]),
				Yomi:   strings.Fields(rec[2]),
				POS:    rec[3],
			},
		})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].surface < records[j].surface })
	for i := 1; i < len(records); i++ {
		if records[i].surface == records[i-1].surface {
			return nil, fmt.Errorf("dict: user dictionary: duplicate surface %q", records[i].surface)
		}
	}

	keys := make([]string, len(records))
	ids := make([]int32, len(records))
	entries := make([]UserEntry, len(records))
	for i, rec := range records {
		keys[i] = rec.surface
		ids[i] = int32(i)
		entries[i] = rec.entry
	}
	idx, err := BuildIndexTable(keys, ids)
	if err != nil {
		return nil, err
	}
	tracer().Infof("loaded user dictionary with %d entries", len(entries))
	return &UserDict{Contents: entries, Index: idx}, nil
}

// LoadUserDict reads a user dictionary from a CSV file.
func LoadUserDict(path string) (*UserDict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dict: user dictionary: %w", err)
	}
	defer f.Close()
	return NewUserDict(f)
}
