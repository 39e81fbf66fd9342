package wakame

import (
	"fmt"
	"strings"

	"github.com/npillmayer/wakame/dict"
	"github.com/npillmayer/wakame/lattice"
)

// TokenClass classifies tokens by their origin, mirroring the lattice
// node classes.
type TokenClass = lattice.NodeClass

// The token classes.
const (
	DummyToken   = lattice.Dummy
	KnownToken   = lattice.Known
	UnknownToken = lattice.Unknown
	UserToken    = lattice.User
)

// Token is a read-only view of one morpheme on the best path. Feature
// accessors resolve against the dictionaries the token came from;
// they never fail and degrade to empty values or "*".
//
// Position, Start and End are byte offsets into the analyzed input;
// the surface is always input[Start:End] verbatim.
type Token struct {
	Index    int
	ID       int
	Class    TokenClass
	Position int
	Start    int
	End      int
	Surface  string

	dic  *dict.Dict
	udic *dict.UserDict
}

// Features returns the complete morphological feature list: for known
// tokens the part-of-speech names followed by the dictionary's feature
// row, for unknown tokens the unknown-word template row, for user
// tokens the label, sub-tokens and readings.
func (t Token) Features() []string {
	switch t.Class {
	case KnownToken:
		var features []string
		if t.ID >= 0 && t.ID < len(t.dic.POSTable.POSs) {
			for _, id := range t.dic.POSTable.POSs[t.ID] {
				if int(id) < len(t.dic.POSTable.NameList) {
					features = append(features, t.dic.POSTable.NameList[id])
				}
			}
		}
		if t.ID >= 0 && t.ID < len(t.dic.Contents) {
			features = append(features, t.dic.Contents[t.ID]...)
		}
		return features
	case UnknownToken:
		if t.ID >= 0 && t.ID < len(t.dic.UnkDict.Contents) {
			return append([]string(nil), t.dic.UnkDict.Contents[t.ID]...)
		}
		return nil
	case UserToken:
		if t.udic == nil || t.ID < 0 || t.ID >= len(t.udic.Contents) {
			return nil
		}
		entry := t.udic.Contents[t.ID]
		return []string{
			entry.POS,
			strings.Join(entry.Tokens, "/"),
			strings.Join(entry.Yomi, "/"),
		}
	}
	return nil
}

// FeatureAt returns the feature at the given index of Features.
func (t Token) FeatureAt(i int) (string, bool) {
	features := t.Features()
	if i < 0 || i >= len(features) {
		return "", false
	}
	return features[i], true
}

// POS returns the part-of-speech tag path of the token.
func (t Token) POS() []string {
	switch t.Class {
	case KnownToken:
		if t.ID >= 0 && t.ID < len(t.dic.POSTable.POSs) {
			entry := t.dic.POSTable.POSs[t.ID]
			names := make([]string, 0, len(entry))
			for _, id := range entry {
				if int(id) < len(t.dic.POSTable.NameList) {
					names = append(names, t.dic.POSTable.NameList[id])
				}
			}
			if len(names) > 0 {
				return names
			}
		}
		// IPA layout shim: the first two feature columns hold the top
		// of the POS hierarchy
		var pos []string
		for _, i := range []int{0, 1} {
			if f, ok := t.FeatureAt(i); ok && f != "*" {
				pos = append(pos, f)
			}
		}
		return pos
	case UnknownToken:
		meta := t.dic.UnkDict.ContentsMeta
		start, ok := meta[dict.POSStartIndex]
		if !ok {
			start = 0
		}
		hierarchy, ok := meta[dict.POSHierarchy]
		if !ok {
			hierarchy = 1
		}
		end := start + hierarchy
		if t.ID < 0 || t.ID >= len(t.dic.UnkDict.Contents) {
			return nil
		}
		feature := t.dic.UnkDict.Contents[t.ID]
		if start >= end || end > len(feature) {
			return nil
		}
		return append([]string(nil), feature[start:end]...)
	case UserToken:
		if t.udic == nil || t.ID < 0 || t.ID >= len(t.udic.Contents) {
			return nil
		}
		return []string{t.udic.Contents[t.ID].POS}
	}
	return nil
}

// pickupFromFeatures resolves a well-known feature key through the
// dictionary's contents metadata.
func (t Token) pickupFromFeatures(key string) (string, bool) {
	var meta dict.ContentsMeta
	switch t.Class {
	case KnownToken:
		meta = t.dic.ContentsMeta
	case UnknownToken:
		meta = t.dic.UnkDict.ContentsMeta
	default:
		return "", false
	}
	i, ok := meta[key]
	if !ok {
		return "", false
	}
	return t.FeatureAt(i)
}

// pickupOrPositional tries the metadata key first and falls back to a
// fixed feature column. The positional column is a compatibility shim
// for the IPA dictionary layout when the metadata is incomplete.
func (t Token) pickupOrPositional(key string, column int) string {
	if f, ok := t.pickupFromFeatures(key); ok && f != "*" {
		return f
	}
	if f, ok := t.FeatureAt(column); ok {
		return f
	}
	return "*"
}

// BaseForm returns the dictionary form of the token, or "*".
func (t Token) BaseForm() string {
	return t.pickupOrPositional(dict.BaseFormIndex, 2)
}

// Reading returns the reading (yomi) of the token, or "*".
func (t Token) Reading() string {
	return t.pickupOrPositional(dict.ReadingIndex, 3)
}

// Pronunciation returns the pronunciation of the token, or "*".
func (t Token) Pronunciation() string {
	return t.pickupOrPositional(dict.PronunciationIndex, 4)
}

// InflectionalType returns the inflectional type of the token, or "*".
func (t Token) InflectionalType() string {
	return t.pickupOrPositional(dict.InflectionalType, 0)
}

// InflectionalForm returns the inflectional form of the token, or "*".
func (t Token) InflectionalForm() string {
	return t.pickupOrPositional(dict.InflectionalForm, 1)
}

// UserExtra carries the extension data of a user dictionary token.
type UserExtra struct {
	Tokens   []string
	Readings []string
}

// UserExtra returns the user-dictionary extension data, or nil for
// non-user tokens.
func (t Token) UserExtra() *UserExtra {
	if t.Class != UserToken || t.udic == nil || t.ID < 0 || t.ID >= len(t.udic.Contents) {
		return nil
	}
	entry := t.udic.Contents[t.ID]
	return &UserExtra{Tokens: entry.Tokens, Readings: entry.Yomi}
}

// EqualFeatures reports whether two tokens carry identical feature
// lists.
func (t Token) EqualFeatures(other Token) bool {
	return equalStrings(t.Features(), other.Features())
}

// EqualPOS reports whether two tokens carry identical POS paths.
func (t Token) EqualPOS(other Token) bool {
	return equalStrings(t.POS(), other.POS())
}

func equalStrings(a, b []string) bool {
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

func (t Token) String() string {
	return fmt.Sprintf("%d:%q (%d: %d, %d) %s [%d]",
		t.Index, t.Surface, t.Position, t.Start, t.End, t.Class, t.ID)
}
