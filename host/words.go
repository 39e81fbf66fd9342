package host

import (
	"bytes"
	"encoding/binary"
	"strings"

	"golang.org/x/text/encoding/unicode/utf32"
)

// WordFlags annotate a word record for the host.
type WordFlags uint

// The word flags, mirroring the host's bit assignments.
const (
	FlagText WordFlags = 1 << iota
	FlagMeta
	FlagLuaMeta
	FlagException
	FlagHeader
	FlagUnigram
	FlagUTF
	FlagNormalised
	FlagStemmed
	FlagBrokenUnicode
	FlagStopWord
	FlagSkipped
	FlagInvisibleSpaces
	FlagEmoji
)

// Word is one host word record.
//
// Original aliases the caller's input buffer (a sub-slice, never a
// copy); it stays valid exactly as long as that buffer. All other
// fields are owned by the record.
type Word struct {
	Original   []byte
	Unicode    []uint32
	Normalized string
	Stemmed    string
	Flags      WordFlags
}

var utf32LE = utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)

func toUTF32(s string) []uint32 {
	encoded, err := utf32LE.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil
	}
	units := make([]uint32, 0, len(encoded)/4)
	for i := 0; i+4 <= len(encoded); i += 4 {
		units = append(units, binary.LittleEndian.Uint32(encoded[i:]))
	}
	return units
}

// Tokenize analyzes text and returns host word records. Every record's
// Original field points into text at a UTF-8 boundary; tokens whose
// surface cannot be located there are dropped rather than synthesized.
func (a *Analyzer) Tokenize(text []byte) ([]Word, error) {
	if a == nil || a.state != initialized {
		return nil, ErrNotInitialized
	}
	if len(text) == 0 {
		return nil, ErrInvalidInput
	}

	tokens := a.tokenizer.Tokenize(string(text))
	words := make([]Word, 0, len(tokens))
	searchStart := 0
	dropped := 0
	for _, tok := range tokens {
		if tok.Surface == "" {
			continue
		}
		pos := findAligned(text, []byte(tok.Surface), searchStart)
		if pos < 0 {
			dropped++
			continue
		}
		searchStart = pos + len(tok.Surface)

		word := Word{
			Original: text[pos : pos+len(tok.Surface)],
			Unicode:  toUTF32(tok.Surface),
			Flags:    FlagText | FlagUTF | FlagNormalised,
		}
		normalized := tok.BaseForm()
		if normalized == "" || normalized == "*" {
			normalized = tok.Surface
		}
		word.Normalized = normalized
		word.Stemmed = normalized

		if tags := tok.POS(); len(tags) > 0 {
			switch {
			case strings.HasPrefix(tags[0], "記号"):
				word.Flags |= FlagException
			case tags[0] == "助詞" || tags[0] == "助動詞":
				word.Flags |= FlagStopWord
			}
		}
		words = append(words, word)
	}
	if dropped > 0 {
		tracer().Debugf("dropped %d tokens not locatable in the input buffer", dropped)
	}
	return words, nil
}

// findAligned locates needle in haystack at or after start, requiring
// the match to begin at a UTF-8 lead byte.
func findAligned(haystack, needle []byte, start int) int {
	for start <= len(haystack)-len(needle) {
		i := bytes.Index(haystack[start:], needle)
		if i < 0 {
			return -1
		}
		pos := start + i
		if pos == 0 || !isTrailByte(haystack[pos]) {
			return pos
		}
		start = pos + 1
	}
	return -1
}

func isTrailByte(b byte) bool {
	return b&0xC0 == 0x80
}
