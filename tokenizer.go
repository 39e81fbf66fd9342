package wakame

import (
	"errors"
	"io"

	"github.com/npillmayer/wakame/dict"
	"github.com/npillmayer/wakame/lattice"
)

// Mode selects the analysis mode. Normal is plain shortest-path
// segmentation; Search penalizes long words for finer segments useful
// in search indexing; Extended additionally splits unknown words into
// single characters.
type Mode = lattice.Mode

// The analysis modes.
const (
	Normal   = lattice.Normal
	Search   = lattice.Search
	Extended = lattice.Extended
)

// ModeString names a mode the way the command line spells it.
func ModeString(m Mode) string {
	switch m {
	case Normal:
		return "normal"
	case Search:
		return "search"
	case Extended:
		return "extended"
	}
	return "invalid"
}

// ParseMode is the inverse of ModeString.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "normal":
		return Normal, nil
	case "search":
		return Search, nil
	case "extended":
		return Extended, nil
	}
	return 0, errors.New("wakame: unknown mode " + s)
}

// ErrNoDict is returned by New when no dictionary is given.
var ErrNoDict = errors.New("wakame: tokenizer needs a dictionary")

// A Tokenizer analyzes Japanese text against a system dictionary and
// an optional user dictionary. It holds no per-analysis state and is
// safe for concurrent use.
type Tokenizer struct {
	dic         *dict.Dict
	udic        *dict.UserDict
	omitBosEos  bool
	defaultMode Mode
}

// Option configures a Tokenizer during New.
type Option func(*Tokenizer)

// UserDict attaches a user dictionary. User entries take precedence
// over system entries during lattice construction.
func UserDict(u *dict.UserDict) Option {
	return func(t *Tokenizer) { t.udic = u }
}

// OmitBosEos suppresses the BOS/EOS sentinel tokens in analysis
// output.
func OmitBosEos() Option {
	return func(t *Tokenizer) { t.omitBosEos = true }
}

// DefaultMode sets the mode used by Tokenize. The zero default is
// Normal.
func DefaultMode(m Mode) Option {
	return func(t *Tokenizer) { t.defaultMode = m }
}

// New creates a tokenizer over the given dictionary.
func New(d *dict.Dict, opts ...Option) (*Tokenizer, error) {
	if d == nil {
		return nil, ErrNoDict
	}
	t := &Tokenizer{dic: d, defaultMode: Normal}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Tokenize analyzes input in the tokenizer's default mode.
func (t *Tokenizer) Tokenize(input string) []Token {
	return t.Analyze(input, t.defaultMode)
}

// Analyze segments input in the given mode and returns the tokens of
// the best path. It never fails: invalid UTF-8 bytes are skipped and
// appear in no token, an empty input yields only the sentinels (or
// nothing when they are suppressed).
func (t *Tokenizer) Analyze(input string, mode Mode) []Token {
	return t.analyze(input, mode, nil)
}

// AnalyzeGraph is Analyze, additionally writing the analyzed lattice
// as a Graphviz graph to dot.
func (t *Tokenizer) AnalyzeGraph(dot io.Writer, input string, mode Mode) []Token {
	return t.analyze(input, mode, dot)
}

// Wakati returns only the surface forms of the best path, suppressing
// the empty sentinel surfaces.
func (t *Tokenizer) Wakati(input string) []string {
	tokens := t.Analyze(input, Normal)
	segments := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Surface != "" {
			segments = append(segments, tok.Surface)
		}
	}
	return segments
}

func (t *Tokenizer) analyze(input string, mode Mode, dot io.Writer) []Token {
	la := lattice.New(t.dic, t.udic)
	defer la.Free()
	la.Build(input)
	la.Forward(mode)
	la.Backward(mode)
	if dot != nil {
		la.Dot(dot)
	}

	output := la.Output()
	CT().P("mode", ModeString(mode)).Debugf("best path holds %d nodes", len(output))
	tokens := make([]Token, 0, len(output))
	for i, n := range output {
		if t.omitBosEos && n.IsBosEos() {
			continue
		}
		tokens = append(tokens, Token{
			Index:    i,
			ID:       int(n.ID),
			Class:    TokenClass(n.Class),
			Position: int(n.Position),
			Start:    int(n.Position),
			End:      int(n.Position) + len(n.Surface),
			Surface:  n.Surface,
			dic:      t.dic,
			udic:     t.udic,
		})
	}
	return tokens
}
