package host

import (
	"errors"
	"fmt"

	"github.com/npillmayer/wakame"
	"github.com/npillmayer/wakame/dict"
)

// LanguageHint is the ISO 639-1 code this shim answers for.
const LanguageHint = "ja"

// MinConfidence is the detection confidence below which hosts should
// not route text to this analyzer.
const MinConfidence = 0.3

// Config selects the dictionaries of an Analyzer. The zero value uses
// the embedded IPA dictionary.
type Config struct {
	// DictPath, when set, names a dictionary archive tried before the
	// embedded dictionary. A missing or unreadable archive is logged
	// and skipped, it does not fail initialization.
	DictPath string
	// System picks the embedded dictionary: "ipa" (default) or "uni".
	System string
	// UserDictPath, when set, loads a user dictionary CSV.
	UserDictPath string
}

type state int

const (
	uninitialized state = iota
	initialized
	shutdown
)

// Analyzer is the host-facing handle around a tokenizer. Its lifecycle
// is initialize-once (NewAnalyzer), analyze-many, close-once.
type Analyzer struct {
	state     state
	tokenizer *wakame.Tokenizer
}

// Errors of the host surface.
var (
	ErrInvalidInput   = errors.New("host: empty or nil input")
	ErrNotInitialized = errors.New("host: analyzer not initialized")
)

// NewAnalyzer loads dictionaries per config and returns an initialized
// analyzer. Dictionary resolution never fails outright: an explicit
// archive is tried first, then the embedded system dictionary, and as
// a last resort the minimal built-in fallback.
func NewAnalyzer(cfg Config) (*Analyzer, error) {
	d := resolveDict(cfg)
	opts := []wakame.Option{wakame.OmitBosEos()}
	if cfg.UserDictPath != "" {
		u, err := dict.LoadUserDict(cfg.UserDictPath)
		if err != nil {
			return nil, fmt.Errorf("host: %w", err)
		}
		opts = append(opts, wakame.UserDict(u))
	}
	t, err := wakame.New(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("host: %w", err)
	}
	return &Analyzer{state: initialized, tokenizer: t}, nil
}

func resolveDict(cfg Config) *dict.Dict {
	if cfg.DictPath != "" {
		d, err := dict.LoadArchive(cfg.DictPath, true)
		if err == nil {
			return d
		}
		tracer().Errorf("dictionary archive %s unusable: %v", cfg.DictPath, err)
	}
	switch cfg.System {
	case "", "ipa":
		return dict.IPA()
	case "uni":
		return dict.Uni()
	}
	tracer().Errorf("unknown system dictionary %q, using fallback", cfg.System)
	return dict.Fallback()
}

// Close shuts the analyzer down. Further analysis calls fail with
// ErrNotInitialized.
func (a *Analyzer) Close() {
	a.state = shutdown
	a.tokenizer = nil
}

// DetectLanguage estimates whether text is Japanese; see Detect.
func (a *Analyzer) DetectLanguage(text []byte) float64 {
	return Detect(text)
}

// defaultAnalyzer backs the package-level entry points.
var defaultAnalyzer *Analyzer

// Init sets up the process-wide default analyzer. It must not overlap
// with Deinit or any analysis call.
func Init(cfg Config) error {
	a, err := NewAnalyzer(cfg)
	if err != nil {
		return err
	}
	defaultAnalyzer = a
	return nil
}

// Deinit releases the process-wide default analyzer.
func Deinit() {
	if defaultAnalyzer != nil {
		defaultAnalyzer.Close()
		defaultAnalyzer = nil
	}
}

// Tokenize runs the process-wide default analyzer.
func Tokenize(text []byte) ([]Word, error) {
	if defaultAnalyzer == nil {
		return nil, ErrNotInitialized
	}
	return defaultAnalyzer.Tokenize(text)
}

// DetectLanguage runs the process-wide default analyzer's detector.
func DetectLanguage(text []byte) float64 {
	return Detect(text)
}
