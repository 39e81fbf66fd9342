// Command wakame is a command-line front end for the wakame Japanese
// morphological analyzer.
//
//	wakame [options] [text]
//
// Without positional text, lines are read from stdin and analyzed one
// by one. The default output is one token per line in the familiar
// surface<TAB>features form, terminated by EOS.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/wakame"
	"github.com/npillmayer/wakame/dict"
)

type options struct {
	mode       string
	wakati     bool
	jsonOut    bool
	omitBosEos bool
	dictPath   string
	sysDict    string
	userDict   string
	dotPath    string
}

func main() {
	var opts options
	flag.StringVar(&opts.mode, "mode", "normal", "tokenization mode: normal|search|extended")
	flag.BoolVar(&opts.wakati, "wakati", false, "output surface forms only")
	flag.BoolVar(&opts.jsonOut, "json", false, "output tokens as JSON")
	flag.BoolVar(&opts.omitBosEos, "omit-bos-eos", false, "omit BOS/EOS tokens")
	flag.StringVar(&opts.dictPath, "dict", "", "dictionary archive (ZIP) to load instead of the embedded dictionary")
	flag.StringVar(&opts.sysDict, "sysdict", "ipa", "embedded system dictionary: ipa|uni")
	flag.StringVar(&opts.userDict, "udict", "", "user dictionary CSV")
	flag.StringVar(&opts.dotPath, "dot", "", "write the analyzed lattice as a Graphviz graph to this file")
	flag.Parse()

	if err := run(opts, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "wakame:", err)
		os.Exit(1)
	}
}

func run(opts options, args []string) error {
	mode, err := wakame.ParseMode(opts.mode)
	if err != nil {
		return err
	}
	d, err := loadDict(opts)
	if err != nil {
		return err
	}
	tokOpts := []wakame.Option{wakame.DefaultMode(mode)}
	if opts.omitBosEos {
		tokOpts = append(tokOpts, wakame.OmitBosEos())
	}
	if opts.userDict != "" {
		u, err := dict.LoadUserDict(opts.userDict)
		if err != nil {
			return err
		}
		tokOpts = append(tokOpts, wakame.UserDict(u))
	}
	t, err := wakame.New(d, tokOpts...)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		return analyzeOne(t, strings.Join(args, " "), mode, opts)
	}
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		if sc.Text() == "" {
			continue
		}
		if err := analyzeOne(t, sc.Text(), mode, opts); err != nil {
			return err
		}
	}
	return sc.Err()
}

func loadDict(opts options) (*dict.Dict, error) {
	if opts.dictPath != "" {
		return dict.LoadArchive(opts.dictPath, true)
	}
	switch opts.sysDict {
	case "ipa":
		return dict.IPA(), nil
	case "uni":
		return dict.Uni(), nil
	}
	return nil, fmt.Errorf("unknown system dictionary %q", opts.sysDict)
}

func analyzeOne(t *wakame.Tokenizer, input string, mode wakame.Mode, opts options) error {
	if opts.wakati {
		fmt.Printf("[%s]\n", strings.Join(t.Wakati(input), " "))
		return nil
	}

	var tokens []wakame.Token
	if opts.dotPath != "" {
		f, err := os.Create(opts.dotPath)
		if err != nil {
			return err
		}
		tokens = t.AnalyzeGraph(f, input, mode)
		if err := f.Close(); err != nil {
			return err
		}
	} else {
		tokens = t.Analyze(input, mode)
	}

	if opts.jsonOut {
		return printJSON(os.Stdout, tokens)
	}
	printTable(os.Stdout, tokens)
	return nil
}

func printTable(w io.Writer, tokens []wakame.Token) {
	for _, tok := range tokens {
		if tok.Surface == "" {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", tok.Surface, strings.Join(tok.Features(), ","))
	}
	fmt.Fprintln(w, "EOS")
}

// tokenRecord is the JSON shape of one token.
type tokenRecord struct {
	ID            int      `json:"id"`
	Start         int      `json:"start"`
	End           int      `json:"end"`
	Surface       string   `json:"surface"`
	Class         string   `json:"class"`
	POS           []string `json:"pos"`
	BaseForm      string   `json:"base_form"`
	Reading       string   `json:"reading"`
	Pronunciation string   `json:"pronunciation"`
	Features      []string `json:"features"`
}

func printJSON(w io.Writer, tokens []wakame.Token) error {
	records := make([]tokenRecord, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Surface == "" {
			continue
		}
		records = append(records, tokenRecord{
			ID:            tok.ID,
			Start:         tok.Start,
			End:           tok.End,
			Surface:       tok.Surface,
			Class:         tok.Class.String(),
			POS:           tok.POS(),
			BaseForm:      tok.BaseForm(),
			Reading:       tok.Reading(),
			Pronunciation: tok.Pronunciation(),
			Features:      tok.Features(),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
