/*
Package wakame is about Japanese morphological analysis.

Description

Japanese text carries no spaces between words. Splitting a sentence
into words (morphemes) therefore needs a dictionary and a statistical
model: candidate words are looked up for every position of the input,
arranged in a lattice of possible segmentations, and the cheapest path
through that lattice — in terms of word costs and word-to-word
connection costs — is selected with the Viterbi algorithm. This is the
approach of the MeCab family of analyzers, and wakame implements it as
an embeddable Go library.

The morphemes on the best path are returned as tokens carrying the
surface form, part-of-speech tags, base form, reading, pronunciation
and byte/character offsets into the input.

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

Typical Usage

Clients obtain a dictionary — usually the embedded IPA dictionary —
and create a Tokenizer from it. The tokenizer may then be used for any
number of analyses and is safe for concurrent use.

  d := dict.IPA()
  t, err := wakame.New(d, wakame.OmitBosEos())
  if err != nil { … }
  for _, tok := range t.Tokenize("すもももももももものうち") {
    fmt.Println(tok.Surface, tok.POS())
  }

Three analysis modes are offered. Normal mode is plain shortest-path
segmentation. Search mode penalizes long words to produce a finer
segmentation useful for indexing. Extended mode additionally splits
unknown words into single characters.

Contents

The analysis core lives in the sub-packages dict (the compact
in-memory dictionary model: double-array index, morpheme and
part-of-speech tables, connection matrix, character categories,
unknown-word tables) and lattice (lattice construction and the Viterbi
forward/backward passes). Package host adapts analysis results to the
word-record contract of embedding text-processing hosts, e.g. spam
filters. This package ties the parts together into the public
Tokenizer/Token API.
*/
package wakame

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
