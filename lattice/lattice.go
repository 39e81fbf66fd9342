/*
Package lattice builds word lattices over Japanese text and selects
the cheapest segmentation with the Viterbi algorithm.

A lattice has one bucket per character position of the input, plus BOS
and EOS sentinel buckets. Build fills the buckets with candidate nodes
from the system dictionary, an optional user dictionary and the
unknown-word generator; Forward propagates path costs; Backward
extracts the best path.

Lattices are pooled. Clients borrow one with New, run
Build/Forward/Backward, read Output, and hand the lattice back with
Free. A lattice must not be used after Free.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package lattice

import (
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/wakame/dict"
)

// tracer traces to wakame.lattice .
func tracer() tracing.Trace {
	return tracing.Select("wakame.lattice")
}

// Mode selects the scoring regime of an analysis.
type Mode int

// The analysis modes.
const (
	Normal Mode = iota + 1 // plain shortest path
	Search                 // penalize long words
	Extended               // Search plus unigramming of unknown words
)

// Scoring constants.
const (
	MaximumCost              = math.MaxInt32
	MaximumUnknownWordLength = 1024
	searchModeKanjiLength    = 2
	searchModeKanjiPenalty   = 3000
	searchModeOtherLength    = 7
	searchModeOtherPenalty   = 1700
)

// Lattice is the candidate graph for one analysis. It owns all of its
// nodes in an arena; buckets and back-references address nodes by
// arena index, so the graph stays valid while the arena grows.
type Lattice struct {
	dic   *dict.Dict
	udic  *dict.UserDict
	input string

	arena  []Node
	list   [][]int32 // one bucket per character position (+BOS/EOS)
	output []int32
}

// countChars counts the valid Unicode scalars of s. Invalid bytes do
// not count as characters, matching the scan in Build.
func countChars(s string) int {
	n := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !(r == utf8.RuneError && size == 1) {
			n++
		}
		i += size
	}
	return n
}

func (la *Lattice) node(ref int32) *Node {
	return &la.arena[ref]
}

func (la *Lattice) alloc(n Node) int32 {
	la.arena = append(la.arena, n)
	return int32(len(la.arena) - 1)
}

// Input returns the text of the current analysis.
func (la *Lattice) Input() string {
	return la.input
}

// Output returns the best path in BOS→EOS order, as established by
// Backward. The nodes stay valid until the next Build or Free.
func (la *Lattice) Output() []*Node {
	nodes := make([]*Node, len(la.output))
	for i, ref := range la.output {
		nodes[i] = la.node(ref)
	}
	return nodes
}

func (la *Lattice) reset() {
	la.arena = la.arena[:0]
	la.list = la.list[:0]
	la.output = la.output[:0]
	la.input = ""
}

// addNode files a node under its target bucket pos+len(surface in
// characters). Morph data is resolved by class and ID; IDs outside
// the tables yield a zero morph rather than a failure.
func (la *Lattice) addNode(pos int, id int32, position, start int, class NodeClass, surface string) {
	var m dict.Morph
	switch class {
	case Known:
		if id >= 0 && int(id) < len(la.dic.Morphs) {
			m = la.dic.Morphs[id]
		}
	case Unknown:
		if id >= 0 && int(id) < len(la.dic.UnkDict.Morphs) {
			m = la.dic.UnkDict.Morphs[id]
		}
	}
	ref := la.alloc(Node{
		ID:       id,
		Position: int32(position),
		Start:    int32(start),
		Class:    class,
		Left:     m.LeftID,
		Right:    m.RightID,
		Weight:   m.Weight,
		Surface:  surface,
		prev:     nilRef,
	})
	target := pos
	if surface != "" {
		target = pos + countChars(surface)
	}
	if target < len(la.list) {
		la.list[target] = append(la.list[target], ref)
	}
}

// Build constructs the lattice for input. Every character boundary is
// a start position: the user dictionary is consulted first, the
// system dictionary when no user entry matched, and the unknown-word
// generator when neither produced a candidate. Invalid UTF-8 bytes
// are skipped without emitting a character.
func (la *Lattice) Build(input string) {
	la.reset()
	la.input = input

	charCount := countChars(input)
	if cap(la.list) >= charCount+2 {
		la.list = la.list[:charCount+2]
		for i := range la.list {
			la.list[i] = la.list[i][:0]
		}
	} else {
		la.list = make([][]int32, charCount+2)
	}

	la.addNode(0, BosEosID, 0, 0, Dummy, "")
	la.addNode(charCount+1, BosEosID, len(input), charCount, Dummy, "")

	bytePos, charPos := 0, 0
	for bytePos < len(input) {
		r, size := utf8.DecodeRuneInString(input[bytePos:])
		if r == utf8.RuneError && size == 1 {
			bytePos++ // invalid lead byte, no character here
			continue
		}

		anyMatches := false
		if la.udic != nil {
			la.udic.Index.CommonPrefixSearchCallback(input[bytePos:], func(id, length int) {
				la.addNode(charPos, int32(id), bytePos, charPos, User, input[bytePos:bytePos+length])
				anyMatches = true
			})
		}
		if !anyMatches {
			la.dic.Index.CommonPrefixSearchCallback(input[bytePos:], func(id, length int) {
				la.addNode(charPos, int32(id), bytePos, charPos, Known, input[bytePos:bytePos+length])
				anyMatches = true
			})
		}
		if !anyMatches {
			la.addUnknown(r, bytePos, charPos, size)
		}

		bytePos += size
		charPos++
	}
	tracer().Debugf("lattice over %d chars holds %d nodes", charCount, len(la.arena))
}

// addUnknown synthesizes unknown-word nodes for the span starting at
// (bytePos, charPos) with first character r of byte width size.
func (la *Lattice) addUnknown(r rune, bytePos, charPos, size int) {
	cat := la.dic.CharacterCategory(r)

	endByte := bytePos + size
	lastSize := size
	spanChars := 1
	if la.dic.ShouldGroup(cat) {
		for endByte < len(la.input) && spanChars < MaximumUnknownWordLength {
			next, nextSize := utf8.DecodeRuneInString(la.input[endByte:])
			if next == utf8.RuneError && nextSize == 1 {
				break
			}
			if la.dic.CharacterCategory(next) != cat {
				break
			}
			endByte += nextSize
			lastSize = nextSize
			spanChars++
		}
	}
	full := la.input[bytePos:endByte]

	base, ok := la.dic.UnkDict.Index[int32(cat)]
	if !ok {
		// category without unknown-word template: a single node keeps
		// the lattice connected
		la.addNode(charPos, UnmappedID, bytePos, charPos, Unknown, full)
		return
	}
	dup := la.dic.UnkDict.IndexDup[int32(cat)]
	for i := int32(0); i <= dup; i++ {
		if spanChars > 1 {
			truncated := la.input[bytePos : endByte-lastSize]
			la.addNode(charPos, base+i, bytePos, charPos, Unknown, truncated)
		}
		la.addNode(charPos, base+i, bytePos, charPos, Unknown, full)
	}
}

// Forward propagates path costs through the buckets in increasing
// position order. For each node the first reachable predecessor seeds
// the cost; later predecessors replace it only on a strictly smaller
// total. Edges from or to user nodes carry no connection cost.
func (la *Lattice) Forward(mode Mode) {
	for i := 1; i < len(la.list); i++ {
		for _, tref := range la.list[i] {
			target := la.node(tref)
			if int(target.Start) >= len(la.list) {
				target.Cost = MaximumCost
				continue
			}
			prevs := la.list[target.Start]
			if len(prevs) == 0 {
				target.Cost = MaximumCost
				continue
			}
			for k, pref := range prevs {
				prev := la.node(pref)
				var connCost int16
				if prev.Class != User && target.Class != User {
					connCost = la.dic.Connection.At(int(prev.Right), int(target.Left))
				}
				totalCost := int64(connCost) + int64(target.Weight) + int64(prev.Cost)
				if mode != Normal {
					totalCost += int64(la.additionalCost(prev))
				}
				if totalCost > MaximumCost {
					totalCost = MaximumCost
				}
				if k == 0 || int32(totalCost) < target.Cost {
					target.Cost = int32(totalCost)
					target.prev = pref
				}
			}
		}
	}
}

// Backward traces the best path from EOS to BOS and stores it in
// forward order. In Extended mode unknown nodes are replaced by
// single-character Dummy nodes covering the same bytes.
func (la *Lattice) Backward(mode Mode) {
	la.output = la.output[:0]
	if len(la.list) == 0 || len(la.list[len(la.list)-1]) == 0 {
		return
	}

	var collected []int32
	for cur := la.list[len(la.list)-1][0]; cur != nilRef; {
		n := *la.node(cur) // copy: splitting below grows the arena
		if mode != Extended || n.Class != Unknown {
			collected = append(collected, cur)
			cur = n.prev
			continue
		}
		// split the unknown span into characters; push in reverse so
		// that the final reversal restores character order
		var chars []int32
		k := int32(0)
		for i := 0; i < len(n.Surface); {
			r, size := utf8.DecodeRuneInString(n.Surface[i:])
			if !(r == utf8.RuneError && size == 1) {
				chars = append(chars, la.alloc(Node{
					ID:       n.ID,
					Position: n.Position + int32(i),
					Start:    n.Start + k,
					Class:    Dummy,
					Surface:  n.Surface[i : i+size],
					prev:     nilRef,
				}))
				k++
			}
			i += size
		}
		for i := len(chars) - 1; i >= 0; i-- {
			collected = append(collected, chars[i])
		}
		cur = n.prev
	}

	for i := len(collected) - 1; i >= 0; i-- {
		la.output = append(la.output, collected[i])
	}
}

// additionalCost is the Search/Extended-mode segmentation penalty of a
// node, charged when the node acts as predecessor. Long pure-ideograph
// words and, failing that, long words in general are penalized per
// extra character.
func (la *Lattice) additionalCost(n *Node) int32 {
	if n == nil || n.Surface == "" {
		return 0
	}
	charCount := countChars(n.Surface)
	if charCount > searchModeKanjiLength && isKanjiOnly(n.Surface) {
		return int32(charCount-searchModeKanjiLength) * searchModeKanjiPenalty
	}
	if charCount > searchModeOtherLength {
		return int32(charCount-searchModeOtherLength) * searchModeOtherPenalty
	}
	return 0
}

func isKanjiOnly(s string) bool {
	found := false
	for _, r := range s {
		if r == utf8.RuneError {
			return false
		}
		if !unicode.Is(unicode.Ideographic, r) {
			return false
		}
		found = true
	}
	return found
}

// String renders the bucket contents for debugging.
func (la *Lattice) String() string {
	var sb strings.Builder
	for i, bucket := range la.list {
		fmt.Fprintf(&sb, "[%d] :\n", i)
		for _, ref := range bucket {
			n := la.node(ref)
			fmt.Fprintf(&sb, "  ID:%d Class:%s Surface:'%s' Cost:%d\n",
				n.ID, n.Class, n.Surface, n.Cost)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
