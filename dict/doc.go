/*
Package dict holds the compact in-memory dictionary model for Japanese
morphological analysis.

Content

A system dictionary is a bundle of parallel tables, all keyed by
morpheme ID:

  ▪︎ a double-array trie index over the UTF-8 surface forms
  ▪︎ a morpheme table with left/right context IDs and base weights
  ▪︎ a part-of-speech table and per-morpheme feature rows
  ▪︎ a connection-cost matrix over (right context, left context) pairs
  ▪︎ character-category tables driving unknown-word handling
  ▪︎ an unknown-word dictionary with per-category template morphemes

All tables are immutable after loading and freely shareable between
goroutines. Dictionaries come from three sources: the dictionaries
embedded in the kagome-dict modules (IPA and UniDic), a ZIP archive in
the kagome on-disk layout (LoadArchive), or the minimal built-in
fallback (Fallback) which analyzes everything through the unknown-word
path.

User dictionaries supplement the system dictionary with custom entries
and are loaded from CSV (see NewUserDict).

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package dict

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to wakame.dict .
func tracer() tracing.Trace {
	return tracing.Select("wakame.dict")
}
