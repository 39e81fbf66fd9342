/*
Package host adapts the analyzer to the word-record contract of
embedding text-processing hosts, e.g. spam filters that treat Japanese
as one of several languages they must segment.

The host contract is a small, C-flavored surface: initialize once,
detect whether a byte buffer looks Japanese, tokenize buffers into
word records, shut down once. Word records keep their Original field
aliased into the caller's buffer — never a copy — while the Unicode,
Normalized and Stemmed fields are owned copies.

An Analyzer is an explicit three-state handle (uninitialized →
initialized → shut down). The package-level Init/Deinit/Tokenize/
DetectLanguage functions operate a process-wide default analyzer for
hosts that expect global entry points. Callers must not overlap
Init/Deinit with analysis calls; analysis calls themselves are safe to
run concurrently.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package host

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to wakame.host .
func tracer() tracing.Trace {
	return tracing.Select("wakame.host")
}
