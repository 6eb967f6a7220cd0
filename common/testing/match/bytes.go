// Copyright 2026 The LUCI Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package match

import (
	"bytes"
	"fmt"
	"unicode"
)

// Bytes matches two byte slices, reporting the offset of the first byte which
// differs.
//
// If one slice is a prefix of the other, the two lengths are reported instead.
func Bytes() Func[[]byte] {
	return func(actual, expected []byte, ctx Context) *Failure {
		if bytes.Equal(actual, expected) {
			return nil
		}
		common := min(len(actual), len(expected))
		for n := 0; n < common; n++ {
			a, e := actual[n], expected[n]
			if a != e {
				return NewFailure(
					fmt.Sprintf("first mismatch at byte %d: 0x%02X (%s) vs 0x%02X (%s)", n, a, printable(a), e, printable(e)),
					actual, expected, ctx)
			}
		}
		return NewFailure(
			fmt.Sprintf("got %d bytes, expected %d bytes", len(actual), len(expected)),
			actual, expected, ctx)
	}
}

// printable returns b as a one-character string if it is an ASCII letter,
// digit or punctuation character, and a space otherwise.
func printable(b byte) string {
	r := rune(b)
	if b < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsPunct(r)) {
		return string(r)
	}
	return " "
}
