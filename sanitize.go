// Copyright (c) 2020 Siemens AG
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
//
// Author(s): Jonas Plum

package chatexport

import (
	"strings"

	"github.com/forPelevin/gomoji"
	"github.com/gosimple/slug"
	"github.com/mozillazg/go-unidecode"
)

// A Sanitizer prepares transcript text for plain text files.
type Sanitizer struct {
	// KeepUnicode skips the ASCII transliteration. Emoji are still replaced
	// by their alias names.
	KeepUnicode bool
}

// Clean replaces emoji by :alias: names and transliterates the result to
// ASCII unless KeepUnicode is set.
func (s Sanitizer) Clean(text string) string {
	text = Demojize(text)
	if s.KeepUnicode {
		return text
	}
	return unidecode.Unidecode(text)
}

// Demojize replaces every emoji in s by its :alias: name, e.g. "🎂" becomes
// ":birthday_cake:".
func Demojize(s string) string {
	for _, e := range gomoji.FindAll(s) {
		alias := ":" + strings.ReplaceAll(e.Slug, "-", "_") + ":"
		s = strings.ReplaceAll(s, e.Character, alias)
	}
	return s
}

// Filename derives a safe transcript file name from a conversation name.
// Emoji names are kept, everything else is slugified.
func Filename(name, ext string) string {
	s := slug.Make(Demojize(name))
	if s == "" {
		s = "unnamed"
	}
	return s + ext
}
