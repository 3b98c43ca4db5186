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

// Package chatexport turns local data dumps of messaging applications into
// human-readable transcript files.
//
// Supported sources
//
// The chatexport subpackages read the following dumps:
//     - signal: the encrypted SQLCipher database of Signal Desktop
//     - facebook: message_N.json files from "Download Your Information"
//     - gchat: Google Chat messages.json files from a Google Takeout
//
// Output conventions
//
// All sources render the same transcript line format:
//     [2009-11-10 23:00:00] Ada Lovelace: message body
// Emoji are replaced by their :alias: names and the text is transliterated
// to ASCII unless unicode output is requested. One text file is written per
// conversation, named after a slugified version of the conversation name.
// Alternatively every message can be emitted as a flattened JSON object with
// snake_case keys, one object per line.
package chatexport
