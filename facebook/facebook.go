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

// Package facebook reads message_N.json files from a Facebook
// "Download Your Information" export.
//
// The export tool writes UTF-8 text but escapes every byte as if it were a
// latin-1 code point, so all non-ASCII text arrives as mojibake ("cafÃ©"
// instead of "café"). Parse repairs this by re-encoding the damaged strings.
package facebook

import (
	"encoding/json"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"

	"github.com/forensicanalysis/chatexport"
)

type export struct {
	Title    string    `json:"title"`
	Messages []message `json:"messages"`
}

type message struct {
	SenderName  string `json:"sender_name"`
	TimestampMS int64  `json:"timestamp_ms"`
	Content     string `json:"content"`
	Type        string `json:"type"`
	Share       struct {
		Link string `json:"link"`
	} `json:"share"`
}

// Parse reads a message_N.json document and returns its messages oldest
// first. The export stores them newest first. Validation flaws are reported
// separately and do not stop the parse.
func Parse(document []byte) ([]chatexport.Message, []string, error) {
	flaws, err := chatexport.ValidateFacebook(document)
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not validate export")
	}

	var doc export
	if err := json.Unmarshal(document, &doc); err != nil {
		return nil, nil, errors.Wrap(err, "could not parse export")
	}

	messages := make([]chatexport.Message, 0, len(doc.Messages))
	for i := len(doc.Messages) - 1; i >= 0; i-- {
		m := doc.Messages[i]
		body := RepairMojibake(m.Content)
		if m.Type == "Share" && m.Share.Link != "" {
			body = m.Share.Link
		}
		messages = append(messages, chatexport.Message{
			Type:      m.Type,
			Sender:    RepairMojibake(m.SenderName),
			Timestamp: time.UnixMilli(m.TimestampMS),
			Body:      body,
		})
	}
	return messages, flaws, nil
}

// RepairMojibake reverses the latin-1 double encoding of the export tool.
// Strings that do not round trip cleanly are returned unchanged.
func RepairMojibake(s string) string {
	b, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	if err != nil || !utf8.Valid(b) {
		return s
	}
	return string(b)
}
