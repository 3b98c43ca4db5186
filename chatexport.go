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
	"fmt"
	"strings"
	"time"
)

// A Conversation is a single chat thread of a source application.
type Conversation struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// An Attachment is a file referenced by a message. Name is the original file
// name if the source knows it, ContentType the MIME type.
type Attachment struct {
	Name        string `json:"name,omitempty"`
	ContentType string `json:"content_type,omitempty"`
}

// A Message is a single transcript entry, normalized across all sources.
// Body already contains source specific annotations like attachment lists or
// safety number change markers.
type Message struct {
	ID          string       `json:"id,omitempty"`
	Type        string       `json:"type"`
	Sender      string       `json:"sender"`
	Timestamp   time.Time    `json:"timestamp"`
	Body        string       `json:"body,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// LogLine renders the message as a single transcript line. The timestamp is
// converted to local time, matching the host the export runs on.
func (m Message) LogLine() string {
	ts := m.Timestamp.Local().Format("[2006-01-02 15:04:05]")
	return fmt.Sprintf("%s %s: %s", ts, m.Sender, m.Body)
}

// AttachmentNote renders an attachment list like
// "[Attachment(s): holiday.jpg, image/png] ". Attachments without a file name
// fall back to their content type. The note is empty for messages without
// attachments, so it can be prepended to any body unconditionally.
func AttachmentNote(attachments []Attachment) string {
	if len(attachments) == 0 {
		return ""
	}
	names := make([]string, 0, len(attachments))
	for _, attachment := range attachments {
		name := attachment.Name
		if name == "" {
			name = attachment.ContentType
		}
		names = append(names, name)
	}
	return fmt.Sprintf("[Attachment(s): %s] ", strings.Join(names, ", "))
}
