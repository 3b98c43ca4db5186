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
	"io"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Format selects the transcript output format.
type Format string

const (
	// FormatText renders one human-readable line per message.
	FormatText Format = "text"
	// FormatJSONL renders one flattened JSON object per message.
	FormatJSONL Format = "jsonl"
)

// Ext returns the file extension for the format.
func (f Format) Ext() string {
	if f == FormatJSONL {
		return ".jsonl"
	}
	return ".txt"
}

// A Writer renders messages into transcript files.
type Writer struct {
	Fs       afero.Fs
	Dir      string
	Sanitize Sanitizer
	Format   Format
}

// WriteConversation writes all messages of one conversation into a file named
// after the conversation inside the writer directory. It returns the path of
// the written file.
func (w *Writer) WriteConversation(name string, messages []Message) (string, error) {
	path := filepath.Join(w.Dir, Filename(name, w.Format.Ext()))
	f, err := w.Fs.Create(path)
	if err != nil {
		return "", errors.Wrap(err, "could not create transcript file")
	}
	defer f.Close()
	return path, w.Write(f, messages)
}

// Write renders all messages to out, one line per message.
func (w *Writer) Write(out io.Writer, messages []Message) error {
	for _, message := range messages {
		var line string
		if w.Format == FormatJSONL {
			element, err := NewElement(message)
			if err != nil {
				return err
			}
			line = string(element)
		} else {
			line = w.Sanitize.Clean(message.LogLine())
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return errors.Wrap(err, "could not write transcript line")
		}
	}
	return nil
}
