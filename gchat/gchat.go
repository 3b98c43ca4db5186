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

// Package gchat reads Google Chat messages.json files from a Google Takeout
// export and writes a transcript next to each of them.
package gchat

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/forensicanalysis/chatexport"
)

// Takeout writes dates like "Monday, January 27, 2020 at 07:33:14 PM UTC".
const dateLayout = "Monday, January 2, 2006 at 3:04:05 PM MST"

type message struct {
	Creator struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		UserType string `json:"user_type"`
	} `json:"creator"`
	// Edited messages carry an updated_date instead of a created_date, both
	// mean the same for the transcript.
	CreatedDate   string `json:"created_date"`
	UpdatedDate   string `json:"updated_date"`
	Text          string `json:"text"`
	TopicID       string `json:"topic_id"`
	MessageID     string `json:"message_id"`
	AttachedFiles []struct {
		OriginalName string `json:"original_name"`
		ExportName   string `json:"export_name"`
	} `json:"attached_files"`
}

// Parse reads a messages.json document. Validation flaws are reported
// separately and do not stop the parse.
func Parse(document []byte) ([]chatexport.Message, []string, error) {
	flaws, err := chatexport.ValidateGChat(document)
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not validate export")
	}

	var doc struct {
		Messages []message `json:"messages"`
	}
	if err := json.Unmarshal(document, &doc); err != nil {
		return nil, nil, errors.Wrap(err, "could not parse export")
	}

	messages := make([]chatexport.Message, 0, len(doc.Messages))
	for _, m := range doc.Messages {
		date := m.CreatedDate
		if date == "" {
			date = m.UpdatedDate
		}
		timestamp, err := time.Parse(dateLayout, date)
		if err != nil {
			flaws = append(flaws, fmt.Sprintf("message %s has an unparsable date %q", m.MessageID, date))
			continue
		}

		body := m.Text
		if len(m.AttachedFiles) > 0 {
			names := make([]string, 0, len(m.AttachedFiles))
			for _, file := range m.AttachedFiles {
				names = append(names, file.OriginalName)
			}
			body = "[" + strings.Join(names, ", ") + "]" + body
		}

		messages = append(messages, chatexport.Message{
			ID:        m.MessageID,
			Type:      "message",
			Sender:    m.Creator.Name,
			Timestamp: timestamp,
			Body:      body,
		})
	}
	return messages, flaws, nil
}

// ExportTree walks a Takeout export for messages.json files and writes a
// transcript sibling file for each. It returns the number of written
// transcripts. Flaws of single files are logged, they only fail the export
// in strict mode.
func ExportTree(fs afero.Fs, root string, writer *chatexport.Writer, strict bool, log zerolog.Logger) (int, error) {
	count := 0
	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info == nil || info.IsDir() {
			return err
		}
		// Takeout nests messages.json at arbitrary depth, match the name only.
		if info.Name() != "messages.json" {
			return nil
		}

		document, err := afero.ReadFile(fs, path)
		if err != nil {
			return errors.Wrap(err, path)
		}
		messages, flaws, err := Parse(document)
		if err != nil {
			return errors.Wrap(err, path)
		}
		if len(flaws) > 0 {
			if strict {
				return fmt.Errorf("%s: %s", path, strings.Join(flaws, ", "))
			}
			for _, flaw := range flaws {
				log.Warn().Str("path", path).Msg(flaw)
			}
		}

		out := filepath.Join(filepath.Dir(path), "messages"+writer.Format.Ext())
		f, err := fs.Create(out)
		if err != nil {
			return errors.Wrap(err, out)
		}
		defer f.Close()
		if err := writer.Write(f, messages); err != nil {
			return errors.Wrap(err, out)
		}

		log.Info().Str("path", out).Int("messages", len(messages)).Msg("wrote transcript")
		count++
		return nil
	})
	return count, err
}
