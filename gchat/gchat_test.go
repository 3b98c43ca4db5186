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

package gchat

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forensicanalysis/chatexport"
)

var testExport = `{
	"messages": [
		{
			"creator": {"name": "Ada Lovelace", "email": "ada@example.com", "user_type": "Human"},
			"created_date": "Tuesday, January 28, 2020 at 07:33:14 PM UTC",
			"text": "meeting notes attached",
			"topic_id": "t1", "message_id": "m1",
			"attached_files": [{"original_name": "notes.pdf", "export_name": "notes(1).pdf"}]
		},
		{
			"creator": {"name": "Charles Babbage"},
			"updated_date": "Tuesday, January 28, 2020 at 07:35:00 PM UTC",
			"text": "thanks",
			"topic_id": "t1", "message_id": "m2"
		}
	]
}`

func TestParse(t *testing.T) {
	messages, flaws, err := Parse([]byte(testExport))
	require.NoError(t, err)
	assert.Empty(t, flaws)
	require.Len(t, messages, 2)

	assert.Equal(t, "Ada Lovelace", messages[0].Sender)
	assert.Equal(t, "[notes.pdf]meeting notes attached", messages[0].Body)
	want := time.Date(2020, 1, 28, 19, 33, 14, 0, time.UTC)
	assert.True(t, messages[0].Timestamp.Equal(want), "got %v", messages[0].Timestamp)

	// updated_date is treated like created_date
	assert.Equal(t, "thanks", messages[1].Body)
	assert.Equal(t, "m2", messages[1].ID)
}

func TestParseBadDate(t *testing.T) {
	document := `{"messages": [{"creator": {"name": "Ada"}, "created_date": "soonish", "message_id": "m1"}]}`

	messages, flaws, err := Parse([]byte(document))
	require.NoError(t, err)
	assert.Empty(t, messages)
	assert.NotEmpty(t, flaws)
}

func TestExportTree(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "Takeout/Google Chat/Groups/DM 1/messages.json"
	require.NoError(t, afero.WriteFile(fs, path, []byte(testExport), 0644))
	require.NoError(t, afero.WriteFile(fs, "Takeout/Google Chat/Groups/DM 1/group_info.json", []byte(`{}`), 0644))

	writer := &chatexport.Writer{Fs: fs, Format: chatexport.FormatText}
	count, err := ExportTree(fs, "Takeout", writer, false, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	content, err := afero.ReadFile(fs, "Takeout/Google Chat/Groups/DM 1/messages.txt")
	require.NoError(t, err)
	assert.Contains(t, string(content), "Ada Lovelace: [notes.pdf]meeting notes attached")
	assert.Contains(t, string(content), "Charles Babbage: thanks")
}

func TestExportTreeDeeplyNested(t *testing.T) {
	fs := afero.NewMemMapFs()
	paths := []string{
		"backups/2020/laptop/Takeout/Google Chat/Groups/Space AAA/messages.json",
		"Takeout/Google Chat/Groups/DM 1/messages.json",
	}
	for _, path := range paths {
		require.NoError(t, afero.WriteFile(fs, path, []byte(testExport), 0644))
	}

	writer := &chatexport.Writer{Fs: fs, Format: chatexport.FormatText}
	count, err := ExportTree(fs, "backups", writer, false, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	content, err := afero.ReadFile(fs, "backups/2020/laptop/Takeout/Google Chat/Groups/Space AAA/messages.txt")
	require.NoError(t, err)
	assert.Contains(t, string(content), "Charles Babbage: thanks")
}

func TestExportTreeStrict(t *testing.T) {
	fs := afero.NewMemMapFs()
	document := `{"messages": [{"creator": {"name": "Ada"}, "created_date": "soonish"}]}`
	require.NoError(t, afero.WriteFile(fs, "Takeout/DM/messages.json", []byte(document), 0644))

	writer := &chatexport.Writer{Fs: fs, Format: chatexport.FormatText}
	_, err := ExportTree(fs, "Takeout", writer, true, zerolog.Nop())
	assert.Error(t, err)
}
