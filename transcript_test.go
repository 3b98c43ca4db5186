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
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func testMessages() []Message {
	return []Message{
		{
			Type:      "incoming",
			Sender:    "Ada",
			Timestamp: time.Date(2020, 1, 28, 19, 33, 14, 0, time.Local),
			Body:      "première",
		},
		{
			Type:      "outgoing",
			Sender:    "me",
			Timestamp: time.Date(2020, 1, 28, 19, 35, 0, 0, time.Local),
			Body:      "reply",
		},
	}
}

func TestWriteConversation(t *testing.T) {
	fs := afero.NewMemMapFs()
	writer := &Writer{Fs: fs, Dir: "out", Format: FormatText}

	path, err := writer.WriteConversation("Ada Lovelace", testMessages())
	require.NoError(t, err)

	content, err := afero.ReadFile(fs, path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "[2020-01-28 19:33:14] Ada: premiere", lines[0])
	assert.Equal(t, "[2020-01-28 19:35:00] me: reply", lines[1])
}

func TestWriteJSONL(t *testing.T) {
	var buf bytes.Buffer
	writer := &Writer{Format: FormatJSONL}

	err := writer.Write(&buf, testMessages())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Ada", gjson.Get(lines[0], "sender").String())
	assert.Equal(t, "outgoing", gjson.Get(lines[1], "type").String())
}

func TestFormatExt(t *testing.T) {
	assert.Equal(t, ".txt", FormatText.Ext())
	assert.Equal(t, ".jsonl", FormatJSONL.Ext())
	assert.Equal(t, ".txt", Format("").Ext())
}
