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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFacebook(t *testing.T) {
	tests := []struct {
		name      string
		document  string
		wantFlaws bool
	}{
		{
			"valid",
			`{"title": "Ada", "messages": [{"sender_name": "Ada", "timestamp_ms": 1580240000000, "content": "hi"}]}`,
			false,
		},
		{
			"missing timestamp",
			`{"messages": [{"sender_name": "Ada"}]}`,
			true,
		},
		{
			"no messages",
			`{"title": "Ada"}`,
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flaws, err := ValidateFacebook([]byte(tt.document))
			require.NoError(t, err)
			assert.Equal(t, tt.wantFlaws, len(flaws) > 0, "flaws: %v", flaws)
		})
	}
}

func TestValidateGChat(t *testing.T) {
	valid := `{"messages": [{
		"creator": {"name": "Ada", "email": "ada@example.com", "user_type": "Human"},
		"created_date": "Tuesday, January 28, 2020 at 07:33:14 PM UTC",
		"text": "hi", "topic_id": "t1", "message_id": "m1"
	}]}`
	flaws, err := ValidateGChat([]byte(valid))
	require.NoError(t, err)
	assert.Empty(t, flaws)

	updatedOnly := `{"messages": [{
		"creator": {"name": "Ada"},
		"updated_date": "Tuesday, January 28, 2020 at 07:33:14 PM UTC"
	}]}`
	flaws, err = ValidateGChat([]byte(updatedOnly))
	require.NoError(t, err)
	assert.Empty(t, flaws)

	noDate := `{"messages": [{"creator": {"name": "Ada"}}]}`
	flaws, err = ValidateGChat([]byte(noDate))
	require.NoError(t, err)
	assert.NotEmpty(t, flaws)
}
