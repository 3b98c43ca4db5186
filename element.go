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
	"encoding/json"
	"reflect"

	"github.com/fatih/structs"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stoewer/go-strcase"
)

// JSONElement is a single machine-readable transcript entry.
type JSONElement []byte

// NewElement converts a message into a flattened JSON object with snake_case
// keys. Messages without an id of their own get a generated
// "message--<uuid>" id.
func NewElement(message Message) (JSONElement, error) {
	m := structs.Map(message)
	lm, ok := lower(m).(map[string]interface{})
	if !ok {
		return nil, errors.New("message did not convert to a map")
	}
	if _, ok := lm["id"]; !ok {
		lm["id"] = "message--" + uuid.New().String()
	}
	// time.Time has no exported fields, structs.Map turns it into an empty
	// map that lower() drops. Set the formatted value instead.
	lm["timestamp"] = message.Timestamp.UTC().Format("2006-01-02T15:04:05.000Z")
	b, err := json.Marshal(lm)
	if err != nil {
		return nil, errors.Wrap(err, "could not marshal element")
	}
	return b, nil
}

// lower converts all map keys to snake_case and removes empty values.
func lower(f interface{}) interface{} {
	switch f := f.(type) {
	case []interface{}:
		for i := range f {
			if !isEmptyValue(reflect.ValueOf(f[i])) {
				f[i] = lower(f[i])
			}
		}
		return f
	case map[string]interface{}:
		lf := make(map[string]interface{}, len(f))
		for k, v := range f {
			if !isEmptyValue(reflect.ValueOf(v)) {
				lf[strcase.SnakeCase(k)] = lower(v)
			}
		}
		return lf
	default:
		return f
	}
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Interface, reflect.Ptr:
		return v.IsNil()
	}
	return false
}
