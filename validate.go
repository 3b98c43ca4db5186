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
	"context"
	"fmt"

	"github.com/qri-io/jsonschema"
)

// The export formats of the JSON based sources are undocumented and have
// changed silently in the past. The schemas pin the fields the exporter
// relies on, so format drift shows up as validation flaws instead of empty
// transcripts.

var facebookSchema = jsonschema.Must(`{
	"$schema": "https://json-schema.org/draft/2019-09/schema#",
	"$id": "chatexport:facebook-export",
	"title": "facebook-export",
	"type": "object",
	"required": ["messages"],
	"properties": {
		"title": {"type": "string"},
		"messages": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["sender_name", "timestamp_ms"],
				"properties": {
					"sender_name": {"type": "string"},
					"timestamp_ms": {"type": "integer"},
					"content": {"type": "string"},
					"type": {"type": "string"},
					"share": {
						"type": "object",
						"properties": {"link": {"type": "string"}}
					}
				}
			}
		}
	}
}`)

var gchatSchema = jsonschema.Must(`{
	"$schema": "https://json-schema.org/draft/2019-09/schema#",
	"$id": "chatexport:gchat-export",
	"title": "gchat-export",
	"type": "object",
	"required": ["messages"],
	"properties": {
		"messages": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["creator"],
				"anyOf": [
					{"required": ["created_date"]},
					{"required": ["updated_date"]}
				],
				"properties": {
					"creator": {
						"type": "object",
						"required": ["name"],
						"properties": {
							"name": {"type": "string"},
							"email": {"type": "string"},
							"user_type": {"type": "string"}
						}
					},
					"created_date": {"type": "string"},
					"updated_date": {"type": "string"},
					"text": {"type": "string"},
					"topic_id": {"type": "string"},
					"message_id": {"type": "string"},
					"attached_files": {
						"type": "array",
						"items": {
							"type": "object",
							"required": ["original_name"],
							"properties": {
								"original_name": {"type": "string"},
								"export_name": {"type": "string"}
							}
						}
					}
				}
			}
		}
	}
}`)

// ValidateFacebook checks a Facebook message_N.json document against the
// known export format. The returned flaws are human readable and empty for a
// valid document.
func ValidateFacebook(document []byte) ([]string, error) {
	return validateSchema(facebookSchema, document)
}

// ValidateGChat checks a Google Chat messages.json document against the known
// export format.
func ValidateGChat(document []byte) ([]string, error) {
	return validateSchema(gchatSchema, document)
}

func validateSchema(schema *jsonschema.Schema, document []byte) (flaws []string, err error) {
	errs, err := schema.ValidateBytes(context.Background(), document)
	if err != nil {
		return nil, err
	}
	for _, verr := range errs {
		flaws = append(flaws, fmt.Sprintf("failed to validate message: %s", verr.Error()))
	}
	return flaws, nil
}
