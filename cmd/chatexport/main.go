// Copyright (c) 2019 Siemens AG
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

// Package main implements the chatexport command line tool that exports
// messenger data dumps into readable transcript files.
//     signal    Export all Signal Desktop conversations
//     facebook  Export a Facebook message_N.json file
//     gchat     Export all Google Chat conversations of a Takeout
//     validate  Validate an export file against the known format
//
// Usage
//
// Export Signal Desktop conversations into a directory
//     chatexport signal logs/
// Export with an explicit key and database
//     chatexport signal --key 92f9... --db-path db.sqlite logs/
// Export a Facebook conversation
//     chatexport facebook message_1.json -o conversation.txt
// Export Google Chat from an unpacked Takeout
//     chatexport gchat Takeout/
package main

import (
	"fmt"
	"os"

	"github.com/forensicanalysis/chatexport/cmd"
)

func main() {
	if err := cmd.Root().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
