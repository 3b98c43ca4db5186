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

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/forensicanalysis/chatexport/facebook"
)

// Facebook is the chatexport facebook commandline subcommand.
func Facebook() *cobra.Command {
	var output string
	facebookCmd := &cobra.Command{
		Use:   "facebook <message.json>",
		Short: "Export a Facebook message_N.json file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			fs := afero.NewOsFs()

			document, err := afero.ReadFile(fs, args[0])
			if err != nil {
				return errors.Wrap(err, args[0])
			}
			messages, flaws, err := facebook.Parse(document)
			if err != nil {
				return errors.Wrap(err, args[0])
			}
			if len(flaws) > 0 {
				if strict {
					return fmt.Errorf("%s: %s", args[0], strings.Join(flaws, ", "))
				}
				for _, flaw := range flaws {
					log.Warn().Str("path", args[0]).Msg(flaw)
				}
			}

			var out io.Writer = os.Stdout
			if output != "" {
				f, err := fs.Create(output)
				if err != nil {
					return errors.Wrap(err, output)
				}
				defer f.Close()
				out = f
			}
			return newWriter(fs, "").Write(out, messages)
		},
	}
	facebookCmd.Flags().StringVarP(&output, "output", "o", "", "write the transcript to a file instead of stdout")
	return facebookCmd
}
