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
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/forensicanalysis/chatexport"
)

// Validate is the chatexport validate commandline subcommand.
func Validate() *cobra.Command {
	var noFail bool
	validateCmd := &cobra.Command{
		Use:   "validate <facebook|gchat> <file>",
		Short: "Validate an export file against the known format",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := afero.NewOsFs()
			document, err := afero.ReadFile(fs, args[1])
			if err != nil {
				return errors.Wrap(err, args[1])
			}

			var flaws []string
			switch args[0] {
			case "facebook":
				flaws, err = chatexport.ValidateFacebook(document)
			case "gchat":
				flaws, err = chatexport.ValidateGChat(document)
			default:
				return errors.Errorf("unknown export format %s", args[0])
			}
			if err != nil {
				return err
			}

			if len(flaws) > 0 {
				for i, flaw := range flaws {
					flaws[i] = strings.Replace(flaw, "\"", "\\\"", -1)
				}
				fmt.Printf("[\"%s\"]\n", strings.Join(flaws, "\", \""))
				if noFail {
					return nil
				}
				return errors.Errorf("%s is not a valid %s export", args[1], args[0])
			}
			return nil
		},
	}
	validateCmd.Flags().BoolVar(&noFail, "no-fail", false, "return exit code 0")
	return validateCmd
}
