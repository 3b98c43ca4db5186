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
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/forensicanalysis/chatexport"
)

var (
	debug       bool
	strict      bool
	keepUnicode bool
	format      string
)

// Root assembles the chatexport command with all subcommands and global
// flags.
func Root() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "chatexport",
		Short: "Export messenger data dumps into readable transcripts",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch chatexport.Format(format) {
			case chatexport.FormatText, chatexport.FormatJSONL:
				return nil
			}
			return errors.Errorf("unknown format %s (expected text or jsonl)", format)
		},
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "fail on malformed messages")
	rootCmd.PersistentFlags().BoolVar(&keepUnicode, "keep-unicode", false, "do not transliterate transcripts to ASCII")
	rootCmd.PersistentFlags().StringVar(&format, "format", "text", "output format (text or jsonl)")
	rootCmd.AddCommand(Signal(), Facebook(), GChat(), Validate())
	return rootCmd
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func newWriter(fs afero.Fs, dir string) *chatexport.Writer {
	return &chatexport.Writer{
		Fs:       fs,
		Dir:      dir,
		Sanitize: chatexport.Sanitizer{KeepUnicode: keepUnicode},
		Format:   chatexport.Format(format),
	}
}
