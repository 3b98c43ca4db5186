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
	"github.com/imdario/mergo"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/forensicanalysis/chatexport/signal"
)

// Signal is the chatexport signal commandline subcommand.
func Signal() *cobra.Command {
	options := signal.Options{}
	signalCmd := &cobra.Command{
		Use:   "signal <output-dir>",
		Short: "Export all Signal Desktop conversations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("key") && cmd.Flags().Changed("config") {
				return errors.New("--key and --config are mutually exclusive")
			}
			if err := mergo.Merge(&options, signal.DefaultOptions()); err != nil {
				return err
			}

			log := newLogger()
			fs := afero.NewOsFs()

			key, err := signal.ResolveKey(fs, options)
			if err != nil {
				return err
			}
			db, err := signal.Open(options.DBPath, key, log)
			if err != nil {
				return err
			}
			defer db.Close()

			conversations, err := db.Conversations()
			if err != nil {
				return err
			}
			names := signal.NameTable(conversations)

			outDir := args[0]
			if err := fs.MkdirAll(outDir, 0755); err != nil {
				return err
			}
			writer := newWriter(fs, outDir)

			bar := progressbar.Default(int64(len(conversations)))
			for _, conversation := range conversations {
				messages, err := db.Messages(conversation.ID, names, options.OutgoingName)
				if err != nil {
					return errors.Wrap(err, conversation.ID)
				}
				path, err := writer.WriteConversation(conversation.DisplayName, messages)
				if err != nil {
					return errors.Wrap(err, conversation.ID)
				}
				log.Debug().Str("path", path).Int("messages", len(messages)).Msg("wrote transcript")
				_ = bar.Add(1)
			}
			return nil
		},
	}
	signalCmd.Flags().StringVarP(&options.Key, "key", "k", "", "decryption key for the Signal Desktop database")
	signalCmd.Flags().StringVarP(&options.ConfigPath, "config", "c", "", "location of Signal's config.json with the decryption key")
	signalCmd.Flags().StringVarP(&options.DBPath, "db-path", "d", "", "location of the encrypted db.sqlite file")
	signalCmd.Flags().StringVarP(&options.OutgoingName, "i-am", "i", "", "name to tag outgoing messages with")
	return signalCmd
}
