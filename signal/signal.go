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

// Package signal reads the encrypted message database of Signal Desktop.
//
// Signal Desktop stores all conversations and messages in a SQLCipher
// encrypted SQLite database. The raw database key is kept next to it in
// config.json. Both files live in the Signal profile directory:
//     windows: %APPDATA%\Signal
//     darwin:  ~/Library/Application Support/Signal
//     other:   ~/.config/Signal
// with the database at sql/db.sqlite inside the profile.
package signal

import (
	"database/sql"
	"encoding/hex"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"time"

	sqlcipher "github.com/mutecomm/go-sqlcipher/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/tidwall/gjson"

	"github.com/forensicanalysis/chatexport"
)

// Options describe where the Signal profile lives and how outgoing messages
// are labeled. Empty fields can be filled from DefaultOptions with
// mergo.Merge.
type Options struct {
	// DBPath is the location of the encrypted db.sqlite file.
	DBPath string
	// ConfigPath is the location of config.json holding the database key.
	ConfigPath string
	// Key is the raw database key as a hex string. It takes precedence over
	// ConfigPath.
	Key string
	// OutgoingName tags messages sent by the database owner.
	OutgoingName string
}

// DefaultOptions returns the Signal Desktop profile paths for the current
// platform.
func DefaultOptions() Options {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = filepath.Join(os.Getenv("APPDATA"), "Signal")
	case "darwin":
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, "Library", "Application Support", "Signal")
	default:
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, ".config", "Signal")
	}
	return Options{
		DBPath:       filepath.Join(base, "sql", "db.sqlite"),
		ConfigPath:   filepath.Join(base, "config.json"),
		OutgoingName: "me",
	}
}

// ResolveKey returns the raw database key as a hex string, either directly
// from the options or from the key field of config.json.
func ResolveKey(fs afero.Fs, options Options) (string, error) {
	key := options.Key
	if key == "" {
		content, err := afero.ReadFile(fs, options.ConfigPath)
		if err != nil {
			return "", errors.Wrap(err, "could not read Signal config")
		}
		result := gjson.GetBytes(content, "key")
		if !result.Exists() {
			return "", fmt.Errorf("%s has no plaintext database key", options.ConfigPath)
		}
		key = result.String()
	}
	if _, err := hex.DecodeString(key); err != nil || key == "" {
		return "", fmt.Errorf("database key %q is not a hex string", key)
	}
	return key, nil
}

// A Database is an open Signal Desktop message database.
type Database struct {
	db  *sql.DB
	log zerolog.Logger
}

// Open opens the encrypted database with a raw hex key.
func Open(path, hexKey string, log zerolog.Logger) (*Database, error) {
	encrypted, err := sqlcipher.IsEncrypted(path)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	if !encrypted {
		log.Warn().Str("path", path).Msg("database is not encrypted")
	}

	dsn := path + "?_pragma_key=" + url.QueryEscape("x'"+hexKey+"'") +
		"&_pragma_cipher_page_size=4096"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "could not open database")
	}

	// SQLCipher does not verify the key on open, the first page read does.
	if _, err := db.Exec("SELECT count(*) FROM sqlite_master"); err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "could not decrypt %s, wrong key?", path)
	}
	return &Database{db: db, log: log}, nil
}

// Close closes the database.
func (d *Database) Close() error {
	return d.db.Close()
}

// Conversations lists all conversations with their display names.
func (d *Database) Conversations() ([]chatexport.Conversation, error) {
	rows, err := d.db.Query("SELECT id, type, name, profileName FROM conversations")
	if err != nil {
		return nil, errors.Wrap(err, "could not read conversations")
	}
	defer rows.Close()

	var conversations []chatexport.Conversation
	for rows.Next() {
		var id, conversationType string
		var name, profileName sql.NullString
		if err := rows.Scan(&id, &conversationType, &name, &profileName); err != nil {
			return nil, err
		}
		conversations = append(conversations, chatexport.Conversation{
			ID:          id,
			DisplayName: displayName(id, conversationType, name.String, profileName.String),
		})
	}
	return conversations, rows.Err()
}

func displayName(id, conversationType, name, profileName string) string {
	switch {
	case name != "":
		return name
	case profileName != "":
		return "~" + profileName
	case conversationType == "group":
		return "Unknown group"
	default:
		return id
	}
}

// NameTable maps conversation ids to display names for sender resolution.
func NameTable(conversations []chatexport.Conversation) map[string]string {
	names := make(map[string]string, len(conversations))
	for _, conversation := range conversations {
		names[conversation.ID] = conversation.DisplayName
	}
	return names
}

// Messages reads all messages of one conversation ordered by send time.
// Messages of unknown types are skipped.
func (d *Database) Messages(conversationID string, names map[string]string, outgoingName string) ([]chatexport.Message, error) {
	rows, err := d.db.Query(
		"SELECT json FROM messages WHERE conversationId = ? ORDER BY sent_at ASC",
		conversationID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "could not read messages")
	}
	defer rows.Close()

	var messages []chatexport.Message
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		message, ok := d.parseMessage(raw, names, outgoingName)
		if ok {
			messages = append(messages, message)
		}
	}
	return messages, rows.Err()
}

func (d *Database) parseMessage(raw string, names map[string]string, outgoingName string) (chatexport.Message, bool) {
	message := chatexport.Message{
		ID:        gjson.Get(raw, "id").String(),
		Type:      gjson.Get(raw, "type").String(),
		Timestamp: time.UnixMilli(gjson.Get(raw, "received_at").Int()),
	}

	switch message.Type {
	case "incoming":
		message.Sender = resolve(names, gjson.Get(raw, "source").String())
		message.Attachments = attachments(raw)
		message.Body = chatexport.AttachmentNote(message.Attachments) + gjson.Get(raw, "body").String()
	case "outgoing":
		message.Sender = outgoingName
		message.Attachments = attachments(raw)
		message.Body = chatexport.AttachmentNote(message.Attachments) + gjson.Get(raw, "body").String()
	case "keychange":
		message.Sender = resolve(names, gjson.Get(raw, "key_changed").String())
		message.Body = "[Safety number changed]"
	case "verified-change":
		message.Sender = resolve(names, gjson.Get(raw, "verifiedChanged").String())
		message.Body = fmt.Sprintf("[Contact verification status set to %v]", gjson.Get(raw, "verified").Value())
	default:
		d.log.Debug().Str("type", message.Type).Str("id", message.ID).Msg("skipping message with unknown type")
		return chatexport.Message{}, false
	}
	return message, true
}

func attachments(raw string) []chatexport.Attachment {
	var list []chatexport.Attachment
	for _, result := range gjson.Get(raw, "attachments").Array() {
		list = append(list, chatexport.Attachment{
			Name:        result.Get("fileName").String(),
			ContentType: result.Get("contentType").String(),
		})
	}
	return list
}

func resolve(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return id
}
