// Package codec encodes and decodes record files by extension. JSON is the
// default; .yaml and .yml files use YAML.
package codec

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/teammap/pkg/constants"
	"github.com/agentstation/teammap/pkg/errors"
)

// Format is a file encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatOf returns the format implied by path's extension.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode parses data in format f into v. Blank input leaves v unchanged.
func Decode(f Format, data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if f == FormatYAML {
		return yaml.Unmarshal(data, v)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	return dec.Decode(v)
}

// Encode renders v in format f. JSON is indented two spaces with a
// trailing newline.
func Encode(f Format, v any) ([]byte, error) {
	if f == FormatYAML {
		return yaml.MarshalWithOptions(v, yaml.Indent(2), yaml.IndentSequence(true))
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReadFile decodes the file at path into v.
func ReadFile(path string, v any) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is operator supplied
	if err != nil {
		return err
	}
	if err := Decode(FormatOf(path), data, v); err != nil {
		return &errors.ParseError{Format: string(FormatOf(path)), File: path, Message: "decode failed", Err: err}
	}
	return nil
}

// WriteFile encodes v and replaces path atomically: the data is written to
// a temporary file in the same directory and renamed over path.
func WriteFile(path string, v any) error {
	data, err := Encode(FormatOf(path), v)
	if err != nil {
		return &errors.ParseError{Format: string(FormatOf(path)), File: path, Message: "encode failed", Err: err}
	}
	return WriteAtomic(path, data)
}

// WriteAtomic replaces path with data via a temporary file and rename.
func WriteAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.WrapIO("create", "temp file", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return errors.WrapIO("write", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("close", path, err)
	}
	if err := os.Chmod(tmpPath, constants.FilePermissions); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("chmod", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("move", path, err)
	}
	return nil
}
