package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/fpl/pkg/asm"
	"github.com/matzehuels/fpl/pkg/errors"
	"github.com/matzehuels/fpl/pkg/fpl"
	"github.com/matzehuels/fpl/pkg/sixvertex"
)

// Document is a decoded input. Exactly one of Matrix and Configuration is set.
type Document struct {
	Matrix        *asm.Matrix              `json:"matrix,omitempty"`
	Configuration *sixvertex.Configuration `json:"configuration,omitempty"`
	Orientation   string                   `json:"orientation,omitempty"`
}

// Generator returns the matrix or configuration held by d.
func (d *Document) Generator() any {
	if d.Matrix != nil {
		return d.Matrix
	}
	return d.Configuration
}

// Grid builds the fully packed loop of d. A non-empty orientation argument
// overrides the document's own.
func (d *Document) Grid(orientation string) (*fpl.Grid, error) {
	if orientation == "" {
		orientation = d.Orientation
	}
	o, err := fpl.ParseOrientation(orientation)
	if err != nil {
		return nil, err
	}
	return fpl.New(d.Generator(), fpl.WithOrientation(o))
}

// ReadJSON decodes a JSON document from r.
//
// ReadJSON returns an [errors.ErrCodeInvalidFormat] error if the JSON is
// malformed or holds neither or both of "matrix" and "configuration", and the
// validation error of the matrix or configuration if that is invalid.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		if code := errors.GetCode(err); code != "" {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode")
	}
	if (doc.Matrix == nil) == (doc.Configuration == nil) {
		return nil, errors.New(errors.ErrCodeInvalidFormat, `document must have exactly one of "matrix" or "configuration"`)
	}
	if _, err := fpl.ParseOrientation(doc.Orientation); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ReadText parses a matrix literal from r.
func ReadText(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return parseLiteral(string(data))
}

// Read decodes r as JSON when it starts with '{' and as a matrix literal
// otherwise.
func Read(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		return ReadJSON(bytes.NewReader(data))
	}
	return parseLiteral(string(data))
}

// ImportFile reads the document at path. Files ending in .json are decoded
// with [ReadJSON]; anything else goes through [Read].
func ImportFile(path string) (*Document, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ReadJSON(f)
	}
	return Read(f)
}

// Load resolves a command-line argument: an existing file is imported with
// [ImportFile], anything else is parsed as a matrix literal.
func Load(arg string) (*Document, error) {
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		return ImportFile(arg)
	}
	return parseLiteral(arg)
}

func parseLiteral(s string) (*Document, error) {
	s = strings.TrimSpace(s)
	if err := errors.ValidateLiteral(s); err != nil {
		return nil, err
	}
	m, err := asm.Parse(s)
	if err != nil {
		return nil, err
	}
	return &Document{Matrix: m}, nil
}
