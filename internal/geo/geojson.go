// Package geo handles GeoJSON documents and coordinate precision.
package geo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrShape is returned when a document lacks the features/geometry/coordinates layout.
var ErrShape = errors.New("unexpected GeoJSON shape")

// Document is a generic GeoJSON object. Members other than the ones
// touched by TruncateCollection are carried through untouched.
// Numbers are kept as json.Number so integer spelling survives a round trip.
type Document = map[string]any

// DecodeDocument reads exactly one JSON object from r.
func DecodeDocument(r io.Reader) (Document, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: document is null", ErrShape)
	}

	// trailing data after the document is not accepted
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = errors.New("extra data after document")
		}
		return nil, fmt.Errorf("decode document: %w", err)
	}

	return doc, nil
}

// EncodeDocument writes doc to w as compact JSON followed by a newline.
func EncodeDocument(w io.Writer, doc Document) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// TruncateCollection rounds the coordinates of every feature in doc in place.
// It stops at the first feature that does not have the expected layout.
func TruncateCollection(doc Document) error {
	raw, ok := doc["features"]
	if !ok {
		return fmt.Errorf("%w: missing \"features\"", ErrShape)
	}
	features, ok := raw.([]any)
	if !ok {
		return fmt.Errorf("%w: \"features\" is %T, not an array", ErrShape, raw)
	}

	for i, f := range features {
		feature, ok := f.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: feature %d is %T, not an object", ErrShape, i, f)
		}

		geometry, ok := feature["geometry"].(map[string]any)
		if !ok {
			return fmt.Errorf("%w: feature %d has no geometry object", ErrShape, i)
		}

		coords, ok := geometry["coordinates"]
		if !ok {
			return fmt.Errorf("%w: feature %d geometry has no coordinates", ErrShape, i)
		}

		geometry["coordinates"] = Truncate(coords)
	}

	return nil
}
