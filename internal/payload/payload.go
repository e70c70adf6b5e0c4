// SPDX-License-Identifier: MIT

// Package payload is the JSON wire format of the blockmul command:
//
//	request:  {"a": [[...]], "b": [[...]], "k": 2}
//	response: {"solved": [[...]]}
//
// The block size may also be sent as "c" (older clients). Shape checks are
// left to the blocked driver.
package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrMalformed wraps any JSON syntax or type error in a request.
	ErrMalformed = errors.New("payload: malformed request")

	// ErrMissingMatrix indicates that "a" or "b" is absent.
	ErrMissingMatrix = errors.New("payload: matrix a and b are required")

	// ErrMissingBlockSize indicates that neither "k" nor "c" is present.
	ErrMissingBlockSize = errors.New("payload: block size (k) is required")

	// ErrConflictingBlockSize indicates that "k" and "c" disagree.
	ErrConflictingBlockSize = errors.New("payload: k and c disagree")
)

// Request is one multiplication job.
type Request struct {
	A [][]float64 `json:"a"`
	B [][]float64 `json:"b"`
	K int         `json:"k"`
}

// Response carries the product.
type Response struct {
	Solved [][]float64 `json:"solved"`
}

// wireRequest keeps both block-size spellings distinguishable from zero.
type wireRequest struct {
	A [][]float64 `json:"a"`
	B [][]float64 `json:"b"`
	K *int        `json:"k,omitempty"`
	C *int        `json:"c,omitempty"`
}

// Decode reads exactly one JSON request from r. Unknown fields are rejected.
func Decode(r io.Reader) (*Request, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var w wireRequest
	if err := dec.Decode(&w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after request", ErrMalformed)
	}
	if w.A == nil || w.B == nil {
		return nil, ErrMissingMatrix
	}

	req := &Request{A: w.A, B: w.B}
	switch {
	case w.K != nil && w.C != nil && *w.K != *w.C:
		return nil, fmt.Errorf("%w: k=%d c=%d", ErrConflictingBlockSize, *w.K, *w.C)
	case w.K != nil:
		req.K = *w.K
	case w.C != nil:
		req.K = *w.C
	default:
		return nil, ErrMissingBlockSize
	}

	return req, nil
}

// Encode writes resp as one JSON document followed by a newline.
// indent == "" produces compact output.
func Encode(w io.Writer, resp *Response, indent string) error {
	enc := json.NewEncoder(w)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(resp); err != nil {
		return fmt.Errorf("payload: encode response: %w", err)
	}

	return nil
}
