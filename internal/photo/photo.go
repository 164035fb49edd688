// Package photo turns uploaded images into data URIs. Decoding may run on its
// own goroutine; a started decode always completes and is never cancelled.
package photo

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"
)

const DefaultMaxBytes int64 = 5 << 20

var (
	ErrEmpty    = errors.New("photo is empty")
	ErrTooLarge = errors.New("photo exceeds size limit")
)

// Reader is the file collaborator used by registration, intake and preview.
type Reader interface {
	ReadAsDataURI(r io.Reader) (string, error)
}

// Decoder reads an upload fully and encodes it as a base64 data URI.
type Decoder struct {
	MaxBytes int64
}

func NewDecoder(maxBytes int64) *Decoder {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Decoder{MaxBytes: maxBytes}
}

// ReadAsDataURI returns "data:<mime>;base64,<payload>".
func (d *Decoder) ReadAsDataURI(r io.Reader) (string, error) {
	limit := d.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxBytes
	}

	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(r, limit+1))
	if err != nil {
		return "", fmt.Errorf("failed to read photo: %w", err)
	}
	if n == 0 {
		return "", ErrEmpty
	}
	if n > limit {
		return "", ErrTooLarge
	}

	data := buf.Bytes()
	mime := mimetype.Detect(data).String()
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// Result is the outcome of an asynchronous decode.
type Result struct {
	DataURI string
	Err     error
}

// Pending is a decode in flight.
type Pending struct {
	done   chan struct{}
	result Result
}

// Start decodes src with rd on a new goroutine.
func Start(rd Reader, src io.Reader) *Pending {
	p := &Pending{done: make(chan struct{})}
	go func() {
		defer close(p.done)
		uri, err := rd.ReadAsDataURI(src)
		p.result = Result{DataURI: uri, Err: err}
	}()
	return p
}

// Wait blocks until the decode finishes.
func (p *Pending) Wait() Result {
	<-p.done
	return p.result
}
