// File: trace/trace.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Compressed capture and replay of fixed-size ring records. A Recorder sits
// on the consumer side and tees drained records into a zstd stream for
// offline analysis; Replay walks such a stream record by record. Encoders
// and decoders are pooled, so repeated captures do not re-allocate codec
// state.

package trace

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/momentics/hioload-ring/api"
)

// ErrClosed is returned by Record and Drain after Close.
var ErrClosed = errors.New("trace: recorder closed")

var (
	encoderPool = sync.Pool{New: func() any {
		enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
		return enc
	}}
	decoderPool = sync.Pool{New: func() any {
		dec, _ := zstd.NewReader(nil)
		return dec
	}}
)

// Recorder writes fixed-size records into a compressed stream. Records are
// not framed individually; the fixed item size is the frame.
type Recorder struct {
	enc      *zstd.Encoder
	itemSize int
	records  int
	closed   bool
}

// NewRecorder starts a capture stream on w for records of itemSize bytes.
func NewRecorder(w io.Writer, itemSize int) (*Recorder, error) {
	if itemSize <= 0 {
		return nil, api.ErrInvalidItemSize
	}
	enc := encoderPool.Get().(*zstd.Encoder)
	enc.Reset(w)
	return &Recorder{enc: enc, itemSize: itemSize}, nil
}

// Record appends one record to the stream.
func (r *Recorder) Record(item []byte) error {
	if r.closed {
		return ErrClosed
	}
	if len(item) != r.itemSize {
		return fmt.Errorf("trace: record is %d bytes, stream takes %d", len(item), r.itemSize)
	}
	if _, err := r.enc.Write(item); err != nil {
		return err
	}
	r.records++
	return nil
}

// Drain pops everything currently buffered in br through the recorder, in
// FIFO order, and reports how many records moved. It acts as the ring's
// consumer, so it must run in the consumer context.
func (r *Recorder) Drain(br api.ByteRing) (int, error) {
	moved := 0
	for {
		slot := br.ReaderFront()
		if slot == nil {
			return moved, nil
		}
		if err := r.Record(slot); err != nil {
			return moved, err
		}
		br.Pop()
		moved++
	}
}

// Records returns how many records have been captured so far.
func (r *Recorder) Records() int {
	return r.records
}

// Close flushes the stream and returns the encoder to the pool. The Recorder
// must not be used afterwards.
func (r *Recorder) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	enc := r.enc
	r.enc = nil
	err := enc.Close()
	encoderPool.Put(enc)
	return err
}

// Replay decompresses a capture stream and invokes fn for every record. The
// record slice is reused between calls; fn must copy it to retain it.
// Returns the number of records replayed.
func Replay(src io.Reader, itemSize int, fn func(item []byte) error) (int, error) {
	if itemSize <= 0 {
		return 0, api.ErrInvalidItemSize
	}
	dec := decoderPool.Get().(*zstd.Decoder)
	defer decoderPool.Put(dec)
	if err := dec.Reset(src); err != nil {
		return 0, err
	}
	item := make([]byte, itemSize)
	n := 0
	for {
		_, err := io.ReadFull(dec, item)
		switch err {
		case nil:
		case io.EOF:
			return n, nil
		case io.ErrUnexpectedEOF:
			return n, fmt.Errorf("trace: stream truncated mid-record after %d records", n)
		default:
			return n, err
		}
		if err := fn(item); err != nil {
			return n, err
		}
		n++
	}
}
