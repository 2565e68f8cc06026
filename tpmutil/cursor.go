// Copyright (c) 2018, Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package tpmutil provides the byte-level cursor used to encode and decode
// the TPM 2.0 wire format: big-endian fixed-width integers, length-prefixed
// buffers and size-framed nested structures.
package tpmutil

import (
	"encoding/binary"
	"fmt"
	"math"
)

// checkWidth panics on widths other than 1, 2, 4 and 8. Widths are always
// compile-time constants of the caller, so a bad one is a programming error.
func checkWidth(width int) {
	switch width {
	case 1, 2, 4, 8:
	default:
		panic(fmt.Sprintf("tpmutil: unsupported integer width %d", width))
	}
}

func maxForWidth(width int) uint64 {
	if width == 8 {
		return math.MaxUint64
	}
	return 1<<(8*uint(width)) - 1
}

// Writer is an append-only encoder. The zero value is ready to use.
// A Writer must not be shared between goroutines.
type Writer struct {
	buf []byte
	// open holds the offsets and widths of length placeholders reserved by
	// BeginSized that have not been back-filled yet.
	open []placeholder
}

type placeholder struct {
	offset int
	width  int
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the encoded bytes. The slice aliases the Writer's buffer
// until the next write.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Truncate discards everything written after the first n bytes, along with
// any sized field opened past that point.
func (w *Writer) Truncate(n int) {
	if n < 0 || n > len(w.buf) {
		panic(fmt.Sprintf("tpmutil: Truncate(%d) out of range [0, %d]", n, len(w.buf)))
	}
	w.buf = w.buf[:n]
	for len(w.open) > 0 && w.open[len(w.open)-1].offset+w.open[len(w.open)-1].width > n {
		w.open = w.open[:len(w.open)-1]
	}
}

// WriteU8 appends one byte.
func (w *Writer) WriteU8(v uint8) {
	w.buf = append(w.buf, v)
}

// WriteU16 appends v in big-endian order.
func (w *Writer) WriteU16(v uint16) {
	w.buf = binary.BigEndian.AppendUint16(w.buf, v)
}

// WriteU32 appends v in big-endian order.
func (w *Writer) WriteU32(v uint32) {
	w.buf = binary.BigEndian.AppendUint32(w.buf, v)
}

// WriteU64 appends v in big-endian order.
func (w *Writer) WriteU64(v uint64) {
	w.buf = binary.BigEndian.AppendUint64(w.buf, v)
}

// WriteUint appends the low width bytes of v, most significant first.
// Callers pass values that already fit into width.
func (w *Writer) WriteUint(v uint64, width int) {
	checkWidth(width)
	for i := width - 1; i >= 0; i-- {
		w.buf = append(w.buf, byte(v>>(8*uint(i))))
	}
}

// WriteBytes appends b without any length prefix.
func (w *Writer) WriteBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

// WriteCount writes an array or buffer length prefix of the given width.
func (w *Writer) WriteCount(n int, width int) error {
	checkWidth(width)
	if n < 0 || uint64(n) > maxForWidth(width) {
		return fmt.Errorf("%w: %d does not fit in %d bytes", ErrValueTooLarge, n, width)
	}
	w.WriteUint(uint64(n), width)
	return nil
}

// WriteSizedBytes writes a 2-byte length followed by b. A nil b is written
// as a zero length.
func (w *Writer) WriteSizedBytes(b []byte) error {
	return w.writePrefixed(b, 2)
}

// WriteSized8Bytes writes a 1-byte length followed by b.
func (w *Writer) WriteSized8Bytes(b []byte) error {
	return w.writePrefixed(b, 1)
}

// WriteU32SizedBytes writes a 4-byte length followed by b.
func (w *Writer) WriteU32SizedBytes(b []byte) error {
	return w.writePrefixed(b, 4)
}

func (w *Writer) writePrefixed(b []byte, width int) error {
	if err := w.WriteCount(len(b), width); err != nil {
		return err
	}
	w.buf = append(w.buf, b...)
	return nil
}

// BeginSized reserves a length prefix of the given width. Everything
// written until the matching EndSized is counted into it.
func (w *Writer) BeginSized(width int) {
	checkWidth(width)
	w.open = append(w.open, placeholder{offset: len(w.buf), width: width})
	w.buf = append(w.buf, make([]byte, width)...)
}

// EndSized back-fills the most recently reserved length prefix.
func (w *Writer) EndSized() error {
	if len(w.open) == 0 {
		return fmt.Errorf("%w: EndSized without BeginSized", ErrOpenFrame)
	}
	p := w.open[len(w.open)-1]
	w.open = w.open[:len(w.open)-1]
	n := len(w.buf) - p.offset - p.width
	if uint64(n) > maxForWidth(p.width) {
		return fmt.Errorf("%w: sized field of %d bytes does not fit in %d bytes", ErrValueTooLarge, n, p.width)
	}
	for i := 0; i < p.width; i++ {
		w.buf[p.offset+i] = byte(uint64(n) >> (8 * uint(p.width-1-i)))
	}
	return nil
}

// Depth returns the number of open size placeholders.
func (w *Writer) Depth() int {
	return len(w.open)
}

// Reader is a bounds-checked decoder over a byte slice.
// A Reader must not be shared between goroutines.
type Reader struct {
	data   []byte
	pos    int
	frames []frame
}

// frame records where a size-framed field started and how long it claimed
// to be.
type frame struct {
	start    int
	declared int
}

// NewReader returns a Reader positioned at the start of data. The Reader
// never modifies data, and slices it returns are copies.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Offset returns the current read position.
func (r *Reader) Offset() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// Depth returns the number of open size frames.
func (r *Reader) Depth() int {
	return len(r.frames)
}

func (r *Reader) need(n int) error {
	if n < 0 || r.Remaining() < n {
		return &TruncatedInputError{Offset: r.pos, Want: n, Have: r.Remaining()}
	}
	return nil
}

// ReadU8 consumes one byte.
func (r *Reader) ReadU8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.data[r.pos]
	r.pos++
	return v, nil
}

// ReadU16 consumes a big-endian uint16.
func (r *Reader) ReadU16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return v, nil
}

// ReadU32 consumes a big-endian uint32.
func (r *Reader) ReadU32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

// ReadU64 consumes a big-endian uint64.
func (r *Reader) ReadU64() (uint64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint64(r.data[r.pos:])
	r.pos += 8
	return v, nil
}

// ReadUint consumes width bytes as a big-endian unsigned integer.
func (r *Reader) ReadUint(width int) (uint64, error) {
	checkWidth(width)
	if err := r.need(width); err != nil {
		return 0, err
	}
	var v uint64
	for _, b := range r.data[r.pos : r.pos+width] {
		v = v<<8 | uint64(b)
	}
	r.pos += width
	return v, nil
}

// ReadBytes consumes exactly n bytes and returns a copy of them.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, r.data[r.pos:])
	r.pos += n
	return out, nil
}

// Span returns a copy of the bytes between start and the current position.
// It is used to keep the exact encoding of a structure that was just decoded.
func (r *Reader) Span(start int) []byte {
	if start < 0 || start > r.pos {
		return []byte{}
	}
	out := make([]byte, r.pos-start)
	copy(out, r.data[start:r.pos])
	return out
}

// ReadSizedBytes reads a 2-byte length and then that many bytes.
// A zero length yields an empty, non-nil slice.
func (r *Reader) ReadSizedBytes() ([]byte, error) {
	return r.readPrefixed(2)
}

// ReadSized8Bytes reads a 1-byte length and then that many bytes.
func (r *Reader) ReadSized8Bytes() ([]byte, error) {
	return r.readPrefixed(1)
}

// ReadU32SizedBytes reads a 4-byte length and then that many bytes.
func (r *Reader) ReadU32SizedBytes() ([]byte, error) {
	return r.readPrefixed(4)
}

func (r *Reader) readPrefixed(width int) ([]byte, error) {
	start := r.pos
	n, err := r.ReadUint(width)
	if err != nil {
		return nil, err
	}
	if n > uint64(r.Remaining()) {
		r.pos = start
		return nil, &TruncatedInputError{Offset: start + width, Want: int(min(n, math.MaxInt32)), Have: r.Remaining() - width}
	}
	return r.ReadBytes(int(n))
}

// ReadCount reads an array count of the given width. Since every element
// occupies at least minElem bytes, counts that could not possibly be
// satisfied by the remaining input are rejected before the caller
// allocates anything.
func (r *Reader) ReadCount(width int, minElem int) (int, error) {
	start := r.pos
	n, err := r.ReadUint(width)
	if err != nil {
		return 0, err
	}
	if minElem > 0 && n > uint64(r.Remaining()/minElem) {
		return 0, &TruncatedInputError{Offset: start + width, Want: int(min(n*uint64(minElem), math.MaxInt32)), Have: r.Remaining()}
	}
	return int(n), nil
}

// PushSizeFrame opens a frame for a nested structure that claims to be
// declared bytes long, starting at the current position.
//
// Reads inside the frame are not clamped to it: a nested structure that
// reads past its declared end is reported by PopSizeFrame as a size
// mismatch rather than as truncated input.
func (r *Reader) PushSizeFrame(declared int) {
	r.frames = append(r.frames, frame{start: r.pos, declared: declared})
}

// PopSizeFrame closes the innermost frame and checks that exactly the
// declared number of bytes was consumed since the matching PushSizeFrame.
func (r *Reader) PopSizeFrame() error {
	if len(r.frames) == 0 {
		return fmt.Errorf("%w: PopSizeFrame without PushSizeFrame", ErrOpenFrame)
	}
	f := r.frames[len(r.frames)-1]
	r.frames = r.frames[:len(r.frames)-1]
	if consumed := r.pos - f.start; consumed != f.declared {
		return &SizeMismatchError{Start: f.start, Declared: f.declared, Consumed: consumed}
	}
	return nil
}

// Finish reports an error if any input is left unread or any frame is still
// open. Top-level decoders call it after the outermost structure.
func (r *Reader) Finish() error {
	if len(r.frames) != 0 {
		return fmt.Errorf("%w: %d frames still open", ErrOpenFrame, len(r.frames))
	}
	if r.Remaining() != 0 {
		return &TrailingBytesError{Offset: r.pos, Remaining: r.Remaining()}
	}
	return nil
}
