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

package tpmutil

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriteUint(t *testing.T) {
	tests := []struct {
		v     uint64
		width int
		want  []byte
	}{
		{0x01, 1, []byte{0x01}},
		{0x0018, 2, []byte{0x00, 0x18}},
		{0x8001, 2, []byte{0x80, 0x01}},
		{0x4000000B, 4, []byte{0x40, 0x00, 0x00, 0x0B}},
		{0x0102030405060708, 8, []byte{1, 2, 3, 4, 5, 6, 7, 8}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%x-%d", tt.v, tt.width), func(t *testing.T) {
			var w Writer
			w.WriteUint(tt.v, tt.width)
			if !bytes.Equal(w.Bytes(), tt.want) {
				t.Errorf("WriteUint(%x, %d) = %x, want %x", tt.v, tt.width, w.Bytes(), tt.want)
			}
			r := NewReader(w.Bytes())
			got, err := r.ReadUint(tt.width)
			if err != nil {
				t.Fatalf("ReadUint() = %v", err)
			}
			if got != tt.v {
				t.Errorf("ReadUint() = %x, want %x", got, tt.v)
			}
			if err := r.Finish(); err != nil {
				t.Errorf("Finish() = %v", err)
			}
		})
	}
}

func TestFixedWidthHelpers(t *testing.T) {
	var w Writer
	w.WriteU8(0xAB)
	w.WriteU16(0x0102)
	w.WriteU32(0x03040506)
	w.WriteU64(0x0708090A0B0C0D0E)
	want := []byte{0xAB, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14}
	if !bytes.Equal(w.Bytes(), want) {
		t.Fatalf("got %x, want %x", w.Bytes(), want)
	}

	r := NewReader(w.Bytes())
	u8, err := r.ReadU8()
	if err != nil || u8 != 0xAB {
		t.Errorf("ReadU8() = %x, %v", u8, err)
	}
	u16, err := r.ReadU16()
	if err != nil || u16 != 0x0102 {
		t.Errorf("ReadU16() = %x, %v", u16, err)
	}
	u32, err := r.ReadU32()
	if err != nil || u32 != 0x03040506 {
		t.Errorf("ReadU32() = %x, %v", u32, err)
	}
	u64, err := r.ReadU64()
	if err != nil || u64 != 0x0708090A0B0C0D0E {
		t.Errorf("ReadU64() = %x, %v", u64, err)
	}
}

func TestReadTruncated(t *testing.T) {
	reads := map[string]func(r *Reader) error{
		"u8":     func(r *Reader) error { _, err := r.ReadU8(); return err },
		"u16":    func(r *Reader) error { _, err := r.ReadU16(); return err },
		"u32":    func(r *Reader) error { _, err := r.ReadU32(); return err },
		"u64":    func(r *Reader) error { _, err := r.ReadU64(); return err },
		"uint4":  func(r *Reader) error { _, err := r.ReadUint(4); return err },
		"bytes3": func(r *Reader) error { _, err := r.ReadBytes(3); return err },
	}
	for name, read := range reads {
		t.Run(name, func(t *testing.T) {
			r := NewReader(nil)
			err := read(r)
			if !errors.Is(err, ErrTruncatedInput) {
				t.Errorf("got %v, want %v", err, ErrTruncatedInput)
			}
			var detail *TruncatedInputError
			if !errors.As(err, &detail) {
				t.Fatalf("got %T, want *TruncatedInputError", err)
			}
			if detail.Have != 0 {
				t.Errorf("Have = %d, want 0", detail.Have)
			}
		})
	}
}

func TestSizedBytes(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []byte
	}{
		{"nil", nil, []byte{0, 0}},
		{"empty", []byte{}, []byte{0, 0}},
		{"three", []byte{1, 2, 3}, []byte{0, 3, 1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w Writer
			if err := w.WriteSizedBytes(tt.in); err != nil {
				t.Fatalf("WriteSizedBytes() = %v", err)
			}
			if !bytes.Equal(w.Bytes(), tt.want) {
				t.Errorf("got %x, want %x", w.Bytes(), tt.want)
			}
			r := NewReader(w.Bytes())
			got, err := r.ReadSizedBytes()
			if err != nil {
				t.Fatalf("ReadSizedBytes() = %v", err)
			}
			if got == nil {
				t.Errorf("ReadSizedBytes() returned nil, want non-nil")
			}
			if len(got) != len(tt.in) || !bytes.Equal(got, tt.in) {
				t.Errorf("ReadSizedBytes() = %x, want %x", got, tt.in)
			}
		})
	}
}

func TestSizedBytesDoesNotAlias(t *testing.T) {
	data := []byte{0, 2, 0xAA, 0xBB}
	r := NewReader(data)
	got, err := r.ReadSizedBytes()
	if err != nil {
		t.Fatalf("ReadSizedBytes() = %v", err)
	}
	data[2] = 0
	if got[0] != 0xAA {
		t.Errorf("decoded buffer aliases its input")
	}
}

func TestSizedBytesTruncated(t *testing.T) {
	// Declares 0xFFFF bytes but carries only two.
	r := NewReader([]byte{0xFF, 0xFF, 1, 2})
	_, err := r.ReadSizedBytes()
	if !errors.Is(err, ErrTruncatedInput) {
		t.Fatalf("got %v, want %v", err, ErrTruncatedInput)
	}
	if r.Offset() != 0 {
		t.Errorf("Offset() = %d after failed read, want 0", r.Offset())
	}
}

func TestSizedBytesTooLarge(t *testing.T) {
	var w Writer
	err := w.WriteSizedBytes(make([]byte, 0x10000))
	if !errors.Is(err, ErrValueTooLarge) {
		t.Errorf("got %v, want %v", err, ErrValueTooLarge)
	}
	if err := w.WriteSized8Bytes(make([]byte, 256)); !errors.Is(err, ErrValueTooLarge) {
		t.Errorf("got %v, want %v", err, ErrValueTooLarge)
	}
}

func TestBeginEndSized(t *testing.T) {
	var w Writer
	w.WriteU8(0xEE)
	w.BeginSized(2)
	w.WriteU16(0x0018)
	w.BeginSized(1)
	w.WriteBytes([]byte{9, 9, 9})
	if err := w.EndSized(); err != nil {
		t.Fatalf("inner EndSized() = %v", err)
	}
	if err := w.EndSized(); err != nil {
		t.Fatalf("outer EndSized() = %v", err)
	}
	want := []byte{0xEE, 0x00, 0x06, 0x00, 0x18, 0x03, 9, 9, 9}
	if diff := cmp.Diff(want, w.Bytes()); diff != "" {
		t.Errorf("BeginSized/EndSized (-want +got):\n%s", diff)
	}
	if err := w.EndSized(); !errors.Is(err, ErrOpenFrame) {
		t.Errorf("unbalanced EndSized() = %v, want %v", err, ErrOpenFrame)
	}
}

func TestTruncate(t *testing.T) {
	var w Writer
	w.WriteU8(0xEE)
	w.BeginSized(2)
	w.WriteU8(1)
	mark := w.Len()
	w.BeginSized(1)
	w.WriteBytes([]byte{9, 9})
	w.Truncate(mark)
	if w.Depth() != 1 {
		t.Fatalf("Depth() = %d after Truncate, want 1", w.Depth())
	}
	if err := w.EndSized(); err != nil {
		t.Fatalf("EndSized() = %v", err)
	}
	if diff := cmp.Diff([]byte{0xEE, 0x00, 0x01, 0x01}, w.Bytes()); diff != "" {
		t.Errorf("Truncate (-want +got):\n%s", diff)
	}

	w.Truncate(1)
	if w.Depth() != 0 || w.Len() != 1 {
		t.Errorf("Truncate(1): Depth() = %d, Len() = %d", w.Depth(), w.Len())
	}
}

func TestSizeFrames(t *testing.T) {
	// A 4-byte inner structure followed by one more byte.
	payload := []byte{0x00, 0x04, 0xDE, 0xAD, 0xBE, 0xEF, 0x77}
	tests := []struct {
		name     string
		delta    int
		wantErr  error
		consumed int
	}{
		{"exact", 0, nil, 4},
		{"understated", -1, ErrSizeMismatch, 4},
		{"overstated", 1, ErrSizeMismatch, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(payload)
			declared, err := r.ReadU16()
			if err != nil {
				t.Fatalf("ReadU16() = %v", err)
			}
			r.PushSizeFrame(int(declared) + tt.delta)
			if r.Depth() != 1 {
				t.Errorf("Depth() = %d, want 1", r.Depth())
			}
			if _, err := r.ReadU32(); err != nil {
				t.Fatalf("ReadU32() = %v", err)
			}
			err = r.PopSizeFrame()
			if !errors.Is(err, tt.wantErr) && !(err == nil && tt.wantErr == nil) {
				t.Fatalf("PopSizeFrame() = %v, want %v", err, tt.wantErr)
			}
			var mismatch *SizeMismatchError
			if errors.As(err, &mismatch) {
				if mismatch.Consumed != tt.consumed || mismatch.Declared != int(declared)+tt.delta {
					t.Errorf("got %+v", mismatch)
				}
			}
		})
	}
}

func TestPopWithoutPush(t *testing.T) {
	r := NewReader([]byte{1})
	if err := r.PopSizeFrame(); !errors.Is(err, ErrOpenFrame) {
		t.Errorf("PopSizeFrame() = %v, want %v", err, ErrOpenFrame)
	}
}

func TestFinish(t *testing.T) {
	r := NewReader([]byte{1, 2, 3})
	if _, err := r.ReadU16(); err != nil {
		t.Fatalf("ReadU16() = %v", err)
	}
	err := r.Finish()
	var trailing *TrailingBytesError
	if !errors.As(err, &trailing) {
		t.Fatalf("Finish() = %v, want *TrailingBytesError", err)
	}
	if trailing.Remaining != 1 || trailing.Offset != 2 {
		t.Errorf("got %+v", trailing)
	}

	r = NewReader([]byte{0})
	r.PushSizeFrame(1)
	if _, err := r.ReadU8(); err != nil {
		t.Fatalf("ReadU8() = %v", err)
	}
	if err := r.Finish(); !errors.Is(err, ErrOpenFrame) {
		t.Errorf("Finish() with open frame = %v, want %v", err, ErrOpenFrame)
	}
}

func TestReadCount(t *testing.T) {
	// Claims 0x10000000 four-byte elements in a 6-byte input.
	r := NewReader([]byte{0x10, 0, 0, 0, 1, 2})
	if _, err := r.ReadCount(4, 4); !errors.Is(err, ErrTruncatedInput) {
		t.Errorf("ReadCount() = %v, want %v", err, ErrTruncatedInput)
	}

	r = NewReader([]byte{0, 0, 0, 2, 0, 1, 0, 2})
	n, err := r.ReadCount(4, 2)
	if err != nil || n != 2 {
		t.Errorf("ReadCount() = %d, %v; want 2, nil", n, err)
	}
}

func TestSelfMarshalers(t *testing.T) {
	var w Writer
	if err := U16Bytes("ab").MarshalTPM(&w); err != nil {
		t.Fatalf("U16Bytes.MarshalTPM() = %v", err)
	}
	if err := U32Bytes("cde").MarshalTPM(&w); err != nil {
		t.Fatalf("U32Bytes.MarshalTPM() = %v", err)
	}
	if err := RawBytes("fg").MarshalTPM(&w); err != nil {
		t.Fatalf("RawBytes.MarshalTPM() = %v", err)
	}
	want := []byte{0, 2, 'a', 'b', 0, 0, 0, 3, 'c', 'd', 'e', 'f', 'g'}
	if !bytes.Equal(w.Bytes(), want) {
		t.Fatalf("got %x, want %x", w.Bytes(), want)
	}

	r := NewReader(w.Bytes())
	var (
		u16 U16Bytes
		u32 U32Bytes
		raw RawBytes
	)
	for _, v := range []SelfMarshaler{&u16, &u32, &raw} {
		if err := v.UnmarshalTPM(r); err != nil {
			t.Fatalf("UnmarshalTPM(%T) = %v", v, err)
		}
	}
	if string(u16) != "ab" || string(u32) != "cde" || string(raw) != "fg" {
		t.Errorf("got %q %q %q", u16, u32, raw)
	}
	if err := r.Finish(); err != nil {
		t.Errorf("Finish() = %v", err)
	}
}
