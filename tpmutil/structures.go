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

// SelfMarshaler allows custom types to override the default reflection-based
// encoding and decoding. UnmarshalTPM is called on a pointer receiver and
// must consume exactly the bytes that MarshalTPM produced.
type SelfMarshaler interface {
	MarshalTPM(w *Writer) error
	UnmarshalTPM(r *Reader) error
}

// RawBytes is a byte slice that is written without any length prefix.
// Because its length is not on the wire, it can only be decoded as the last
// value of an input, where it takes all the remaining bytes.
type RawBytes []byte

// MarshalTPM writes b as-is.
func (b RawBytes) MarshalTPM(w *Writer) error {
	w.WriteBytes(b)
	return nil
}

// UnmarshalTPM consumes the rest of the input.
func (b *RawBytes) UnmarshalTPM(r *Reader) error {
	rest, err := r.ReadBytes(r.Remaining())
	if err != nil {
		return err
	}
	*b = rest
	return nil
}

// U16Bytes is a byte slice with a 16-bit length header.
type U16Bytes []byte

// MarshalTPM packs U16Bytes.
func (b U16Bytes) MarshalTPM(w *Writer) error {
	return w.WriteSizedBytes(b)
}

// UnmarshalTPM unpacks a U16Bytes.
func (b *U16Bytes) UnmarshalTPM(r *Reader) error {
	buf, err := r.ReadSizedBytes()
	if err != nil {
		return err
	}
	*b = buf
	return nil
}

// U32Bytes is a byte slice with a 32-bit length header.
type U32Bytes []byte

// MarshalTPM packs U32Bytes.
func (b U32Bytes) MarshalTPM(w *Writer) error {
	return w.WriteU32SizedBytes(b)
}

// UnmarshalTPM unpacks a U32Bytes.
func (b *U32Bytes) UnmarshalTPM(r *Reader) error {
	buf, err := r.ReadU32SizedBytes()
	if err != nil {
		return err
	}
	*b = buf
	return nil
}
