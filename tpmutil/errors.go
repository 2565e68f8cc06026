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
	"errors"
	"fmt"
)

var (
	// ErrTruncatedInput is returned when fewer bytes remain than a fixed-width
	// or length-prefixed read requires.
	ErrTruncatedInput = errors.New("truncated input")
	// ErrTrailingBytes is returned when a top-level decode leaves unread bytes.
	ErrTrailingBytes = errors.New("trailing bytes")
	// ErrSizeMismatch is returned when a size-framed sub-structure did not
	// consume exactly its declared length.
	ErrSizeMismatch = errors.New("size mismatch")
	// ErrValueTooLarge is returned when a length or count does not fit into
	// the width of its prefix.
	ErrValueTooLarge = errors.New("value too large for its length prefix")
	// ErrOpenFrame is returned when a cursor is finished while a size frame
	// is still open, or when a frame is closed that was never opened.
	ErrOpenFrame = errors.New("unbalanced size frame")
)

// TruncatedInputError describes a read that ran past the end of the input.
type TruncatedInputError struct {
	// Offset is where the read started.
	Offset int
	// Want is the number of bytes the read needed.
	Want int
	// Have is the number of bytes that were left.
	Have int
}

func (e *TruncatedInputError) Error() string {
	return fmt.Sprintf("%v: need %d bytes at offset %d, have %d", ErrTruncatedInput, e.Want, e.Offset, e.Have)
}

// Unwrap returns ErrTruncatedInput.
func (e *TruncatedInputError) Unwrap() error { return ErrTruncatedInput }

// TrailingBytesError describes input left over after a complete decode.
type TrailingBytesError struct {
	Offset    int
	Remaining int
}

func (e *TrailingBytesError) Error() string {
	return fmt.Sprintf("%v: %d unread bytes at offset %d", ErrTrailingBytes, e.Remaining, e.Offset)
}

// Unwrap returns ErrTrailingBytes.
func (e *TrailingBytesError) Unwrap() error { return ErrTrailingBytes }

// SizeMismatchError describes a size frame whose declared length disagrees
// with what its contents actually consumed.
type SizeMismatchError struct {
	// Start is the offset of the first byte after the length prefix.
	Start    int
	Declared int
	Consumed int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("%v: sized field at offset %d declared %d bytes but consumed %d", ErrSizeMismatch, e.Start, e.Declared, e.Consumed)
}

// Unwrap returns ErrSizeMismatch.
func (e *SizeMismatchError) Unwrap() error { return ErrSizeMismatch }
