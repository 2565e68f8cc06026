package tpm2

import (
	"bytes"
	"reflect"

	"github.com/google/go-tpm-wire/tpmutil"
)

// Marshal will serialize the given value, returning it as a byte slice.
// Returns an error if the value cannot be represented on the wire.
func Marshal(v interface{}) ([]byte, error) {
	w := tpmutil.NewWriter()
	if err := MarshalTo(w, v); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// MarshalTo serializes each of vs in order, appending onto w. On error, w is
// left as it was before the call.
func MarshalTo(w *tpmutil.Writer, vs ...interface{}) error {
	start := w.Len()
	for _, v := range vs {
		rv := reflect.ValueOf(v)
		if !rv.IsValid() {
			w.Truncate(start)
			return invalidDefinition("cannot marshal a nil interface")
		}
		if err := marshal(w, rv); err != nil {
			w.Truncate(start)
			return err
		}
	}
	return nil
}

// Unmarshal deserializes a T from data. Returns an error if data is not
// exactly one encoding of T.
func Unmarshal[T any](data []byte) (*T, error) {
	r := tpmutil.NewReader(data)
	var t T
	if err := UnmarshalFrom(r, &t); err != nil {
		return nil, err
	}
	if err := r.Finish(); err != nil {
		return nil, err
	}
	return &t, nil
}

// UnmarshalFrom deserializes into each of vs in order, advancing r. Each
// element must be a non-nil pointer. Input left over after the last value is
// not an error.
func UnmarshalFrom(r *tpmutil.Reader, vs ...interface{}) error {
	for _, v := range vs {
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Pointer || rv.IsNil() {
			return invalidDefinition("unmarshal target must be a non-nil pointer, got %T", v)
		}
		if err := unmarshal(r, rv.Elem()); err != nil {
			return err
		}
	}
	return nil
}

// Copy returns a deep copy of v made by encoding and decoding it.
func Copy[T any](v *T) (*T, error) {
	b, err := Marshal(v)
	if err != nil {
		return nil, err
	}
	return Unmarshal[T](b)
}

// TPM2B is a sized buffer holding the encoding of a T. It can be built either
// from a structure or from raw bytes. When decoded, both are populated.
// When encoded, the structure is used if present, and the bytes otherwise.
type TPM2B[T any] struct {
	contents *T
	buffer   []byte
}

// NewTPM2B wraps a structure.
func NewTPM2B[T any](contents *T) TPM2B[T] {
	return TPM2B[T]{contents: contents}
}

// TPM2BFromBytes wraps an already encoded T. The bytes are not checked until
// Contents is called.
func TPM2BFromBytes[T any](b []byte) TPM2B[T] {
	return TPM2B[T]{buffer: b}
}

// IsEmpty reports whether the buffer has zero length on the wire.
func (b TPM2B[T]) IsEmpty() bool {
	return b.contents == nil && len(b.buffer) == 0
}

// Bytes returns the encoded contents, without the size prefix.
func (b TPM2B[T]) Bytes() ([]byte, error) {
	if b.contents != nil {
		return Marshal(b.contents)
	}
	if b.buffer == nil {
		return []byte{}, nil
	}
	return b.buffer, nil
}

// Contents returns the structured contents. It returns nil for an empty
// buffer, and an error if the bytes do not decode as a T.
func (b TPM2B[T]) Contents() (*T, error) {
	if b.contents != nil {
		return b.contents, nil
	}
	if len(b.buffer) == 0 {
		return nil, nil
	}
	return Unmarshal[T](b.buffer)
}

// Value is Contents without the type parameter.
func (b TPM2B[T]) Value() (interface{}, error) {
	c, err := b.Contents()
	if err != nil || c == nil {
		return nil, err
	}
	return c, nil
}

// Boxed is implemented by every TPM2B type.
type Boxed interface {
	IsEmpty() bool
	Bytes() ([]byte, error)
	Value() (interface{}, error)
}

// Equal reports whether two buffers have the same encoding.
func (b TPM2B[T]) Equal(other TPM2B[T]) bool {
	x, err := b.Bytes()
	if err != nil {
		return false
	}
	y, err := other.Bytes()
	if err != nil {
		return false
	}
	return bytes.Equal(x, y)
}

// MarshalTPM implements tpmutil.SelfMarshaler.
func (b *TPM2B[T]) MarshalTPM(w *tpmutil.Writer) error {
	if b.contents == nil {
		return w.WriteSizedBytes(b.buffer)
	}
	w.BeginSized(2)
	if err := marshal(w, reflect.ValueOf(b.contents).Elem()); err != nil {
		return err
	}
	return w.EndSized()
}

// UnmarshalTPM implements tpmutil.SelfMarshaler. The contents are decoded
// right away, so malformed input fails here rather than in Contents.
func (b *TPM2B[T]) UnmarshalTPM(r *tpmutil.Reader) error {
	size, err := r.ReadU16()
	if err != nil {
		return err
	}
	*b = TPM2B[T]{buffer: []byte{}}
	if size == 0 {
		return nil
	}
	start := r.Offset()
	r.PushSizeFrame(int(size))
	var contents T
	if err := unmarshal(r, reflect.ValueOf(&contents).Elem()); err != nil {
		return err
	}
	if err := r.PopSizeFrame(); err != nil {
		return err
	}
	b.contents = &contents
	b.buffer = r.Span(start)
	return nil
}

func (TPM2B[T]) minEncodedSize() int { return 2 }
