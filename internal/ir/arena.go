package ir

import (
	"fmt"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"
)

// Handle is a 1-based index into an Arena[T] or UniqueArena[T]; zero means "none".
type Handle[T any] uint32

func (h Handle[T]) IsValid() bool { return h != 0 }

// Index returns the 0-based slot of h. h must be valid.
func (h Handle[T]) Index() int { return int(h) - 1 }

func handleFor[T any](n int) Handle[T] {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("arena overflow: %w", err))
	}
	return Handle[T](v)
}

// Arena is an append-only store; every Append yields a fresh handle.
type Arena[T any] struct {
	data []T
}

// NewArena creates an arena with room for capHint entries.
func NewArena[T any](capHint uint) *Arena[T] {
	return &Arena[T]{
		data: make([]T, 0, capHint),
	}
}

func (a *Arena[T]) Append(value T) Handle[T] {
	a.data = append(a.data, value)
	return handleFor[T](len(a.data))
}

// Get returns a pointer to the entry, or nil for the zero handle or an out of range one.
func (a *Arena[T]) Get(h Handle[T]) *T {
	if h == 0 || int(h) > len(a.data) {
		return nil
	}
	return &a.data[h-1]
}

// READONLY
func (a *Arena[T]) Slice() []T {
	return a.data
}

func (a *Arena[T]) Len() int {
	return len(a.data)
}

// Handles lists every handle in allocation order.
func (a *Arena[T]) Handles() []Handle[T] {
	out := make([]Handle[T], len(a.data))
	for i := range a.data {
		out[i] = handleFor[T](i + 1)
	}
	return out
}

func (a Arena[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(a.data)
}

func (a *Arena[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	a.data = nil
	return dec.Decode(&a.data)
}

// UniqueArena interns values: structurally equal values share one handle.
type UniqueArena[T comparable] struct {
	data  []T
	index map[T]Handle[T]
}

func NewUniqueArena[T comparable]() *UniqueArena[T] {
	return &UniqueArena[T]{index: make(map[T]Handle[T])}
}

// FetchOrAppend returns the handle of an equal entry, appending value if none exists.
func (a *UniqueArena[T]) FetchOrAppend(value T) Handle[T] {
	if h, ok := a.index[value]; ok {
		return h
	}
	if a.index == nil {
		a.index = make(map[T]Handle[T])
	}
	a.data = append(a.data, value)
	h := handleFor[T](len(a.data))
	a.index[value] = h
	return h
}

// Lookup finds an equal entry without inserting.
func (a *UniqueArena[T]) Lookup(value T) (Handle[T], bool) {
	h, ok := a.index[value]
	return h, ok
}

func (a *UniqueArena[T]) Get(h Handle[T]) *T {
	if h == 0 || int(h) > len(a.data) {
		return nil
	}
	return &a.data[h-1]
}

// READONLY
func (a *UniqueArena[T]) Slice() []T {
	return a.data
}

func (a *UniqueArena[T]) Len() int {
	return len(a.data)
}

func (a *UniqueArena[T]) Handles() []Handle[T] {
	out := make([]Handle[T], len(a.data))
	for i := range a.data {
		out[i] = handleFor[T](i + 1)
	}
	return out
}

func (a UniqueArena[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(a.data)
}

// DecodeMsgpack restores entries and rebuilds the intern index.
func (a *UniqueArena[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	a.data = nil
	if err := dec.Decode(&a.data); err != nil {
		return err
	}
	a.index = make(map[T]Handle[T], len(a.data))
	for i, v := range a.data {
		if _, dup := a.index[v]; !dup {
			a.index[v] = handleFor[T](i + 1)
		}
	}
	return nil
}
