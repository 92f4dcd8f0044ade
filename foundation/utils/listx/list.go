// File: list.go
// Title: Generic Singly Linked List
// Description: Implements List[T], a singly linked list with O(1) append through
//              a cached tail pointer, positional insert, value removal, lookup
//              and rendering to an io.Writer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package listx

import (
	"fmt"
	"io"
	"iter"
	"strings"

	nlerror "github.com/msto63/numlab/foundation/core/error"
	nlerrors "github.com/msto63/numlab/foundation/core/errors"
)

const (
	// DefaultSeparator is written between rendered elements
	DefaultSeparator = " -> "

	// DefaultTerminator is written after the last element
	DefaultTerminator = "<end>"
)

type node[T any] struct {
	value T
	next  *node[T]
}

// List is a singly linked list. head owns the chain; tail only caches the
// last node. A List is not safe for concurrent use and must be created with
// New or NewFunc.
type List[T any] struct {
	head  *node[T]
	tail  *node[T]
	size  int
	equal func(a, b T) bool
}

// New creates an empty list whose elements are compared with ==
func New[T comparable]() *List[T] {
	return &List[T]{equal: func(a, b T) bool { return a == b }}
}

// NewFunc creates an empty list that compares elements with eq
func NewFunc[T any](eq func(a, b T) bool) *List[T] {
	if eq == nil {
		panic("listx: NewFunc called with nil equality function")
	}
	return &List[T]{equal: eq}
}

// Len returns the number of elements
func (l *List[T]) Len() int {
	return l.size
}

// Add appends v at the end in constant time
func (l *List[T]) Add(v T) {
	n := &node[T]{value: v}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// Insert places v so that it becomes element index. index <= 0 inserts at
// the head; index >= Len() appends.
func (l *List[T]) Insert(index int, v T) {
	if l.size == 0 || index >= l.size {
		l.Add(v)
		return
	}
	if index <= 0 {
		l.head = &node[T]{value: v, next: l.head}
		l.size++
		return
	}

	prev := l.head
	for i := 1; i < index; i++ {
		prev = prev.next
	}
	prev.next = &node[T]{value: v, next: prev.next}
	l.size++
}

// Remove unlinks the first element equal to v and reports whether one was
// found. The list is unchanged when v is absent.
func (l *List[T]) Remove(v T) bool {
	var prev *node[T]
	for cur := l.head; cur != nil; prev, cur = cur, cur.next {
		if !l.equal(cur.value, v) {
			continue
		}

		if prev == nil {
			l.head = cur.next
		} else {
			prev.next = cur.next
		}
		if cur == l.tail {
			l.tail = prev
		}
		cur.next = nil
		l.size--
		return true
	}
	return false
}

// Contains reports whether an element equal to v is present
func (l *List[T]) Contains(v T) bool {
	for cur := l.head; cur != nil; cur = cur.next {
		if l.equal(cur.value, v) {
			return true
		}
	}
	return false
}

// Clear removes all elements. Calling it on an empty list is a no-op.
func (l *List[T]) Clear() {
	for cur := l.head; cur != nil; {
		next := cur.next
		cur.next = nil
		cur = next
	}
	l.head = nil
	l.tail = nil
	l.size = 0
}

// All returns an iterator over the elements from head to tail
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.head; cur != nil; cur = cur.next {
			if !yield(cur.value) {
				return
			}
		}
	}
}

// Values returns the elements as a new slice
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.size)
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}

// RenderOptions controls how a list is rendered. Empty fields fall back to
// DefaultSeparator, DefaultTerminator and fmt.Sprint.
type RenderOptions[T any] struct {
	Separator  string
	Terminator string
	Format     func(T) string
}

// Render writes "e1 -> e2 -> ... -> <end>" to w, formatting each element with
// format (fmt.Sprint when nil). An empty list writes just "<end>".
func (l *List[T]) Render(w io.Writer, format func(T) string) error {
	return l.RenderWith(w, RenderOptions[T]{Format: format})
}

// RenderWith writes the list to w using opts
func (l *List[T]) RenderWith(w io.Writer, opts RenderOptions[T]) error {
	if _, err := io.WriteString(w, l.render(opts)); err != nil {
		return nlerrors.NewErrorBuilder(nlerrors.ModuleListx).
			Operation("Render").
			Message("render list").
			Cause(err).
			Code(nlerror.CodeIOError).
			Severity(nlerror.SeverityHigh).
			Build()
	}
	return nil
}

// String renders the list with the default options
func (l *List[T]) String() string {
	return l.render(RenderOptions[T]{})
}

func (l *List[T]) render(opts RenderOptions[T]) string {
	if opts.Separator == "" {
		opts.Separator = DefaultSeparator
	}
	if opts.Terminator == "" {
		opts.Terminator = DefaultTerminator
	}
	if opts.Format == nil {
		opts.Format = func(v T) string { return fmt.Sprint(v) }
	}

	var sb strings.Builder
	for cur := l.head; cur != nil; cur = cur.next {
		sb.WriteString(opts.Format(cur.value))
		sb.WriteString(opts.Separator)
	}
	sb.WriteString(opts.Terminator)
	return sb.String()
}
