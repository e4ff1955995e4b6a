package bst

import (
	"io"

	"golang.org/x/exp/constraints"
)

type Tree[K, V any] interface {
	Insert(key K, value V) (Cursor[K, V], bool)
	Find(key K) Cursor[K, V]
	Get(key K) (V, bool)
	At(key K) *V
	Erase(key K) bool
	Clear()
	Balance()

	Clone() Tree[K, V]
	CopyFrom(src Tree[K, V])
	Move() Tree[K, V]
	MoveFrom(src Tree[K, V])

	Begin() Cursor[K, V]
	End() Cursor[K, V]
	CBegin() Cursor[K, V]
	CEnd() Cursor[K, V]
	Min() Cursor[K, V]
	Max() Cursor[K, V]
	Iterator() Iterator[K, V]
	ForEach(callback Callback[K, V])

	Size() int
	Height() int

	WriteTo(w io.Writer) (int64, error)
	DumpNodes(w io.Writer) error
	String() string
}

// Cursor points at a node of the tree, or past the last one.
// Any structural change of the tree makes it stale.
type Cursor[K, V any] interface {
	Valid() bool
	Next() error
	Key() (K, error)
	Value() (V, error)
	SetValue(value V) error
	Equal(other Cursor[K, V]) bool
}

type Iterator[K, V any] interface {
	HasNext() bool
	Next() (Node[K, V], error)
}

type Node[K, V any] interface {
	Key() K
	Value() V
}

// New returns an empty tree ordered by the < operator.
func New[K constraints.Ordered, V any](opts ...Option[K]) Tree[K, V] {
	return NewWithLess[K, V](Less[K](), opts...)
}

// NewWithLess returns an empty tree ordered by less, which must be a strict weak order.
func NewWithLess[K, V any](less LessFunc[K], opts ...Option[K]) Tree[K, V] {
	return newTree[K, V](less, opts...)
}

// Less returns a LessFunc using the < operator.
func Less[K constraints.Ordered]() LessFunc[K] {
	return func(a, b K) bool { return a < b }
}
