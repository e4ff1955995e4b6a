package bst

import (
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

const (
	leafShape shape = iota
	onlyLeftShape
	onlyRightShape
	twoChildrenShape
)

const (
	traverseStop traverseAction = iota
	traverseContinue
)

var (
	ErrNoMoreNodes    = errors.New("There are no more nodes in the tree")
	ErrEndCursor      = errors.New("cursor is past the last node")
	ErrStaleCursor    = errors.New("tree was modified after the cursor was created")
	ErrReadOnlyCursor = errors.New("cursor is read-only")
)

// Log is the default logger of every tree, see WithLogger.
var Log = logrus.New()

type (
	// LessFunc reports whether a sorts strictly before b.
	LessFunc[K any] func(a, b K) bool

	tree[K, V any] struct {
		root *node[K, V]
		less LessFunc[K]
		size int
		// bumped on every structural change, cursors compare against it
		gen uint64
		log logrus.FieldLogger
	}

	node[K, V any] struct {
		key   K
		value V

		left   *node[K, V]
		right  *node[K, V]
		parent *node[K, V]
	}

	// shape of a node by the children it owns
	shape int

	Callback[K, V any] func(key K, value V) bool

	traverseAction int

	entry[K, V any] struct {
		key   K
		value V
	}

	// pending node of a deep copy and the link it goes into
	copyFrame[K, V any] struct {
		src    *node[K, V]
		parent *node[K, V]
		slot   **node[K, V]
	}

	cursor[K, V any] struct {
		tree     *tree[K, V]
		node     *node[K, V]
		gen      uint64
		readOnly bool
	}

	iterator[K, V any] struct {
		tree     *tree[K, V]
		nextNode *node[K, V]
		gen      uint64
	}
)

func newNode[K, V any](parent *node[K, V], key K, value V) *node[K, V] {
	return &node[K, V]{
		key:    key,
		value:  value,
		parent: parent,
	}
}

func (s shape) String() string {
	return []string{"leaf", "onlyLeft", "onlyRight", "twoChildren"}[s]
}
