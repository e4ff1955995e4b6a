package bst

import (
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

func (t *tree[K, V]) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

// Height returns the number of levels of the tree, 0 when empty.
func (t *tree[K, V]) Height() int {
	if t.root == nil {
		return 0
	}

	height := 0
	level := []*node[K, V]{t.root}
	for len(level) > 0 {
		height++
		next := make([]*node[K, V], 0, 2*len(level))
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}
	return height
}

// Insert adds key with value. An existing key keeps its value, the returned
// cursor then points at it and the flag is false.
func (t *tree[K, V]) Insert(key K, value V) (Cursor[K, V], bool) {
	n, inserted := t.insert(key, value)
	return t.cursorAt(n, false), inserted
}

func (t *tree[K, V]) insert(key K, value V) (*node[K, V], bool) {
	var parent *node[K, V]
	slot := &t.root

	for *slot != nil {
		curr := *slot
		switch {
		case t.less(key, curr.key):
			parent, slot = curr, &curr.left
		case t.less(curr.key, key):
			parent, slot = curr, &curr.right
		default:
			return curr, false
		}
	}

	n := newNode(parent, key, value)
	*slot = n
	t.size++
	t.gen++
	return n, true
}

func (t *tree[K, V]) Find(key K) Cursor[K, V] {
	return t.cursorAt(t.find(key), false)
}

func (t *tree[K, V]) Get(key K) (V, bool) {
	if n := t.find(key); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

func (t *tree[K, V]) find(key K) *node[K, V] {
	curr := t.root
	for curr != nil {
		switch {
		case t.less(key, curr.key):
			curr = curr.left
		case t.less(curr.key, key):
			curr = curr.right
		default:
			return curr
		}
	}
	return nil
}

// At returns the stored value of key, inserting the zero value first when key
// is missing. The pointer is no longer backed by the tree once key is erased.
func (t *tree[K, V]) At(key K) *V {
	var zero V
	n, _ := t.insert(key, zero)
	return &n.value
}

// Erase removes key and reports whether it was present.
func (t *tree[K, V]) Erase(key K) bool {
	n := t.find(key)
	if n == nil {
		return false
	}

	parent, slot := n.parent, t.slot(n)
	sh := n.shape()

	switch sh {
	case leafShape:
		*slot = nil
	case onlyLeftShape:
		link(slot, parent, n.left)
	case onlyRightShape:
		link(slot, parent, n.right)
	case twoChildrenShape:
		link(slot, parent, t.splice(n))
	}
	n.detach()

	t.size--
	t.gen++

	t.log.WithFields(logrus.Fields{
		"op":    "erase",
		"shape": sh.String(),
		"root":  parent == nil,
		"size":  t.size,
	}).Debug("node removed")
	return true
}

// splice returns the node taking the place of n, which owns two children.
// It carries the entry of n's successor and owns n's subtrees minus the
// successor.
func (t *tree[K, V]) splice(n *node[K, V]) *node[K, V] {
	succ := n.successor()
	if succ == nil || succ.left != nil {
		panic(errors.AssertionFailedf("bst: node with two children has no leftmost successor"))
	}

	repl := newNode(n.parent, succ.key, succ.value)
	link(&repl.left, repl, n.left)

	if succ == n.right {
		link(&repl.right, repl, succ.right)
	} else {
		// successor is a left child deeper down, its right subtree moves up
		link(&succ.parent.left, succ.parent, succ.right)
		link(&repl.right, repl, n.right)
	}
	succ.detach()

	return repl
}

// Clear drops every node, cursors taken before become stale.
func (t *tree[K, V]) Clear() {
	t.log.WithFields(logrus.Fields{
		"op":   "clear",
		"size": t.size,
	}).Debug("tree cleared")

	t.clear()
}

func (t *tree[K, V]) clear() {
	t.root = nil
	t.size = 0
	t.gen++
}

// Balance rebuilds the tree into minimal height. The tree does not stay
// balanced under later inserts and erases.
func (t *tree[K, V]) Balance() {
	before := t.Height()
	entries := t.snapshot()

	t.clear()
	t.root = build(entries, 0, len(entries)-1, nil)
	t.size = len(entries)

	t.log.WithFields(logrus.Fields{
		"op":     "balance",
		"size":   t.size,
		"before": before,
		"after":  t.Height(),
	}).Debug("tree rebalanced")
}

// snapshot collects every entry in key order.
func (t *tree[K, V]) snapshot() []entry[K, V] {
	entries := make([]entry[K, V], 0, t.size)
	for n := t.root.leftmost(); n != nil; n = n.successor() {
		entries = append(entries, entry[K, V]{n.key, n.value})
	}
	return entries
}

// build links entries[lo:hi+1] under parent, the middle entry on top, the
// same shape as inserting the middle entry first and recursing on both halves.
func build[K, V any](entries []entry[K, V], lo, hi int, parent *node[K, V]) *node[K, V] {
	if hi < lo {
		return nil
	}

	mid := (lo + hi) / 2
	n := newNode(parent, entries[mid].key, entries[mid].value)
	n.left = build(entries, lo, mid-1, n)
	n.right = build(entries, mid+1, hi, n)
	return n
}

// Clone returns a deep copy with the same shape and ordering.
func (t *tree[K, V]) Clone() Tree[K, V] {
	c := &tree[K, V]{
		less: t.less,
		log:  t.log,
	}
	c.root, c.size = copyNodes(t.root)
	return c
}

// CopyFrom replaces the content of t with a deep copy of src.
func (t *tree[K, V]) CopyFrom(src Tree[K, V]) {
	s, ok := src.(*tree[K, V])
	if ok && s == t {
		return
	}

	t.clear()
	if ok {
		t.less = s.less
		t.root, t.size = copyNodes(s.root)
	} else {
		src.ForEach(func(key K, value V) bool {
			t.insert(key, value)
			return true
		})
	}

	t.log.WithFields(logrus.Fields{
		"op":   "copy",
		"size": t.size,
	}).Debug("tree copied")
}

// copyNodes copies the subtree under src node by node in pre-order.
func copyNodes[K, V any](src *node[K, V]) (*node[K, V], int) {
	var root *node[K, V]
	count := 0

	stack := []copyFrame[K, V]{{src: src, slot: &root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.src == nil {
			continue
		}

		n := newNode(f.parent, f.src.key, f.src.value)
		*f.slot = n
		count++

		// right goes first so the left subtree is copied first
		stack = append(stack,
			copyFrame[K, V]{src: f.src.right, parent: n, slot: &n.right},
			copyFrame[K, V]{src: f.src.left, parent: n, slot: &n.left},
		)
	}
	return root, count
}

// Move hands the nodes and the ordering of t to a new tree and leaves t empty.
func (t *tree[K, V]) Move() Tree[K, V] {
	m := &tree[K, V]{
		root: t.root,
		less: t.less,
		size: t.size,
		log:  t.log,
	}
	t.clear()

	t.log.WithFields(logrus.Fields{
		"op":   "move",
		"size": m.size,
	}).Debug("tree moved")
	return m
}

// MoveFrom takes the nodes and the ordering of src, leaving src empty.
func (t *tree[K, V]) MoveFrom(src Tree[K, V]) {
	s, ok := src.(*tree[K, V])
	if !ok {
		t.CopyFrom(src)
		src.Clear()
		return
	}
	if s == t {
		return
	}

	t.root, t.less, t.size = s.root, s.less, s.size
	t.gen++
	s.clear()

	t.log.WithFields(logrus.Fields{
		"op":   "move",
		"size": t.size,
	}).Debug("tree moved")
}

// ForEach calls callback for every entry in key order until it returns false.
func (t *tree[K, V]) ForEach(callback Callback[K, V]) {
	t.walkNodes(func(n *node[K, V]) bool {
		return callback(n.key, n.value)
	})
}
