package bst

import "github.com/cockroachdb/errors"

func (t *tree[K, V]) cursorAt(n *node[K, V], readOnly bool) *cursor[K, V] {
	return &cursor[K, V]{
		tree:     t,
		node:     n,
		gen:      t.gen,
		readOnly: readOnly,
	}
}

// Begin returns a cursor at the smallest key, equal to End on an empty tree.
func (t *tree[K, V]) Begin() Cursor[K, V] {
	return t.cursorAt(t.root.leftmost(), false)
}

func (t *tree[K, V]) End() Cursor[K, V] {
	return t.cursorAt(nil, false)
}

// CBegin is Begin for a cursor that cannot change values.
func (t *tree[K, V]) CBegin() Cursor[K, V] {
	return t.cursorAt(t.root.leftmost(), true)
}

func (t *tree[K, V]) CEnd() Cursor[K, V] {
	return t.cursorAt(nil, true)
}

func (t *tree[K, V]) Min() Cursor[K, V] {
	return t.Begin()
}

func (t *tree[K, V]) Max() Cursor[K, V] {
	return t.cursorAt(t.root.rightmost(), false)
}

func (c *cursor[K, V]) check() error {
	if c.gen != c.tree.gen {
		return ErrStaleCursor
	}
	return nil
}

func (c *cursor[K, V]) Valid() bool {
	return c.node != nil && c.check() == nil
}

// Next moves to the successor. Past the last node the cursor stays at end.
func (c *cursor[K, V]) Next() error {
	if err := c.check(); err != nil {
		return errors.Wrap(err, "advance cursor")
	}
	if c.node != nil {
		c.node = c.node.successor()
	}
	return nil
}

func (c *cursor[K, V]) deref(op string) (*node[K, V], error) {
	if err := c.check(); err != nil {
		return nil, errors.Wrap(err, op)
	}
	if c.node == nil {
		return nil, errors.Wrap(ErrEndCursor, op)
	}
	return c.node, nil
}

func (c *cursor[K, V]) Key() (K, error) {
	n, err := c.deref("read key")
	if err != nil {
		var zero K
		return zero, err
	}
	return n.key, nil
}

func (c *cursor[K, V]) Value() (V, error) {
	n, err := c.deref("read value")
	if err != nil {
		var zero V
		return zero, err
	}
	return n.value, nil
}

func (c *cursor[K, V]) SetValue(value V) error {
	if c.readOnly {
		return errors.Wrap(ErrReadOnlyCursor, "set value")
	}
	n, err := c.deref("set value")
	if err != nil {
		return err
	}
	n.value = value
	return nil
}

// Equal reports whether both cursors point at the same node or are both at end.
func (c *cursor[K, V]) Equal(other Cursor[K, V]) bool {
	o, ok := other.(*cursor[K, V])
	return ok && c.node == o.node
}

func (t *tree[K, V]) Iterator() Iterator[K, V] {
	return &iterator[K, V]{
		tree:     t,
		nextNode: t.root.leftmost(),
		gen:      t.gen,
	}
}

func (it *iterator[K, V]) HasNext() bool {
	return it != nil && it.nextNode != nil && it.gen == it.tree.gen
}

func (it *iterator[K, V]) Next() (Node[K, V], error) {
	if it.gen != it.tree.gen {
		return nil, ErrStaleCursor
	}
	if !it.HasNext() {
		return nil, ErrNoMoreNodes
	}
	cur := it.nextNode
	it.nextNode = cur.successor()
	return cur, nil
}
