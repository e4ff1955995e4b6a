package bst

func (n *node[K, V]) Key() K {
	return n.key
}

func (n *node[K, V]) Value() V {
	return n.value
}

func (n *node[K, V]) shape() shape {
	switch {
	case n.left == nil && n.right == nil:
		return leafShape
	case n.right == nil:
		return onlyLeftShape
	case n.left == nil:
		return onlyRightShape
	}
	return twoChildrenShape
}

// find the node with the smallest key under n
func (n *node[K, V]) leftmost() *node[K, V] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *node[K, V]) rightmost() *node[K, V] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// successor returns the next node in key order, nil after the last one.
func (n *node[K, V]) successor() *node[K, V] {
	if n.right != nil {
		return n.right.leftmost()
	}

	curr, up := n, n.parent
	// climb while we come from a right subtree
	for up != nil && curr == up.right {
		curr, up = up, up.parent
	}
	return up
}

// detach drops every link of a node that left the tree.
func (n *node[K, V]) detach() {
	n.left, n.right, n.parent = nil, nil, nil
}

// slot returns the link owning n: the root link or a child link of its parent.
func (t *tree[K, V]) slot(n *node[K, V]) **node[K, V] {
	switch {
	case n.parent == nil:
		return &t.root
	case n.parent.left == n:
		return &n.parent.left
	}
	return &n.parent.right
}

// hang child into slot, which is owned by parent
func link[K, V any](slot **node[K, V], parent, child *node[K, V]) {
	*slot = child
	if child != nil {
		child.parent = parent
	}
}
