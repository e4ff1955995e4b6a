package bst

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

// WriteTo writes a "Key:\tValue:" header and one tab separated line per
// entry in key order.
func (t *tree[K, V]) WriteTo(w io.Writer) (int64, error) {
	var total int64

	n, err := fmt.Fprint(w, "Key:\tValue:\n")
	total += int64(n)
	if err != nil {
		return total, errors.Wrap(err, "write header")
	}

	it := t.Iterator()
	for it.HasNext() {
		cur, err := it.Next()
		if err != nil {
			return total, err
		}
		n, err := fmt.Fprintf(w, "%v\t%v\n", cur.Key(), cur.Value())
		total += int64(n)
		if err != nil {
			return total, errors.Wrapf(err, "write entry %v", cur.Key())
		}
	}
	return total, nil
}

func (t *tree[K, V]) String() string {
	var sb strings.Builder
	// strings.Builder never fails
	_, _ = t.WriteTo(&sb)
	return sb.String()
}

// DumpNodes writes every node in key order together with its children.
func (t *tree[K, V]) DumpNodes(w io.Writer) error {
	var err error
	t.walkNodes(func(n *node[K, V]) bool {
		_, err = fmt.Fprintf(w, "\nKey:\tValue:\n%v\t%v\n", n.key, n.value)
		if err == nil && n.left != nil {
			_, err = fmt.Fprintf(w, "left: k = %v v = %v\n", n.left.key, n.left.value)
		}
		if err == nil && n.right != nil {
			_, err = fmt.Fprintf(w, "right: k = %v v = %v\n", n.right.key, n.right.value)
		}
		return err == nil
	})
	return errors.Wrap(err, "dump nodes")
}

func (t *tree[K, V]) walkNodes(callback func(n *node[K, V]) bool) traverseAction {
	for n := t.root.leftmost(); n != nil; n = n.successor() {
		if !callback(n) {
			return traverseStop
		}
	}
	return traverseContinue
}
