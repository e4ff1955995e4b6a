package bst

import (
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

type config[K any] struct {
	less LessFunc[K]
	log  logrus.FieldLogger
}

type Option[K any] func(c *config[K])

// WithLess replaces the ordering predicate. A nil less is ignored.
func WithLess[K any](less LessFunc[K]) Option[K] {
	return func(c *config[K]) {
		if less != nil {
			c.less = less
		}
	}
}

// WithLogger sets the logger used for debug output of structural operations.
func WithLogger[K any](log logrus.FieldLogger) Option[K] {
	return func(c *config[K]) {
		if log != nil {
			c.log = log
		}
	}
}

func newTree[K, V any](less LessFunc[K], opts ...Option[K]) *tree[K, V] {
	c := &config[K]{
		less: less,
		log:  Log,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.less == nil {
		panic(errors.AssertionFailedf("bst: nil LessFunc"))
	}

	return &tree[K, V]{
		less: c.less,
		log:  c.log,
	}
}
