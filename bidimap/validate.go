package bidimap

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/raito-io/golang-set/set"
)

// Validate checks that the forward map and the reverse index agree.
// All violations are collected in a *multierror.Error; each of them wraps ErrInvariantViolation.
// A map only modified through its methods always validates.
func (m *Map[K, V]) Validate() error {
	if !m.IsInitialized() {
		return nil
	}

	var err error

	indexed := set.NewSet[K]()

	for v, keys := range m.reverse {
		if keys.Size() == 0 {
			err = multierror.Append(err, fmt.Errorf("%w: value %v has no keys", ErrInvariantViolation, v))

			continue
		}

		for it := keys.Iterator(); it.Next(); {
			k := as[K](it.Value())

			if indexed.Contains(k) {
				err = multierror.Append(err, fmt.Errorf("%w: key %v is indexed under more than one value", ErrInvariantViolation, k))
			}

			indexed.Add(k)

			actual, ok := m.forward.Get(k)
			if !ok {
				err = multierror.Append(err, fmt.Errorf("%w: key %v is indexed under value %v but not present", ErrInvariantViolation, k, v))
			} else if actual != v {
				err = multierror.Append(err, fmt.Errorf("%w: key %v is indexed under value %v but maps to %v", ErrInvariantViolation, k, v, actual))
			}
		}
	}

	for pair := m.forward.Oldest(); pair != nil; pair = pair.Next() {
		k := pair.Key

		if !indexed.Contains(k) {
			err = multierror.Append(err, fmt.Errorf("%w: key %v is missing from the reverse index", ErrInvariantViolation, k))
		}
	}

	return err
}
