package secrets

import "context"

// Locker provides mutual exclusion across processes for a bundle name. Lock blocks
// until the lock is held or ctx is done and returns the function that releases it.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(context.Context) error, err error)
}

// NopLocker does not lock.
type NopLocker struct{}

func (NopLocker) Lock(context.Context, string) (func(context.Context) error, error) {
	return func(context.Context) error { return nil }, nil
}
