// Package optimistic applies a state change before the request that makes it durable
// and restores the previous value if that request fails.
package optimistic

// Change describes one optimistic update. Set shows a value to the user, Do performs
// the request, Commit records Next once Do succeeded.
type Change[T any] struct {
	Prev   T
	Next   T
	Set    func(T)
	Do     func() error
	Commit func(T)
}

// Apply sets Next, runs Do and either commits Next or restores Prev. Do's error is
// returned unchanged.
func Apply[T any](c Change[T]) error {
	if c.Set != nil {
		c.Set(c.Next)
	}
	if err := c.Do(); err != nil {
		if c.Set != nil {
			c.Set(c.Prev)
		}
		return err
	}
	if c.Commit != nil {
		c.Commit(c.Next)
	}
	return nil
}
