package pipe

type Result[T any] struct {
	Error error
	Value T
}

// Ensures that the goroutine is finished on done being closed
func OrDone[T any](done <-chan struct{}, c <-chan T) <-chan T {
	stream := make(chan T)

	go func() {
		defer close(stream)

		for {
			select {
			case <-done:
				return
			case v, ok := <-c:
				if !ok {
					return
				}
				select {
				case stream <- v:
				case <-done:
				}
			}
		}
	}()

	return stream
}

// Maps from channel of type A to a channel of type B
func Map[A, B any](done <-chan struct{}, in <-chan A, mapper func(A) Result[B]) <-chan Result[B] {
	out := make(chan Result[B])

	go func() {
		defer close(out)

		for val := range OrDone(done, in) {
			select {
			case <-done:
				return
			case out <- mapper(val):
			}
		}
	}()

	return out
}

// Streams the given values and closes the channel afterwards
func From[T any](done <-chan struct{}, vs ...T) <-chan T {
	out := make(chan T)

	go func() {
		defer close(out)

		for _, v := range vs {
			select {
			case <-done:
				return
			case out <- v:
			}
		}
	}()

	return out
}
