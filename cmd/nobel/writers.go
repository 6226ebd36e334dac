package nobel

import "fmt"

// writerFunc serializes the transformed laureate set to one output format.
// Writers are independent capabilities over the same in-memory record set:
// adding a format means registering another function here, the fetcher and
// transformer stay untouched.
type writerFunc func(laureates []Laureate, opts Options) error

var writers = map[string]writerFunc{}

// registerWriter adds a writer for a format (last registration wins)
func registerWriter(format string, fn writerFunc) {
	writers[format] = fn
}

// runWriter dispatches to the registered writer for the format
func runWriter(format string, laureates []Laureate, opts Options) error {
	fn, ok := writers[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(laureates, opts)
}
