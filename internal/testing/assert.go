package testing

import (
	"reflect"
	"testing"
)

// AssertEqual asserts that values are deeply equal.
func AssertEqual[T any](t testing.TB, a, b T) {
	t.Helper()

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected '%v' to be equal to '%v'", a, b)
	}
}

// AssertPanics asserts that f panics with an error matching target.
func AssertPanics(t testing.TB, f func(), match func(error) bool) {
	t.Helper()

	defer func() {
		t.Helper()

		r := recover()
		if r == nil {
			t.Fatalf("expected panic")
		}

		err, ok := r.(error)
		if !ok || !match(err) {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()

	f()
}
