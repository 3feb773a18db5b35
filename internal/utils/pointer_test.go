package utils

import "testing"

// TestPtr verifies that Ptr returns a pointer to a copy of the given value.
func TestPtr(t *testing.T) {
	n := Ptr(42)
	if *n != 42 {
		t.Errorf("*Ptr(42) = %d, want 42", *n)
	}

	s := Ptr("hello")
	if *s != "hello" {
		t.Errorf("*Ptr(%q) = %q, want %q", "hello", *s, "hello")
	}

	// The pointer must not alias the caller's variable.
	v := 1
	p := Ptr(v)
	v = 2
	if *p != 1 {
		t.Errorf("Ptr() should copy the value, got %d after mutation", *p)
	}
}
