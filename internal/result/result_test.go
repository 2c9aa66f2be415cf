package result

import "testing"

func TestCancelled(t *testing.T) {
	r := Cancelled[string]()
	if !r.IsCancelled() {
		t.Fatal("expected cancelled result")
	}
	v, ok := r.Value()
	if ok {
		t.Error("Value() ok = true for cancelled result")
	}
	if v != "" {
		t.Errorf("Value() = %q, want zero value", v)
	}
	if got := r.String(); got != "Cancelled" {
		t.Errorf("String() = %q, want %q", got, "Cancelled")
	}
}

func TestCompleted(t *testing.T) {
	r := Completed("prod")
	if r.IsCancelled() {
		t.Fatal("expected completed result")
	}
	v, ok := r.Value()
	if !ok || v != "prod" {
		t.Errorf("Value() = (%q, %v), want (%q, true)", v, ok, "prod")
	}
	if got := r.String(); got != "Completed(prod)" {
		t.Errorf("String() = %q", got)
	}
}

func TestCompleted_ZeroPayloadIsNotCancelled(t *testing.T) {
	r := Completed(map[string]string{})
	if r.IsCancelled() {
		t.Fatal("a completed result with an empty payload must not read as cancelled")
	}
}

func TestZeroValueIsCancelled(t *testing.T) {
	var r Result[int]
	if !r.IsCancelled() {
		t.Error("zero Result should be cancelled")
	}
}

func TestMap(t *testing.T) {
	calls := 0
	double := func(n int) int {
		calls++
		return n * 2
	}

	got := Map(Completed(21), double)
	if v, ok := got.Value(); !ok || v != 42 {
		t.Errorf("Map(Completed(21)) = %v", got)
	}

	cancelled := Map(Cancelled[int](), double)
	if !cancelled.IsCancelled() {
		t.Error("Map(Cancelled) should stay cancelled")
	}
	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}
}
