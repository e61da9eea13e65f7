package wrapped

import "testing"

func TestInflight(t *testing.T) {
	var f Inflight
	if f.Loading() {
		t.Fatal("zero Inflight should not be loading")
	}

	first := f.Begin()
	if !f.Loading() {
		t.Fatal("Begin should set loading")
	}
	second := f.Begin()
	if first == second {
		t.Fatal("tokens must be unique")
	}

	if f.Finish(first) {
		t.Error("stale token should be rejected")
	}
	if !f.Loading() {
		t.Error("stale Finish must not clear loading")
	}
	if !f.Finish(second) {
		t.Error("current token should be accepted")
	}
	if f.Loading() {
		t.Error("Finish should clear loading")
	}
	if f.Finish("") {
		t.Error("empty token should be rejected")
	}
}
