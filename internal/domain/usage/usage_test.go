package usage

import "testing"

func TestNewWindow(t *testing.T) {
	w := NewWindow(ScopeRecommend, "2026-08-24", 42, 200, 1787961600000)

	if w.Scope() != ScopeRecommend {
		t.Errorf("Scope() = %q", w.Scope())
	}
	if w.Day() != "2026-08-24" {
		t.Errorf("Day() = %q", w.Day())
	}
	if w.Used() != 42 {
		t.Errorf("Used() = %d", w.Used())
	}
	if w.Limit() != 200 {
		t.Errorf("Limit() = %d", w.Limit())
	}
	if w.Remaining() != 158 {
		t.Errorf("Remaining() = %d", w.Remaining())
	}
	if w.IsExhausted() {
		t.Error("IsExhausted() = true, want false")
	}
	if w.ResetsAt() != 1787961600000 {
		t.Errorf("ResetsAt() = %d", w.ResetsAt())
	}
}

func TestWindow_Exhausted(t *testing.T) {
	w := NewWindow(ScopeSentiment, "2026-08-24", 100, 100, 0)

	if !w.IsExhausted() {
		t.Error("IsExhausted() = false, want true")
	}
	if w.Remaining() != 0 {
		t.Errorf("Remaining() = %d", w.Remaining())
	}
}

func TestWindow_OverLimitClampsRemaining(t *testing.T) {
	w := NewWindow(ScopeML, "2026-08-24", 75, 50, 0)

	if w.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", w.Remaining())
	}
	if !w.IsExhausted() {
		t.Error("IsExhausted() = false, want true")
	}
}

func TestWindow_UnlimitedScope(t *testing.T) {
	w := NewWindow(ScopeRecommend, "2026-08-24", 99999, 0, 0)

	if w.IsExhausted() {
		t.Error("zero limit means unthrottled")
	}
}

func TestScopeConstants(t *testing.T) {
	if ScopeRecommend != "recommend" {
		t.Errorf("ScopeRecommend = %q", ScopeRecommend)
	}
	if ScopeSentiment != "sentiment" {
		t.Errorf("ScopeSentiment = %q", ScopeSentiment)
	}
	if ScopeML != "ml" {
		t.Errorf("ScopeML = %q", ScopeML)
	}
	if len(Scopes()) != 3 {
		t.Errorf("len(Scopes()) = %d", len(Scopes()))
	}
}
