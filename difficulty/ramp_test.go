package difficulty

import (
	"testing"
	"time"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		want   time.Duration
		wantOK bool
	}{
		{"int_result", `interval = 500`, 500 * time.Millisecond, true},
		{"float_result", `interval = 312.5`, 312500 * time.Microsecond, true},
		{"uses_inputs", `interval = interval_ms - population * 10`, 970 * time.Millisecond, true},
		{"unset", `x := 1`, 0, false},
		{"unchanged", `interval = interval_ms`, 0, false},
		{"non_numeric", `interval = "fast"`, 0, false},
		{"zero", `interval = 0`, 0, false},
		{"negative", `interval = -100`, 0, false},
		{"runtime_error", `interval = 1 / (population - 3)`, 0, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := New(c.name, []byte(c.src), time.Second)
			if err != nil {
				t.Fatalf("new: %v", err)
			}
			got, ok := r.Evaluate(3, 20*time.Second, time.Second)
			if ok != c.wantOK || got != c.want {
				t.Fatalf("Evaluate = (%v, %v), want (%v, %v)", got, ok, c.want, c.wantOK)
			}
		})
	}
}

func TestIntervalResetBetweenRuns(t *testing.T) {
	r, err := New("cond", []byte(`if population > 5 { interval = 100 }`), time.Second)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, ok := r.Evaluate(10, 0, time.Second); !ok {
		t.Fatalf("first run should set interval")
	}
	if d, ok := r.Evaluate(1, 0, time.Second); ok {
		t.Fatalf("stale interval %v leaked into second run", d)
	}
}

func TestNewRejectsBadScripts(t *testing.T) {
	for name, src := range map[string]string{
		"empty":  "  \n",
		"syntax": "interval = ",
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := New(name, []byte(src), 0); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestAdvanceEvaluatesEveryPeriod(t *testing.T) {
	r, err := New("every", []byte(`interval = interval_ms / 2`), time.Second)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	current := time.Second
	evaluations := 0
	for i := 0; i < 6; i++ {
		if d, ok := r.Advance(500*time.Millisecond, 1, current); ok {
			evaluations++
			current = d
		}
	}
	if evaluations != 3 {
		t.Fatalf("evaluations = %d, want 3", evaluations)
	}
	if current != 125*time.Millisecond {
		t.Fatalf("interval = %v, want 125ms", current)
	}
	if r.Elapsed() != 3*time.Second {
		t.Fatalf("elapsed = %v, want 3s", r.Elapsed())
	}
}

func TestAdvanceZeroEveryFallsBackToSecond(t *testing.T) {
	r, err := New("zero", []byte(`interval = interval_ms / 2`), time.Second)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	r.Every = 0

	if _, ok := r.Advance(500*time.Millisecond, 1, time.Second); ok {
		t.Fatalf("evaluated before a full second")
	}
	d, ok := r.Advance(500*time.Millisecond, 1, time.Second)
	if !ok || d != 500*time.Millisecond {
		t.Fatalf("Advance = (%v, %v), want (500ms, true)", d, ok)
	}
}

func TestEmbeddedRamp(t *testing.T) {
	r, err := Load("ramp.tengo", 5*time.Second)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if _, ok := r.Evaluate(4, 5*time.Second, time.Second); ok {
		t.Fatalf("ramp must wait for 10s of play")
	}
	d, ok := r.Evaluate(4, 10*time.Second, time.Second)
	if !ok || d != 950*time.Millisecond {
		t.Fatalf("Evaluate = (%v, %v), want (950ms, true)", d, ok)
	}
	d, ok = r.Evaluate(4, time.Minute, 260*time.Millisecond)
	if !ok || d != 250*time.Millisecond {
		t.Fatalf("Evaluate = (%v, %v), want floor 250ms", d, ok)
	}
	if _, ok := r.Evaluate(4, time.Minute, 250*time.Millisecond); ok {
		t.Fatalf("floor must not restart the timer")
	}
}
