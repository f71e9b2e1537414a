package rating

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{name: "default", value: 1000},
		{name: "lower bound", value: 400},
		{name: "upper bound", value: 2400},
		{name: "below range", value: 399, wantErr: true},
		{name: "above range", value: 2401, wantErr: true},
		{name: "zero", value: 0, wantErr: true},
		{name: "negative", value: -1000, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.value)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidRating) {
					t.Errorf("New(%d) error = %v, want ErrInvalidRating", tt.value, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%d) unexpected error: %v", tt.value, err)
			}
			if r.Value() != tt.value {
				t.Errorf("New(%d).Value() = %d", tt.value, r.Value())
			}
		})
	}
}

func TestDefault(t *testing.T) {
	if got := Default().Value(); got != 1000 {
		t.Errorf("Default().Value() = %d, want 1000", got)
	}
}

func TestClamping(t *testing.T) {
	tests := []struct {
		name  string
		start int
		delta int
		want  int
	}{
		{name: "add within range", start: 1000, delta: 50, want: 1050},
		{name: "add clamps at max", start: 1000, delta: 5000, want: 2400},
		{name: "subtract clamps at min", start: 1000, delta: -5000, want: 400},
		{name: "exact max", start: 2000, delta: 400, want: 2400},
		{name: "exact min", start: 500, delta: -100, want: 400},
		{name: "zero delta", start: 1234, delta: 0, want: 1234},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.start)
			if err != nil {
				t.Fatal(err)
			}
			if got := r.Add(tt.delta).Value(); got != tt.want {
				t.Errorf("New(%d).Add(%d).Value() = %d, want %d", tt.start, tt.delta, got, tt.want)
			}
		})
	}
}

func TestSubtract(t *testing.T) {
	r, err := New(1000)
	if err != nil {
		t.Fatal(err)
	}
	if got := r.Subtract(5000).Value(); got != 400 {
		t.Errorf("Subtract(5000).Value() = %d, want 400", got)
	}
	if got := r.Subtract(100).Value(); got != 900 {
		t.Errorf("Subtract(100).Value() = %d, want 900", got)
	}
}

func TestImmutability(t *testing.T) {
	r := Default()
	_ = r.Add(500)
	if r.Value() != 1000 {
		t.Errorf("Add mutated the receiver: %d", r.Value())
	}
}
