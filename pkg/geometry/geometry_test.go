package geometry

import (
	"errors"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := Rect{Top: 2, Left: 4, Width: 10, Height: 1}
	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{name: "inside", x: 8, y: 2, want: true},
		{name: "left edge", x: 4, y: 2, want: true},
		{name: "right edge exclusive", x: 14, y: 2, want: false},
		{name: "above", x: 8, y: 1, want: false},
		{name: "below", x: 8, y: 3, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestFixedProvider(t *testing.T) {
	r, err := Fixed(Rect{Top: 1, Left: 2, Width: 20, Height: 1}).Bounds()
	if err != nil {
		t.Fatalf("Bounds() error: %v", err)
	}
	if r.Width != 20 {
		t.Errorf("Width = %d, want 20", r.Width)
	}

	_, err = Fixed(Rect{}).Bounds()
	if !errors.Is(err, ErrNotMeasurable) {
		t.Errorf("zero rect error = %v, want ErrNotMeasurable", err)
	}
}

func TestFuncProvider(t *testing.T) {
	calls := 0
	p := Func(func() (Rect, error) {
		calls++
		return Rect{Width: 5, Height: 1}, nil
	})
	if _, err := p.Bounds(); err != nil {
		t.Fatalf("Bounds() error: %v", err)
	}
	if calls != 1 {
		t.Errorf("provider called %d times, want 1", calls)
	}
}
