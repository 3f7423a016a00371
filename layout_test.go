package blendemo

import "testing"

import "image"

func TestDefaultLayoutStrips(t *testing.T) {
	layout := DefaultLayout()
	if err := layout.Validate(); err != nil {
		t.Fatalf("default layout must be valid: %s", err)
	}
	if layout.RowHeight() != 96 {
		t.Fatalf("expected row height 96, got %d", layout.RowHeight())
	}

	expectedY := []int{6, 102, 198, 294}
	for row, y := range expectedY {
		want := image.Rect(200, y, 200 + 289, y + 84)
		got  := layout.StripRect(row)
		if got != want {
			t.Fatalf("row %d: expected %v, got %v", row, want, got)
		}
	}
}

func TestLayoutValidate(t *testing.T) {
	tests := []struct {
		name string
		mod func(*Layout)
	}{
		{"zero width", func(l *Layout) { l.Width = 0 }},
		{"negative strip height", func(l *Layout) { l.StripHeight = -1 }},
		{"zero rows", func(l *Layout) { l.Rows = 0 }},
		{"strip too wide", func(l *Layout) { l.StripX = 300 }},
		{"strip too tall", func(l *Layout) { l.StripHeight = 120 }},
	}
	for _, test := range tests {
		layout := DefaultLayout()
		test.mod(&layout)
		if layout.Validate() == nil {
			t.Fatalf("%s: expected validation error", test.name)
		}
	}
}
