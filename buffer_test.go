package stencil

import "testing"

func TestBuffer(t *testing.T) {
	t.Run("NewBuffer", func(t *testing.T) {
		buf := NewBuffer(80, 24)
		if buf.Width() != 80 || buf.Height() != 24 {
			t.Errorf("expected 80x24, got %dx%d", buf.Width(), buf.Height())
		}

		for y := 0; y < buf.Height(); y++ {
			for x := 0; x < buf.Width(); x++ {
				if c := buf.Get(x, y); c.Rune != ' ' {
					t.Fatalf("expected space at (%d,%d), got %q", x, y, c.Rune)
				}
			}
		}
	})

	t.Run("InBounds", func(t *testing.T) {
		buf := NewBuffer(10, 10)

		tests := []struct {
			x, y   int
			expect bool
		}{
			{0, 0, true},
			{9, 9, true},
			{-1, 0, false},
			{0, -1, false},
			{10, 0, false},
			{0, 10, false},
		}

		for _, tt := range tests {
			if got := buf.InBounds(tt.x, tt.y); got != tt.expect {
				t.Errorf("InBounds(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.expect)
			}
		}
	})

	t.Run("SetGet", func(t *testing.T) {
		buf := NewBuffer(10, 10)
		cell := NewCell('X', DefaultStyle().Foreground(Red))

		buf.Set(5, 5, cell)
		if got := buf.Get(5, 5); got != cell {
			t.Errorf("got %+v, want %+v", got, cell)
		}

		if oob := buf.Get(-1, -1); oob.Rune != ' ' {
			t.Error("expected empty cell for out of bounds")
		}
	})

	t.Run("WriteString", func(t *testing.T) {
		buf := NewBuffer(20, 5)
		n := buf.WriteString(2, 1, "Hello", DefaultStyle(), 20)
		if n != 5 {
			t.Errorf("expected 5 columns written, got %d", n)
		}
		if got := buf.GetLine(1); got != "  Hello" {
			t.Errorf("expected %q, got %q", "  Hello", got)
		}
	})

	t.Run("WriteStringClips", func(t *testing.T) {
		buf := NewBuffer(20, 1)
		n := buf.WriteString(0, 0, "Hello World", DefaultStyle(), 5)
		if n != 5 {
			t.Errorf("expected 5 columns written, got %d", n)
		}
		if got := buf.GetLine(0); got != "Hello" {
			t.Errorf("expected %q, got %q", "Hello", got)
		}
	})

	t.Run("WriteStringWide", func(t *testing.T) {
		buf := NewBuffer(10, 1)
		n := buf.WriteString(0, 0, "日本", DefaultStyle(), 10)
		if n != 4 {
			t.Errorf("expected 4 columns written, got %d", n)
		}
		if buf.Get(1, 0).Rune != 0 {
			t.Error("expected placeholder after wide rune")
		}
		if got := buf.GetLine(0); got != "日本" {
			t.Errorf("expected %q, got %q", "日本", got)
		}
	})

	t.Run("WideRuneDoesNotSplit", func(t *testing.T) {
		buf := NewBuffer(10, 1)
		if n := buf.WriteString(0, 0, "a日", DefaultStyle(), 2); n != 1 {
			t.Errorf("expected 1 column written, got %d", n)
		}
	})

	t.Run("FillRect", func(t *testing.T) {
		buf := NewBuffer(5, 5)
		buf.FillRect(Rect{X: 1, Y: 1, W: 2, H: 2}, NewCell('#', DefaultStyle()))
		want := []string{"", " ##", " ##", "", ""}
		for y, w := range want {
			if got := buf.GetLine(y); got != w {
				t.Errorf("line %d: expected %q, got %q", y, w, got)
			}
		}
	})

	t.Run("Resize", func(t *testing.T) {
		buf := NewBuffer(4, 2)
		buf.WriteString(0, 0, "abcd", DefaultStyle(), 4)
		buf.Resize(2, 3)
		if buf.Width() != 2 || buf.Height() != 3 {
			t.Fatalf("expected 2x3, got %dx%d", buf.Width(), buf.Height())
		}
		if got := buf.GetLine(0); got != "ab" {
			t.Errorf("expected preserved %q, got %q", "ab", got)
		}
		if got := buf.GetLine(2); got != "" {
			t.Errorf("expected empty new row, got %q", got)
		}
	})
}

func TestBorders(t *testing.T) {
	t.Run("DrawBorder", func(t *testing.T) {
		buf := NewBuffer(4, 3)
		buf.DrawBorder(Rect{W: 4, H: 3}, BorderSingle, DefaultStyle())
		want := []string{"┌──┐", "│  │", "└──┘"}
		for y, w := range want {
			if got := buf.GetLine(y); got != w {
				t.Errorf("line %d: expected %q, got %q", y, w, got)
			}
		}
	})

	t.Run("TooSmall", func(t *testing.T) {
		buf := NewBuffer(4, 3)
		buf.DrawBorder(Rect{W: 1, H: 3}, BorderSingle, DefaultStyle())
		if got := buf.StringTrimmed(); got != "" {
			t.Errorf("expected nothing drawn, got %q", got)
		}
	})

	t.Run("MergeJunction", func(t *testing.T) {
		buf := NewBuffer(5, 3)
		buf.DrawBorder(Rect{W: 3, H: 3}, BorderSingle, DefaultStyle())
		buf.DrawBorder(Rect{X: 2, W: 3, H: 3}, BorderSingle, DefaultStyle())
		want := []string{"┌─┬─┐", "│ │ │", "└─┴─┘"}
		for y, w := range want {
			if got := buf.GetLine(y); got != w {
				t.Errorf("line %d: expected %q, got %q", y, w, got)
			}
		}
	})

	t.Run("RedrawKeepsRoundedCorners", func(t *testing.T) {
		buf := NewBuffer(3, 3)
		buf.DrawBorder(Rect{W: 3, H: 3}, BorderRounded, DefaultStyle())
		buf.DrawBorder(Rect{W: 3, H: 3}, BorderRounded, DefaultStyle())
		if got := buf.GetLine(0); got != "╭─╮" {
			t.Errorf("expected rounded corners, got %q", got)
		}
	})
}
