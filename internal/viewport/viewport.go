// Package viewport tracks the visible window into the rendered document.
package viewport

// Viewport owns the scroll offset and visible height over a sequence of
// display lines. Every operation re-clamps, so the invariant
// 0 <= Offset <= max(0, total-height) holds after any call.
type Viewport struct {
	offset int
	height int
	total  int
}

// New returns a viewport over total lines with the given visible height.
func New(total, height int) Viewport {
	v := Viewport{total: total, height: height}
	v.clamp()
	return v
}

// Offset is the index of the first visible line.
func (v *Viewport) Offset() int { return v.offset }

// Height is the number of visible rows.
func (v *Viewport) Height() int { return v.height }

// Total is the current document length in display lines.
func (v *Viewport) Total() int { return v.total }

// SetTotal records a new document length, keeping the offset in place when
// the document is long enough and pinning to the new bottom otherwise.
func (v *Viewport) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	v.total = total
	v.clamp()
}

// SetHeight records a new visible height and re-clamps.
func (v *Viewport) SetHeight(height int) {
	if height < 0 {
		height = 0
	}
	v.height = height
	v.clamp()
}

// ScrollBy moves the offset by delta lines, positive meaning down.
func (v *Viewport) ScrollBy(delta int) {
	v.offset += delta
	v.clamp()
}

// PageDown moves one viewport height down.
func (v *Viewport) PageDown() {
	v.ScrollBy(v.pageStep())
}

// PageUp moves one viewport height up.
func (v *Viewport) PageUp() {
	v.ScrollBy(-v.pageStep())
}

// Top jumps to the first line.
func (v *Viewport) Top() {
	v.offset = 0
}

// Bottom jumps so the last line is visible.
func (v *Viewport) Bottom() {
	v.offset = v.maxOffset()
}

// Visible returns the [start, end) line range currently on screen.
func (v *Viewport) Visible() (start, end int) {
	start = v.offset
	end = v.offset + v.height
	if end > v.total {
		end = v.total
	}
	return start, end
}

func (v *Viewport) pageStep() int {
	if v.height < 1 {
		return 1
	}
	return v.height
}

func (v *Viewport) maxOffset() int {
	max := v.total - v.height
	if max < 0 {
		max = 0
	}
	return max
}

func (v *Viewport) clamp() {
	if v.offset < 0 {
		v.offset = 0
	}
	if max := v.maxOffset(); v.offset > max {
		v.offset = max
	}
}
