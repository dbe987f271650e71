package logic

// Cycle moves index by delta over total rows, wrapping at both ends.
// From "no selection" (-1) a forward step lands on the first row and a
// backward step on the last. Returns -1 when there are no rows.
func Cycle(index, total, delta int) int {
	if total <= 0 {
		return -1
	}
	if index < 0 || index >= total {
		if delta >= 0 {
			return 0
		}
		return total - 1
	}
	next := (index + delta) % total
	if next < 0 {
		next += total
	}
	return next
}

// Navigator handles the highlighted row and scroll window of a bounded list
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
	total          int
}

// NewNavigator creates a navigator showing at most height rows at once
func NewNavigator(height int) *Navigator {
	if height <= 0 {
		height = 1
	}
	return &Navigator{selectedIndex: -1, viewportHeight: height}
}

// Reset replaces the row count and clears the highlight
func (n *Navigator) Reset(total int) {
	n.total = total
	n.selectedIndex = -1
	n.viewportOffset = 0
}

// Total returns the number of rows
func (n *Navigator) Total() int {
	return n.total
}

// Selected returns the highlighted row or -1
func (n *Navigator) Selected() int {
	return n.selectedIndex
}

// Next moves the highlight down, wrapping from last to first
func (n *Navigator) Next() int {
	return n.move(1)
}

// Prev moves the highlight up, wrapping from first to last
func (n *Navigator) Prev() int {
	return n.move(-1)
}

func (n *Navigator) move(delta int) int {
	if n.total == 0 {
		return n.selectedIndex
	}
	n.selectedIndex = Cycle(n.selectedIndex, n.total, delta)
	n.ensureSelectedVisible()
	return n.selectedIndex
}

// SetSelectedIndex highlights index; out-of-range values are rejected
func (n *Navigator) SetSelectedIndex(index int) bool {
	if index < -1 || index >= n.total {
		return false
	}
	n.selectedIndex = index
	n.ensureSelectedVisible()
	return true
}

// Window returns the half-open range of rows that fit the viewport
func (n *Navigator) Window() (start, end int) {
	start = n.viewportOffset
	end = start + n.viewportHeight
	if end > n.total {
		end = n.total
	}
	return start, end
}

// ensureSelectedVisible adjusts the viewport to keep the selected row visible
func (n *Navigator) ensureSelectedVisible() {
	if n.selectedIndex < 0 {
		return
	}
	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	}
	if n.selectedIndex >= n.viewportOffset+n.viewportHeight {
		n.viewportOffset = n.selectedIndex - n.viewportHeight + 1
	}

	maxOffset := n.total - n.viewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
