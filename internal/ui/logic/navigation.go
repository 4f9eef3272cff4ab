// Package logic holds the cursor and viewport rules for the result list.
package logic

// Navigator handles cursor movement and viewport management over a flat list
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
	total          int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{}
}

// UpdateState updates the navigator's state
func (n *Navigator) UpdateState(selectedIndex, viewportOffset, viewportHeight, total int) {
	n.selectedIndex = selectedIndex
	n.viewportOffset = viewportOffset
	n.viewportHeight = viewportHeight
	n.total = total
}

// GetSelectedIndex returns the current selected index
func (n *Navigator) GetSelectedIndex() int {
	return n.selectedIndex
}

// GetViewportOffset returns the current viewport offset
func (n *Navigator) GetViewportOffset() int {
	return n.viewportOffset
}

// SetSelectedIndex clamps index to the list, scrolls it into view and
// returns the resulting index and offset
func (n *Navigator) SetSelectedIndex(index int) (int, int) {
	n.selectedIndex = index
	n.clampSelected()
	n.ensureSelectedVisible()
	return n.selectedIndex, n.viewportOffset
}

// Move applies a named movement: up, down, pageup, pagedown, home or end.
// Unknown directions leave the cursor where it is.
func (n *Navigator) Move(direction string) (int, int) {
	if n.total == 0 {
		n.selectedIndex, n.viewportOffset = 0, 0
		return 0, 0
	}

	page := n.viewportHeight
	if page < 1 {
		page = 1
	}

	index := n.selectedIndex
	switch direction {
	case "up":
		index--
	case "down":
		index++
	case "pageup":
		index -= page
	case "pagedown":
		index += page
	case "home":
		index = 0
	case "end":
		index = n.total - 1
	}
	return n.SetSelectedIndex(index)
}

// GetMaxIndex returns the maximum selectable index, -1 for an empty list
func (n *Navigator) GetMaxIndex() int {
	return n.total - 1
}

func (n *Navigator) clampSelected() {
	if n.selectedIndex > n.total-1 {
		n.selectedIndex = n.total - 1
	}
	if n.selectedIndex < 0 {
		n.selectedIndex = 0
	}
}

// ensureSelectedVisible adjusts the viewport to keep the selected item visible
func (n *Navigator) ensureSelectedVisible() {
	height := n.viewportHeight
	if height < 1 {
		height = 1
	}

	// If selected item is above viewport, scroll up
	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	}

	// If selected item is below viewport, scroll down
	if n.selectedIndex >= n.viewportOffset+height {
		n.viewportOffset = n.selectedIndex - height + 1
	}

	// The offset never leaves empty rows at the bottom of a full viewport
	maxOffset := n.total - height
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
