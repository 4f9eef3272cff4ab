package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveClampsToList(t *testing.T) {
	n := NewNavigator()
	n.UpdateState(0, 0, 3, 5)

	idx, off := n.Move("up")
	assert.Equal(t, 0, idx)
	assert.Equal(t, 0, off)

	idx, off = n.Move("end")
	assert.Equal(t, 4, idx)
	assert.Equal(t, 2, off)

	idx, _ = n.Move("down")
	assert.Equal(t, 4, idx)
}

func TestMoveScrollsViewport(t *testing.T) {
	tests := []struct {
		name      string
		start     int
		offset    int
		direction string
		wantIdx   int
		wantOff   int
	}{
		{"down inside viewport", 0, 0, "down", 1, 0},
		{"down past bottom", 2, 0, "down", 3, 1},
		{"up past top", 3, 3, "up", 2, 2},
		{"page down", 0, 0, "pagedown", 3, 1},
		{"page up", 9, 7, "pageup", 6, 6},
		{"home", 7, 5, "home", 0, 0},
		{"unknown direction", 4, 2, "sideways", 4, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNavigator()
			n.UpdateState(tt.start, tt.offset, 3, 10)

			idx, off := n.Move(tt.direction)
			assert.Equal(t, tt.wantIdx, idx)
			assert.Equal(t, tt.wantOff, off)
		})
	}
}

func TestEmptyListResets(t *testing.T) {
	n := NewNavigator()
	n.UpdateState(4, 2, 3, 0)

	idx, off := n.Move("down")
	assert.Equal(t, 0, idx)
	assert.Equal(t, 0, off)
	assert.Equal(t, -1, n.GetMaxIndex())
}

func TestShrinkingListPullsOffsetBack(t *testing.T) {
	n := NewNavigator()
	n.UpdateState(1, 8, 3, 4)

	idx, off := n.SetSelectedIndex(n.GetSelectedIndex())
	assert.Equal(t, 1, idx)
	assert.Equal(t, 1, off)
}
