package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCutLast(t *testing.T) {
	tests := []struct {
		s, sep        string
		before, after string
		found         bool
	}{
		{"X@1@2", "@", "X@1", "2", true},
		{"G&a&b", "&", "G&a", "b", true},
		{"GCC@", "@", "GCC", "", true},
		{"GCC", "@", "GCC", "", false},
		{"", "@", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			before, after, found := CutLast(tt.s, tt.sep)
			assert.Equal(t, tt.before, before)
			assert.Equal(t, tt.after, after)
			assert.Equal(t, tt.found, found)
		})
	}
}

func TestDefault_SegmentSeparator(t *testing.T) {
	assert.Equal(t, ":", Default().SegmentSeparator())
}
