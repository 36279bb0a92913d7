package quill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateRowWidthsReturnsOneWidthPerChild(t *testing.T) {
	result := CalculateRowWidths(100, []ChildMeasurement{
		FixedChild(10), FlexChild(1), ContentChild(5), FlexChild(2),
	})
	assert.Len(t, result.Widths, 4)
}

func TestFixedChildrenKeepStatedWidths(t *testing.T) {
	result := CalculateRowWidths(100, []ChildMeasurement{
		FixedChild(20), FlexChild(1), FixedChild(10),
	})
	assert.Equal(t, []int{20, 70, 10}, result.Widths)
	assert.Equal(t, 100, result.TotalUsed)
}

func TestFlexSplitsProportionally(t *testing.T) {
	result := CalculateRowWidths(100, []ChildMeasurement{
		FlexChild(1), FlexChild(3),
	})
	assert.Equal(t, []int{25, 75}, result.Widths)
}

func TestContentChildrenTreatedAsFixed(t *testing.T) {
	result := CalculateRowWidths(50, []ChildMeasurement{
		ContentChild(12), FlexChild(1),
	})
	assert.Equal(t, []int{12, 38}, result.Widths)
}

func TestFixedOverflowNotClamped(t *testing.T) {
	// fixed widths survive even past the available space; flex gets nothing
	result := CalculateRowWidths(30, []ChildMeasurement{
		FixedChild(25), FixedChild(25), FlexChild(1),
	})
	assert.Equal(t, []int{25, 25, 0}, result.Widths)
	assert.Equal(t, 50, result.TotalUsed)
}

func TestZeroTotalWeightGivesFlexNothing(t *testing.T) {
	result := CalculateRowWidths(100, []ChildMeasurement{
		FlexChild(0), FlexChild(0),
	})
	assert.Equal(t, []int{0, 0}, result.Widths)
}

func TestTruncationIsNotRedistributed(t *testing.T) {
	// 100/3 floors to 33 each; the leftover cell stays unassigned
	result := CalculateRowWidths(100, []ChildMeasurement{
		FlexChild(1), FlexChild(1), FlexChild(1),
	})
	assert.Equal(t, []int{33, 33, 33}, result.Widths)
	assert.Equal(t, 99, result.TotalUsed)
}

func TestEmptyChildrenSolveToEmptyResult(t *testing.T) {
	result := CalculateRowWidths(100, nil)
	assert.Empty(t, result.Widths)
	assert.Zero(t, result.TotalUsed)
}

func TestSolveIsDeterministic(t *testing.T) {
	children := []ChildMeasurement{FixedChild(7), FlexChild(2), FlexChild(5), ContentChild(3)}
	first := CalculateRowWidths(83, children)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, CalculateRowWidths(83, children))
	}
}
