package quill

// MeasureKind tags a ChildMeasurement variant.
type MeasureKind uint8

const (
	MeasureFixed MeasureKind = iota
	MeasureFlex
	MeasureContent
)

// ChildMeasurement is one child's space claim along the row axis.
type ChildMeasurement struct {
	Kind  MeasureKind
	Value int // width for MeasureFixed and MeasureContent, weight for MeasureFlex
}

// FixedChild claims exactly width cells.
func FixedChild(width int) ChildMeasurement {
	return ChildMeasurement{Kind: MeasureFixed, Value: width}
}

// FlexChild claims a weighted share of whatever is left.
func FlexChild(weight int) ChildMeasurement {
	return ChildMeasurement{Kind: MeasureFlex, Value: weight}
}

// ContentChild claims its measured content width.
func ContentChild(width int) ChildMeasurement {
	return ChildMeasurement{Kind: MeasureContent, Value: width}
}

// FlexResult is the outcome of a row solve. Widths is index-aligned with
// the input measurements.
type FlexResult struct {
	Widths    []int
	TotalUsed int
}

// CalculateRowWidths distributes availableWidth across the children.
// Fixed and content children keep their stated widths even when the sum
// exceeds the available space. Flex children split what remains in
// proportion to their weights; each share is floor(remaining*weight/total),
// so up to totalWeight-1 cells of truncation are left unassigned rather
// than redistributed. With zero total weight every flex child gets zero.
func CalculateRowWidths(availableWidth int, children []ChildMeasurement) FlexResult {
	widths := make([]int, len(children))

	fixedUsed := 0
	totalWeight := 0
	for i, c := range children {
		switch c.Kind {
		case MeasureFixed, MeasureContent:
			widths[i] = c.Value
			fixedUsed += c.Value
		case MeasureFlex:
			totalWeight += c.Value
		}
	}

	remaining := availableWidth - fixedUsed
	if remaining < 0 {
		remaining = 0
	}

	total := 0
	if totalWeight > 0 {
		for i, c := range children {
			if c.Kind == MeasureFlex {
				// widened to avoid overflow before the divide
				widths[i] = int(int64(remaining) * int64(c.Value) / int64(totalWeight))
			}
		}
	}
	for _, w := range widths {
		total += w
	}

	return FlexResult{Widths: widths, TotalUsed: total}
}
