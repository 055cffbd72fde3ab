package robot

// TableSize is the side length of the square table. It is fixed.
const TableSize = 5

// OnTable reports whether (x, y) is a cell of the table.
func OnTable(x, y int) bool {
	return inRange(x) && inRange(y)
}

func inRange(v int) bool {
	return v >= 0 && v < TableSize
}
