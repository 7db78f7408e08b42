package views

// Shape identifies the container arity a table was built from. It selects the
// line policy for file output.
type Shape int

const (
	ShapeGrid Shape = iota
	ShapeSequence
	ShapePaired
)

var shapeNames = map[Shape]string{
	ShapeGrid:     "grid",
	ShapeSequence: "sequence",
	ShapePaired:   "paired",
}

func (s Shape) String() string {
	if n, ok := shapeNames[s]; ok {
		return n
	}
	return "unknown"
}

// LinePolicy decides whether the last row gets a line terminator.
type LinePolicy int

const (
	TerminateEvery LinePolicy = iota
	OmitFinal
)

// FilePolicy is the terminator rule for each shape when writing files.
// Grids terminate every row; sequences and pairs stop after the last value.
// Existing consumers depend on this exact layout.
var FilePolicy = map[Shape]LinePolicy{
	ShapeGrid:     TerminateEvery,
	ShapeSequence: OmitFinal,
	ShapePaired:   OmitFinal,
}

// Extension is appended to every output base name.
const Extension = ".csv"
