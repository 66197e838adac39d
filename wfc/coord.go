package wfc

// Coord identifies a single cell by row, column and layer. Layer 0 is the
// bottom of the box; Row and Col are the position within that layer.
type Coord struct {
	Row, Col, Layer int
}
