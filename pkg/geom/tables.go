package geom

// The 24-vertex layout is fixed: four vertices per face, ordered
// bottom-left, bottom-right, top-right, top-left in the face's local
// frame, faces in the order below. Every index table in this file
// refers to that layout and is independent of box dimensions.

// Face identifies one of the six flat box faces.
type Face int

// Faces in vertex-buffer order.
const (
	FaceFront Face = iota // +Z
	FaceBack              // -Z
	FaceRight             // +X
	FaceLeft              // -X
	FaceTop               // +Y
	FaceBottom            // -Y
	faceCount
)

// faceTriangles covers the six inset faces, two triangles each,
// wound counter-clockwise as seen along the face normal.
var faceTriangles = [faceCount][6]uint32{
	FaceFront:  {0, 1, 2, 2, 3, 0},
	FaceBack:   {4, 5, 6, 6, 7, 4},
	FaceRight:  {8, 9, 10, 10, 11, 8},
	FaceLeft:   {12, 13, 14, 14, 15, 12},
	FaceTop:    {16, 17, 18, 18, 19, 16},
	FaceBottom: {20, 21, 22, 22, 23, 20},
}

// Edge identifies a beveled box edge, named by its two adjacent faces.
type Edge int

// The four left-side edges come first: partial fidelity emits exactly
// that prefix, an asymmetry kept for compatibility with earlier output.
const (
	EdgeFrontLeft Edge = iota
	EdgeTopLeft
	EdgeBackLeft
	EdgeBottomLeft
	EdgeFrontRight
	EdgeTopRight
	EdgeBackRight
	EdgeBottomRight
	EdgeFrontTop
	EdgeFrontBottom
	EdgeBackTop
	EdgeBackBottom
	edgeCount

	partialEdgeCount = 4
)

// edgeBands bridges the inset gap along each edge with a flat quad.
var edgeBands = [edgeCount][6]uint32{
	EdgeFrontLeft:   {0, 3, 13, 13, 12, 0},
	EdgeTopLeft:     {18, 17, 13, 14, 13, 17},
	EdgeBackLeft:    {4, 7, 14, 14, 7, 15},
	EdgeBottomLeft:  {22, 21, 15, 12, 15, 21},
	EdgeFrontRight:  {2, 1, 11, 11, 10, 2},
	EdgeTopRight:    {19, 10, 9, 9, 16, 19},
	EdgeBackRight:   {6, 5, 9, 9, 8, 6},
	EdgeBottomRight: {20, 23, 8, 8, 11, 20},
	EdgeFrontTop:    {3, 2, 19, 19, 18, 3},
	EdgeFrontBottom: {1, 0, 21, 21, 20, 1},
	EdgeBackTop:     {5, 4, 17, 17, 16, 5},
	EdgeBackBottom:  {7, 6, 23, 23, 22, 7},
}

// Corner identifies a box corner by the sign of each axis.
type Corner int

// Corners, named (x sign)(y sign)(z sign).
const (
	CornerPPP Corner = iota
	CornerNPP
	CornerPNP
	CornerNNP
	CornerPPN
	CornerNPN
	CornerPNN
	CornerNNN
	cornerCount
)

// cornerTriangles closes the triangular hole where three edge bands meet.
var cornerTriangles = [cornerCount][3]uint32{
	CornerPPP: {2, 10, 19},
	CornerNPP: {3, 18, 13},
	CornerPNP: {1, 20, 11},
	CornerNNP: {0, 12, 21},
	CornerPPN: {5, 16, 9},
	CornerNPN: {4, 14, 17},
	CornerPNN: {6, 8, 23},
	CornerNNN: {7, 22, 15},
}
