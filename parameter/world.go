package parameter

// World
const (
	// MapWidth is the toroidal world width (world units)
	MapWidth = 3000.0

	// MapHeight is the toroidal world height (world units)
	MapHeight = 3000.0

	// ViewportWidth is the camera width used for off-screen spawn placement
	ViewportWidth = 1280.0

	// ViewportHeight is the camera height used for off-screen spawn placement
	ViewportHeight = 720.0

	// SpawnEdgeOffset pushes new enemies this far outside the viewport edge
	SpawnEdgeOffset = 50.0
)

// Spatial Grid
const (
	// GridCellSize is the side of one square grid cell (world units)
	GridCellSize = 128.0
)
