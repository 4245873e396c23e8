package crane

// Dimensions describes the structure of the scene. All lengths are in
// world units; the floor top sits on y = 0 and the tower axis on x = z = 0.
type Dimensions struct {
	T1 int // cube frames in the first tower section
	T2 int // cube frames in the second tower section
	T3 int // prisms in the forward arm, minus one
	T4 int // prisms in the backward arm

	E1, E2, E3 float32 // beam thickness: first section, second section, top bar
	L1, L2, L3 float32 // beam length: first section, second section, top bar

	FloorTiles     int     // tiles per floor side, odd so the tower stands on a tile center
	FloorTileSize  float32 // side of one floor tile
	FloorThickness float32

	RotatorHeight   float32
	RotatorDiameter float32

	CartLength, CartWidth, CartHeight float32
	RopeDiameter                      float32
	MinRopeLength                     float32

	WeightSize       float32 // side of the counterweight block
	WeightRopeLength float32 // length of the four ropes holding it
}

// DefaultSegments is the number of cube frames in the first tower
// section of the stock crane.
const DefaultSegments = 11

// DefaultDimensions returns the proportions of the stock crane.
func DefaultDimensions() Dimensions { return NewDimensions(DefaultSegments) }

// NewDimensions returns the stock proportions for a crane whose first
// tower section has t1 cube frames. The other counts follow from it.
func NewDimensions(t1 int) Dimensions {
	const (
		e1 = 0.1
		l1 = 10 * e1
		l2 = l1 - 2*e1
	)
	return Dimensions{
		T1: t1,
		T2: t1 + 5,
		T3: t1,
		T4: t1 / 3,

		E1: e1, E2: e1, E3: e1,
		L1: l1, L2: l2, L3: l2,

		FloorTiles:     21,
		FloorTileSize:  2 * l1,
		FloorThickness: 2 * l1 / 100,

		RotatorHeight:   l2 / 2,
		RotatorDiameter: l2,

		CartLength:    l2 / 2,
		CartWidth:     l2,
		CartHeight:    e1,
		RopeDiameter:  e1 / 2,
		MinRopeLength: l2 / 2,

		WeightSize:       l2,
		WeightRopeLength: l2,
	}
}

// TowerTop returns the height of the rotator base for a given second
// section height.
func (d Dimensions) TowerTop(sectionHeight float32) float32 {
	return sectionHeight + float32(d.T2)*d.L2
}

// BarBase returns the height of the underside of the top bar.
func (d Dimensions) BarBase(sectionHeight float32) float32 {
	return d.TowerTop(sectionHeight) + d.RotatorHeight
}

// Limits returns the clamp bounds implied by d.
func (d Dimensions) Limits() Limits {
	return Limits{
		MinSectionHeight: d.L1,
		MaxSectionHeight: float32(d.T1) * d.L1,
		MinRopeLength:    d.MinRopeLength,
		MinCartPosition:  d.RotatorDiameter/2 + d.CartLength/2,
		MaxCartPosition:  float32(d.T3+1)*d.L3 - d.CartLength/2,
		dim:              d,
	}
}

// Limits are the bounds the pose parameters are clamped to.
type Limits struct {
	MinSectionHeight, MaxSectionHeight float32
	MinRopeLength                      float32
	MinCartPosition, MaxCartPosition   float32

	dim Dimensions
}

// MaxRopeLength returns the longest rope that still clears the floor
// when the second section sits at sectionHeight.
func (l Limits) MaxRopeLength(sectionHeight float32) float32 {
	return l.dim.BarBase(sectionHeight) - l.dim.CartHeight
}
