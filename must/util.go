package must

const (
	tolerance = 1e-9
	// epsilon bounds the squared norm below which a sum of unit normals is
	// considered to vanish.
	epsilon = 1e-12
)
