package grid

// Config is the fully-parsed, validated static description of a car park:
// N x M x P cells (N=columns, M=rows, P=floors), plus entrances and access
// points. Parsing the ASCII config file into a Config is an I/O concern
// (package ioformat); Config itself is the boundary type the core consumes,
// per spec.md §1/§6.
//
// Config deep-copies its cell data in NewConfig; afterwards the only change
// it admits is a cell's role, through SetRoleAt.
type Config struct {
	N, M, P      int
	cells        []Role // flat, index(x,y,z) order
	Entrances    []Entrance
	AccessPoints []AccessPoint
}

// NewConfig validates dimensions and deep-copies cells (which must already
// be in index(x,y,z) flat order, length N*M*P) into a new Config.
//
// Returns ErrEmptyGrid if any dimension is <= 0, ErrNonRectangular if
// len(cells) != N*M*P.
//
// Complexity: O(N*M*P).
func NewConfig(n, m, p int, cells []Role, entrances []Entrance, access []AccessPoint) (*Config, error) {
	if n <= 0 || m <= 0 || p <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(cells) != n*m*p {
		return nil, ErrNonRectangular
	}

	cp := make([]Role, len(cells))
	copy(cp, cells)

	ent := make([]Entrance, len(entrances))
	copy(ent, entrances)

	acc := make([]AccessPoint, len(access))
	copy(acc, access)

	return &Config{N: n, M: m, P: p, cells: cp, Entrances: ent, AccessPoints: acc}, nil
}

// InBounds reports whether c lies within [0,N)x[0,M)x[0,P).
// Complexity: O(1).
func (cfg *Config) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < cfg.N &&
		c.Y >= 0 && c.Y < cfg.M &&
		c.Z >= 0 && c.Z < cfg.P
}

// index maps a coordinate to its flat offset: x + N*y + N*M*z.
func (cfg *Config) index(c Coord) int {
	return c.X + cfg.N*c.Y + cfg.N*cfg.M*c.Z
}

// RoleAt returns the role stored at c. Panics if c is out of bounds — callers
// are expected to have checked InBounds (this mirrors Go slice-index
// semantics and keeps the hot compiler loop branch-free).
func (cfg *Config) RoleAt(c Coord) Role {
	return cfg.cells[cfg.index(c)]
}

// SetRoleAt overwrites the role stored at c. Used by the park model to
// reflect a vehicle parking (role -> RoleOccupiedSpot) or a spot clearing
// (role -> RoleFreeSpot); restriction windows do not change roles, only
// graph activity (see package park).
func (cfg *Config) SetRoleAt(c Coord, r Role) {
	cfg.cells[cfg.index(c)] = r
}

// EachCell calls fn once for every coordinate in the grid, in increasing
// index(x,y,z) order (x fastest, then y, then z) — the order the graph
// compiler relies on for deterministic edge insertion order.
func (cfg *Config) EachCell(fn func(c Coord, r Role)) {
	for z := 0; z < cfg.P; z++ {
		for y := 0; y < cfg.M; y++ {
			for x := 0; x < cfg.N; x++ {
				c := Coord{X: x, Y: y, Z: z}
				fn(c, cfg.cells[cfg.index(c)])
			}
		}
	}
}
