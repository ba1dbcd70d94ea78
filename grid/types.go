// Package grid defines the 3-D cell grid, roles, entrances, access points
// and the access-type dictionary that the graph compiler (package compile)
// and the park model (package park) build on.
package grid

// Coord is a single (x, y, z) location in the grid: x = column, y = row,
// z = floor.
type Coord struct {
	X, Y, Z int
}

// Add returns the coordinate shifted by (dx, dy, dz).
func (c Coord) Add(dx, dy, dz int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy, Z: c.Z + dz}
}

// Role is the one-character function of a cell.
type Role byte

// Role values, matching spec.md §3's role table exactly.
const (
	RoleWall          Role = '@'
	RoleDriveway      Role = ' '
	RoleFreeSpot      Role = '.'
	RoleOccupiedSpot  Role = 'x'
	RoleRampUp        Role = 'u'
	RoleRampDown      Role = 'd'
	RoleEntranceMark  Role = 'e'
	RoleAccessMark    Role = 'a'
)

// IsRamp reports whether role is an up- or down-ramp.
func IsRamp(r Role) bool {
	return r == RoleRampUp || r == RoleRampDown
}

// driveTargetRoles are the roles a drive edge may terminate on. Entrances
// and access cells are intentionally excluded: an entrance only ever
// appears as the SOURCE of its one special ingress edge (compile step 5),
// never as a generic neighbor target; access cells are walk-only.
var driveTargetRoles = map[Role]bool{
	RoleDriveway:     true,
	RoleFreeSpot:     true,
	RoleOccupiedSpot: true,
	RoleRampUp:       true,
	RoleRampDown:     true,
}

// IsDriveTarget reports whether a drive edge may terminate at a cell of
// role r (spec.md §4.6's "c' drivable and not entrance/access").
func IsDriveTarget(r Role) bool {
	return driveTargetRoles[r]
}

// driveEmitterRoles are the roles the compiler loops over to EMIT generic
// (non-entrance) drive edges. Parking-spot cells ('.'/'x') are deliberately
// excluded: a spot is drive-in only, it never emits further drive edges —
// the only way out of a spot is the zero-cost bridge to the walk side.
var driveEmitterRoles = map[Role]bool{
	RoleDriveway: true,
	RoleRampUp:   true,
	RoleRampDown: true,
}

// IsDriveEmitter reports whether the compiler emits generic lateral drive
// edges FROM a cell of role r.
func IsDriveEmitter(r Role) bool {
	return driveEmitterRoles[r]
}

// walkTargetRoles are the roles a walk edge may terminate on. Access cells
// ARE included: pedestrians may walk INTO an access cell (and from there
// only onward to its sink — see IsWalkEmitter).
var walkTargetRoles = map[Role]bool{
	RoleDriveway:     true,
	RoleFreeSpot:     true,
	RoleOccupiedSpot: true,
	RoleRampUp:       true,
	RoleRampDown:     true,
	RoleAccessMark:   true,
}

// IsWalkTarget reports whether a walk edge may terminate at a cell of role r.
func IsWalkTarget(r Role) bool {
	return walkTargetRoles[r]
}

// walkEmitterRoles are the roles the compiler loops over to emit generic
// lateral walk edges. Access cells are excluded — their only outgoing edge
// is the zero-cost walk(a) -> sink(type) edge (compile step 6), matching
// the "one-way out" semantics in spec.md §3's role table.
var walkEmitterRoles = map[Role]bool{
	RoleDriveway:     true,
	RoleFreeSpot:     true,
	RoleOccupiedSpot: true,
	RoleRampUp:       true,
	RoleRampDown:     true,
}

// IsWalkEmitter reports whether the compiler emits generic lateral walk
// edges FROM a cell of role r.
func IsWalkEmitter(r Role) bool {
	return walkEmitterRoles[r]
}

// Entrance is a named external vehicle entry point.
type Entrance struct {
	ID   string
	At   Coord
	Desc byte // informational descriptor, not interpreted by the core
}

// AccessPoint is a named pedestrian access point of a given type.
type AccessPoint struct {
	ID   string
	At   Coord
	Type byte
}

// Orthogonal4 lists the four orthogonal neighbor offsets within a floor.
var Orthogonal4 = [4][3]int{
	{1, 0, 0},
	{-1, 0, 0},
	{0, 1, 0},
	{0, -1, 0},
}
