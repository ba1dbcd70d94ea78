package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gridpark/parkrouter/grid"
)

// ParseConfig reads a park configuration: a header line `N M P E S`,
// followed by P floors each made of M rows of exactly N role characters
// (the first row is y=M-1, the last is y=0), then zero or more entrance
// (`E <id> <x> <y> <z> <desc>`) and access (`A <id> <x> <y> <z> <type>`)
// lines, terminated by a `+` line (spec.md §6). E and S in the header are
// the total entrance and access-point counts across every floor; a mismatch
// against what is actually found is a BadConfig error, the same as the
// C source's "wrong format" fscanf checks in parkmap.c's mapInit.
func ParseConfig(r io.Reader) (*grid.Config, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	n, m, p, wantEntrances, wantAccess, err := parseHeader(sc)
	if err != nil {
		return nil, err
	}

	cells := make([]grid.Role, n*m*p)
	var entrances []grid.Entrance
	var access []grid.AccessPoint

	for z := 0; z < p; z++ {
		if err := readFloorGrid(sc, cells, n, m, z); err != nil {
			return nil, err
		}

		ent, acc, err := readFloorPoints(sc, z)
		if err != nil {
			return nil, err
		}
		entrances = append(entrances, ent...)
		access = append(access, acc...)
	}

	if len(entrances) != wantEntrances || len(access) != wantAccess {
		return nil, fmt.Errorf("%w: header declared %d entrances and %d access points, found %d and %d",
			ErrBadConfig, wantEntrances, wantAccess, len(entrances), len(access))
	}

	return grid.NewConfig(n, m, p, cells, entrances, access)
}

func parseHeader(sc *bufio.Scanner) (n, m, p, entranceCount, accessCount int, err error) {
	if !sc.Scan() {
		return 0, 0, 0, 0, 0, fmt.Errorf("%w: missing header line", ErrBadConfig)
	}
	fields := strings.Fields(sc.Text())
	if len(fields) != 5 {
		return 0, 0, 0, 0, 0, fmt.Errorf("%w: header has %d fields, want 5", ErrBadConfig, len(fields))
	}
	vals := make([]int, 5)
	for i, f := range fields {
		v, cerr := strconv.Atoi(f)
		if cerr != nil {
			return 0, 0, 0, 0, 0, fmt.Errorf("%w: header field %q: %v", ErrBadConfig, f, cerr)
		}
		vals[i] = v
	}
	if vals[0] <= 0 || vals[1] <= 0 || vals[2] <= 0 {
		return 0, 0, 0, 0, 0, fmt.Errorf("%w: grid dimensions %d x %d x %d must all be positive", ErrBadConfig, vals[0], vals[1], vals[2])
	}
	return vals[0], vals[1], vals[2], vals[3], vals[4], nil
}

// readFloorGrid reads M rows of exactly N characters for floor z, writing
// into cells at the flat index x + n*y + n*m*z. The first row read is
// y=m-1, the last is y=0.
func readFloorGrid(sc *bufio.Scanner, cells []grid.Role, n, m, z int) error {
	for i := 0; i < m; i++ {
		if !sc.Scan() {
			return fmt.Errorf("%w: floor %d: missing grid row %d", ErrBadConfig, z, i)
		}
		row := sc.Text()
		if len(row) != n {
			return fmt.Errorf("%w: floor %d: row has %d cells, want %d", ErrBadConfig, z, len(row), n)
		}
		y := m - 1 - i
		for x := 0; x < n; x++ {
			cells[x+n*y+n*m*z] = grid.Role(row[x])
		}
	}
	return nil
}

// readFloorPoints reads the E/A lines that follow a floor's grid, up to and
// including the terminating '+' line.
func readFloorPoints(sc *bufio.Scanner, z int) ([]grid.Entrance, []grid.AccessPoint, error) {
	var entrances []grid.Entrance
	var access []grid.AccessPoint

	for {
		if !sc.Scan() {
			return nil, nil, fmt.Errorf("%w: floor %d: missing '+' terminator", ErrBadConfig, z)
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == "+" {
			return entrances, access, nil
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "E":
			ent, err := parseEntranceLine(fields)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: floor %d: %v", ErrBadConfig, z, err)
			}
			entrances = append(entrances, ent)
		case "A":
			ap, err := parseAccessLine(fields)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: floor %d: %v", ErrBadConfig, z, err)
			}
			access = append(access, ap)
		default:
			return nil, nil, fmt.Errorf("%w: floor %d: unrecognized line %q", ErrBadConfig, z, line)
		}
	}
}

func parseEntranceLine(fields []string) (grid.Entrance, error) {
	if len(fields) != 6 {
		return grid.Entrance{}, fmt.Errorf("entrance line has %d fields, want 6", len(fields))
	}
	x, y, z, err := parseCoordFields(fields[2], fields[3], fields[4])
	if err != nil {
		return grid.Entrance{}, err
	}
	if len(fields[5]) != 1 {
		return grid.Entrance{}, fmt.Errorf("entrance descriptor %q is not a single character", fields[5])
	}
	return grid.Entrance{ID: fields[1], At: grid.Coord{X: x, Y: y, Z: z}, Desc: fields[5][0]}, nil
}

func parseAccessLine(fields []string) (grid.AccessPoint, error) {
	if len(fields) != 6 {
		return grid.AccessPoint{}, fmt.Errorf("access line has %d fields, want 6", len(fields))
	}
	x, y, z, err := parseCoordFields(fields[2], fields[3], fields[4])
	if err != nil {
		return grid.AccessPoint{}, err
	}
	if len(fields[5]) != 1 {
		return grid.AccessPoint{}, fmt.Errorf("access type %q is not a single character", fields[5])
	}
	return grid.AccessPoint{ID: fields[1], At: grid.Coord{X: x, Y: y, Z: z}, Type: fields[5][0]}, nil
}

func parseCoordFields(xs, ys, zs string) (x, y, z int, err error) {
	if x, err = strconv.Atoi(xs); err != nil {
		return 0, 0, 0, err
	}
	if y, err = strconv.Atoi(ys); err != nil {
		return 0, 0, 0, err
	}
	if z, err = strconv.Atoi(zs); err != nil {
		return 0, 0, 0, err
	}
	return x, y, z, nil
}
