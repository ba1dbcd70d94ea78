package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gridpark/parkrouter/grid"
	"github.com/gridpark/parkrouter/scheduler"
)

// departureTypeSentinel is the access-type byte loadInstructionFile treats
// as "this V line names a spot coordinate, not an access type": the
// departure-by-coord form original_source/gestor.c parses but spec.md §6's
// distilled grammar omits (SPEC_FULL.md §6).
const departureTypeSentinel = 'S'

// ParseOrders reads V lines in any of the three accepted shapes:
//
//	V <id> <t> <type> <x> <y> <z>   arrival, requesting access type <type>
//	V <id> <t> S <x> <y> <z>        departure-by-coord, clearing spot (x,y,z)
//	V <id> <t>                      departure-by-id
//
// Lines not starting with "V" are ignored, mirroring loadInstructionFile's
// fgetc loop skipping everything until the next 'V'.
func ParseOrders(r io.Reader) ([]scheduler.ArrivalOrder, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var orders []scheduler.ArrivalOrder
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if fields[0] != "V" {
			continue
		}

		order, err := parseOrderLine(fields)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func parseOrderLine(fields []string) (scheduler.ArrivalOrder, error) {
	switch len(fields) {
	case 3:
		t, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return scheduler.ArrivalOrder{}, fmt.Errorf("%w: %v", ErrBadOrder, err)
		}
		return scheduler.ArrivalOrder{ID: fields[1], Time: t, IsDeparture: true}, nil

	case 7:
		t, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return scheduler.ArrivalOrder{}, fmt.Errorf("%w: %v", ErrBadOrder, err)
		}
		if len(fields[3]) != 1 {
			return scheduler.ArrivalOrder{}, fmt.Errorf("%w: type %q is not a single character", ErrBadOrder, fields[3])
		}
		x, y, z, err := parseCoordFields(fields[4], fields[5], fields[6])
		if err != nil {
			return scheduler.ArrivalOrder{}, fmt.Errorf("%w: %v", ErrBadOrder, err)
		}
		coord := grid.Coord{X: x, Y: y, Z: z}

		if fields[3][0] == departureTypeSentinel {
			return scheduler.ArrivalOrder{ID: fields[1], Time: t, IsDeparture: true, ByCoord: true, Spot: coord}, nil
		}
		return scheduler.ArrivalOrder{ID: fields[1], Time: t, Type: fields[3][0], Entrance: coord}, nil

	default:
		return scheduler.ArrivalOrder{}, fmt.Errorf("%w: %d fields, want 3 or 7", ErrBadOrder, len(fields))
	}
}

// ParseRestrictions reads R lines in either accepted shape:
//
//	R <t_a> <t_b> <x> <y> <z>   cell-window restriction
//	R <t_a> <t_b> <z>           floor-window restriction
//
// Lines not starting with "R" are ignored.
func ParseRestrictions(r io.Reader) ([]scheduler.RestrictionOrder, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var orders []scheduler.RestrictionOrder
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if fields[0] != "R" {
			continue
		}

		order, err := parseRestrictionLine(fields)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func parseRestrictionLine(fields []string) (scheduler.RestrictionOrder, error) {
	switch len(fields) {
	case 4:
		ta, tb, floor, err := parseRestrictionTimesAndOne(fields)
		if err != nil {
			return scheduler.RestrictionOrder{}, err
		}
		return scheduler.RestrictionOrder{
			TimeA: ta, TimeB: tb,
			Scope: scheduler.RestrictionScope{Kind: scheduler.ScopeFloor, Floor: floor},
		}, nil

	case 6:
		ta, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return scheduler.RestrictionOrder{}, fmt.Errorf("%w: %v", ErrBadRestriction, err)
		}
		tb, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return scheduler.RestrictionOrder{}, fmt.Errorf("%w: %v", ErrBadRestriction, err)
		}
		x, y, z, err := parseCoordFields(fields[3], fields[4], fields[5])
		if err != nil {
			return scheduler.RestrictionOrder{}, fmt.Errorf("%w: %v", ErrBadRestriction, err)
		}
		return scheduler.RestrictionOrder{
			TimeA: ta, TimeB: tb,
			Scope: scheduler.RestrictionScope{Kind: scheduler.ScopeCell, Cell: grid.Coord{X: x, Y: y, Z: z}},
		}, nil

	default:
		return scheduler.RestrictionOrder{}, fmt.Errorf("%w: %d fields, want 4 or 6", ErrBadRestriction, len(fields))
	}
}

func parseRestrictionTimesAndOne(fields []string) (ta, tb int64, third int, err error) {
	if ta, err = strconv.ParseInt(fields[1], 10, 64); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %v", ErrBadRestriction, err)
	}
	if tb, err = strconv.ParseInt(fields[2], 10, 64); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %v", ErrBadRestriction, err)
	}
	if third, err = strconv.Atoi(fields[3]); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %v", ErrBadRestriction, err)
	}
	return ta, tb, third, nil
}
