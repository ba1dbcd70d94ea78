package grid

import "sort"

// TypeDict is a deterministic bijection between an access-point type byte
// and a dense synthetic sink index 0..len(types)-1. Every distinct pedestrian
// destination type gets exactly one sink node (spec.md §3's "one sink per
// access type"); the dictionary is what lets the compiler number those sinks
// and lets the scheduler translate a vehicle's declared type into its target
// sink.
type TypeDict struct {
	typeToIdx map[byte]int
	idxToType []byte
}

// NewTypeDict builds a TypeDict over the distinct types found in access. The
// mapping from type to index is deterministic: types are sorted ascending by
// byte value before indices are assigned, so two grids with the same set of
// access types always number them identically regardless of input order.
func NewTypeDict(access []AccessPoint) *TypeDict {
	seen := make(map[byte]bool)
	for _, a := range access {
		seen[a.Type] = true
	}

	types := make([]byte, 0, len(seen))
	for t := range seen {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	d := &TypeDict{
		typeToIdx: make(map[byte]int, len(types)),
		idxToType: types,
	}
	for i, t := range types {
		d.typeToIdx[t] = i
	}
	return d
}

// Len returns the number of distinct access types, i.e. the number of sink
// nodes the routing graph must reserve.
func (d *TypeDict) Len() int {
	return len(d.idxToType)
}

// IndexOf returns the sink index for a given access type, or ErrUnknownAccessType
// if the type was never observed among the grid's access points.
func (d *TypeDict) IndexOf(t byte) (int, error) {
	idx, ok := d.typeToIdx[t]
	if !ok {
		return 0, ErrUnknownAccessType
	}
	return idx, nil
}

// TypeAt returns the access type byte stored at sink index idx. Panics if
// idx is out of [0,Len()) — callers own bounds-checking via Len.
func (d *TypeDict) TypeAt(idx int) byte {
	return d.idxToType[idx]
}
