package registry_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/gridpark/parkrouter/registry"
)

type RegistrySuite struct {
	suite.Suite
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistrySuite))
}

func (s *RegistrySuite) TestInsertAndLookup() {
	require := require.New(s.T())
	r := registry.New(8)
	r.Insert("A1", 42)
	require.Equal(42, r.Lookup("A1"))
}

func (s *RegistrySuite) TestLookupMissingReturnsNotFound() {
	require := require.New(s.T())
	r := registry.New(8)
	require.Equal(registry.NotFound, r.Lookup("ghost"))
}

func (s *RegistrySuite) TestInsertOverwritesExisting() {
	require := require.New(s.T())
	r := registry.New(8)
	r.Insert("A1", 1)
	r.Insert("A1", 2)
	require.Equal(2, r.Lookup("A1"))
	require.Equal(1, r.Len())
}

func (s *RegistrySuite) TestDeleteRemovesBinding() {
	require := require.New(s.T())
	r := registry.New(8)
	r.Insert("A1", 1)
	r.Delete("A1")
	require.Equal(registry.NotFound, r.Lookup("A1"))
	require.Equal(0, r.Len())
}

func (s *RegistrySuite) TestDeleteMissingIsNoop() {
	require := require.New(s.T())
	r := registry.New(8)
	require.NotPanics(func() { r.Delete("ghost") })
}

func (s *RegistrySuite) TestCollisionsChainCorrectly() {
	require := require.New(s.T())
	// Force every key into bucket 0 by using a single-bucket table.
	r := registry.NewWithPrime(1, 31)
	r.Insert("alpha", 1)
	r.Insert("beta", 2)
	r.Insert("gamma", 3)

	require.Equal(1, r.Lookup("alpha"))
	require.Equal(2, r.Lookup("beta"))
	require.Equal(3, r.Lookup("gamma"))
	require.Equal(3, r.Len())
}

func (s *RegistrySuite) TestManyKeysRoundTrip() {
	require := require.New(s.T())
	r := registry.New(16)
	for i := 0; i < 200; i++ {
		key := string(rune('a'+i%26)) + string(rune(i))
		r.Insert(key, i)
	}
	for i := 0; i < 200; i++ {
		key := string(rune('a'+i%26)) + string(rune(i))
		require.Equal(i, r.Lookup(key))
	}
}
