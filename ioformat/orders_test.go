package ioformat_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/gridpark/parkrouter/grid"
	"github.com/gridpark/parkrouter/ioformat"
	"github.com/gridpark/parkrouter/scheduler"
)

type OrdersSuite struct {
	suite.Suite
}

func TestOrdersSuite(t *testing.T) {
	suite.Run(t, new(OrdersSuite))
}

func (s *OrdersSuite) TestParseOrdersAllThreeShapes() {
	require := require.New(s.T())
	text := `V car1 0 t 0 0 0
V car1 10
V car2 5 S 1 2 0
# a comment line some generators leave, ignored because it doesn't start with V
`
	orders, err := ioformat.ParseOrders(strings.NewReader(text))
	require.NoError(err)
	require.Len(orders, 3)

	require.Equal(scheduler.ArrivalOrder{
		ID: "car1", Time: 0, Type: 't', Entrance: grid.Coord{X: 0, Y: 0, Z: 0},
	}, orders[0])

	require.Equal(scheduler.ArrivalOrder{
		ID: "car1", Time: 10, IsDeparture: true,
	}, orders[1])

	require.Equal(scheduler.ArrivalOrder{
		ID: "car2", Time: 5, IsDeparture: true, ByCoord: true, Spot: grid.Coord{X: 1, Y: 2, Z: 0},
	}, orders[2])
}

func (s *OrdersSuite) TestParseOrdersRejectsWrongFieldCount() {
	require := require.New(s.T())
	_, err := ioformat.ParseOrders(strings.NewReader("V car1 0 t 0 0\n"))
	require.ErrorIs(err, ioformat.ErrBadOrder)
}

func (s *OrdersSuite) TestParseRestrictionsBothShapes() {
	require := require.New(s.T())
	text := `R 5 10 1 2 0
R 20 30 3
`
	orders, err := ioformat.ParseRestrictions(strings.NewReader(text))
	require.NoError(err)
	require.Len(orders, 2)

	require.Equal(scheduler.RestrictionOrder{
		TimeA: 5, TimeB: 10,
		Scope: scheduler.RestrictionScope{Kind: scheduler.ScopeCell, Cell: grid.Coord{X: 1, Y: 2, Z: 0}},
	}, orders[0])

	require.Equal(scheduler.RestrictionOrder{
		TimeA: 20, TimeB: 30,
		Scope: scheduler.RestrictionScope{Kind: scheduler.ScopeFloor, Floor: 3},
	}, orders[1])
}

func (s *OrdersSuite) TestParseRestrictionsRejectsWrongFieldCount() {
	require := require.New(s.T())
	_, err := ioformat.ParseRestrictions(strings.NewReader("R 5 10\n"))
	require.ErrorIs(err, ioformat.ErrBadRestriction)
}
