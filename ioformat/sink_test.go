package ioformat_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/gridpark/parkrouter/grid"
	"github.com/gridpark/parkrouter/ioformat"
	"github.com/gridpark/parkrouter/trace"
)

type SinkSuite struct {
	suite.Suite
}

func TestSinkSuite(t *testing.T) {
	suite.Run(t, new(SinkSuite))
}

func (s *SinkSuite) TestEmitFormatsRecordLine() {
	require := require.New(s.T())
	var buf strings.Builder
	sink := ioformat.LineSink{W: &buf}

	sink.Emit(trace.Record{VehicleID: "v1", Kind: trace.KindEntry, Time: 3, At: grid.Coord{X: 1, Y: 2, Z: 0}})
	require.Equal("v1 3 1 2 0 i\n", buf.String())
}

func (s *SinkSuite) TestEmitSummaryFormatsXLine() {
	require := require.New(s.T())
	var buf strings.Builder
	sink := ioformat.LineSink{W: &buf}

	sink.EmitSummary(trace.Summary{VehicleID: "v1", TimeIn: 3, TimePark: 5, TimeArrive: 8, Cost: 7})
	require.Equal("v1 3 5 8 7 x\n", buf.String())
}
