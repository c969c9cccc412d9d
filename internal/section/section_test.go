package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectangleProperties(t *testing.T) {
	s := Rectangle(300, 500)
	require.NoError(t, s.Validate())

	p := s.CalculateProperties()
	assert.InDelta(t, 150000, p.Area, 1e-6)
	assert.InDelta(t, 150, p.CentroidX, 1e-9)
	assert.InDelta(t, 250, p.CentroidY, 1e-9)
	assert.InDelta(t, 300*500*500*500/12.0, p.Ixx, 1e-3)
	assert.InDelta(t, 250, p.CTop, 1e-9)
	assert.InDelta(t, 300*500*500/6.0, p.STop, 1e-3)
	assert.InDelta(t, p.STop, p.SBottom, 1e-6)
	assert.InDelta(t, 300*500*500*500/12.0*1e-12, p.InertiaM4(), 1e-15)
	assert.Equal(t, 300.0, s.WidthAtDepth(100))
}

func TestClockwiseWindingGivesSameInertia(t *testing.T) {
	ccw := Rectangle(200, 400)
	cw := &Section{Vertices: []Point{{0, 0}, {0, 400}, {200, 400}, {200, 0}}}

	a := ccw.CalculateProperties()
	b := cw.CalculateProperties()
	assert.InDelta(t, a.Area, b.Area, 1e-9)
	assert.InDelta(t, a.Ixx, b.Ixx, 1e-3)
	assert.InDelta(t, a.CentroidY, b.CentroidY, 1e-9)
}

func TestTeeSection(t *testing.T) {
	// 600x100 flange over a 200x400 web
	s := &Section{Vertices: []Point{
		{200, 0}, {400, 0}, {400, 400}, {600, 400},
		{600, 500}, {0, 500}, {0, 400}, {200, 400},
	}}
	p := s.CalculateProperties()

	assert.InDelta(t, 140000, p.Area, 1e-6)
	yBar := (80000*200.0 + 60000*450.0) / 140000
	assert.InDelta(t, yBar, p.CentroidY, 1e-9)

	web := 200*400*400*400/12.0 + 80000*(200-yBar)*(200-yBar)
	flange := 600*100*100*100/12.0 + 60000*(450-yBar)*(450-yBar)
	assert.InDelta(t, web+flange, p.Ixx, 1e-2)
	assert.InDelta(t, 600, s.WidthAtDepth(50), 1e-9)
	assert.InDelta(t, 200, s.WidthAtDepth(300), 1e-9)
	assert.Greater(t, p.SBottom, 0.0)
	assert.Less(t, p.CTop, p.CBottom)
}

func TestStressAt(t *testing.T) {
	p := Rectangle(300, 500).CalculateProperties()
	top := p.StressAt(100, 500)
	bottom := p.StressAt(100, 0)
	assert.InDelta(t, -100e6/p.STop, top, 1e-9)
	assert.InDelta(t, -top, bottom, 1e-9)
	assert.Equal(t, 0.0, p.StressAt(100, p.CentroidY))
}

func TestValidate(t *testing.T) {
	err := (&Section{Vertices: []Point{{0, 0}, {1, 1}}}).Validate()
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)

	err = (&Section{Vertices: []Point{{0, 0}, {1, 1}, {2, 2}}}).Validate()
	assert.ErrorAs(t, err, &verr)
	assert.EqualError(t, err, "section has zero area")
}
