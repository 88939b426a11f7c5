package locator

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridseek/cipher"
	"github.com/katalvlaran/gridseek/grid"
	"github.com/katalvlaran/gridseek/search"
)

// Match is the outcome of a successful query.
//   - Label: the cell's label, re-encoded with the device shift.
//   - Coord: the matching cell.
//   - Scans: the cumulative counter after this call.
//   - CallScans: the cost charged by this call alone.
//   - Inspected: exact cell reads performed by this call.
type Match struct {
	Label     string
	Coord     grid.Coordinate
	Scans     int
	CallScans int
	Inspected int
}

// Device is a search session over one encoded grid.
type Device struct {
	height, width int
	encLabels     []string
	encValues     []string
	codec         cipher.Codec

	grid    *grid.Grid
	labels  map[grid.Coordinate]string
	counter search.Counter
	last    int

	log *zap.Logger
}

// New creates a Device for a height×width grid. encLabels and encValues are
// flat, row-major lists of encoded strings; they are copied and checked
// against the dimensions when the corresponding build runs.
// Returns cipher.ErrShift for a shift outside [0,26] and grid.ErrShape for
// non-positive dimensions.
func New(height, width int, encLabels, encValues []string, shift int, opts ...Option) (*Device, error) {
	codec, err := cipher.NewCodec(shift)
	if err != nil {
		return nil, err
	}
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d must be positive", grid.ErrShape, height, width)
	}
	d := &Device{
		height:    height,
		width:     width,
		encLabels: append([]string(nil), encLabels...),
		encValues: append([]string(nil), encValues...),
		codec:     codec,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}

	return d, nil
}

// BuildLabelMap decodes the encoded labels into the coordinate→label map.
// On error the previous map, if any, is kept.
func (d *Device) BuildLabelMap() error {
	labels, err := grid.BuildLabels(d.codec, d.encLabels, d.height, d.width)
	if err != nil {
		d.log.Debug("label map build failed", zap.Error(err))
		return err
	}
	d.labels = labels
	d.log.Debug("label map built", zap.Int("height", d.height), zap.Int("width", d.width), zap.Int("labels", len(labels)))

	return nil
}

// BuildGrid decodes the encoded values into the search grid.
// On error the previous grid, if any, is kept.
func (d *Device) BuildGrid() error {
	g, err := grid.BuildValues(d.codec, d.encValues, d.height, d.width)
	if err != nil {
		d.log.Debug("grid build failed", zap.Error(err))
		return err
	}
	d.grid = g
	d.log.Debug("grid built", zap.Int("height", d.height), zap.Int("width", d.width), zap.Bool("monotone", g.IsMonotone()))

	return nil
}

// Locate runs the divide-and-conquer search over the full grid and returns
// the encoded label of the matching cell. ok is false when value is absent
// or the device has not been built.
func (d *Device) Locate(value float64) (Match, bool) {
	return d.locate("divconq", search.Search, value)
}

// LocateLinear answers the same query through the linear baseline, sharing
// the device counter.
func (d *Device) LocateLinear(value float64) (Match, bool) {
	return d.locate("linear", search.LinearScan, value)
}

func (d *Device) locate(algo string, fn func(*grid.Grid, float64, ...search.Option) search.Result, value float64) (Match, bool) {
	res := fn(d.grid, value, search.WithCounter(&d.counter))
	d.last = res.Scanned
	if !res.Found {
		d.log.Debug("value not found",
			zap.String("algo", algo), zap.Float64("value", value), zap.Int("scans", d.counter.Total()))
		return Match{}, false
	}
	label, ok := d.labels[res.Coord]
	if !ok {
		// grid built but label map missing
		d.log.Debug("no label for coordinate", zap.String("algo", algo), zap.Stringer("coord", res.Coord))
		return Match{}, false
	}
	m := Match{
		Label:     d.codec.Encode(label),
		Coord:     res.Coord,
		Scans:     d.counter.Total(),
		CallScans: res.Scanned,
		Inspected: res.Inspected,
	}
	d.log.Debug("value located",
		zap.String("algo", algo), zap.Float64("value", value), zap.Stringer("coord", res.Coord),
		zap.Int("call_scans", res.Scanned), zap.Int("scans", m.Scans))

	return m, true
}

// Scans returns the cumulative scan counter.
func (d *Device) Scans() int {
	return d.counter.Total()
}

// LastScans returns the cost charged by the most recent query.
func (d *Device) LastScans() int {
	return d.last
}

// ResetScans zeroes the cumulative and per-call counters.
func (d *Device) ResetScans() {
	d.counter.Reset()
	d.last = 0
}

// Grid returns the built grid, or nil before BuildGrid succeeds.
func (d *Device) Grid() *grid.Grid {
	return d.grid
}

// Label returns the decoded label at c.
func (d *Device) Label(c grid.Coordinate) (string, bool) {
	l, ok := d.labels[c]
	return l, ok
}

// Shift returns the device's cipher shift.
func (d *Device) Shift() int {
	return d.codec.Shift()
}
