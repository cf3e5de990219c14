package bmi

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

var errMalformedTable = errors.New("malformed growth table")

// Curve is the BMI of a percentile curve at a given age.
type Curve struct {
	Percentile float64 `json:"percentile"`
	BMI        float64 `json:"bmi"`
}

// GrowthRow holds the percentile curves tabulated for one age.
type GrowthRow struct {
	AgeMonths int     `json:"age_months"`
	Curves    []Curve `json:"curves"`
}

// GrowthTable is an immutable BMI-for-age reference, keyed by gender.
// It is safe for concurrent use.
type GrowthTable struct {
	rows map[Gender][]GrowthRow
}

// NewGrowthTable copies and checks the given rows. Both genders are required;
// within a gender rows must be in increasing age order and share the same percentiles,
// and each row's curves must increase in both percentile and BMI.
func NewGrowthTable(rows map[Gender][]GrowthRow) (*GrowthTable, error) {
	t := &GrowthTable{rows: make(map[Gender][]GrowthRow, len(rows))}
	for _, g := range Genders {
		gRows, ok := rows[g]
		if !ok || len(gRows) == 0 {
			return nil, errors.Wrapf(errMalformedTable, "no rows for %s", g)
		}
		if err := checkRows(gRows); err != nil {
			return nil, errors.Wrapf(err, "%s rows", g)
		}
		t.rows[g] = copyRows(gRows)
	}
	return t, nil
}

func checkRows(rows []GrowthRow) error {
	for i, row := range rows {
		if len(row.Curves) < 2 {
			return errors.Wrapf(errMalformedTable, "row %d: at least 2 curves are required", i)
		}
		if i > 0 {
			prev := rows[i-1]
			if row.AgeMonths <= prev.AgeMonths {
				return errors.Wrapf(errMalformedTable, "row %d: ages must increase", i)
			}
			if len(row.Curves) != len(prev.Curves) {
				return errors.Wrapf(errMalformedTable, "row %d: curves count differs", i)
			}
		}
		for j, c := range row.Curves {
			if c.Percentile < 0 || c.Percentile > 100 {
				return errors.Wrapf(errMalformedTable, "row %d: percentile %v out of range", i, c.Percentile)
			}
			if i > 0 && rows[0].Curves[j].Percentile != c.Percentile {
				return errors.Wrapf(errMalformedTable, "row %d: percentiles differ", i)
			}
			if j > 0 {
				prev := row.Curves[j-1]
				if c.Percentile <= prev.Percentile || c.BMI <= prev.BMI {
					return errors.Wrapf(errMalformedTable, "row %d: curves must increase", i)
				}
			}
		}
	}
	return nil
}

func copyRows(rows []GrowthRow) []GrowthRow {
	out := make([]GrowthRow, len(rows))
	for i, row := range rows {
		out[i] = GrowthRow{AgeMonths: row.AgeMonths, Curves: append([]Curve(nil), row.Curves...)}
	}
	return out
}

// rowsFor falls back to the male rows for unknown genders.
func (t *GrowthTable) rowsFor(g Gender) []GrowthRow {
	if rows, ok := t.rows[g]; ok {
		return rows
	}
	return t.rows[Male]
}

// Rows returns a copy of the rows of the given gender.
func (t *GrowthTable) Rows(g Gender) []GrowthRow {
	return copyRows(t.rowsFor(g))
}

// Percentiles returns the percentile curves tabulated for the given gender.
func (t *GrowthTable) Percentiles(g Gender) []float64 {
	first := t.rowsFor(g)[0]
	out := make([]float64, len(first.Curves))
	for i, c := range first.Curves {
		out[i] = c.Percentile
	}
	return out
}

// Domain returns the first and last tabulated ages, in months.
func (t *GrowthTable) Domain(g Gender) (minMonths, maxMonths int) {
	rows := t.rowsFor(g)
	return rows[0].AgeMonths, rows[len(rows)-1].AgeMonths
}

// CurvesAt returns the curves at ageMonths, linearly interpolated between the two
// nearest rows. Ages outside the table are clamped to its first or last row.
func (t *GrowthTable) CurvesAt(g Gender, ageMonths float64) []Curve {
	rows := t.rowsFor(g)
	first, last := rows[0], rows[len(rows)-1]
	switch {
	case math.IsNaN(ageMonths) || ageMonths <= float64(first.AgeMonths):
		return append([]Curve(nil), first.Curves...)
	case ageMonths >= float64(last.AgeMonths):
		return append([]Curve(nil), last.Curves...)
	}

	// first row strictly older than ageMonths; 1 <= i < len(rows)
	i := sort.Search(len(rows), func(i int) bool { return float64(rows[i].AgeMonths) > ageMonths })
	lo, hi := rows[i-1], rows[i]
	frac := (ageMonths - float64(lo.AgeMonths)) / float64(hi.AgeMonths-lo.AgeMonths)

	curves := make([]Curve, len(lo.Curves))
	for j := range lo.Curves {
		curves[j] = Curve{
			Percentile: lo.Curves[j].Percentile,
			BMI:        lo.Curves[j].BMI + frac*(hi.Curves[j].BMI-lo.Curves[j].BMI),
		}
	}
	return curves
}

// Percentile returns the percentile of bmi for a child of the given gender and age,
// in [0, 100]. It interpolates linearly between the two nearest curves; beyond the
// outermost curves the slope of the nearest segment is extended, then clamped.
func (t *GrowthTable) Percentile(g Gender, ageMonths, bmi float64) float64 {
	return percentileOf(t.CurvesAt(g, ageMonths), bmi)
}

func percentileOf(curves []Curve, bmi float64) float64 {
	n := len(curves)
	var lo, hi Curve
	switch {
	case math.IsNaN(bmi):
		return 0
	case bmi <= curves[0].BMI:
		lo, hi = curves[0], curves[1]
	case bmi >= curves[n-1].BMI:
		lo, hi = curves[n-2], curves[n-1]
	default:
		i := sort.Search(n, func(i int) bool { return curves[i].BMI >= bmi })
		lo, hi = curves[i-1], curves[i]
	}
	p := lo.Percentile + (bmi-lo.BMI)*(hi.Percentile-lo.Percentile)/(hi.BMI-lo.BMI)
	return math.Max(0, math.Min(100, p))
}
