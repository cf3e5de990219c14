package bmi

// CDC 2000 BMI-for-age reference, yearly rows from 2 to 18 years.
// Columns: age in years, then the BMI of each percentile in cdcPercentiles.
// Swap this data (and cdcPercentiles) to use another reference; NewGrowthTable checks its shape.

var cdcPercentiles = []float64{5, 10, 25, 50, 75, 85, 90, 95}

var cdcBoys = [][]float64{
	{2, 14.8, 15.2, 15.8, 16.6, 17.4, 18.0, 18.5, 19.3},
	{3, 14.4, 14.7, 15.3, 16.0, 16.8, 17.3, 17.7, 18.3},
	{4, 14.0, 14.4, 14.9, 15.6, 16.4, 16.9, 17.3, 17.9},
	{5, 13.8, 14.1, 14.7, 15.4, 16.2, 16.8, 17.2, 17.9},
	{6, 13.7, 14.0, 14.6, 15.3, 16.2, 16.8, 17.3, 18.1},
	{7, 13.7, 14.0, 14.6, 15.4, 16.4, 17.1, 17.7, 18.8},
	{8, 13.8, 14.1, 14.7, 15.6, 16.7, 17.6, 18.3, 19.6},
	{9, 13.9, 14.3, 15.0, 15.9, 17.2, 18.2, 19.0, 20.5},
	{10, 14.2, 14.6, 15.3, 16.4, 17.8, 18.9, 19.8, 21.4},
	{11, 14.5, 15.0, 15.8, 16.9, 18.4, 19.6, 20.6, 22.4},
	{12, 15.0, 15.4, 16.3, 17.5, 19.1, 20.4, 21.4, 23.3},
	{13, 15.5, 16.0, 16.8, 18.1, 19.8, 21.1, 22.2, 24.2},
	{14, 16.0, 16.5, 17.4, 18.7, 20.5, 21.9, 22.9, 25.0},
	{15, 16.5, 17.0, 18.0, 19.4, 21.2, 22.6, 23.6, 25.8},
	{16, 17.1, 17.6, 18.5, 20.0, 21.9, 23.3, 24.3, 26.5},
	{17, 17.6, 18.1, 19.1, 20.6, 22.5, 24.0, 25.0, 27.2},
	{18, 18.1, 18.6, 19.6, 21.2, 23.1, 24.6, 25.6, 27.9},
}

var cdcGirls = [][]float64{
	{2, 14.4, 14.8, 15.5, 16.4, 17.2, 17.7, 18.1, 18.7},
	{3, 14.0, 14.4, 15.0, 15.8, 16.6, 17.2, 17.6, 18.3},
	{4, 13.7, 14.0, 14.6, 15.4, 16.3, 16.8, 17.3, 18.0},
	{5, 13.5, 13.9, 14.5, 15.2, 16.1, 16.8, 17.3, 18.2},
	{6, 13.4, 13.8, 14.4, 15.2, 16.2, 17.0, 17.5, 18.6},
	{7, 13.4, 13.8, 14.5, 15.4, 16.5, 17.4, 18.1, 19.3},
	{8, 13.6, 14.0, 14.7, 15.7, 17.0, 18.0, 18.8, 20.3},
	{9, 13.8, 14.3, 15.1, 16.1, 17.6, 18.7, 19.6, 21.3},
	{10, 14.1, 14.6, 15.5, 16.6, 18.2, 19.4, 20.4, 22.3},
	{11, 14.5, 15.0, 16.0, 17.2, 18.9, 20.2, 21.3, 23.3},
	{12, 15.0, 15.5, 16.5, 17.8, 19.6, 21.0, 22.1, 24.2},
	{13, 15.4, 16.0, 17.0, 18.4, 20.3, 21.7, 22.9, 25.1},
	{14, 15.9, 16.5, 17.5, 19.0, 20.9, 22.4, 23.6, 25.9},
	{15, 16.3, 16.9, 18.0, 19.5, 21.5, 23.0, 24.2, 26.6},
	{16, 16.7, 17.3, 18.4, 20.0, 22.0, 23.6, 24.8, 27.2},
	{17, 17.0, 17.6, 18.8, 20.4, 22.5, 24.1, 25.3, 27.8},
	{18, 17.3, 17.9, 19.1, 20.8, 22.9, 24.6, 25.8, 28.3},
}

// DefaultTable is the growth reference used by CalculatePediatric.
var DefaultTable = mustTable(NewGrowthTable(map[Gender][]GrowthRow{
	Male:   yearlyRows(cdcPercentiles, cdcBoys),
	Female: yearlyRows(cdcPercentiles, cdcGirls),
}))

func yearlyRows(percentiles []float64, data [][]float64) []GrowthRow {
	rows := make([]GrowthRow, 0, len(data))
	for _, rec := range data {
		curves := make([]Curve, 0, len(percentiles))
		for i, p := range percentiles {
			curves = append(curves, Curve{Percentile: p, BMI: rec[i+1]})
		}
		rows = append(rows, GrowthRow{AgeMonths: int(rec[0]) * 12, Curves: curves})
	}
	return rows
}

func mustTable(t *GrowthTable, err error) *GrowthTable {
	if err != nil {
		panic(err)
	}
	return t
}
