package dataset

import (
	"github.com/uyouii/heuncert/geochem"
	"github.com/uyouii/heuncert/model"
)

// SampleGrains is a built-in apatite (U-Th)/He table for trying the
// tool without an input file. Concentrations in ppm, ages in Ma.
func SampleGrains() *model.GrainSet {
	grainSet := &model.GrainSet{
		SampleName: "MB-demo",
		Grains: []model.Grain{
			{ID: "a01", U: 12.4, Th: 28.6, Sm: 142.0, AgeMa: 71.3, AgeErrMa: 1.8},
			{ID: "a02", U: 15.1, Th: 33.9, Sm: 156.3, AgeMa: 68.9, AgeErrMa: 1.6},
			{ID: "a03", U: 18.7, Th: 41.2, Sm: 133.8, AgeMa: 74.2, AgeErrMa: 2.1},
			{ID: "a04", U: 24.3, Th: 55.7, Sm: 161.5, AgeMa: 66.1, AgeErrMa: 1.9},
			{ID: "a05", U: 31.8, Th: 72.4, Sm: 148.9, AgeMa: 62.7, AgeErrMa: 1.4},
			{ID: "a06", U: 38.2, Th: 88.1, Sm: 172.6, AgeMa: 58.4, AgeErrMa: 1.7},
			{ID: "a07", U: 45.6, Th: 97.3, Sm: 139.2, AgeMa: 61.0, AgeErrMa: 2.3},
			{ID: "a08", U: 52.9, Th: 110.8, Sm: 165.4, AgeMa: 55.8, AgeErrMa: 1.5},
			{ID: "a09", U: 61.4, Th: 129.5, Sm: 151.7, AgeMa: 49.3, AgeErrMa: 1.2},
			{ID: "a10", U: 70.2, Th: 143.2, Sm: 158.1, AgeMa: 52.6, AgeErrMa: 1.8},
			{ID: "a11", U: 84.5, Th: 167.9, Sm: 146.3, AgeMa: 44.9, AgeErrMa: 1.3},
			{ID: "a12", U: 96.8, Th: 188.4, Sm: 169.8, AgeMa: 41.2, AgeErrMa: 1.6},
		},
	}
	geochem.ApplyEU(grainSet, geochem.DefaultEUCoefficients())
	return grainSet
}
