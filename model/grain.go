package model

import "fmt"

// Grain is a single (U-Th)/He age measurement.
// Concentrations are in ppm, ages in Ma.
type Grain struct {
	ID       string  `json:"id,omitempty"`
	U        float64 `json:"u,omitempty"`
	Th       float64 `json:"th,omitempty"`
	Sm       float64 `json:"sm,omitempty"`
	EU       float64 `json:"eu,omitempty"`
	AgeMa    float64 `json:"age,omitempty"`
	AgeErrMa float64 `json:"age_err,omitempty"` // reported analytical 1-sigma
}

type GrainSet struct {
	// SampleName contains the sample these grains were picked from, like "BF16-01"
	SampleName string
	Grains     []Grain
}

func (s *GrainSet) IsEmpty() bool {
	if s == nil {
		return true
	}
	return len(s.Grains) == 0
}

func (s *GrainSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Grains)
}

func (s *GrainSet) DebugString() string {
	res := fmt.Sprintf("sample: %+v, grainCount: %+v", s.SampleName, len(s.Grains))
	return res
}

func (s *GrainSet) EUs() []float64 {
	res := make([]float64, 0, len(s.Grains))
	for _, grain := range s.Grains {
		res = append(res, grain.EU)
	}
	return res
}

func (s *GrainSet) Ages() []float64 {
	res := make([]float64, 0, len(s.Grains))
	for _, grain := range s.Grains {
		res = append(res, grain.AgeMa)
	}
	return res
}

func (s *GrainSet) AgeErrs() []float64 {
	res := make([]float64, 0, len(s.Grains))
	for _, grain := range s.Grains {
		res = append(res, grain.AgeErrMa)
	}
	return res
}
