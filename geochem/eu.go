package geochem

import "github.com/uyouii/heuncert/model"

// effective uranium, eU = U + 0.238*Th + 0.0012*Sm,
// the usual proxy for alpha radiation damage dose
const (
	DefaultThCoefficient = 0.238
	DefaultSmCoefficient = 0.0012
)

type EUCoefficients struct {
	Th float64
	Sm float64
}

func DefaultEUCoefficients() EUCoefficients {
	return EUCoefficients{
		Th: DefaultThCoefficient,
		Sm: DefaultSmCoefficient,
	}
}

func (c EUCoefficients) EffectiveUranium(u, th, sm float64) float64 {
	return u + c.Th*th + c.Sm*sm
}

// ApplyEU derives the covariate for every grain from its measured
// concentrations, overwriting any previous value.
func ApplyEU(grainSet *model.GrainSet, coefficients EUCoefficients) {
	if grainSet == nil {
		return
	}
	for i := range grainSet.Grains {
		grain := &grainSet.Grains[i]
		grain.EU = coefficients.EffectiveUranium(grain.U, grain.Th, grain.Sm)
	}
}
