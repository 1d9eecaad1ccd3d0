package calculator

// Unit conversions between the SI front half of the pipeline and the US
// customary units of the API 520 area equations.

const (
	barPerPsi        = 0.0689476
	lbPerKg          = 2.2046226218
	rankinePerKelvin = 1.8
	secondsPerHour   = 3600.0
)

func psigToBarg(p float64) float64 { return p * barPerPsi }

func kelvinToRankine(t float64) float64 { return t * rankinePerKelvin }

func kgPerSecToLbPerHr(w float64) float64 { return w * secondsPerHour * lbPerKg }
