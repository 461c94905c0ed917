package semimath

// Varshni returns the band gap at the absolute temperature temp [K] from
// the empirical Varshni law
//
//	Eg(T) = Eg0 − α·T² / (T + β)
//
// where eg0 is the T = 0 K gap [eV], alpha the Varshni α [eV/K] and beta
// the Varshni β [K]. At T = 0 the law reduces to eg0 exactly, even for
// β = 0 where the fraction alone would be 0/0.
func Varshni(temp, eg0, alpha, beta float64) float64 {
	if temp == 0 {
		return eg0
	}

	return eg0 - alpha*temp*temp/(temp+beta)
}
