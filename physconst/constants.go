package physconst

// SI constants.
const (
	// ElectronMass is the electron rest mass m0 [kg].
	ElectronMass = 9.10938356e-31

	// ReducedPlanck is the reduced Planck constant ħ [J·s].
	ReducedPlanck = 1.0545718e-34

	// ElementaryCharge is the elementary charge e [C].
	ElementaryCharge = 1.6021766208e-19

	// Boltzmann is the Boltzmann constant kB [J/K].
	Boltzmann = 1.380649e-23
)

// Unit conversions.
const (
	// ElectronVolt is one electron-volt expressed in joules [J/eV].
	ElectronVolt = ElementaryCharge

	// BoltzmannEV is the Boltzmann constant in semiconductor units [eV/K].
	BoltzmannEV = Boltzmann / ElectronVolt

	// Nanometer is one nanometre in metres [m/nm].
	Nanometer = 1e-9
)

// ThermalEnergy returns kT in electron-volts for the absolute temperature
// temp [K]. At 300 K this is the familiar ~25.85 meV.
func ThermalEnergy(temp float64) float64 {
	return BoltzmannEV * temp
}
