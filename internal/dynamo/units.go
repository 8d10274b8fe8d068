package dynamo

const (
	// G is the Newtonian gravitational constant in m³ kg⁻¹ s⁻².
	G = 6.6743e-11

	// SolarMass is the reference mass used to derive circular velocities.
	SolarMass = 1.9885e30

	SecondsPerDay = 86400.0

	// SecondsPerYear is a 365-day year; orbital periods are reported in it.
	SecondsPerYear = 31536000.0
)
