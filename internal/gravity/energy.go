package gravity

import "github.com/san-kum/orbsim/internal/body"

func TotalKinetic(bodies []*body.Body) float64 {
	ke := 0.0
	for _, b := range bodies {
		ke += b.KineticEnergy()
	}
	return ke
}

// TotalPotential visits every ordered pair and halves each term, so each
// unordered pair contributes -G·mi·mj/r once.
func TotalPotential(bodies []*body.Body, g float64) float64 {
	u := 0.0
	for i, b := range bodies {
		for j, other := range bodies {
			if i == j {
				continue
			}
			r := Separation(b, other)
			u -= 0.5 * (g * b.Mass * other.Mass / r)
		}
	}
	return u
}

func TotalEnergy(bodies []*body.Body, g float64) float64 {
	return TotalKinetic(bodies) + TotalPotential(bodies, g)
}
