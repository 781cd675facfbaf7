package circuits

import (
	"github.com/consensys/gnark/frontend"
)

// CubicCircuit proves knowledge of x such that x**3 + x + 5 == y.
type CubicCircuit struct {
	X frontend.Variable `gnark:"x"`
	Y frontend.Variable `gnark:",public"`
}

func (c *CubicCircuit) Define(api frontend.API) error {
	x3 := api.Mul(c.X, c.X, c.X)
	api.AssertIsEqual(c.Y, api.Add(x3, c.X, 5))
	return nil
}
