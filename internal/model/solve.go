package model

import (
	"fmt"
	"math"
)

// solveNodeVoltage finds the voltage at the junction shared by source,
// capacitor and load. With the load drawing fixed power p its current is p/v,
// which turns KVL at the node into a quadratic in v:
//
//	v^2 - (q/C + iIn*r)*v + p*r = 0
//
// A negative discriminant means the operating point cannot source p watts;
// the load is shed (p forced to 0) and the solve repeated. The returned
// voltage is the larger root, the physically valid one: with current flowing
// in, v cannot sit below the unloaded terminal estimate q/C.
//
// Returns the solved voltage and the load power actually sustained.
func solveNodeVoltage(q, c, iIn, r, p float64) (float64, float64, error) {
	head := q/c + iIn*r

	disc := head*head - 4*p*r
	if disc < 0 {
		p = 0
		disc = head * head
	}
	if disc < 0 || math.IsNaN(disc) {
		return 0, 0, fmt.Errorf("%w: node-voltage discriminant %g after load shed", ErrArithmeticDomain, disc)
	}

	return (head + math.Sqrt(disc)) / 2, p, nil
}
