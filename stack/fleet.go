package stack

import "sort"

// CarFleet returns the number of fleets that arrive at the target line.
// Each car i starts at positions[i] (all distinct, all < target) and drives
// toward the target at speeds[i]. A car that catches a slower car ahead
// locks onto its bumper and the pair continues as one fleet at the slower
// speed.
//
// Cars are processed nearest-to-target first; a car starts a new fleet only
// when its arrival time strictly exceeds the fleet ahead, so the stack of
// fleet arrival times is monotonically increasing. O(n log n) time for the
// sort, O(n) memory.
func CarFleet(target int, positions, speeds []int) (int, error) {
	if len(positions) != len(speeds) {
		return 0, ErrLengthMismatch
	}
	if len(positions) == 0 {
		return 0, nil
	}

	type car struct {
		pos   int
		speed int
	}
	cars := make([]car, len(positions))
	for i := range positions {
		cars[i] = car{pos: positions[i], speed: speeds[i]}
	}
	sort.Slice(cars, func(i, j int) bool { return cars[i].pos > cars[j].pos })

	fleetTimes := make([]float64, 0, len(cars))
	for _, c := range cars {
		t := float64(target-c.pos) / float64(c.speed)
		if len(fleetTimes) == 0 || t > fleetTimes[len(fleetTimes)-1] {
			fleetTimes = append(fleetTimes, t) // cannot catch the fleet ahead
		}
	}

	return len(fleetTimes), nil
}
