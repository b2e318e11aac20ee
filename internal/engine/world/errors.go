package world

import "errors"

// ErrSimulationDiverged is returned when a light or water flush does not
// drain within its iteration cap. The world state is no longer trustworthy
// and the caller must stop simulating.
var ErrSimulationDiverged = errors.New("simulation diverged")
