package congestion

import "errors"

// ErrNoSensitivityLadder indicates a sensitivity index outside [0, len(Ladder)).
var ErrNoSensitivityLadder = errors.New("congestion: sensitivity index out of range")
