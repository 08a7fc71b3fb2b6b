package metrics

import "errors"

// ErrNoDRCRule names the case of a (design-rule set, subset, subset, shape,
// shape) combination with no minimum-spacing value. No function in this
// package returns it; DetectDRCs itself returns no error.
var ErrNoDRCRule = errors.New("metrics: no DRC spacing rule for subset/shape pair")
