// Package frontend runs a machine in an Ebitengine window with keyboard
// input and a square-wave beeper.
//
// The host keyboard maps onto the hexadecimal keypad as follows:
//
//	1 2 3 4      1 2 3 C
//	Q W E R  ->  4 5 6 D
//	A S D F      7 8 9 E
//	Z X C V      A 0 B F
//
// Building with the headless tag removes the Ebitengine dependency, Run then
// returns ErrUnavailable.
package frontend

import "errors"

// ErrUnavailable is returned by Run when the binary was built without
// window support.
var ErrUnavailable = errors.New("window frontend not available in headless build")
