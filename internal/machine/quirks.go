package machine

// Quirks selects between behaviors that differ across historical CHIP-8
// interpreters. The zero value shifts VX in place and jumps relative to V0.
type Quirks struct {
	// ShiftUsesVY makes 8XY6 and 8XYE shift VY and store the result in VX,
	// as the original COSMAC VIP interpreter did.
	ShiftUsesVY bool

	// JumpUsesVX makes BNNN jump to NNN + VX where X is the high nibble of
	// NNN, as CHIP-48 and SUPER-CHIP did.
	JumpUsesVX bool
}
