package rtkernel

// Tick is the cyclic system time counter. Its effective width (8, 16 or 32
// bits, per Config.TickWidth) governs both where it wraps and how far apart
// two ticks can be for "before"/"after" comparisons to remain meaningful
// (spec: true distance must be less than half the cycle).
type Tick uint32

// tickMask returns the bitmask for a configured tick width.
func tickMask(width int) uint32 {
	if width >= 32 {
		return 0xffffffff
	}
	return (uint32(1) << uint(width)) - 1
}

// signedDiff computes a-b, interpreted as a signed value of the given bit
// width. A negative result means a is earlier than b; positive means a is
// later. This is the sole primitive overrun detection and periodic-wake
// arithmetic are built on (spec §4.1).
func signedDiff(a, b Tick, width int) int64 {
	m := tickMask(width)
	d := (uint32(a) - uint32(b)) & m
	if width < 32 {
		signBit := uint32(1) << uint(width-1)
		if d&signBit != 0 {
			d |= ^uint32(0) << uint(width)
		}
	}
	return int64(int32(d))
}

// after reports whether t is strictly after other.
func (t Tick) after(other Tick, width int) bool { return signedDiff(t, other, width) > 0 }

// atOrAfter reports whether t is equal to or after other.
func (t Tick) atOrAfter(other Tick, width int) bool { return signedDiff(t, other, width) >= 0 }

// add advances t by delta ticks, wrapping (saturating the representable
// width, not the arithmetic — the counter wraps by design, it does not
// saturate; only the overrun *counter* saturates, per spec §4.1).
func (t Tick) add(delta uint32, width int) Tick {
	return Tick((uint32(t) + delta) & tickMask(width))
}
