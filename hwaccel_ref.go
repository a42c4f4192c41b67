// hwaccel_ref.go - Unaccelerated stubs.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// initHardwareAcceleration is the sole backend wiring in this tree: no
// assembly-accelerated NTT has been added yet, so every build uses the
// reference implementation. The hwaccel.go plug-point exists so one can be
// dropped in later (keyed off build tags, as the teacher's own hwaccel_ref.go
// was) without touching any caller.
func initHardwareAcceleration() {
	forceDisableHardwareAcceleration()
}
