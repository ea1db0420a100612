// hwaccel_ref.go - Unaccelerated stubs.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package newhope

// No AVX2 NTT exists for this modulus yet, so there is no build-tagged
// accelerated sibling to gate against; this file is unconditionally
// compiled and always falls back to the generic path. Kept as a separate
// file from hwaccel.go's dispatch table so a future accelerated
// implementation only needs a sibling hwaccel_amd64.go rather than a
// change here.
func initHardwareAcceleration() {
	forceDisableHardwareAcceleration()
}
