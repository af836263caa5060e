// Package rover provides the L0 protocol spoken by the rover's
// embedded controllers.
package rover

// L0 protocol is communicated between the rover firmware (wheels/led
// ebox, arm, science package and IMU) and the L1 controller over a
// datagram transport. Each frame is a fixed-length byte sequence:
//
//   subsystem [part] payload... [checksum]
//
// The subsystem byte selects the physical unit. Wheels and LED share
// the ebox subsystem and are told apart by the part byte. Frames
// carrying a checksum use the 8-bit wraparound sum of the payload.
// IMU doubles are little-endian on the wire.
//
// Producer: L1 controller (commands), L0 firmware (IMU telemetry)
// Consumer: L0 firmware (commands), L1 controller (IMU telemetry)
