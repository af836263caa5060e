// Package msgs provides L1 protocol support and all message schemas.
package msgs

// L1 protocol is communicated between the rover bridge and L2 brains
// over MQTT. Messages are protobuf encoded and wrapped in Typed.
//
// Commands (wheels, led, arm, science) are translated into L0 frames
// by the bridge. IMU frames received from the rover are published as
// ImuReading events.
//
// Producer: L2 brain (commands), rover bridge (events, replies)
// Consumer: rover bridge (commands), L2 brain (events, replies)
