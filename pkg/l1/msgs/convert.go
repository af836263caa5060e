package msgs

import (
	"fmt"

	"github.com/robotalks/rover.go/pkg/l0/rover"
)

// RoverMessage is a SerializableMessage mapping to an L0 message.
type RoverMessage interface {
	SerializableMessage
	ToRover() (rover.Message, error)
}

// ErrOutOfRange indicates a field doesn't fit in a byte.
type ErrOutOfRange struct {
	Field string
	Value uint32
}

// Error implements error.
func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("%s out of range: %d", e.Field, e.Value)
}

type byteFields struct {
	names  []string
	values []uint32
}

func (f byteFields) bytes() ([]uint8, error) {
	out := make([]uint8, len(f.values))
	for n, v := range f.values {
		if v > 0xff {
			return nil, &ErrOutOfRange{Field: f.names[n], Value: v}
		}
		out[n] = uint8(v)
	}
	return out, nil
}

// FromRover converts an L0 message.
func FromRover(m rover.Message) (RoverMessage, error) {
	switch v := m.(type) {
	case rover.Wheels:
		return &WheelsCmd{Left: uint32(v.Left), Right: uint32(v.Right)}, nil
	case rover.Led:
		return &LedCmd{Red: uint32(v.Red), Green: uint32(v.Green), Blue: uint32(v.Blue)}, nil
	case rover.Arm:
		return &ArmCmd{
			Bicep:      uint32(v.Bicep),
			Forearm:    uint32(v.Forearm),
			Base:       uint32(v.Base),
			WristPitch: uint32(v.WristPitch),
			WristRoll:  uint32(v.WristRoll),
			Claw:       uint32(v.Claw),
		}, nil
	case rover.Science:
		return &ScienceCmd{
			BigActuator:   uint32(v.BigActuator),
			Drill:         uint32(v.Drill),
			SmallActuator: uint32(v.SmallActuator),
			TestTubes:     uint32(v.TestTubes),
			CameraServo:   uint32(v.CameraServo),
		}, nil
	case rover.Imu:
		return &ImuReading{
			AccelX:   v.Accel.X,
			AccelY:   v.Accel.Y,
			AccelZ:   v.Accel.Z,
			GyroX:    v.Gyro.X,
			GyroY:    v.Gyro.Y,
			GyroZ:    v.Gyro.Z,
			CompassX: v.Compass.X,
			CompassY: v.Compass.Y,
			CompassZ: v.Compass.Z,
			TempC:    v.TempC,
		}, nil
	}
	return nil, ErrNotSerializable
}

// ToRover implements RoverMessage.
func (m *WheelsCmd) ToRover() (rover.Message, error) {
	b, err := byteFields{
		names:  []string{"left", "right"},
		values: []uint32{m.Left, m.Right},
	}.bytes()
	if err != nil {
		return nil, err
	}
	return rover.NewWheels(b[0], b[1]), nil
}

// ToRover implements RoverMessage.
func (m *LedCmd) ToRover() (rover.Message, error) {
	b, err := byteFields{
		names:  []string{"red", "green", "blue"},
		values: []uint32{m.Red, m.Green, m.Blue},
	}.bytes()
	if err != nil {
		return nil, err
	}
	return rover.NewLed(b[0], b[1], b[2]), nil
}

// ToRover implements RoverMessage.
func (m *ArmCmd) ToRover() (rover.Message, error) {
	b, err := byteFields{
		names:  []string{"bicep", "forearm", "base", "wrist_pitch", "wrist_roll", "claw"},
		values: []uint32{m.Bicep, m.Forearm, m.Base, m.WristPitch, m.WristRoll, m.Claw},
	}.bytes()
	if err != nil {
		return nil, err
	}
	return rover.NewArm(b[0], b[1], b[2], b[3], b[4], b[5]), nil
}

// ToRover implements RoverMessage.
func (m *ScienceCmd) ToRover() (rover.Message, error) {
	b, err := byteFields{
		names:  []string{"big_actuator", "drill", "small_actuator", "test_tubes", "camera_servo"},
		values: []uint32{m.BigActuator, m.Drill, m.SmallActuator, m.TestTubes, m.CameraServo},
	}.bytes()
	if err != nil {
		return nil, err
	}
	return rover.NewScience(b[0], b[1], b[2], b[3], b[4]), nil
}

// ToRover implements RoverMessage.
func (m *ImuReading) ToRover() (rover.Message, error) {
	imu := rover.NewImu(
		rover.Vector3{X: m.AccelX, Y: m.AccelY, Z: m.AccelZ},
		rover.Vector3{X: m.GyroX, Y: m.GyroY, Z: m.GyroZ},
		rover.Vector3{X: m.CompassX, Y: m.CompassY, Z: m.CompassZ},
	)
	imu.TempC = m.TempC
	return imu, nil
}

// ToRover implements RoverMessage. The frame must decode.
func (m *RawFrame) ToRover() (rover.Message, error) {
	return rover.Decode(m.Frame)
}
