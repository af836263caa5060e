package rover

import "fmt"

// Subsystem is the leading byte of a frame selecting the physical unit.
type Subsystem byte

// Part is the secondary byte used by subsystems multiplexing more
// than one kind of message.
type Part byte

// Known subsystems.
const (
	SubsystemEbox    Subsystem = 0x01
	SubsystemArm     Subsystem = 0x02
	SubsystemScience Subsystem = 0x03
	SubsystemImu     Subsystem = 0x04
)

// Known parts of the ebox subsystem. PartNone is reported for
// subsystems without a part byte.
const (
	PartNone   Part = 0x00
	PartWheels Part = 0x01
	PartLed    Part = 0x02
)

// String implements fmt.Stringer.
func (s Subsystem) String() string {
	switch s {
	case SubsystemEbox:
		return "ebox"
	case SubsystemArm:
		return "arm"
	case SubsystemScience:
		return "science"
	case SubsystemImu:
		return "imu"
	}
	return fmt.Sprintf("subsystem(0x%02x)", byte(s))
}

// String implements fmt.Stringer.
func (p Part) String() string {
	switch p {
	case PartNone:
		return "none"
	case PartWheels:
		return "wheels"
	case PartLed:
		return "led"
	}
	return fmt.Sprintf("part(0x%02x)", byte(p))
}

// NeutralSpeed is the wheel speed at which the motors stand still.
const NeutralSpeed uint8 = 126

// ImuTempPlaceholder is the temperature reported for every decoded Imu.
// The firmware doesn't transmit temperature yet.
const ImuTempPlaceholder float64 = 0

// Message is one of Wheels, Led, Arm, Science and Imu.
type Message interface {
	// Subsystem returns the leading frame byte.
	Subsystem() Subsystem
	// Part returns the part byte, PartNone if the frame has none.
	Part() Part
	String() string

	message()
}

// Wheels drives the left and right motors.
type Wheels struct {
	Left     uint8
	Right    uint8
	Checksum uint8
}

// NewWheels creates Wheels with checksum derived from the speeds.
func NewWheels(left, right uint8) Wheels {
	w := Wheels{Left: left, Right: right}
	w.Checksum = Checksum(w)
	return w
}

// NewWheelsNeutral creates Wheels with both motors stopped.
func NewWheelsNeutral() Wheels {
	return NewWheels(NeutralSpeed, NeutralSpeed)
}

// WheelsWithChecksum creates Wheels keeping the checksum verbatim.
func WheelsWithChecksum(left, right, checksum uint8) Wheels {
	return Wheels{Left: left, Right: right, Checksum: checksum}
}

// WithSpeeds returns a copy with new speeds and a fresh checksum.
func (w Wheels) WithSpeeds(left, right uint8) Wheels {
	return NewWheels(left, right)
}

// Subsystem implements Message.
func (w Wheels) Subsystem() Subsystem { return SubsystemEbox }

// Part implements Message.
func (w Wheels) Part() Part { return PartWheels }

// ChecksumBytes implements Checksummed.
func (w Wheels) ChecksumBytes() []byte {
	b := [2]byte{w.Left, w.Right}
	return b[:]
}

// StoredChecksum implements Checksummed.
func (w Wheels) StoredChecksum() uint8 { return w.Checksum }

// IsChecksumCorrect verifies the stored checksum.
func (w Wheels) IsChecksumCorrect() bool { return IsChecksumCorrect(w) }

// String implements Message.
func (w Wheels) String() string {
	return fmt.Sprintf("Wheels{left: %d, right: %d, checksum: %d}", w.Left, w.Right, w.Checksum)
}

func (w Wheels) message() {}

// Led sets the color of the status light.
type Led struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

// NewLed creates Led.
func NewLed(red, green, blue uint8) Led {
	return Led{Red: red, Green: green, Blue: blue}
}

// Subsystem implements Message.
func (l Led) Subsystem() Subsystem { return SubsystemEbox }

// Part implements Message.
func (l Led) Part() Part { return PartLed }

// String implements Message.
func (l Led) String() string {
	return fmt.Sprintf("Led{red: %d, green: %d, blue: %d}", l.Red, l.Green, l.Blue)
}

func (l Led) message() {}

// Arm positions the joints of the robotic arm.
type Arm struct {
	Bicep      uint8
	Forearm    uint8
	Base       uint8
	WristPitch uint8
	WristRoll  uint8
	Claw       uint8
	Checksum   uint8
}

// NewArm creates Arm with checksum derived from the joints.
func NewArm(bicep, forearm, base, wristPitch, wristRoll, claw uint8) Arm {
	a := ArmWithChecksum(bicep, forearm, base, wristPitch, wristRoll, claw, 0)
	a.Checksum = Checksum(a)
	return a
}

// ArmWithChecksum creates Arm keeping the checksum verbatim.
func ArmWithChecksum(bicep, forearm, base, wristPitch, wristRoll, claw, checksum uint8) Arm {
	return Arm{
		Bicep:      bicep,
		Forearm:    forearm,
		Base:       base,
		WristPitch: wristPitch,
		WristRoll:  wristRoll,
		Claw:       claw,
		Checksum:   checksum,
	}
}

// WithComputedChecksum returns a copy with the checksum recomputed.
func (a Arm) WithComputedChecksum() Arm {
	a.Checksum = Checksum(a)
	return a
}

// Subsystem implements Message.
func (a Arm) Subsystem() Subsystem { return SubsystemArm }

// Part implements Message.
func (a Arm) Part() Part { return PartNone }

// ChecksumBytes implements Checksummed.
func (a Arm) ChecksumBytes() []byte {
	b := [6]byte{a.Bicep, a.Forearm, a.Base, a.WristPitch, a.WristRoll, a.Claw}
	return b[:]
}

// StoredChecksum implements Checksummed.
func (a Arm) StoredChecksum() uint8 { return a.Checksum }

// IsChecksumCorrect verifies the stored checksum.
func (a Arm) IsChecksumCorrect() bool { return IsChecksumCorrect(a) }

// String implements Message.
func (a Arm) String() string {
	return fmt.Sprintf("Arm{bicep: %d, forearm: %d, base: %d, wrist_pitch: %d, wrist_roll: %d, claw: %d, checksum: %d}",
		a.Bicep, a.Forearm, a.Base, a.WristPitch, a.WristRoll, a.Claw, a.Checksum)
}

func (a Arm) message() {}

// Science drives the actuators of the science package.
type Science struct {
	BigActuator   uint8
	Drill         uint8
	SmallActuator uint8
	TestTubes     uint8
	CameraServo   uint8
	Checksum      uint8
}

// NewScience creates Science with checksum derived from the actuators.
func NewScience(bigActuator, drill, smallActuator, testTubes, cameraServo uint8) Science {
	s := ScienceWithChecksum(bigActuator, drill, smallActuator, testTubes, cameraServo, 0)
	s.Checksum = Checksum(s)
	return s
}

// ScienceWithChecksum creates Science keeping the checksum verbatim.
func ScienceWithChecksum(bigActuator, drill, smallActuator, testTubes, cameraServo, checksum uint8) Science {
	return Science{
		BigActuator:   bigActuator,
		Drill:         drill,
		SmallActuator: smallActuator,
		TestTubes:     testTubes,
		CameraServo:   cameraServo,
		Checksum:      checksum,
	}
}

// WithComputedChecksum returns a copy with the checksum recomputed.
func (s Science) WithComputedChecksum() Science {
	s.Checksum = Checksum(s)
	return s
}

// Subsystem implements Message.
func (s Science) Subsystem() Subsystem { return SubsystemScience }

// Part implements Message.
func (s Science) Part() Part { return PartNone }

// ChecksumBytes implements Checksummed.
func (s Science) ChecksumBytes() []byte {
	b := [5]byte{s.BigActuator, s.Drill, s.SmallActuator, s.TestTubes, s.CameraServo}
	return b[:]
}

// StoredChecksum implements Checksummed.
func (s Science) StoredChecksum() uint8 { return s.Checksum }

// IsChecksumCorrect verifies the stored checksum.
func (s Science) IsChecksumCorrect() bool { return IsChecksumCorrect(s) }

// String implements Message.
func (s Science) String() string {
	return fmt.Sprintf("Science{big_actuator: %d, drill: %d, small_actuator: %d, test_tubes: %d, camera_servo: %d, checksum: %d}",
		s.BigActuator, s.Drill, s.SmallActuator, s.TestTubes, s.CameraServo, s.Checksum)
}

func (s Science) message() {}

// Vector3 is a reading along three axes.
type Vector3 struct {
	X, Y, Z float64
}

// Imu is a reading of the inertial measurement unit.
type Imu struct {
	Accel   Vector3
	Gyro    Vector3
	Compass Vector3
	// TempC is not carried on the wire.
	TempC float64
}

// NewImu creates Imu with the placeholder temperature.
func NewImu(accel, gyro, compass Vector3) Imu {
	return Imu{Accel: accel, Gyro: gyro, Compass: compass, TempC: ImuTempPlaceholder}
}

// Values returns the readings in wire order.
func (m Imu) Values() [9]float64 {
	return [9]float64{
		m.Accel.X, m.Accel.Y, m.Accel.Z,
		m.Gyro.X, m.Gyro.Y, m.Gyro.Z,
		m.Compass.X, m.Compass.Y, m.Compass.Z,
	}
}

// Subsystem implements Message.
func (m Imu) Subsystem() Subsystem { return SubsystemImu }

// Part implements Message.
func (m Imu) Part() Part { return PartNone }

// String implements Message.
func (m Imu) String() string {
	return fmt.Sprintf("Imu{accel: %v, gyro: %v, compass: %v, temp_c: %v}",
		m.Accel, m.Gyro, m.Compass, m.TempC)
}

func (m Imu) message() {}
