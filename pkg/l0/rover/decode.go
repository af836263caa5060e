package rover

import (
	"encoding/binary"
	"math"
)

// Frame lengths including the header and checksum bytes.
const (
	WheelsFrameLength  = 5
	LedFrameLength     = 5
	ArmFrameLength     = 8
	ScienceFrameLength = 7
	ImuFrameLength     = 73
)

const imuValues = 9

type frameKind struct {
	subsystem Subsystem
	part      Part
}

var frameLengths = map[frameKind]int{
	{SubsystemEbox, PartWheels}:  WheelsFrameLength,
	{SubsystemEbox, PartLed}:     LedFrameLength,
	{SubsystemArm, PartNone}:     ArmFrameLength,
	{SubsystemScience, PartNone}: ScienceFrameLength,
	{SubsystemImu, PartNone}:     ImuFrameLength,
}

// ExpectedLength returns the total frame length for a subsystem/part.
func ExpectedLength(subsystem Subsystem, part Part) (int, bool) {
	l, ok := frameLengths[frameKind{subsystem, part}]
	return l, ok
}

// FrameLength returns the total length of the frame encoding m.
func FrameLength(m Message) int {
	return frameLengths[frameKind{m.Subsystem(), m.Part()}]
}

// Decode parses exactly one frame. Stored checksums are kept as is,
// use DecodeVerified to reject frames with a wrong checksum.
func Decode(frame []byte) (Message, error) {
	if len(frame) == 0 {
		return nil, &ParsingError{Kind: ZeroLengthSlice}
	}
	subsystem := Subsystem(frame[0])
	switch subsystem {
	case SubsystemEbox:
		if len(frame) < 2 {
			return nil, &ParsingError{Kind: NoEboxPart, Subsystem: subsystem, Length: len(frame)}
		}
		part := Part(frame[1])
		switch part {
		case PartWheels:
			if err := checkLength(frame, subsystem, part); err != nil {
				return nil, err
			}
			return WheelsWithChecksum(frame[2], frame[3], frame[4]), nil
		case PartLed:
			if err := checkLength(frame, subsystem, part); err != nil {
				return nil, err
			}
			return NewLed(frame[2], frame[3], frame[4]), nil
		}
		return nil, &ParsingError{Kind: InvalidPart, Subsystem: subsystem, Part: part, Length: len(frame)}
	case SubsystemArm:
		if err := checkLength(frame, subsystem, PartNone); err != nil {
			return nil, err
		}
		return ArmWithChecksum(frame[1], frame[2], frame[3], frame[4], frame[5], frame[6], frame[7]), nil
	case SubsystemScience:
		if err := checkLength(frame, subsystem, PartNone); err != nil {
			return nil, err
		}
		return ScienceWithChecksum(frame[1], frame[2], frame[3], frame[4], frame[5], frame[6]), nil
	case SubsystemImu:
		if err := checkLength(frame, subsystem, PartNone); err != nil {
			return nil, err
		}
		return decodeImu(frame[1:]), nil
	}
	return nil, &ParsingError{Kind: InvalidSubsystem, Subsystem: subsystem, Length: len(frame)}
}

// DecodeVerified is Decode which also fails with ChecksumMismatch if
// a checksummed message carries a wrong checksum.
func DecodeVerified(frame []byte) (Message, error) {
	msg, err := Decode(frame)
	if err != nil {
		return nil, err
	}
	if c, ok := msg.(Checksummed); ok && !IsChecksumCorrect(c) {
		return nil, &ParsingError{
			Kind:      ChecksumMismatch,
			Subsystem: c.Subsystem(),
			Part:      c.Part(),
			Length:    len(frame),
			Stored:    c.StoredChecksum(),
			Computed:  Checksum(c),
		}
	}
	return msg, nil
}

func checkLength(frame []byte, subsystem Subsystem, part Part) error {
	expected := frameLengths[frameKind{subsystem, part}]
	if len(frame) != expected {
		return &ParsingError{
			Kind:           LengthInconsistency,
			Subsystem:      subsystem,
			Part:           part,
			Length:         len(frame),
			ExpectedLength: expected,
		}
	}
	return nil
}

func decodeImu(payload []byte) Imu {
	var v [imuValues]float64
	for n := range v {
		v[n] = math.Float64frombits(binary.LittleEndian.Uint64(payload[n*8:]))
	}
	return NewImu(
		Vector3{X: v[0], Y: v[1], Z: v[2]},
		Vector3{X: v[3], Y: v[4], Z: v[5]},
		Vector3{X: v[6], Y: v[7], Z: v[8]},
	)
}
