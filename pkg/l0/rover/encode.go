package rover

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Encode writes m into a frame of exact length. The frame is decoded
// again before being returned and any disagreement is reported as
// *InvariantError.
func Encode(m Message) ([]byte, error) {
	m, err := valueOf(m)
	if err != nil {
		return nil, err
	}
	frame := marshal(m)
	decoded, err := Decode(frame)
	if err != nil {
		return nil, &InvariantError{Message: m, Frame: frame, Cause: err}
	}
	if !sameMessage(m, decoded) {
		return nil, &InvariantError{Message: m, Frame: frame}
	}
	return frame, nil
}

// MustEncode is Encode which panics on error.
func MustEncode(m Message) []byte {
	frame, err := Encode(m)
	if err != nil {
		panic(err)
	}
	return frame
}

func valueOf(m Message) (Message, error) {
	switch v := m.(type) {
	case nil:
		return nil, ErrNilMessage
	case *Wheels:
		if v != nil {
			return *v, nil
		}
	case *Led:
		if v != nil {
			return *v, nil
		}
	case *Arm:
		if v != nil {
			return *v, nil
		}
	case *Science:
		if v != nil {
			return *v, nil
		}
	case *Imu:
		if v != nil {
			return *v, nil
		}
	default:
		return m, nil
	}
	return nil, ErrNilMessage
}

func marshal(m Message) []byte {
	frame := make([]byte, FrameLength(m))
	frame[0] = byte(m.Subsystem())
	switch v := m.(type) {
	case Wheels:
		frame[1], frame[2], frame[3], frame[4] = byte(PartWheels), v.Left, v.Right, v.Checksum
	case Led:
		frame[1], frame[2], frame[3], frame[4] = byte(PartLed), v.Red, v.Green, v.Blue
	case Arm:
		copy(frame[1:], v.ChecksumBytes())
		frame[7] = v.Checksum
	case Science:
		copy(frame[1:], v.ChecksumBytes())
		frame[6] = v.Checksum
	case Imu:
		for n, val := range v.Values() {
			binary.LittleEndian.PutUint64(frame[1+n*8:], math.Float64bits(val))
		}
	default:
		panic(fmt.Sprintf("unknown message type %T", m))
	}
	return frame
}

// sameMessage compares the fields carried on the wire. Imu readings
// are compared bitwise so NaN survives the check.
func sameMessage(a, b Message) bool {
	if imuA, ok := a.(Imu); ok {
		imuB, ok := b.(Imu)
		if !ok {
			return false
		}
		valsA, valsB := imuA.Values(), imuB.Values()
		for n := range valsA {
			if math.Float64bits(valsA[n]) != math.Float64bits(valsB[n]) {
				return false
			}
		}
		return true
	}
	return a == b
}
