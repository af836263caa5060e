package rover

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func imuFrame(vals ...float64) []byte {
	frame := make([]byte, ImuFrameLength)
	frame[0] = byte(SubsystemImu)
	for n, val := range vals {
		binary.LittleEndian.PutUint64(frame[1+n*8:], math.Float64bits(val))
	}
	return frame
}

func TestRoundTrip(t *testing.T) {
	testCases := []struct {
		name   string
		msg    Message
		expect []byte
	}{
		{"wheels", NewWheels(126, 200), []byte{1, 1, 126, 200, 70}},
		{"wheels explicit checksum", WheelsWithChecksum(1, 2, 0xee), []byte{1, 1, 1, 2, 0xee}},
		{"led", NewLed(255, 0, 0), []byte{0x01, 0x02, 0xff, 0x00, 0x00}},
		{"arm", NewArm(1, 2, 3, 4, 5, 6), []byte{2, 1, 2, 3, 4, 5, 6, 21}},
		{"arm explicit checksum", ArmWithChecksum(9, 9, 9, 9, 9, 9, 0), []byte{2, 9, 9, 9, 9, 9, 9, 0}},
		{"science", NewScience(10, 20, 30, 40, 50), []byte{3, 10, 20, 30, 40, 50, 150}},
		{"imu", NewImu(Vector3{1, 2, 3}, Vector3{4, 5, 6}, Vector3{7, 8, 9}),
			imuFrame(1, 2, 3, 4, 5, 6, 7, 8, 9)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			frame, err := Encode(tc.msg)
			require.NoError(t, err)
			require.Equal(t, tc.expect, frame)
			require.Len(t, frame, FrameLength(tc.msg))
			msg, err := Decode(frame)
			require.NoError(t, err)
			require.Equal(t, tc.msg, msg)
		})
	}
}

func TestEncodePointer(t *testing.T) {
	led := NewLed(1, 2, 3)
	frame, err := Encode(&led)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 1, 2, 3}, frame)

	_, err = Encode(nil)
	require.Equal(t, ErrNilMessage, err)
	var nilArm *Arm
	_, err = Encode(nilArm)
	require.Equal(t, ErrNilMessage, err)
}

func TestEncodeImuNaN(t *testing.T) {
	imu := NewImu(Vector3{X: math.NaN()}, Vector3{Y: math.Inf(1)}, Vector3{Z: -0.5})
	frame, err := Encode(imu)
	require.NoError(t, err)
	msg, err := Decode(frame)
	require.NoError(t, err)
	decoded := msg.(Imu)
	require.True(t, math.IsNaN(decoded.Accel.X))
	require.True(t, math.IsInf(decoded.Gyro.Y, 1))
	require.Equal(t, -0.5, decoded.Compass.Z)
}

func TestDecodeImu(t *testing.T) {
	frame := imuFrame(1.0241, 5.135, 0.153, 0.01523, 0.6241, 0.1, 310.0, 162.1, 9.15602)
	require.Len(t, frame, 73)
	msg, err := Decode(frame)
	require.NoError(t, err)
	imu, ok := msg.(Imu)
	require.True(t, ok)
	require.Equal(t, 1.0241, imu.Accel.X)
	require.Equal(t, 0.6241, imu.Gyro.Y)
	require.Equal(t, 9.15602, imu.Compass.Z)
	require.Equal(t, ImuTempPlaceholder, imu.TempC)
}

func TestDecodeLed(t *testing.T) {
	msg, err := Decode([]byte{0x01, 0x02, 0xff, 0x00, 0x00})
	require.NoError(t, err)
	require.Equal(t, Led{Red: 255}, msg)
}

func requireParsingError(t *testing.T, err error, expect ParsingError) {
	require.Error(t, err)
	var perr *ParsingError
	require.True(t, errors.As(err, &perr), "unexpected error %v", err)
	require.Equal(t, expect, *perr)
}

func TestDecodeErrors(t *testing.T) {
	testCases := []struct {
		name   string
		frame  []byte
		expect ParsingError
	}{
		{"empty", []byte{}, ParsingError{Kind: ZeroLengthSlice}},
		{"nil", nil, ParsingError{Kind: ZeroLengthSlice}},
		{"no ebox part", []byte{0x01}, ParsingError{Kind: NoEboxPart, Subsystem: SubsystemEbox, Length: 1}},
		{"invalid part short", []byte{0x01, 0x09}, ParsingError{Kind: InvalidPart, Subsystem: SubsystemEbox, Part: 0x09, Length: 2}},
		{"invalid part", []byte{0x01, 0x09, 0, 0, 0}, ParsingError{Kind: InvalidPart, Subsystem: SubsystemEbox, Part: 0x09, Length: 5}},
		{"invalid part long", make9(0x01, 0x09), ParsingError{Kind: InvalidPart, Subsystem: SubsystemEbox, Part: 0x09, Length: 9}},
		{"invalid subsystem", []byte{0x09}, ParsingError{Kind: InvalidSubsystem, Subsystem: 0x09, Length: 1}},
		{"invalid subsystem zero", []byte{0x00, 1, 2}, ParsingError{Kind: InvalidSubsystem, Subsystem: 0x00, Length: 3}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			msg, err := Decode(tc.frame)
			require.Nil(t, msg)
			requireParsingError(t, err, tc.expect)
		})
	}
}

func make9(head ...byte) []byte {
	b := make([]byte, 9)
	copy(b, head)
	return b
}

func TestDecodeLengthBoundary(t *testing.T) {
	testCases := []struct {
		name      string
		subsystem Subsystem
		part      Part
		length    int
	}{
		{"wheels", SubsystemEbox, PartWheels, WheelsFrameLength},
		{"led", SubsystemEbox, PartLed, LedFrameLength},
		{"arm", SubsystemArm, PartNone, ArmFrameLength},
		{"science", SubsystemScience, PartNone, ScienceFrameLength},
		{"imu", SubsystemImu, PartNone, ImuFrameLength},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			expected, ok := ExpectedLength(tc.subsystem, tc.part)
			require.True(t, ok)
			require.Equal(t, tc.length, expected)

			frameOf := func(l int) []byte {
				frame := make([]byte, l)
				frame[0] = byte(tc.subsystem)
				if tc.part != PartNone {
					frame[1] = byte(tc.part)
				}
				return frame
			}

			msg, err := Decode(frameOf(tc.length))
			require.NoError(t, err)
			require.Equal(t, tc.subsystem, msg.Subsystem())
			require.Equal(t, tc.part, msg.Part())

			for _, l := range []int{tc.length - 1, tc.length + 1} {
				_, err := Decode(frameOf(l))
				require.True(t, errors.Is(err, ErrLengthInconsistency))
				requireParsingError(t, err, ParsingError{
					Kind:           LengthInconsistency,
					Subsystem:      tc.subsystem,
					Part:           tc.part,
					Length:         l,
					ExpectedLength: tc.length,
				})
			}
		})
	}
}

func TestDecodeVerified(t *testing.T) {
	msg, err := DecodeVerified([]byte{1, 1, 10, 20, 30})
	require.NoError(t, err)
	require.Equal(t, NewWheels(10, 20), msg)

	_, err = DecodeVerified([]byte{1, 1, 10, 20, 31})
	require.True(t, errors.Is(err, ErrChecksumMismatch))
	requireParsingError(t, err, ParsingError{
		Kind:      ChecksumMismatch,
		Subsystem: SubsystemEbox,
		Part:      PartWheels,
		Length:    5,
		Stored:    31,
		Computed:  30,
	})

	_, err = DecodeVerified([]byte{3, 1, 1, 1, 1, 1, 0})
	require.True(t, errors.Is(err, ErrChecksumMismatch))

	// frames without checksum are always accepted
	msg, err = DecodeVerified([]byte{1, 2, 7, 8, 9})
	require.NoError(t, err)
	require.Equal(t, NewLed(7, 8, 9), msg)

	_, err = DecodeVerified(nil)
	require.True(t, errors.Is(err, ErrZeroLengthSlice))
}

func TestParsingErrorIs(t *testing.T) {
	_, err := Decode([]byte{0x09})
	require.True(t, errors.Is(err, ErrInvalidSubsystem))
	require.False(t, errors.Is(err, ErrInvalidPart))
	require.EqualError(t, err, "invalid subsystem 0x09")

	_, err = Decode([]byte{0x01, 0x07})
	require.True(t, errors.Is(err, ErrInvalidPart))
	require.EqualError(t, err, "invalid part 0x07 of ebox")

	_, err = Decode([]byte{0x01})
	require.True(t, errors.Is(err, ErrNoEboxPart))

	_, err = Decode([]byte{0x02, 0})
	require.EqualError(t, err, "length inconsistency for arm/none: got 2 bytes, expect 8")
}

func TestInvariantError(t *testing.T) {
	err := &InvariantError{Message: NewLed(1, 2, 3), Frame: []byte{1, 2, 1, 2, 3}}
	require.Contains(t, err.Error(), "decodes differently")
	var perr *ParsingError
	require.False(t, errors.As(error(err), &perr))

	err.Cause = &ParsingError{Kind: ZeroLengthSlice}
	require.Contains(t, err.Error(), "zero length slice")
	require.False(t, errors.Is(error(err), ErrZeroLengthSlice))
}

func TestMustEncode(t *testing.T) {
	require.Equal(t, []byte{1, 1, 126, 126, 252}, MustEncode(NewWheelsNeutral()))
	require.Panics(t, func() { MustEncode(nil) })
}
