package frames

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/rover.go/pkg/l0/rover"
)

func TestParseMessage(t *testing.T) {
	testCases := []struct {
		kind   string
		args   []string
		expect rover.Message
	}{
		{"wheels", []string{"126", "0x80"}, rover.NewWheels(126, 128)},
		{"led", []string{"255", "0", "0"}, rover.NewLed(255, 0, 0)},
		{"arm", []string{"1", "2", "3", "4", "5", "6", "extra"}, rover.NewArm(1, 2, 3, 4, 5, 6)},
		{"science", []string{"1", "2", "3", "4", "5"}, rover.NewScience(1, 2, 3, 4, 5)},
	}
	for _, tc := range testCases {
		t.Run(tc.kind, func(t *testing.T) {
			msg, err := ParseMessage(tc.kind, tc.args)
			require.NoError(t, err)
			require.Equal(t, tc.expect, msg)
		})
	}
}

func TestParseMessageErrors(t *testing.T) {
	_, err := ParseMessage("imu", nil)
	require.EqualError(t, err, `unknown message kind "imu"`)
	_, err = ParseMessage("led", []string{"1"})
	require.EqualError(t, err, "GREEN BLUE required")
	_, err = ParseMessage("wheels", []string{"1", "256"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "Invalid RIGHT")
}

func TestParseHex(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{"separated", []string{"01", "02", "ff", "00", "00"}},
		{"joined", []string{"0102FF0000"}},
		{"prefixed", []string{"0x0102ff0000"}},
		{"colons", []string{"01:02:ff:00:00"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			frame, err := ParseHex(tc.args)
			require.NoError(t, err)
			require.Equal(t, []byte{1, 2, 0xff, 0, 0}, frame)
		})
	}
	_, err := ParseHex([]string{"0"})
	require.Error(t, err)
	_, err = ParseHex([]string{"zz"})
	require.Error(t, err)
}

func TestUsage(t *testing.T) {
	require.Equal(t, "LEFT RIGHT", Usage("wheels"))
}
