package frames

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/robotalks/rover.go/pkg/l0/rover"
)

// Field names of each message kind, in wire order.
var fieldNames = map[string][]string{
	"wheels":  {"LEFT", "RIGHT"},
	"led":     {"RED", "GREEN", "BLUE"},
	"arm":     {"BICEP", "FOREARM", "BASE", "WRIST-PITCH", "WRIST-ROLL", "CLAW"},
	"science": {"BIG-ACTUATOR", "DRILL", "SMALL-ACTUATOR", "TEST-TUBES", "CAMERA-SERVO"},
}

// Usage returns the argument list of a message kind.
func Usage(kind string) string {
	return strings.Join(fieldNames[kind], " ")
}

// ParseBytes parses one byte per name from args.
func ParseBytes(args []string, names ...string) ([]uint8, error) {
	if len(args) < len(names) {
		return nil, fmt.Errorf("%s required", strings.Join(names[len(args):], " "))
	}
	out := make([]uint8, len(names))
	for n, name := range names {
		val, err := strconv.ParseUint(args[n], 0, 8)
		if err != nil {
			return nil, fmt.Errorf("Invalid %s: %v", name, err)
		}
		out[n] = uint8(val)
	}
	return out, nil
}

// ParseMessage builds a message of kind from args. Checksums are derived.
func ParseMessage(kind string, args []string) (rover.Message, error) {
	names, ok := fieldNames[kind]
	if !ok {
		return nil, fmt.Errorf("unknown message kind %q", kind)
	}
	b, err := ParseBytes(args, names...)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "wheels":
		return rover.NewWheels(b[0], b[1]), nil
	case "led":
		return rover.NewLed(b[0], b[1], b[2]), nil
	case "arm":
		return rover.NewArm(b[0], b[1], b[2], b[3], b[4], b[5]), nil
	}
	return rover.NewScience(b[0], b[1], b[2], b[3], b[4]), nil
}

// ParseHex parses a frame written as hex, either one argument per byte
// or all bytes concatenated, e.g. "01 02 ff 00 00" or "0102ff0000".
func ParseHex(args []string) ([]byte, error) {
	str := strings.Join(args, "")
	str = strings.ReplaceAll(str, ":", "")
	str = strings.TrimPrefix(strings.ToLower(str), "0x")
	frame, err := hex.DecodeString(str)
	if err != nil {
		return nil, fmt.Errorf("Invalid HEX: %v", err)
	}
	return frame, nil
}
