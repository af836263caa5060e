package msgs

import "github.com/golang/protobuf/proto"

// CommandOK is the generic reply indicating success for commands.
type CommandOK struct {
}

// NewMessage implements SerializableMessage.
func (m *CommandOK) NewMessage() SerializableMessage { return &CommandOK{} }

// TypeID implements SerializableMessage.
func (m *CommandOK) TypeID() uint32 { return CommandOKTypeID }

// ProtoMessage implements proto.Message.
func (m *CommandOK) ProtoMessage() {}

// Reset implements proto.Message.
func (m *CommandOK) Reset() { *m = CommandOK{} }

// String implements proto.Message.
func (m *CommandOK) String() string { return proto.CompactTextString(m) }

// CommandErr is the generic message representing command error.
type CommandErr struct {
	Message string `protobuf:"bytes,1,opt,name=message,proto3" json:"message,omitempty"`
}

// NewCommandErr creates a CommandErr from an error.
func NewCommandErr(err error) *CommandErr {
	return &CommandErr{Message: err.Error()}
}

// NewMessage implements SerializableMessage.
func (m *CommandErr) NewMessage() SerializableMessage { return &CommandErr{} }

// TypeID implements SerializableMessage.
func (m *CommandErr) TypeID() uint32 { return CommandErrTypeID }

// ProtoMessage implements proto.Message.
func (m *CommandErr) ProtoMessage() {}

// Reset implements proto.Message.
func (m *CommandErr) Reset() { *m = CommandErr{} }

// String implements proto.Message.
func (m *CommandErr) String() string { return proto.CompactTextString(m) }

// Error implements error.
func (m *CommandErr) Error() string { return m.Message }

// WheelsCmd sets wheel speeds. 126 is neutral.
type WheelsCmd struct {
	Left  uint32 `protobuf:"varint,1,opt,name=left,proto3" json:"left,omitempty"`
	Right uint32 `protobuf:"varint,2,opt,name=right,proto3" json:"right,omitempty"`
}

// NewMessage implements SerializableMessage.
func (m *WheelsCmd) NewMessage() SerializableMessage { return &WheelsCmd{} }

// TypeID implements SerializableMessage.
func (m *WheelsCmd) TypeID() uint32 { return WheelsCmdTypeID }

// ProtoMessage implements proto.Message.
func (m *WheelsCmd) ProtoMessage() {}

// Reset implements proto.Message.
func (m *WheelsCmd) Reset() { *m = WheelsCmd{} }

// String implements proto.Message.
func (m *WheelsCmd) String() string { return proto.CompactTextString(m) }

// LedCmd sets the LED color.
type LedCmd struct {
	Red   uint32 `protobuf:"varint,1,opt,name=red,proto3" json:"red,omitempty"`
	Green uint32 `protobuf:"varint,2,opt,name=green,proto3" json:"green,omitempty"`
	Blue  uint32 `protobuf:"varint,3,opt,name=blue,proto3" json:"blue,omitempty"`
}

// NewMessage implements SerializableMessage.
func (m *LedCmd) NewMessage() SerializableMessage { return &LedCmd{} }

// TypeID implements SerializableMessage.
func (m *LedCmd) TypeID() uint32 { return LedCmdTypeID }

// ProtoMessage implements proto.Message.
func (m *LedCmd) ProtoMessage() {}

// Reset implements proto.Message.
func (m *LedCmd) Reset() { *m = LedCmd{} }

// String implements proto.Message.
func (m *LedCmd) String() string { return proto.CompactTextString(m) }

// ArmCmd positions the arm joints.
type ArmCmd struct {
	Bicep      uint32 `protobuf:"varint,1,opt,name=bicep,proto3" json:"bicep,omitempty"`
	Forearm    uint32 `protobuf:"varint,2,opt,name=forearm,proto3" json:"forearm,omitempty"`
	Base       uint32 `protobuf:"varint,3,opt,name=base,proto3" json:"base,omitempty"`
	WristPitch uint32 `protobuf:"varint,4,opt,name=wrist_pitch,json=wristPitch,proto3" json:"wrist_pitch,omitempty"`
	WristRoll  uint32 `protobuf:"varint,5,opt,name=wrist_roll,json=wristRoll,proto3" json:"wrist_roll,omitempty"`
	Claw       uint32 `protobuf:"varint,6,opt,name=claw,proto3" json:"claw,omitempty"`
}

// NewMessage implements SerializableMessage.
func (m *ArmCmd) NewMessage() SerializableMessage { return &ArmCmd{} }

// TypeID implements SerializableMessage.
func (m *ArmCmd) TypeID() uint32 { return ArmCmdTypeID }

// ProtoMessage implements proto.Message.
func (m *ArmCmd) ProtoMessage() {}

// Reset implements proto.Message.
func (m *ArmCmd) Reset() { *m = ArmCmd{} }

// String implements proto.Message.
func (m *ArmCmd) String() string { return proto.CompactTextString(m) }

// ScienceCmd positions the science package actuators.
type ScienceCmd struct {
	BigActuator   uint32 `protobuf:"varint,1,opt,name=big_actuator,json=bigActuator,proto3" json:"big_actuator,omitempty"`
	Drill         uint32 `protobuf:"varint,2,opt,name=drill,proto3" json:"drill,omitempty"`
	SmallActuator uint32 `protobuf:"varint,3,opt,name=small_actuator,json=smallActuator,proto3" json:"small_actuator,omitempty"`
	TestTubes     uint32 `protobuf:"varint,4,opt,name=test_tubes,json=testTubes,proto3" json:"test_tubes,omitempty"`
	CameraServo   uint32 `protobuf:"varint,5,opt,name=camera_servo,json=cameraServo,proto3" json:"camera_servo,omitempty"`
}

// NewMessage implements SerializableMessage.
func (m *ScienceCmd) NewMessage() SerializableMessage { return &ScienceCmd{} }

// TypeID implements SerializableMessage.
func (m *ScienceCmd) TypeID() uint32 { return ScienceCmdTypeID }

// ProtoMessage implements proto.Message.
func (m *ScienceCmd) ProtoMessage() {}

// Reset implements proto.Message.
func (m *ScienceCmd) Reset() { *m = ScienceCmd{} }

// String implements proto.Message.
func (m *ScienceCmd) String() string { return proto.CompactTextString(m) }

// ImuReading is an event carrying an IMU frame.
type ImuReading struct {
	AccelX   float64 `protobuf:"fixed64,1,opt,name=accel_x,json=accelX,proto3" json:"accel_x,omitempty"`
	AccelY   float64 `protobuf:"fixed64,2,opt,name=accel_y,json=accelY,proto3" json:"accel_y,omitempty"`
	AccelZ   float64 `protobuf:"fixed64,3,opt,name=accel_z,json=accelZ,proto3" json:"accel_z,omitempty"`
	GyroX    float64 `protobuf:"fixed64,4,opt,name=gyro_x,json=gyroX,proto3" json:"gyro_x,omitempty"`
	GyroY    float64 `protobuf:"fixed64,5,opt,name=gyro_y,json=gyroY,proto3" json:"gyro_y,omitempty"`
	GyroZ    float64 `protobuf:"fixed64,6,opt,name=gyro_z,json=gyroZ,proto3" json:"gyro_z,omitempty"`
	CompassX float64 `protobuf:"fixed64,7,opt,name=compass_x,json=compassX,proto3" json:"compass_x,omitempty"`
	CompassY float64 `protobuf:"fixed64,8,opt,name=compass_y,json=compassY,proto3" json:"compass_y,omitempty"`
	CompassZ float64 `protobuf:"fixed64,9,opt,name=compass_z,json=compassZ,proto3" json:"compass_z,omitempty"`
	TempC    float64 `protobuf:"fixed64,10,opt,name=temp_c,json=tempC,proto3" json:"temp_c,omitempty"`
}

// NewMessage implements SerializableMessage.
func (m *ImuReading) NewMessage() SerializableMessage { return &ImuReading{} }

// TypeID implements SerializableMessage.
func (m *ImuReading) TypeID() uint32 { return ImuReadingTypeID }

// ProtoMessage implements proto.Message.
func (m *ImuReading) ProtoMessage() {}

// Reset implements proto.Message.
func (m *ImuReading) Reset() { *m = ImuReading{} }

// String implements proto.Message.
func (m *ImuReading) String() string { return proto.CompactTextString(m) }

// RawFrame carries an L0 frame verbatim.
type RawFrame struct {
	Frame []byte `protobuf:"bytes,1,opt,name=frame,proto3" json:"frame,omitempty"`
}

// NewMessage implements SerializableMessage.
func (m *RawFrame) NewMessage() SerializableMessage { return &RawFrame{} }

// TypeID implements SerializableMessage.
func (m *RawFrame) TypeID() uint32 { return RawFrameTypeID }

// ProtoMessage implements proto.Message.
func (m *RawFrame) ProtoMessage() {}

// Reset implements proto.Message.
func (m *RawFrame) Reset() { *m = RawFrame{} }

// String implements proto.Message.
func (m *RawFrame) String() string { return proto.CompactTextString(m) }
