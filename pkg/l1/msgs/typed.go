package msgs

import (
	"errors"
	"fmt"

	"github.com/golang/protobuf/proto"
)

// TypeID masks
const (
	TypeIDMaskKind  uint32 = 0x80000000
	TypeIDMaskGroup uint32 = 0x7fff0000
	TypeIDMaskID    uint32 = 0x0000ffff
	TypeIDMaskReply uint32 = 0x00008000
)

// Message Kinds
const (
	TypeIDKindCommand uint32 = 0x00000000
	TypeIDKindEvent   uint32 = 0x80000000
)

// Type IDs
const (
	CommandOKTypeID  uint32 = 0x00008001
	CommandErrTypeID uint32 = 0x00008002

	WheelsCmdTypeID  uint32 = 0x00010001
	LedCmdTypeID     uint32 = 0x00010002
	ArmCmdTypeID     uint32 = 0x00010003
	ScienceCmdTypeID uint32 = 0x00010004
	ImuReadingTypeID uint32 = TypeIDKindEvent | 0x00010005
	RawFrameTypeID   uint32 = 0x00010006
)

// ErrUnknownType indicates unknown type id.
type ErrUnknownType struct {
	TypeID uint32
}

// Error implements error.
func (e *ErrUnknownType) Error() string {
	return fmt.Sprintf("unknown type: %x", e.TypeID)
}

// ErrNotSerializable indicates the message is not serializable.
var ErrNotSerializable = errors.New("not serializable message")

// SerializableMessage can be serialized over the wire.
type SerializableMessage interface {
	proto.Message
	// NewMessage creates an empty message of the same type.
	NewMessage() SerializableMessage
	TypeID() uint32
}

// MessageTypes are predefined mapping of type ID to messages.
var MessageTypes = map[uint32]SerializableMessage{
	CommandOKTypeID:  (*CommandOK)(nil),
	CommandErrTypeID: (*CommandErr)(nil),
	WheelsCmdTypeID:  (*WheelsCmd)(nil),
	LedCmdTypeID:     (*LedCmd)(nil),
	ArmCmdTypeID:     (*ArmCmd)(nil),
	ScienceCmdTypeID: (*ScienceCmd)(nil),
	ImuReadingTypeID: (*ImuReading)(nil),
	RawFrameTypeID:   (*RawFrame)(nil),
}

// Typed wraps a message with type information.
type Typed struct {
	TypeId   uint32 `protobuf:"varint,1,opt,name=type_id,json=typeId,proto3" json:"type_id,omitempty"`
	Sequence uint32 `protobuf:"varint,2,opt,name=sequence,proto3" json:"sequence,omitempty"`
	Message  []byte `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
}

// ProtoMessage implements proto.Message.
func (m *Typed) ProtoMessage() {}

// Reset implements proto.Message.
func (m *Typed) Reset() { *m = Typed{} }

// String implements proto.Message.
func (m *Typed) String() string { return proto.CompactTextString(m) }

// TypedFrom creates a Typed from a serializable message.
func TypedFrom(msg SerializableMessage) (*Typed, error) {
	if msg == nil {
		return nil, ErrNotSerializable
	}
	data, err := proto.Marshal(msg)
	if err != nil {
		return nil, err
	}
	return &Typed{TypeId: msg.TypeID(), Message: data}, nil
}

// WithSequence sets the sequence number.
func (m *Typed) WithSequence(seq uint32) *Typed {
	m.Sequence = seq
	return m
}

// Decode decodes the packet into actual message.
func (m *Typed) Decode() (SerializableMessage, error) {
	msgType, ok := MessageTypes[m.TypeId]
	if !ok {
		return nil, &ErrUnknownType{TypeID: m.TypeId}
	}
	msg := msgType.NewMessage()
	if err := proto.Unmarshal(m.Message, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// Encode encodes the Typed to bytes.
func (m *Typed) Encode() ([]byte, error) {
	return proto.Marshal(m)
}

// Kind gets message kind from type ID.
func (m *Typed) Kind() uint32 {
	return m.TypeId & TypeIDMaskKind
}

// IsCommand determines if the message is a command.
func (m *Typed) IsCommand() bool {
	return m.Kind() == TypeIDKindCommand && m.TypeId&TypeIDMaskReply == 0
}

// IsReply determines if the message is a reply.
func (m *Typed) IsReply() bool {
	return m.Kind() == TypeIDKindCommand && m.TypeId&TypeIDMaskReply != 0
}

// IsEvent determines if the message is an event.
func (m *Typed) IsEvent() bool {
	return m.Kind() == TypeIDKindEvent
}

// DecodeTyped decodes bytes into Typed.
func DecodeTyped(data []byte) (*Typed, error) {
	var typed Typed
	if err := proto.Unmarshal(data, &typed); err != nil {
		return nil, err
	}
	return &typed, nil
}

// EncodeMessage wraps msg in Typed and encodes it.
func EncodeMessage(msg SerializableMessage, seq uint32) ([]byte, error) {
	typed, err := TypedFrom(msg)
	if err != nil {
		return nil, err
	}
	return typed.WithSequence(seq).Encode()
}
