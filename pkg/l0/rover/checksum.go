package rover

// Checksummed is implemented by messages carrying a checksum byte:
// Wheels, Arm and Science.
type Checksummed interface {
	Message
	// ChecksumBytes returns the payload bytes covered by the checksum,
	// in wire order.
	ChecksumBytes() []byte
	// StoredChecksum returns the checksum carried by the message.
	StoredChecksum() uint8
}

// Checksum computes the 8-bit wraparound sum of the payload bytes.
func Checksum(c Checksummed) uint8 {
	var sum uint32
	for _, b := range c.ChecksumBytes() {
		sum += uint32(b)
	}
	return uint8(sum & 0xff)
}

// IsChecksumCorrect reports whether the stored checksum matches the payload.
func IsChecksumCorrect(c Checksummed) bool {
	return c.StoredChecksum() == Checksum(c)
}
