package decode

// Version splits the leading 16-bit word of a payload. With the top bit set
// the low 15 bits are the layout version; otherwise the node predates
// versioning, the version is 0 and the word is the first data field.
func Version(v uint16) (version int, legacy bool) {
	if v&0x8000 != 0 {
		return int(v & 0x7FFF), false
	}

	return 0, true
}

// VersionTag builds the leading word for a versioned layout.
func VersionTag(version int) uint16 {
	return 0x8000 | uint16(version&0x7FFF)
}
