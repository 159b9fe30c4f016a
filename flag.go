package bitflag

func setBit(v uint32, bit uint) uint32    { return v | 1<<bit }
func clearBit(v uint32, bit uint) uint32  { return v &^ (1 << bit) }
func toggleBit(v uint32, bit uint) uint32 { return v ^ 1<<bit }
func hasBit(v uint32, bit uint) bool      { return v&(1<<bit) != 0 }

// lowMask covers the first n bits.
func lowMask(n int) uint32 { return uint32(uint64(1)<<uint(n) - 1) }

func assignBit(v uint32, bit uint, on bool) uint32 {
	if on {
		return setBit(v, bit)
	}
	return clearBit(v, bit)
}
