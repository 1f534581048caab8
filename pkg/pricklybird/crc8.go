package pricklybird

// CRC8Polynomial is the generator polynomial for the checksum engine
// (x^8 + x^4 + x^3 + x^2 + 1, no reflection, no final XOR).
const CRC8Polynomial = 0x1D

// crc8Table holds the remainder for every possible table index, built once
// at startup by the standard shift-and-XOR construction.
var crc8Table = makeCRC8Table(CRC8Polynomial)

func makeCRC8Table(poly byte) [256]byte {
	var table [256]byte
	for i := 0; i < 256; i++ {
		crc := byte(i)
		for bit := 0; bit < 8; bit++ {
			if crc&0x80 != 0 {
				crc = crc<<1 ^ poly
			} else {
				crc <<= 1
			}
		}
		table[i] = crc
	}
	return table
}

// CalculateCRC8 computes the CRC-8 of data with initial remainder zero.
// The CRC of an empty slice is 0, and the CRC of a single byte b equals
// CRC8Table()[b].
func CalculateCRC8(data []byte) byte {
	var crc byte
	for _, b := range data {
		crc = crc8Table[crc^b]
	}
	return crc
}

// CRC8Table returns a copy of the 256-entry checksum lookup table.
func CRC8Table() [256]byte {
	return crc8Table
}
