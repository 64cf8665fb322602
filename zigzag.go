package varuint

// zigzag interleaves signed values into the unsigned domain by magnitude:
// 0, -1, 1, -2, 2, ... map to 0, 1, 2, 3, 4, ... so that small-magnitude
// values of either sign stay small. The shift on v is arithmetic, so the
// sign propagates across the full word.
func zigzag(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63))
}

// unzigzag inverts zigzag.
func unzigzag(v uint64) int64 {
	return int64(v>>1) ^ -int64(v&1)
}
