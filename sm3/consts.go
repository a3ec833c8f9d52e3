package sm3

var iv = [8]uint32{iv0, iv1, iv2, iv3, iv4, iv5, iv6, iv7}

const (
	iv0 = 0x7380166F
	iv1 = 0x4914B2B9
	iv2 = 0x172442D7
	iv3 = 0xDA8A0600
	iv4 = 0xA96F30BC
	iv5 = 0x163138AA
	iv6 = 0xE38DEE4D
	iv7 = 0xB0FB0E4E
)

const (
	// Round constants. t0 covers rounds 0-15, t1 rounds 16-63; each round
	// uses its constant rotated left by the round index mod 32.
	t0 = 0x79CC4519
	t1 = 0x7A879D8A
)
