package texpix

// BC6H endpoint field slots. W and X are the first subset's endpoint pair,
// Y and Z the second subset's. Fields are grouped so that slot*3+channel
// indexes a flat endpoint array.
const (
	fRW = iota
	fGW
	fBW
	fRX
	fGX
	fBX
	fRY
	fGY
	fBY
	fRZ
	fGZ
	fBZ
	fD // partition index
)

// bc6hOp moves the next count bits of the stream into bits
// [shift, shift+count) of a field. Each mode's op list reproduces its exact
// interleaved field ordering; single-bit ops express the scattered and
// reversed placements.
type bc6hOp struct {
	field uint8
	shift uint8
	count uint8
}

type bc6hModeDesc struct {
	epBits      uint // endpoint (W) precision
	deltaBits   [3]uint
	transformed bool
	subsets     int
	ops         []bc6hOp
}

// bc6hModes is keyed by the block's mode field value (2 or 5 bits). The four
// 5-bit patterns 19, 23, 27 and 31 are reserved and decode as an undefined
// block.
var bc6hModes = map[uint32]bc6hModeDesc{
	0x00: {epBits: 10, deltaBits: [3]uint{5, 5, 5}, transformed: true, subsets: 2, ops: []bc6hOp{
		{fGY, 4, 1}, {fBY, 4, 1}, {fBZ, 4, 1},
		{fRW, 0, 10}, {fGW, 0, 10}, {fBW, 0, 10},
		{fRX, 0, 5}, {fGZ, 4, 1}, {fGY, 0, 4},
		{fGX, 0, 5}, {fBZ, 0, 1}, {fGZ, 0, 4},
		{fBX, 0, 5}, {fBZ, 1, 1}, {fBY, 0, 4},
		{fRY, 0, 5}, {fBZ, 2, 1},
		{fRZ, 0, 5}, {fBZ, 3, 1},
		{fD, 0, 5},
	}},
	0x01: {epBits: 7, deltaBits: [3]uint{6, 6, 6}, transformed: true, subsets: 2, ops: []bc6hOp{
		{fGY, 5, 1}, {fGZ, 4, 1}, {fGZ, 5, 1},
		{fRW, 0, 7}, {fBZ, 0, 1}, {fBZ, 1, 1}, {fBY, 4, 1},
		{fGW, 0, 7}, {fBY, 5, 1}, {fBZ, 2, 1}, {fGY, 4, 1},
		{fBW, 0, 7}, {fBZ, 3, 1}, {fBZ, 5, 1}, {fBZ, 4, 1},
		{fRX, 0, 6}, {fGY, 0, 4},
		{fGX, 0, 6}, {fGZ, 0, 4},
		{fBX, 0, 6}, {fBY, 0, 4},
		{fRY, 0, 6}, {fRZ, 0, 6},
		{fD, 0, 5},
	}},
	0x02: {epBits: 11, deltaBits: [3]uint{5, 4, 4}, transformed: true, subsets: 2, ops: []bc6hOp{
		{fRW, 0, 10}, {fGW, 0, 10}, {fBW, 0, 10},
		{fRX, 0, 5}, {fRW, 10, 1}, {fGY, 0, 4},
		{fGX, 0, 4}, {fGW, 10, 1}, {fBZ, 0, 1}, {fGZ, 0, 4},
		{fBX, 0, 4}, {fBW, 10, 1}, {fBZ, 1, 1}, {fBY, 0, 4},
		{fRY, 0, 5}, {fBZ, 2, 1},
		{fRZ, 0, 5}, {fBZ, 3, 1},
		{fD, 0, 5},
	}},
	0x06: {epBits: 11, deltaBits: [3]uint{4, 5, 4}, transformed: true, subsets: 2, ops: []bc6hOp{
		{fRW, 0, 10}, {fGW, 0, 10}, {fBW, 0, 10},
		{fRX, 0, 4}, {fRW, 10, 1}, {fGZ, 4, 1}, {fGY, 0, 4},
		{fGX, 0, 5}, {fGW, 10, 1}, {fGZ, 0, 4},
		{fBX, 0, 4}, {fBW, 10, 1}, {fBZ, 1, 1}, {fBY, 0, 4},
		{fRY, 0, 4}, {fBZ, 0, 1}, {fBZ, 2, 1},
		{fRZ, 0, 4}, {fGY, 4, 1}, {fBZ, 3, 1},
		{fD, 0, 5},
	}},
	0x0A: {epBits: 11, deltaBits: [3]uint{4, 4, 5}, transformed: true, subsets: 2, ops: []bc6hOp{
		{fRW, 0, 10}, {fGW, 0, 10}, {fBW, 0, 10},
		{fRX, 0, 4}, {fRW, 10, 1}, {fBY, 4, 1}, {fGY, 0, 4},
		{fGX, 0, 4}, {fGW, 10, 1}, {fBZ, 0, 1}, {fGZ, 0, 4},
		{fBX, 0, 5}, {fBW, 10, 1}, {fBY, 0, 4},
		{fRY, 0, 4}, {fBZ, 1, 1}, {fBZ, 2, 1},
		{fRZ, 0, 4}, {fBZ, 4, 1}, {fBZ, 3, 1},
		{fD, 0, 5},
	}},
	0x0E: {epBits: 9, deltaBits: [3]uint{5, 5, 5}, transformed: true, subsets: 2, ops: []bc6hOp{
		{fRW, 0, 9}, {fBY, 4, 1},
		{fGW, 0, 9}, {fGY, 4, 1},
		{fBW, 0, 9}, {fBZ, 4, 1},
		{fRX, 0, 5}, {fGZ, 4, 1}, {fGY, 0, 4},
		{fGX, 0, 5}, {fBZ, 0, 1}, {fGZ, 0, 4},
		{fBX, 0, 5}, {fBZ, 1, 1}, {fBY, 0, 4},
		{fRY, 0, 5}, {fBZ, 2, 1},
		{fRZ, 0, 5}, {fBZ, 3, 1},
		{fD, 0, 5},
	}},
	0x12: {epBits: 8, deltaBits: [3]uint{6, 5, 5}, transformed: true, subsets: 2, ops: []bc6hOp{
		{fRW, 0, 8}, {fGZ, 4, 1}, {fBY, 4, 1},
		{fGW, 0, 8}, {fBZ, 2, 1}, {fGY, 4, 1},
		{fBW, 0, 8}, {fBZ, 3, 1}, {fBZ, 4, 1},
		{fRX, 0, 6}, {fGY, 0, 4},
		{fGX, 0, 5}, {fBZ, 0, 1}, {fGZ, 0, 4},
		{fBX, 0, 5}, {fBZ, 1, 1}, {fBY, 0, 4},
		{fRY, 0, 6}, {fRZ, 0, 6},
		{fD, 0, 5},
	}},
	0x16: {epBits: 8, deltaBits: [3]uint{5, 6, 5}, transformed: true, subsets: 2, ops: []bc6hOp{
		{fRW, 0, 8}, {fBZ, 0, 1}, {fBY, 4, 1},
		{fGW, 0, 8}, {fGY, 5, 1}, {fGY, 4, 1},
		{fBW, 0, 8}, {fGZ, 5, 1}, {fBZ, 4, 1},
		{fRX, 0, 5}, {fGZ, 4, 1}, {fGY, 0, 4},
		{fGX, 0, 6}, {fGZ, 0, 4},
		{fBX, 0, 5}, {fBZ, 1, 1}, {fBY, 0, 4},
		{fRY, 0, 5}, {fBZ, 2, 1},
		{fRZ, 0, 5}, {fBZ, 3, 1},
		{fD, 0, 5},
	}},
	0x1A: {epBits: 8, deltaBits: [3]uint{5, 5, 6}, transformed: true, subsets: 2, ops: []bc6hOp{
		{fRW, 0, 8}, {fBZ, 1, 1}, {fBY, 4, 1},
		{fGW, 0, 8}, {fBY, 5, 1}, {fGY, 4, 1},
		{fBW, 0, 8}, {fBZ, 5, 1}, {fBZ, 4, 1},
		{fRX, 0, 5}, {fGZ, 4, 1}, {fGY, 0, 4},
		{fGX, 0, 5}, {fBZ, 0, 1}, {fGZ, 0, 4},
		{fBX, 0, 6}, {fBY, 0, 4},
		{fRY, 0, 5}, {fBZ, 2, 1},
		{fRZ, 0, 5}, {fBZ, 3, 1},
		{fD, 0, 5},
	}},
	0x1E: {epBits: 6, deltaBits: [3]uint{6, 6, 6}, transformed: false, subsets: 2, ops: []bc6hOp{
		{fRW, 0, 6}, {fGZ, 4, 1}, {fBZ, 0, 1}, {fBZ, 1, 1}, {fBY, 4, 1},
		{fGW, 0, 6}, {fGY, 5, 1}, {fBY, 5, 1}, {fBZ, 2, 1}, {fGY, 4, 1},
		{fBW, 0, 6}, {fGZ, 5, 1}, {fBZ, 3, 1}, {fBZ, 5, 1}, {fBZ, 4, 1},
		{fRX, 0, 6}, {fGY, 0, 4},
		{fGX, 0, 6}, {fGZ, 0, 4},
		{fBX, 0, 6}, {fBY, 0, 4},
		{fRY, 0, 6}, {fRZ, 0, 6},
		{fD, 0, 5},
	}},
	0x03: {epBits: 10, deltaBits: [3]uint{10, 10, 10}, transformed: false, subsets: 1, ops: []bc6hOp{
		{fRW, 0, 10}, {fGW, 0, 10}, {fBW, 0, 10},
		{fRX, 0, 10}, {fGX, 0, 10}, {fBX, 0, 10},
	}},
	0x07: {epBits: 11, deltaBits: [3]uint{9, 9, 9}, transformed: true, subsets: 1, ops: []bc6hOp{
		{fRW, 0, 10}, {fGW, 0, 10}, {fBW, 0, 10},
		{fRX, 0, 9}, {fRW, 10, 1},
		{fGX, 0, 9}, {fGW, 10, 1},
		{fBX, 0, 9}, {fBW, 10, 1},
	}},
	0x0B: {epBits: 12, deltaBits: [3]uint{8, 8, 8}, transformed: true, subsets: 1, ops: []bc6hOp{
		{fRW, 0, 10}, {fGW, 0, 10}, {fBW, 0, 10},
		{fRX, 0, 8}, {fRW, 11, 1}, {fRW, 10, 1},
		{fGX, 0, 8}, {fGW, 11, 1}, {fGW, 10, 1},
		{fBX, 0, 8}, {fBW, 11, 1}, {fBW, 10, 1},
	}},
	0x0F: {epBits: 16, deltaBits: [3]uint{4, 4, 4}, transformed: true, subsets: 1, ops: []bc6hOp{
		{fRW, 0, 10}, {fGW, 0, 10}, {fBW, 0, 10},
		{fRX, 0, 4}, {fRW, 15, 1}, {fRW, 14, 1}, {fRW, 13, 1}, {fRW, 12, 1}, {fRW, 11, 1}, {fRW, 10, 1},
		{fGX, 0, 4}, {fGW, 15, 1}, {fGW, 14, 1}, {fGW, 13, 1}, {fGW, 12, 1}, {fGW, 11, 1}, {fGW, 10, 1},
		{fBX, 0, 4}, {fBW, 15, 1}, {fBW, 14, 1}, {fBW, 13, 1}, {fBW, 12, 1}, {fBW, 11, 1}, {fBW, 10, 1},
	}},
}
