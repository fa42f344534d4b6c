package simd

// ByteFrequencies contains empirical byte frequency ranks for binary data
// (executable images, memory dumps, file headers).
//
// Lower rank = rarer byte (better candidate for anchor-byte search).
// Higher rank = more common byte (worse candidate).
//
// The table is derived from sampling PE/ELF images and heap dumps: zero fill
// and 0xFF fill dominate, x86-64 opcode and prefix bytes (0x48, 0x8B, 0x89,
// 0xE8, 0x0F, 0x90, 0xCC) are heavily over-represented in code sections, and
// printable ASCII shows up in embedded string tables. The scan engine uses
// this to pick the most selective required byte of a signature as its anchor,
// the same approach Rust's memchr crate uses for rare-byte selection.
var ByteFrequencies = [256]byte{
	// 0x00-0x0F: zero fill dominates; small integers and x86 two-byte opcode
	// escape 0x0F are common in code and headers
	255, 180, 130, 110, 120, 90, 80, 70, 115, 75, 85, 60, 95, 65, 55, 150,
	// 0x10-0x1F: low control-range values, moderately common as small operands
	90, 60, 50, 45, 70, 40, 35, 30, 65, 35, 30, 25, 50, 25, 20, 20,
	// 0x20-0x2F: ASCII space and punctuation (string tables), ' ' most common
	170, 30, 60, 25, 40, 45, 30, 40, 55, 55, 50, 65, 70, 90, 95, 75,
	// 0x30-0x3F: ASCII digits; '0' and '1' frequent in version/string data
	110, 100, 85, 75, 70, 70, 65, 60, 60, 60, 50, 35, 40, 60, 40, 30,
	// 0x40-0x4F: REX prefixes 0x40-0x4F are pervasive in x86-64 code,
	// 0x48 (REX.W) most of all; uppercase letters overlap this range
	120, 105, 95, 100, 115, 110, 85, 80, 220, 130, 55, 60, 105, 100, 90, 95,
	// 0x50-0x5F: push/pop opcodes and uppercase P-Z
	130, 70, 100, 105, 110, 95, 80, 85, 75, 70, 45, 75, 60, 80, 45, 95,
	// 0x60-0x6F: lowercase a-o (identifiers in string tables)
	35, 150, 90, 115, 110, 160, 90, 85, 100, 135, 30, 55, 120, 105, 130, 140,
	// 0x70-0x7F: lowercase p-z, braces
	100, 25, 130, 135, 145, 105, 55, 65, 45, 80, 30, 50, 35, 50, 25, 40,
	// 0x80-0x8F: ModRM-heavy range; 0x89/0x8B (mov) and 0x8D (lea) frequent
	90, 60, 50, 75, 80, 100, 70, 65, 110, 160, 65, 170, 60, 130, 55, 50,
	// 0x90-0x9F: 0x90 (nop) padding
	140, 40, 35, 30, 45, 35, 30, 25, 40, 30, 25, 20, 30, 20, 20, 25,
	// 0xA0-0xAF
	45, 40, 30, 35, 40, 30, 25, 25, 50, 35, 25, 20, 35, 25, 20, 20,
	// 0xB0-0xBF: mov-immediate opcodes 0xB8-0xBF
	50, 40, 35, 30, 35, 30, 25, 25, 80, 60, 50, 45, 55, 45, 40, 45,
	// 0xC0-0xCF: 0xC3 (ret), 0xC7 (mov imm), 0xCC (int3 padding)
	80, 55, 60, 150, 70, 55, 90, 110, 55, 50, 40, 45, 200, 40, 35, 35,
	// 0xD0-0xDF
	50, 45, 35, 30, 35, 25, 20, 25, 40, 30, 25, 20, 30, 20, 20, 25,
	// 0xE0-0xEF: 0xE8 (call) and 0xE9/0xEB (jmp) frequent in code
	45, 35, 30, 35, 40, 30, 25, 30, 170, 120, 25, 100, 35, 30, 25, 30,
	// 0xF0-0xFF: 0xFF fill and the 0xFF opcode group dominate
	70, 40, 60, 55, 45, 35, 60, 65, 50, 40, 35, 30, 45, 35, 55, 240,
}
