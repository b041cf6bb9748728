package geohash

// base32 is the geohash symbol table: digits then lowercase letters without a, i, l, o.
const base32 = "0123456789bcdefghjkmnpqrstuvwxyz"

// invalidSymbol marks bytes that are not part of the alphabet in decodeTable.
const invalidSymbol = 0xff

// decodeTable maps an ASCII byte to its 5-bit value. Upper case letters
// map to the same value as their lower case form.
var decodeTable = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = invalidSymbol
	}
	for i := 0; i < len(base32); i++ {
		c := base32[i]
		t[c] = byte(i)
		if c >= 'a' && c <= 'z' {
			t[c-'a'+'A'] = byte(i)
		}
	}
	return t
}()

// symbolValue returns the 5-bit value of c and whether c belongs to the alphabet.
func symbolValue(c byte) (uint8, bool) {
	v := decodeTable[c]
	return v, v != invalidSymbol
}

// Valid reports whether every character of hash belongs to the geohash alphabet.
func Valid(hash string) bool {
	for i := 0; i < len(hash); i++ {
		if _, ok := symbolValue(hash[i]); !ok {
			return false
		}
	}
	return true
}
