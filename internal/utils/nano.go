package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

// No look-alike characters (0/O, 1/l/I).
const nanoidAlphabet = "23456789abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ"

var NanoidSize = 21

func NanoID() string {
	return NanoIDSize(NanoidSize)
}

// NanoIDSize generates an id of the given length, NanoidSize when size is
// not positive.
func NanoIDSize(size int) string {
	if size <= 0 {
		size = NanoidSize
	}

	return gonanoid.MustGenerate(nanoidAlphabet, size)
}
