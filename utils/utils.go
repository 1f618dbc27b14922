// Package utils provides some utility functions
// used by the merkle-prefix-tree packages and executables.
package utils

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// GetNthBit finds the bit in the byte array bs
// at offset offset, and determines whether it is 1 or 0.
// return true if the nth bit is 1, false otherwise.
// from MSB to LSB order
func GetNthBit(bs []byte, offset uint32) bool {
	arrayOffset := offset / 8
	bitOfByte := offset % 8

	masked := int(bs[arrayOffset] & (1 << uint(7-bitOfByte)))
	return masked != 0
}

// ToBitString returns the first n bits of bs rendered as a string of
// '0' and '1' characters, MSB first. This is how a lookup digest is
// turned into a tree prefix.
func ToBitString(bs []byte, n int) string {
	if n > len(bs)*8 {
		panic(fmt.Sprintf("utils: requested %d bits from %d bytes", n, len(bs)))
	}
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		if GetNthBit(bs, uint32(i)) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// ULongToBytes converts an uint64 variable to byte array
// in little endian format
func ULongToBytes(num uint64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, num)
	return buf
}

// WriteFile writes buf to a file whose path is indicated by filename.
func WriteFile(filename string, buf []byte, perm os.FileMode) error {
	if _, err := os.Stat(filename); err == nil {
		return fmt.Errorf("Can't write file. File '%s' already exists\n",
			filename)
	}

	if err := os.WriteFile(filename, buf, perm); err != nil {
		return err
	}
	return nil
}

// ResolvePath returns the absolute path of file.
// This will use other as a base path if file is just a file name.
func ResolvePath(file, other string) string {
	if !filepath.IsAbs(file) {
		file = filepath.Join(filepath.Dir(other), file)
	}
	return file
}
