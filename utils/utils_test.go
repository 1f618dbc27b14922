package utils

import (
	"bytes"
	"testing"
)

func TestBitsBytesConvert(t *testing.T) {
	e1 := byte(1) // 0000 0001
	e2 := byte(2) // 0000 0010
	bs := []byte{e1, e2}

	for i := uint32(0); i < 7; i++ {
		if GetNthBit(bs, i) {
			t.Errorf("bit %d of 0x0102 should be 0", i)
		}
	}
	if !GetNthBit(bs, 7) {
		t.Error("bit 7 of 0x0102 should be 1")
	}
	if !GetNthBit(bs, 14) {
		t.Error("bit 14 of 0x0102 should be 1")
	}
	if GetNthBit(bs, 15) {
		t.Error("bit 15 of 0x0102 should be 0")
	}
}

func TestToBitString(t *testing.T) {
	bs := []byte{0xa0} // 1010 0000
	if got := ToBitString(bs, 4); got != "1010" {
		t.Errorf("ToBitString(0xa0, 4) = %q, want %q", got, "1010")
	}
	if got := ToBitString(bs, 8); got != "10100000" {
		t.Errorf("ToBitString(0xa0, 8) = %q, want %q", got, "10100000")
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic when requesting more bits than available")
		}
	}()
	ToBitString(bs, 9)
}

func TestULongToBytes(t *testing.T) {
	if !bytes.Equal(ULongToBytes(1), []byte{1, 0, 0, 0, 0, 0, 0, 0}) {
		t.Error("ULongToBytes is not little endian")
	}
}
