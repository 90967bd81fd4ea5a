package backdrop

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// rawBuffer packs rows of 32-bit words into a byte buffer with the given
// stride, padding rows with 0xEE.
func rawBuffer(rows [][]uint32, stride int) []byte {
	buf := bytes.Repeat([]byte{0xEE}, stride*len(rows))
	for y, row := range rows {
		for x, w := range row {
			binary.NativeEndian.PutUint32(buf[y*stride+x*4:], w)
		}
	}
	return buf
}

func words(s *Surface) [][]uint32 {
	rows := make([][]uint32, s.Height)
	for y := range rows {
		rows[y] = make([]uint32, s.Width)
		for x := range rows[y] {
			rows[y][x] = binary.NativeEndian.Uint32(s.Pix[s.PixOffset(x, y):])
		}
	}
	return rows
}

func equalWords(a, b [][]uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}

const (
	pxA uint32 = 0x00AA0000
	pxB uint32 = 0x00BB0000
	pxC uint32 = 0x00CC0000
	pxD uint32 = 0x00DD0000
)

func TestOrient(t *testing.T) {
	src := [][]uint32{
		{pxA, pxB},
		{pxC, pxD},
	}
	testCase := []struct {
		transform Transform
		want      [][]uint32
	}{
		{TransformNormal, [][]uint32{{pxA, pxB}, {pxC, pxD}}},
		{Transform90, [][]uint32{{pxC, pxA}, {pxD, pxB}}},
		{Transform180, [][]uint32{{pxD, pxC}, {pxB, pxA}}},
		{Transform270, [][]uint32{{pxB, pxD}, {pxA, pxC}}},
		{TransformFlipped, [][]uint32{{pxB, pxA}, {pxD, pxC}}},
		{TransformFlipped90, [][]uint32{{pxA, pxC}, {pxB, pxD}}},
		{TransformFlipped180, [][]uint32{{pxC, pxD}, {pxA, pxB}}},
		{TransformFlipped270, [][]uint32{{pxD, pxB}, {pxC, pxA}}},
	}
	buf := rawBuffer(src, 8)
	for _, tc := range testCase {
		s := Orient(buf, 2, 2, 8, tc.transform)
		if got := words(s); !equalWords(got, tc.want) {
			t.Errorf("%s: expected %x; got %x", tc.transform, tc.want, got)
		}
	}
}

func TestOrientNormalIsCopy(t *testing.T) {
	rows := [][]uint32{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
		{10, 11, 12},
	}
	buf := rawBuffer(rows, 12)
	s := Orient(buf, 3, 4, 12, TransformNormal)
	if !bytes.Equal(s.Pix, buf) {
		t.Error("identity transform with equal stride should be a byte-for-byte copy")
	}
}

func TestOrientNormalStrides(t *testing.T) {
	// A padded source row must be copied with the smaller of the two
	// strides, never reading past the shorter row.
	rows := [][]uint32{
		{1, 2},
		{3, 4},
	}
	buf := rawBuffer(rows, 12)
	s := Orient(buf, 2, 2, 12, TransformNormal)
	if !equalWords(words(s), rows) {
		t.Errorf("expected %x; got %x", rows, words(s))
	}
}

func TestOrientSwapsDimensions(t *testing.T) {
	buf := rawBuffer([][]uint32{{1, 2, 3}, {4, 5, 6}}, 12)
	testCase := []struct {
		transform     Transform
		width, height int
	}{
		{TransformNormal, 3, 2},
		{Transform90, 2, 3},
		{Transform180, 3, 2},
		{Transform270, 2, 3},
		{TransformFlipped, 3, 2},
		{TransformFlipped90, 2, 3},
		{TransformFlipped180, 3, 2},
		{TransformFlipped270, 2, 3},
	}
	for _, tc := range testCase {
		s := Orient(buf, 3, 2, 12, tc.transform)
		if s.Width != tc.width || s.Height != tc.height {
			t.Errorf("%s: expected %dx%d; got %dx%d",
				tc.transform, tc.width, tc.height, s.Width, s.Height)
		}
	}
}

func TestOrientRoundTrip(t *testing.T) {
	// Rotating by 90 and then by 270 must return every pixel to its
	// original position.
	rows := [][]uint32{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
	}
	buf := rawBuffer(rows, 16)
	s90 := Orient(buf, 4, 3, 16, Transform90)
	s := Orient(s90.Pix, s90.Width, s90.Height, s90.Stride, Transform270)
	if s.Width != 4 || s.Height != 3 {
		t.Fatalf("wrong size after round trip: %dx%d", s.Width, s.Height)
	}
	if !equalWords(words(s), rows) {
		t.Errorf("expected %x; got %x", rows, words(s))
	}
}

func TestFromBuffer(t *testing.T) {
	// xbgr8888 pixels rotated by 180: orientation happens on raw bytes,
	// normalization afterwards.
	s0 := surfaceFromWords([][]uint32{{0xFF332211, 0xFF665544}})
	s, err := FromBuffer(s0.Pix, XBGR8888, 2, 1, s0.Stride, Transform180)
	if err != nil {
		t.Fatal(err)
	}
	if p := pixel(t, s, 0, 0); p != 0x00445566 {
		t.Errorf("expected 0x00445566; got %#08x", p)
	}
	if p := pixel(t, s, 1, 0); p != 0x00112233 {
		t.Errorf("expected 0x00112233; got %#08x", p)
	}
}

func TestFromBufferInvalid(t *testing.T) {
	if _, err := FromBuffer(nil, XRGB8888, 0, 2, 8, TransformNormal); err == nil {
		t.Error("zero width want error")
	}
	if _, err := FromBuffer(make([]byte, 8), XRGB8888, 2, 2, 8, TransformNormal); err == nil {
		t.Error("short buffer want error")
	}
}
