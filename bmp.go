package sr3d

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// BMP layout constants.
const (
	bmpFileHeaderLen = 14
	bmpInfoHeaderLen = 40
	bmpPixelOffset   = bmpFileHeaderLen + bmpInfoHeaderLen
	bmpBitsPerPixel  = 24
)

// bmpHeader is the file header followed by the BITMAPINFOHEADER,
// in the order the fields are written.
type bmpHeader struct {
	Magic       [2]byte
	FileSize    uint32
	Reserved    uint32
	PixelOffset uint32

	InfoSize    uint32
	Width       int32
	Height      int32
	Planes      uint16
	BitCount    uint16
	Compression uint32
	ImageSize   uint32
	XPelsPerM   int32
	YPelsPerM   int32
	ColorsUsed  uint32
	ColorsImp   uint32
}

// BMPSize returns the size in bytes of the BMP encoding of a w×h canvas.
func BMPSize(w, h int) int {
	return bmpPixelOffset + w*h*3
}

// EncodeBMP writes the canvas as an uncompressed 24-bit BMP.
//
// Buffer rows are written in order, row 0 first, with no row padding.
// Since the height field is positive, a reader places row 0 at the bottom
// of the image.
func EncodeBMP(w io.Writer, c *Canvas) error {
	imageSize := c.width * c.height * 3
	hdr := bmpHeader{
		Magic:       [2]byte{'B', 'M'},
		FileSize:    uint32(BMPSize(c.width, c.height)), //nolint:gosec // checked by NewCanvas
		PixelOffset: bmpPixelOffset,
		InfoSize:    bmpInfoHeaderLen,
		Width:       int32(c.width),  //nolint:gosec // checked by NewCanvas
		Height:      int32(c.height), //nolint:gosec // checked by NewCanvas
		Planes:      1,
		BitCount:    bmpBitsPerPixel,
		ImageSize:   uint32(imageSize), //nolint:gosec // checked by NewCanvas
	}

	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, &hdr); err != nil {
		return fmt.Errorf("sr3d: write BMP header: %w", err)
	}

	for y := 0; y < c.height; y++ {
		row := c.pix[y*c.width*3 : (y+1)*c.width*3]
		if _, err := bw.Write(row); err != nil {
			return fmt.Errorf("sr3d: write BMP row %d: %w", y, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("sr3d: write BMP: %w", err)
	}
	return nil
}

// SaveBMP encodes the canvas to a BMP file at path, replacing any existing
// file. The file is always closed before SaveBMP returns.
func (c *Canvas) SaveBMP(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("sr3d: create file: %w", err)
	}

	if err := EncodeBMP(f, c); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("sr3d: close file: %w", err)
	}

	Logger().Debug("bmp written", "path", path, "bytes", BMPSize(c.width, c.height))
	return nil
}
