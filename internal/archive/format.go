package archive

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ndewijer/numfmt/internal/apperrors"
)

// Signature opens every archive.
const Signature = "SARCH"

// Entry is one compressed file inside an archive.
type Entry struct {
	Name    string
	Codes   CodeTable
	Padding uint8
	Data    []byte
}

// EncodeEntry compresses data with RLE followed by Huffman coding.
func EncodeEntry(name string, data []byte) Entry {
	encoded, codes, padding := HuffmanEncode(RLEEncode(data))
	return Entry{Name: name, Codes: codes, Padding: padding, Data: encoded}
}

// Decode returns the original file contents of e.
func (e Entry) Decode() ([]byte, error) {
	rle, err := HuffmanDecode(e.Data, e.Codes, e.Padding)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", e.Name, err)
	}
	return RLEDecode(rle), nil
}

// WriteArchive writes the signature, the entry count and every entry in order.
//
// Layout per entry, integers little-endian:
//
//	u16 nameLen | name | u32 codesLen | codes | u8 padding | u32 dataLen | data
func WriteArchive(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(Signature); err != nil {
		return fmt.Errorf("failed to write signature: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(entries))); err != nil {
		return fmt.Errorf("failed to write entry count: %w", err)
	}

	for _, e := range entries {
		if err := writeEntry(bw, e); err != nil {
			return fmt.Errorf("failed to write entry %s: %w", e.Name, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush archive: %w", err)
	}
	return nil
}

func writeEntry(w io.Writer, e Entry) error {
	name := []byte(e.Name)
	if len(name) > math.MaxUint16 {
		return fmt.Errorf("%w: name is %d bytes, limit is %d", apperrors.ErrEntryTooLarge, len(name), math.MaxUint16)
	}
	codes, err := SerializeCodes(e.Codes)
	if err != nil {
		return err
	}
	if uint64(len(codes)) > math.MaxUint32 {
		return fmt.Errorf("%w: code table is %d bytes, limit is %d", apperrors.ErrEntryTooLarge, len(codes), uint64(math.MaxUint32))
	}
	if uint64(len(e.Data)) > math.MaxUint32 {
		return fmt.Errorf("%w: data is %d bytes, limit is %d", apperrors.ErrEntryTooLarge, len(e.Data), uint64(math.MaxUint32))
	}

	buf := make([]byte, 0, 2+len(name)+4+len(codes)+1+4+len(e.Data))
	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(name)))
	buf = append(buf, name...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(codes)))
	buf = append(buf, codes...)
	buf = append(buf, e.Padding)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(e.Data)))
	buf = append(buf, e.Data...)

	_, err = w.Write(buf)
	return err
}

// Reader reads entries from an archive stream.
type Reader struct {
	r         *bufio.Reader
	remaining uint32
}

// NewReader checks the signature and reads the entry count.
func NewReader(r io.Reader) (*Reader, error) {
	br := bufio.NewReader(r)

	sig := make([]byte, len(Signature))
	if _, err := io.ReadFull(br, sig); err != nil || string(sig) != Signature {
		return nil, fmt.Errorf("%w: missing %s signature", apperrors.ErrInvalidArchive, Signature)
	}

	var count uint32
	if err := binary.Read(br, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("%w: missing entry count", apperrors.ErrInvalidArchive)
	}

	return &Reader{r: br, remaining: count}, nil
}

// Len returns the number of entries not yet read.
func (r *Reader) Len() int {
	return int(r.remaining)
}

// Next returns the next entry, or io.EOF once every entry has been read.
func (r *Reader) Next() (Entry, error) {
	if r.remaining == 0 {
		return Entry{}, io.EOF
	}

	var e Entry

	var nameLen uint16
	if err := binary.Read(r.r, binary.LittleEndian, &nameLen); err != nil {
		return Entry{}, truncated("name length", err)
	}
	name, err := r.readN(int(nameLen))
	if err != nil {
		return Entry{}, truncated("name", err)
	}
	e.Name = string(name)

	var codesLen uint32
	if err := binary.Read(r.r, binary.LittleEndian, &codesLen); err != nil {
		return Entry{}, truncated("code table length", err)
	}
	codes, err := r.readN(int(codesLen))
	if err != nil {
		return Entry{}, truncated("code table", err)
	}
	e.Codes, _ = DeserializeCodes(codes)

	if e.Padding, err = r.r.ReadByte(); err != nil {
		return Entry{}, truncated("padding", err)
	}

	var dataLen uint32
	if err := binary.Read(r.r, binary.LittleEndian, &dataLen); err != nil {
		return Entry{}, truncated("data length", err)
	}
	if e.Data, err = r.readN(int(dataLen)); err != nil {
		return Entry{}, truncated("data", err)
	}

	r.remaining--
	return e, nil
}

// readN reads exactly n bytes without trusting n for the initial allocation.
func (r *Reader) readN(n int) ([]byte, error) {
	var buf bytes.Buffer
	copied, err := io.CopyN(&buf, r.r, int64(n))
	if err != nil {
		return nil, err
	}
	if int(copied) != n {
		return nil, io.ErrUnexpectedEOF
	}
	return buf.Bytes(), nil
}

func truncated(field string, err error) error {
	return fmt.Errorf("%w: truncated %s: %v", apperrors.ErrInvalidArchive, field, err)
}
