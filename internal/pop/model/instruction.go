package model

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Publication data size limits enforced on endorsement payloads.
const (
	MaxHeaderSize  = 1024
	MaxContextSize = 10_000
	MaxPayoutSize  = 100
)

// ErrInvalidEndorsement is returned for endorsement payloads that do not decode
// into well formed publication data.
var ErrInvalidEndorsement = errors.New("invalid endorsement data")

// PublicationData is the altchain content embedded into the endorsement transaction.
type PublicationData struct {
	Identifier  int64  `json:"identifier"`
	Header      []byte `json:"header"`
	ContextInfo []byte `json:"context_info"`
	PayoutInfo  []byte `json:"payout_info"`
}

// MiningInstruction is what the altchain hands out for endorsing one of its blocks.
type MiningInstruction struct {
	PublicationData     PublicationData `json:"publication_data"`
	EndorsedBlockHeight uint64          `json:"endorsed_block_height"`
	// Context holds VeriBlock block hashes known to the altchain, oldest first.
	Context [][]byte `json:"context"`
	// BTCContext holds Bitcoin block hashes known to the altchain, oldest first.
	BTCContext [][]byte `json:"btc_context"`
}

// Serialize encodes publication data in the VeriBlock wire format.
func (p PublicationData) Serialize() []byte {
	var buf bytes.Buffer
	writeSingleByteLengthValue(&buf, trimmedInt(uint64(p.Identifier)))
	writeVariableLengthValue(&buf, p.Header)
	writeVariableLengthValue(&buf, p.ContextInfo)
	writeVariableLengthValue(&buf, p.PayoutInfo)
	return buf.Bytes()
}

// ParsePublicationData decodes and validates an endorsement payload.
func ParsePublicationData(payload []byte) (*PublicationData, error) {
	r := bytes.NewReader(payload)

	id, err := readSingleByteLengthValue(r, 8)
	if err != nil {
		return nil, fmt.Errorf("%w: identifier: %v", ErrInvalidEndorsement, err)
	}
	header, err := readVariableLengthValue(r, MaxHeaderSize)
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrInvalidEndorsement, err)
	}
	contextInfo, err := readVariableLengthValue(r, MaxContextSize)
	if err != nil {
		return nil, fmt.Errorf("%w: context info: %v", ErrInvalidEndorsement, err)
	}
	payout, err := readVariableLengthValue(r, MaxPayoutSize)
	if err != nil {
		return nil, fmt.Errorf("%w: payout info: %v", ErrInvalidEndorsement, err)
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrInvalidEndorsement, r.Len())
	}
	if len(header) == 0 {
		return nil, fmt.Errorf("%w: empty header", ErrInvalidEndorsement)
	}
	if len(payout) == 0 {
		return nil, fmt.Errorf("%w: empty payout info", ErrInvalidEndorsement)
	}

	var identifier uint64
	for _, b := range id {
		identifier = identifier<<8 | uint64(b)
	}
	return &PublicationData{
		Identifier:  int64(identifier),
		Header:      header,
		ContextInfo: contextInfo,
		PayoutInfo:  payout,
	}, nil
}

// ValidateEndorsement reports whether payload is well formed publication data.
func ValidateEndorsement(payload []byte) error {
	_, err := ParsePublicationData(payload)
	return err
}

func trimmedInt(v uint64) []byte {
	var raw [8]byte
	binary.BigEndian.PutUint64(raw[:], v)
	i := 0
	for i < 7 && raw[i] == 0 {
		i++
	}
	return raw[i:]
}

func writeSingleByteLengthValue(buf *bytes.Buffer, value []byte) {
	buf.WriteByte(byte(len(value)))
	buf.Write(value)
}

func writeVariableLengthValue(buf *bytes.Buffer, value []byte) {
	size := trimmedInt(uint64(len(value)))
	buf.WriteByte(byte(len(size)))
	buf.Write(size)
	buf.Write(value)
}

func readSingleByteLengthValue(r *bytes.Reader, max int) ([]byte, error) {
	n, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	if int(n) > max {
		return nil, fmt.Errorf("length %d exceeds %d", n, max)
	}
	return readN(r, int(n))
}

func readVariableLengthValue(r *bytes.Reader, max int) ([]byte, error) {
	sizeLen, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	if sizeLen == 0 || sizeLen > 4 {
		return nil, fmt.Errorf("bad length prefix %d", sizeLen)
	}
	rawSize, err := readN(r, int(sizeLen))
	if err != nil {
		return nil, err
	}
	size := 0
	for _, b := range rawSize {
		size = size<<8 | int(b)
	}
	if size > max {
		return nil, fmt.Errorf("length %d exceeds %d", size, max)
	}
	return readN(r, size)
}

func readN(r *bytes.Reader, n int) ([]byte, error) {
	out := make([]byte, n)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, err
	}
	return out, nil
}
