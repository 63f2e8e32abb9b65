package mcnet

import (
	"bufio"
	"errors"
	"io"

	"github.com/gstoney/mcnet/packet"
	"github.com/klauspost/compress/zlib"
)

var (
	ErrPacketTooBig      = errors.New("packet too big")
	ErrInvalidDataLength = errors.New("invalid data length")
	// ErrBelowThreshold rejects a compressed body the sender should have
	// sent uncompressed.
	ErrBelowThreshold = errors.New("compressed packet below threshold")
)

type TransportConfig struct {
	MaxPacketLen       int32 `toml:"max_packet_len"`
	MaxDecompressedLen int32 `toml:"max_decompressed_len"`
}

// DefaultTransportConfig allows the protocol's largest frame (2^21-1 bytes)
// and an 8MiB decompressed payload.
func DefaultTransportConfig() TransportConfig {
	return TransportConfig{
		MaxPacketLen:       1<<21 - 1,
		MaxDecompressedLen: 1 << 23,
	}
}

type byteReader interface {
	io.Reader
	io.ByteReader
}

type byteWriter interface {
	io.Writer
	io.ByteWriter
}

// Transport reads and writes whole frames on a stream, compressing
// payloads once a threshold is set. It does not deserialize packets.
type Transport struct {
	writer byteWriter
	frames frameReader
	zin    inflater

	out     packet.Buffer
	zWriter *zlib.Writer

	// CompressionThreshold is the smallest payload that gets compressed.
	// Negative disables compression framing altogether.
	CompressionThreshold int

	cfg TransportConfig
}

// NewTransport creates a Transport.
//
// Readers and writers that do not implement io.ByteReader/io.ByteWriter are
// wrapped with bufio. Zero limits in cfg take the defaults.
func NewTransport(r io.Reader, w io.Writer, cfg TransportConfig) *Transport {
	var br byteReader
	var bw byteWriter

	if b, ok := r.(byteReader); ok {
		br = b
	} else if r != nil {
		br = bufio.NewReader(r)
	}

	if b, ok := w.(byteWriter); ok {
		bw = b
	} else if w != nil {
		bw = bufio.NewWriter(w)
	}

	def := DefaultTransportConfig()
	if cfg.MaxPacketLen <= 0 {
		cfg.MaxPacketLen = def.MaxPacketLen
	}
	if cfg.MaxDecompressedLen <= 0 {
		cfg.MaxDecompressedLen = def.MaxDecompressedLen
	}

	return &Transport{
		writer:               bw,
		frames:               frameReader{src: br},
		CompressionThreshold: -1,
		cfg:                  cfg,
	}
}

// Recv reads the next frame and returns its payload: the packet id followed
// by the body, decompressed if needed. The slice is reused by the next Recv.
func (t *Transport) Recv() ([]byte, error) {
	frame, err := t.frames.next(t.cfg.MaxPacketLen)
	if err != nil {
		return nil, err
	}
	if t.CompressionThreshold < 0 {
		return frame, nil
	}

	b := packet.NewBuffer(frame)
	dataLen, err := packet.ReadVarInt(&b)
	if err != nil {
		return nil, err
	}

	switch {
	case dataLen == 0:
		return b.Bytes(), nil
	case dataLen < 0:
		return nil, ErrInvalidDataLength
	case dataLen > t.cfg.MaxDecompressedLen:
		return nil, ErrPacketTooBig
	case int(dataLen) < t.CompressionThreshold:
		return nil, ErrBelowThreshold
	}

	return t.zin.inflate(b.Bytes(), int(dataLen))
}

// Send writes payload as one frame and flushes.
func (t *Transport) Send(payload []byte) error {
	body := payload

	if t.CompressionThreshold >= 0 {
		t.out.Reset()
		if len(payload) < t.CompressionThreshold {
			// data length 0 marks an uncompressed body
			t.out.WriteByte(0)
			t.out.Write(payload)
		} else {
			if err := t.deflate(payload); err != nil {
				return err
			}
		}
		body = t.out.Bytes()
	}

	if len(body) > int(t.cfg.MaxPacketLen) {
		return ErrPacketTooBig
	}

	if err := packet.WriteVarInt(t.writer, int32(len(body))); err != nil {
		return err
	}
	if _, err := t.writer.Write(body); err != nil {
		return err
	}
	if bw, ok := t.writer.(*bufio.Writer); ok {
		return bw.Flush()
	}
	return nil
}

func (t *Transport) deflate(payload []byte) error {
	packet.WriteVarInt(&t.out, int32(len(payload)))

	if t.zWriter == nil {
		t.zWriter = zlib.NewWriter(&t.out)
	} else {
		t.zWriter.Reset(&t.out)
	}
	if _, err := t.zWriter.Write(payload); err != nil {
		return err
	}
	return t.zWriter.Close()
}
