// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"math"
)

// createWAVFile builds a canonical 44-byte-header WAV file. payload is
// []int16, []float32 or raw []byte.
func createWAVFile(tag uint16, sampleRate, channels, bitsPerSample int, payload any) []byte {
	return riffWAV(fmtBody(tag, sampleRate, channels, bitsPerSample), encodePayload(payload))
}

// createExtensibleWAVFile builds a WAVE_FORMAT_EXTENSIBLE file whose
// SubFormat GUID carries subTag.
func createExtensibleWAVFile(subTag uint16, sampleRate, channels, bitsPerSample int, payload any) []byte {
	body := bytes.NewBuffer(fmtBody(formatExtensible, sampleRate, channels, bitsPerSample))
	binary.Write(body, binary.LittleEndian, uint16(22))            // cbSize
	binary.Write(body, binary.LittleEndian, uint16(bitsPerSample)) // valid bits
	binary.Write(body, binary.LittleEndian, uint32(0))             // channel mask
	binary.Write(body, binary.LittleEndian, subTag)
	body.Write([]byte{0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x80, 0x00, 0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71})

	return riffWAV(body.Bytes(), encodePayload(payload))
}

func encodePayload(payload any) []byte {
	data := new(bytes.Buffer)
	switch p := payload.(type) {
	case []int16:
		binary.Write(data, binary.LittleEndian, p)
	case []float32:
		for _, v := range p {
			binary.Write(data, binary.LittleEndian, math.Float32bits(v))
		}
	case []byte:
		data.Write(p)
	}
	return data.Bytes()
}

func fmtBody(tag uint16, sampleRate, channels, bitsPerSample int) []byte {
	buf := new(bytes.Buffer)

	numChannels := uint16(channels)
	bits := uint16(bitsPerSample)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bits/8)
	blockAlign := numChannels * (bits / 8)

	binary.Write(buf, binary.LittleEndian, tag)
	binary.Write(buf, binary.LittleEndian, numChannels)
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, bits)

	return buf.Bytes()
}

func riffWAV(fmtChunk, data []byte) []byte {
	buf := new(bytes.Buffer)

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(4+8+len(fmtChunk)+8+len(data)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(len(fmtChunk)))
	buf.Write(fmtChunk)

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(len(data)))
	buf.Write(data)

	return buf.Bytes()
}

// header is the subset of a canonical WAV header the tests inspect.
type header struct {
	tag        uint16
	channels   uint16
	sampleRate uint32
	bits       uint16
	dataSize   uint32
}

func parseHeader(b []byte) header {
	return header{
		tag:        binary.LittleEndian.Uint16(b[20:22]),
		channels:   binary.LittleEndian.Uint16(b[22:24]),
		sampleRate: binary.LittleEndian.Uint32(b[24:28]),
		bits:       binary.LittleEndian.Uint16(b[34:36]),
		dataSize:   binary.LittleEndian.Uint32(b[40:44]),
	}
}
