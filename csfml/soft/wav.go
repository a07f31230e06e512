package soft

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"

	"github.com/jfreymuth/oggvorbis"
)

// pcm is decoded 16-bit interleaved audio.
type pcm struct {
	samples    []int16
	channels   uint32
	sampleRate uint32
}

var errNotWAV = errors.New("not a 16-bit PCM wave file")

// decodeAudio accepts 16-bit PCM WAV and Ogg Vorbis.
func decodeAudio(data []byte) (pcm, bool) {
	switch {
	case len(data) >= 12 && string(data[0:4]) == "RIFF" && string(data[8:12]) == "WAVE":
		p, err := decodeWAV(data)
		return p, err == nil
	case len(data) >= 4 && string(data[0:4]) == "OggS":
		p, err := decodeOgg(bytes.NewReader(data))
		return p, err == nil
	}
	return pcm{}, false
}

func decodeWAV(data []byte) (pcm, error) {
	var (
		out     pcm
		haveFmt bool
		bits    uint16
	)
	rest := data[12:]
	for len(rest) >= 8 {
		id := string(rest[0:4])
		size := binary.LittleEndian.Uint32(rest[4:8])
		rest = rest[8:]
		if uint64(size) > uint64(len(rest)) {
			return pcm{}, errNotWAV
		}
		body := rest[:size]
		switch id {
		case "fmt ":
			if len(body) < 16 || binary.LittleEndian.Uint16(body[0:2]) != 1 {
				return pcm{}, errNotWAV
			}
			out.channels = uint32(binary.LittleEndian.Uint16(body[2:4]))
			out.sampleRate = binary.LittleEndian.Uint32(body[4:8])
			bits = binary.LittleEndian.Uint16(body[14:16])
			haveFmt = true
		case "data":
			if !haveFmt || bits != 16 {
				return pcm{}, errNotWAV
			}
			out.samples = make([]int16, len(body)/2)
			for i := range out.samples {
				out.samples[i] = int16(binary.LittleEndian.Uint16(body[i*2:]))
			}
			if out.channels == 0 || out.sampleRate == 0 {
				return pcm{}, errNotWAV
			}
			return out, nil
		}
		// chunks are padded to even sizes
		rest = rest[size:]
		if size%2 == 1 && len(rest) > 0 {
			rest = rest[1:]
		}
	}
	return pcm{}, errNotWAV
}

func encodeWAV(w io.Writer, p pcm) error {
	dataSize := uint32(len(p.samples) * 2)
	blockAlign := uint16(p.channels * 2)
	header := []any{
		[4]byte{'R', 'I', 'F', 'F'},
		36 + dataSize,
		[4]byte{'W', 'A', 'V', 'E'},
		[4]byte{'f', 'm', 't', ' '},
		uint32(16),
		uint16(1),
		uint16(p.channels),
		p.sampleRate,
		p.sampleRate * uint32(blockAlign),
		blockAlign,
		uint16(16),
		[4]byte{'d', 'a', 't', 'a'},
		dataSize,
	}
	for _, v := range header {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	return binary.Write(w, binary.LittleEndian, p.samples)
}

func decodeOgg(r io.Reader) (pcm, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return pcm{}, err
	}
	out := pcm{channels: uint32(dec.Channels()), sampleRate: uint32(dec.SampleRate())}
	buf := make([]float32, 4096)
	for {
		n, err := dec.Read(buf)
		for _, f := range buf[:n] {
			out.samples = append(out.samples, floatToInt16(f))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return pcm{}, err
		}
	}
	if out.channels == 0 || out.sampleRate == 0 {
		return pcm{}, errors.New("ogg stream without audio parameters")
	}
	return out, nil
}

func floatToInt16(f float32) int16 {
	v := math.Round(float64(f) * math.MaxInt16)
	return int16(max(math.MinInt16, min(math.MaxInt16, v)))
}
