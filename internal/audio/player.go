package audio

import (
	"context"
	"encoding/binary"
	"sync"

	"github.com/gordonklaus/portaudio"

	"github.com/studywatch/platform/internal/errors"
	"github.com/studywatch/platform/pkg/pb"
)

const framesPerBuf = 1024 // ~23ms at 44100Hz

// Player plays PCM16 mono audio on the default output device.
// Playback is serialized; concurrent Play calls queue on the mutex.
type Player struct {
	mu sync.Mutex
}

// NewPlayer initializes portaudio and returns a player.
func NewPlayer() (*Player, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, errors.Wrap(err, pb.ErrorCode_AUDIO_DEVICE_FAILED, "initialize audio")
	}
	return &Player{}, nil
}

// Play writes samples to the default output device at the given rate.
// It returns early if ctx is cancelled, stopping mid-buffer.
func (p *Player) Play(ctx context.Context, samples []int16, sampleRate int) error {
	if len(samples) == 0 {
		return nil
	}
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	buf := make([]int16, framesPerBuf)
	stream, err := portaudio.OpenDefaultStream(0, 1, float64(sampleRate), framesPerBuf, &buf)
	if err != nil {
		return errors.Wrap(err, pb.ErrorCode_AUDIO_DEVICE_FAILED, "open output stream")
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return errors.Wrap(err, pb.ErrorCode_AUDIO_DEVICE_FAILED, "start output stream")
	}
	defer stream.Stop()

	for off := 0; off < len(samples); off += framesPerBuf {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		end := min(off+framesPerBuf, len(samples))
		n := copy(buf, samples[off:end])
		for i := n; i < framesPerBuf; i++ {
			buf[i] = 0
		}
		if err := stream.Write(); err != nil {
			return errors.Wrap(err, pb.ErrorCode_AUDIO_DEVICE_FAILED, "write audio")
		}
	}
	return nil
}

// PlayPCM plays little-endian PCM16 bytes, as streamed by the speech service.
func (p *Player) PlayPCM(ctx context.Context, pcm []byte, sampleRate int) error {
	return p.Play(ctx, BytesToInt16(pcm), sampleRate)
}

// Close terminates portaudio.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	_ = portaudio.Terminate()
}

// BytesToInt16 decodes little-endian PCM16 bytes into samples.
// A trailing odd byte is dropped.
func BytesToInt16(pcm []byte) []int16 {
	samples := make([]int16, len(pcm)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(pcm[i*2:]))
	}
	return samples
}
