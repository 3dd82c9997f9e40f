package whisper

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pion/opus"
	"github.com/pion/opus/pkg/oggreader"
	"github.com/zeozeozeo/gomplerate"

	"github.com/skillsenselab/yt-transcriber/internal/logger"
	"github.com/skillsenselab/yt-transcriber/internal/process"
)

const (
	// targetSampleRate is the sample rate whisper.cpp expects.
	targetSampleRate = 16000
	// maxFrameSize is the largest Opus frame (120ms at 48kHz).
	maxFrameSize = 5760
)

// pcmDecoder converts audio files to 16kHz mono float32 samples, the input
// format whisper.cpp requires. ffmpeg is the primary path; Ogg/Opus files
// fall back to a pure Go decoder when ffmpeg is not installed.
type pcmDecoder struct {
	ffmpegPath string
	log        *logger.Logger
}

func newPCMDecoder(ffmpegPath string, log *logger.Logger) *pcmDecoder {
	return &pcmDecoder{
		ffmpegPath: ffmpegPath,
		log:        log,
	}
}

// Decode converts an audio file to 16kHz mono float32 samples.
func (d *pcmDecoder) Decode(ctx context.Context, path string) ([]float32, error) {
	if d.ffmpegAvailable() {
		return d.decodeWithFFmpeg(ctx, path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".ogg" || ext == ".opus" || ext == ".oga" {
		samples, err := d.decodeOggOpus(path)
		if err != nil {
			return nil, fmt.Errorf("ogg decoding failed (%v), install ffmpeg for reliable audio conversion", err)
		}
		return samples, nil
	}

	return nil, fmt.Errorf("unsupported audio format %s (install ffmpeg for non-ogg files)", ext)
}

// ffmpegAvailable checks if ffmpeg is installed.
func (d *pcmDecoder) ffmpegAvailable() bool {
	_, err := exec.LookPath(d.ffmpegPath)
	return err == nil
}

// decodeWithFFmpeg converts audio to raw 16-bit PCM through ffmpeg, then
// normalizes the samples to float32.
func (d *pcmDecoder) decodeWithFFmpeg(ctx context.Context, path string) ([]float32, error) {
	tmpFile, err := os.CreateTemp("", "pcm-*.raw")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	tmpFile.Close()
	defer os.Remove(tmpPath)

	res, err := process.Run(ctx, process.Command{
		Binary: d.ffmpegPath,
		Args: []string{
			"-i", path,
			"-ar", strconv.Itoa(targetSampleRate),
			"-ac", "1",
			"-f", "s16le",
			"-acodec", "pcm_s16le",
			"-y",
			tmpPath,
		},
	})
	if err != nil {
		stderr := ""
		if res != nil {
			stderr = strings.TrimSpace(string(res.Stderr))
		}
		d.log.Debug("ffmpeg failed", map[string]interface{}{
			"stderr": stderr,
		})
		return nil, fmt.Errorf("ffmpeg conversion failed: %w", err)
	}

	rawData, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("read converted audio: %w", err)
	}

	samples := make([]int16, len(rawData)/2)
	for i := 0; i < len(samples); i++ {
		samples[i] = int16(rawData[i*2]) | int16(rawData[i*2+1])<<8
	}

	return int16ToFloat32(samples), nil
}

// decodeOggOpus decodes Ogg/Opus to 16kHz mono float32 in pure Go. The
// decoder library panics on some inputs, so failures are recovered into
// errors.
func (d *pcmDecoder) decodeOggOpus(path string) (samples []float32, err error) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Warn("opus decoder panicked", map[string]interface{}{
				"panic": fmt.Sprintf("%v", r),
			})
			err = fmt.Errorf("decoder panic: %v", r)
			samples = nil
		}
	}()
	return d.decodeOggOpusInner(path)
}

func (d *pcmDecoder) decodeOggOpusInner(path string) ([]float32, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open audio file: %w", err)
	}
	defer file.Close()

	ogg, header, err := oggreader.NewWith(file)
	if err != nil {
		return nil, fmt.Errorf("parse ogg container: %w", err)
	}

	sampleRate := int(header.SampleRate)
	channels := int(header.Channels)

	decoder := opus.NewDecoder()
	outBuf := make([]byte, maxFrameSize*channels*2)

	var allSamples []int16
	for {
		segments, _, err := ogg.ParseNextPage()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse ogg page: %w", err)
		}

		for _, segment := range segments {
			if len(segment) == 0 {
				continue
			}

			_, isStereo, err := decoder.Decode(segment, outBuf)
			if err != nil {
				continue
			}

			actualChannels := 1
			if isStereo {
				actualChannels = 2
			}
			allSamples = append(allSamples, bytesToInt16(outBuf, actualChannels)...)
		}
	}

	if len(allSamples) == 0 {
		return nil, fmt.Errorf("no audio samples decoded from %s", path)
	}

	if channels > 1 {
		allSamples = toMono(allSamples, channels)
	}
	if sampleRate != targetSampleRate {
		allSamples = resampleInt16(allSamples, sampleRate, targetSampleRate)
	}

	return int16ToFloat32(allSamples), nil
}

// bytesToInt16 converts a byte buffer to int16 samples (little-endian),
// trimming the unused zero tail of the decode buffer.
func bytesToInt16(buf []byte, channels int) []int16 {
	numSamples := len(buf) / 2
	samples := make([]int16, 0, numSamples)

	for i := 0; i < len(buf)-1; i += 2 {
		sample := int16(binary.LittleEndian.Uint16(buf[i : i+2]))
		if sample == 0 && i > 0 {
			allZero := true
			for j := i; j < len(buf)-1; j += 2 {
				if binary.LittleEndian.Uint16(buf[j:j+2]) != 0 {
					allZero = false
					break
				}
			}
			if allZero {
				break
			}
		}
		samples = append(samples, sample)
	}

	return samples
}

// toMono converts multi-channel audio to mono by averaging channels.
func toMono(samples []int16, channels int) []int16 {
	if channels == 1 {
		return samples
	}

	mono := make([]int16, len(samples)/channels)
	for i := 0; i < len(mono); i++ {
		var sum int32
		for ch := 0; ch < channels; ch++ {
			sum += int32(samples[i*channels+ch])
		}
		mono[i] = int16(sum / int32(channels))
	}
	return mono
}

// resampleInt16 converts audio from one sample rate to another.
func resampleInt16(samples []int16, fromRate, toRate int) []int16 {
	if fromRate == toRate {
		return samples
	}

	resampler, err := gomplerate.NewResampler(1, fromRate, toRate)
	if err != nil {
		return samples
	}

	return resampler.ResampleInt16(samples)
}

// int16ToFloat32 converts int16 samples to float32 normalized to [-1, 1].
func int16ToFloat32(samples []int16) []float32 {
	result := make([]float32, len(samples))
	for i, s := range samples {
		result[i] = float32(s) / 32768.0
	}
	return result
}
