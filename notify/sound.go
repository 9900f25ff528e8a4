package notify

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

const speakerBufferDivisor = 10

// speakerRate is the fixed output rate. Streams with other rates are
// resampled to it.
const speakerRate beep.SampleRate = 44100

var (
	initSpeaker = speaker.Init
	playStream  = speaker.Play

	speakerOnce sync.Once
	speakerErr  error

	// playback is held for the whole of a sound so overlapping reminders
	// play one after the other.
	playback sync.Mutex
)

// ensureSpeaker initialises the speaker on first use. The speaker can only be
// initialised once per process.
func ensureSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = initSpeaker(
			speakerRate,
			speakerRate.N(time.Second/speakerBufferDivisor),
		)
	})

	return speakerErr
}

// decode opens the sound file and picks a decoder from its extension.
func decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, errOpenSound.Fmt(path).Wrap(err)
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		_ = f.Close()
		return nil, beep.Format{}, errInvalidSoundFormat.Fmt(path)
	}

	if err != nil {
		_ = f.Close()
		return nil, beep.Format{}, errOpenSound.Fmt(path).Wrap(err)
	}

	return stream, format, nil
}

// PlaySound plays the file once and blocks until playback ends.
func PlaySound(path string) error {
	stream, format, err := decode(path)
	if err != nil {
		return err
	}

	defer stream.Close()

	return play(stream, format)
}

func play(stream beep.Streamer, format beep.Format) error {
	if err := ensureSpeaker(); err != nil {
		return err
	}

	playback.Lock()
	defer playback.Unlock()

	var s beep.Streamer = stream
	if format.SampleRate != speakerRate {
		s = beep.Resample(4, format.SampleRate, speakerRate, stream)
	}

	done := make(chan struct{})

	playStream(beep.Seq(s, beep.Callback(func() {
		close(done)
	})))

	<-done

	return nil
}
