// Package audio plays the population drone through the default output device.
package audio

import (
	"fmt"
	"log/slog"

	"github.com/gordonklaus/portaudio"

	"github.com/san-kum/cubelife/internal/audio/synth"
)

const BufferSize = 1024

// Processor owns the output stream. The frame loop feeds it population values;
// the stream callback only reads them through the synth's lock and never
// touches the lattice.
type Processor struct {
	synth  *synth.Synth
	stream *portaudio.Stream
	active bool
}

func NewProcessor() *Processor {
	return &Processor{synth: synth.New()}
}

func (a *Processor) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("init portaudio: %w", err)
	}
	stream, err := portaudio.OpenDefaultStream(0, 2, synth.SampleRate, BufferSize, a.process)
	if err != nil {
		portaudio.Terminate()
		return fmt.Errorf("open output stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return fmt.Errorf("start output stream: %w", err)
	}
	slog.Info("audio started", "sample_rate", synth.SampleRate, "buffer", BufferSize)
	a.stream = stream
	a.active = true
	return nil
}

func (a *Processor) Stop() {
	if !a.active {
		return
	}
	a.stream.Stop()
	a.stream.Close()
	portaudio.Terminate()
	a.active = false
}

func (a *Processor) Active() bool { return a.active }

func (a *Processor) process(out [][]float32) { a.synth.Render(out) }

// Update reports the live fraction of the lattice and whether a tick happened
// this frame.
func (a *Processor) Update(population float64, ticked bool) {
	a.synth.SetPopulation(population)
	if ticked {
		a.synth.Pulse()
	}
}
