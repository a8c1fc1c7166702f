//go:build tinygo

// Command birdsong-tinygo plays the bird concert on a piezo buzzer wired to
// a GPIO of a TinyGo board.
//
//	tinygo flash -target esp32-coreboard-v2 ./cmd/birdsong-tinygo
package main

import (
	"machine"
	"time"

	"github.com/cbegin/chirpmaker-go"
	"github.com/cbegin/chirpmaker-go/internal/pulse"
)

const buzzerPin = machine.GPIO4

func main() {
	m, err := chirpmaker.New(
		chirpmaker.WithPin(pulse.NewMachinePin(buzzerPin), pulse.MachineClock{}),
		chirpmaker.WithSeed(uint64(time.Now().UnixNano())),
	)
	if err != nil {
		println("birdsong:", err.Error())
		return
	}
	m.Signet()
	for {
		m.Tick()
	}
}
