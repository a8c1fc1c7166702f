//go:build tinygo

package pulse

import (
	"machine"
	"time"
)

// MachinePin drives a GPIO of a TinyGo target, e.g. a piezo buzzer on
// machine.GPIO4 of an ESP32.
type MachinePin struct {
	pin machine.Pin
}

func NewMachinePin(pin machine.Pin) *MachinePin {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pin.Low()
	return &MachinePin{pin: pin}
}

func (p *MachinePin) Set(high bool) {
	p.pin.Set(high)
}

// MachineClock holds with time.Sleep. How short sleeps are served depends
// on the target: some spin, others arm a timer and pay its wake-up latency
// and tick granularity on every hold. Each period has two holds, so that
// latency adds to every period and lowers the pitch; at a few kHz a 10 µs
// error is already several percent. The virtual buzzer in internal/audio is
// exact.
type MachineClock struct{}

func (MachineClock) SleepMicros(us uint32) {
	time.Sleep(time.Duration(us) * time.Microsecond)
}

func (MachineClock) SleepMillis(ms uint32) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}
