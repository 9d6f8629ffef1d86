//go:build tinygo

package cmd

import (
	"fmt"
	"machine"
	"time"
)

// RunConsole reads newline-terminated command lines from the UART and
// forwards them on the returned channel. Full channels drop the line rather
// than block the reader; the consumer loop applies lines in arrival order.
func RunConsole(uart *machine.UART) <-chan string {
	lines := make(chan string, 8)
	go func() {
		buf := make([]byte, 0, 64)
		for {
			for uart.Buffered() > 0 {
				b, err := uart.ReadByte()
				if err != nil {
					continue
				}
				if b != '\n' && b != '\r' {
					buf = append(buf, b)
					continue
				}
				if len(buf) == 0 {
					continue
				}
				select {
				case lines <- string(buf):
				default:
					fmt.Println("console: queue full, dropping command")
				}
				buf = buf[:0]
			}
			time.Sleep(time.Millisecond)
		}
	}()
	return lines
}

// RunTriggers reads motion packets from the UART wired to the gesture board
// and forwards the decoded triggers. Corrupt packets are logged and skipped;
// the reader resynchronizes on the next header byte.
func RunTriggers(uart *machine.UART) <-chan Trigger {
	triggers := make(chan Trigger, 8)
	go func() {
		packet := make([]byte, 0, TriggerLen)
		for {
			for uart.Buffered() > 0 {
				b, err := uart.ReadByte()
				if err != nil {
					continue
				}
				if len(packet) == 0 && b != TriggerHeader {
					continue
				}
				packet = append(packet, b)
				if len(packet) < TriggerLen {
					continue
				}
				t, err := DecodeTrigger(packet)
				packet = packet[:0]
				if err != nil {
					fmt.Println("trigger:", err)
					continue
				}
				select {
				case triggers <- t:
				default:
					fmt.Println("trigger: queue full, dropping gesture")
				}
			}
			time.Sleep(time.Millisecond)
		}
	}()
	return triggers
}
