//go:build tinygo

package main

import (
	"fmt"
	"machine"
	"time"

	"tinygo.org/x/drivers/ssd1306"

	"github.com/zenith-8-bit/zenith/cmd"
	"github.com/zenith-8-bit/zenith/eyes"
)

const (
	screenWidth  = 128
	screenHeight = 64
	targetFPS    = 50
)

func main() {
	machine.I2C0.Configure(machine.I2CConfig{Frequency: 400 * machine.KHz})

	display := ssd1306.NewI2C(machine.I2C0)
	display.Configure(ssd1306.Config{
		Width:   screenWidth,
		Height:  screenHeight,
		Address: 0x3C,
	})
	display.ClearDisplay()

	console := machine.UART0
	console.Configure(machine.UARTConfig{BaudRate: 115200})

	motion := machine.UART1
	motion.Configure(machine.UARTConfig{BaudRate: 38400})

	face := eyes.New(eyes.NewDisplaySurface(&display))
	face.Configure(eyes.Config{Width: screenWidth, Height: screenHeight, FrameRate: targetFPS})
	face.SetAutoblinker(true, 1, 4)
	face.SetIdleMode(true, 1, 3)
	face.Open()

	lines := cmd.RunConsole(console)
	triggers := cmd.RunTriggers(motion)

	fmt.Println("Starting Face Loop")

	start := time.Now()
	for {
		select {
		case line := <-lines:
			if err := cmd.Apply(face, line); err != nil {
				fmt.Println("console:", err)
			}
		case t := <-triggers:
			cmd.ApplyTrigger(face, t)
		default:
		}

		if err := face.Update(time.Since(start).Milliseconds()); err != nil {
			fmt.Println("display:", err)
		}

		time.Sleep(time.Millisecond)
	}
}
