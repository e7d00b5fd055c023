package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/thelolagemann/gbcore/internal/gameboy"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

func main() {
	romFile := flag.String("rom", "", "The rom file to load (.gb, or compressed with .gz .xz .zst .lz4 .br .zip .7z)")
	steps := flag.Int("steps", 1000, "The maximum number of instructions to execute")
	base := flag.Int("base", int(types.ROMBase), "The address to load the rom at")
	dumpOpcode := flag.Int("dump-opcode", -1, "Dump the registers after each execution of this opcode, -1 to disable")
	logLevel := flag.String("log-level", "info", "The log level: debug, info, warn or error")
	noBios := flag.Bool("no-bios", false, "Start at 0x0100 with the registers the boot rom leaves behind")
	flag.Parse()

	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := log.New(level)

	if *romFile == "" {
		flag.Usage()
		os.Exit(2)
	}

	// open the rom file
	rom, err := utils.LoadFile(*romFile)
	if err != nil {
		logger.Errorf("loading %s: %v", *romFile, err)
		os.Exit(1)
	}

	address := utils.Clamp(0, *base, 0xFFFF)
	if address != *base {
		logger.Warnf("load address 0x%X out of range, using 0x%04X", *base, address)
	}

	opts := []gameboy.Opt{
		gameboy.WithLogger(logger),
		gameboy.WithLoadAddress(uint16(address)),
	}
	if *dumpOpcode >= 0 {
		opts = append(opts, gameboy.Debug(uint8(utils.Clamp(0, *dumpOpcode, 0xFF))))
	}
	if *noBios {
		opts = append(opts, gameboy.NoBios())
	}

	// create a new gameboy
	gb, err := gameboy.NewGameBoy(rom, opts...)
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}

	n, err := gb.Run(*steps)
	logger.Infof("executed %d instructions in %d cycles", n, gb.CPU.Cycles)
	fmt.Println(gb.CPU.Dump())
	if err != nil {
		os.Exit(1)
	}
}
