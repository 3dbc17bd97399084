// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package main

import (
	"log"

	"github.com/relabs-tech/gps_clock/internal/app"
	"github.com/relabs-tech/gps_clock/internal/config"
)

func main() {
	log.Println("starting NMEA mirror (MQTT subscriber)")

	// Load configuration
	if err := config.InitGlobal("gps_clock.conf"); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := app.RunMirror(); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
