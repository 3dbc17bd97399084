// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	serial "github.com/jacobsa/go-serial/serial"
	"periph.io/x/host/v3"

	"github.com/relabs-tech/gps_clock/internal/button"
	"github.com/relabs-tech/gps_clock/internal/clock"
	"github.com/relabs-tech/gps_clock/internal/config"
	"github.com/relabs-tech/gps_clock/internal/display"
	"github.com/relabs-tech/gps_clock/internal/geo"
	"github.com/relabs-tech/gps_clock/internal/gps"
	"github.com/relabs-tech/gps_clock/internal/tz"
)

// staleAfter is how long without parser output before the screen flags the
// receiver as stale.
const staleAfter = 10 * time.Second

// SchedulerOptions wires the scheduler's collaborators. Serial carries raw
// receiver bytes; everything else is optional and skipped when nil.
type SchedulerOptions struct {
	Serial         <-chan []byte
	Cache          *display.Cache
	Resolver       *tz.Resolver
	Deriver        *geo.Deriver
	TZButton       *button.Button
	BLButton       *button.Button
	Backlight      *button.Backlight
	RenderInterval time.Duration
	OnSentence     func([]byte)
	OnFix          func(gps.Fix)
}

// Scheduler owns the per-tick pipeline: drain serial bytes through the
// parser, poll buttons, refresh timezone state and repaint changed fields.
// One tick never blocks; a panicking tick is contained and the next tick
// proceeds.
type Scheduler struct {
	opts   SchedulerOptions
	parser *gps.Parser

	fix      gps.FixRecord
	sats     []gps.SatelliteInfo
	haveFix  bool
	lastData time.Time

	lastRender time.Time
	rendered   bool
}

func NewScheduler(opts SchedulerOptions) *Scheduler {
	s := &Scheduler{opts: opts, parser: new(gps.Parser)}
	s.parser.OnSentence = opts.OnSentence
	return s
}

// SafeTick runs one tick behind a fault barrier. A panic in any stage is
// logged and dropped so a malformed burst cannot take the clock down.
func (s *Scheduler) SafeTick(now time.Time) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("clock: tick panic recovered: %v", r)
		}
	}()
	if err := s.Tick(now); err != nil {
		log.Printf("clock: tick error: %v", err)
	}
}

// Tick advances the pipeline once.
func (s *Scheduler) Tick(now time.Time) error {
	s.drainSerial(now)
	s.pollButtons(now)

	if s.haveFix && s.fix.Year != 0 {
		s.opts.Resolver.UpdateDST(2000+s.fix.Year, s.fix.Month, s.fix.Day, s.fix.Hours, s.fix.Minutes)
	}

	if !s.rendered || now.Sub(s.lastRender) >= s.opts.RenderInterval {
		s.lastRender = now
		s.rendered = true
		return s.render(now)
	}
	return nil
}

// Stats exposes the parser's counters.
func (s *Scheduler) Stats() gps.Stats { return s.parser.Stats() }

func (s *Scheduler) drainSerial(now time.Time) {
	for {
		select {
		case data := <-s.opts.Serial:
			for _, u := range s.parser.Feed(data) {
				s.apply(u, now)
			}
			s.lastData = now
		default:
			return
		}
	}
}

func (s *Scheduler) apply(u gps.Update, now time.Time) {
	if u.Satellites != nil {
		s.sats = u.Satellites
	}
	if u.Fix == nil {
		return
	}
	s.fix = *u.Fix
	s.haveFix = true

	if !s.fix.Usable() {
		return
	}
	d := s.opts.Deriver.Derive(s.fix.Latitude, s.fix.Longitude)
	s.opts.Resolver.AutoDetect(d.Position.Lat, d.Position.Lon)
	if s.opts.OnFix != nil {
		s.opts.OnFix(gps.WireFix(s.fix, d.Position.Lat, d.Position.Lon))
	}
}

func (s *Scheduler) pollButtons(now time.Time) {
	if s.opts.TZButton != nil {
		switch a, err := s.opts.TZButton.Poll(now); {
		case err != nil:
			log.Printf("clock: tz button: %v", err)
		case a == button.Short:
			s.opts.Resolver.Cycle()
			log.Printf("clock: timezone cycled to %s", s.opts.Resolver.Label())
		case a == button.Long:
			if s.haveFix && s.fix.Usable() {
				d := s.opts.Deriver.Derive(s.fix.Latitude, s.fix.Longitude)
				if s.opts.Resolver.DetectFrom(d.Position.Lat, d.Position.Lon) {
					log.Printf("clock: timezone detected as %s", s.opts.Resolver.Label())
				} else {
					log.Printf("clock: position outside timezone coverage, keeping %s", s.opts.Resolver.Label())
				}
			}
		}
	}
	if s.opts.BLButton != nil {
		switch a, err := s.opts.BLButton.Poll(now); {
		case err != nil:
			log.Printf("clock: backlight button: %v", err)
		case a == button.Short:
			if s.opts.Backlight != nil {
				if err := s.opts.Backlight.Cycle(); err != nil {
					log.Printf("clock: backlight: %v", err)
				} else {
					log.Printf("clock: backlight level %d", s.opts.Backlight.Level())
				}
			}
		}
	}
}

func (s *Scheduler) render(now time.Time) error {
	c := s.opts.Cache
	offset := s.opts.Resolver.OffsetMinutes()

	if err := c.Update(display.FieldTime, clock.TimeString(s.fix, offset), display.White); err != nil {
		return err
	}
	if err := c.Update(display.FieldZone, s.opts.Resolver.Label(), display.Yellow); err != nil {
		return err
	}
	if err := c.Update(display.FieldDate, clock.DateString(s.fix, offset), display.White); err != nil {
		return err
	}

	status, statusCol := "ACQUIRING", display.Yellow
	if s.haveFix && s.fix.Usable() {
		status, statusCol = "TRACKING", display.Green
	}
	if err := c.Update(display.FieldStatus, status, statusCol); err != nil {
		return err
	}

	if s.haveFix && s.fix.Usable() {
		d := s.opts.Deriver.Derive(s.fix.Latitude, s.fix.Longitude)
		lat, latH := d.Position.Lat, byte('N')
		if lat < 0 {
			lat, latH = -lat, 'S'
		}
		lon, lonH := d.Position.Lon, byte('E')
		if lon < 0 {
			lon, lonH = -lon, 'W'
		}
		if err := c.Update(display.FieldLat, fmt.Sprintf("%.5f %c", lat, latH), display.Cyan); err != nil {
			return err
		}
		if err := c.Update(display.FieldLon, fmt.Sprintf("%.5f %c", lon, lonH), display.Cyan); err != nil {
			return err
		}
		if err := c.Update(display.FieldGrid, d.Locator, display.Green); err != nil {
			return err
		}
		if err := c.Update(display.FieldUTM, d.UTMString(), display.Green); err != nil {
			return err
		}
	}

	if err := c.Update(display.FieldSats, fmt.Sprintf("Sats %d/%d", s.fix.SatellitesInUse, s.fix.SatellitesInView), display.White); err != nil {
		return err
	}
	if err := c.Update(display.FieldFix, s.fix.FixType.String(), display.White); err != nil {
		return err
	}

	warn, warnCol := "", display.Red
	switch {
	case !s.haveFix || !s.fix.Valid:
		warn = "NO FIX"
	case !s.lastData.IsZero() && now.Sub(s.lastData) > staleAfter:
		warn, warnCol = "GPS STALE", display.Yellow
	}
	return c.Update(display.FieldWarn, warn, warnCol)
}

// RunClock opens the hardware, builds the scheduler and runs the tick loop.
func RunClock() error {
	cfg := config.Get()

	// Initialize periph
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("failed to initialize periph: %w", err)
	}

	drv, layout, err := openDisplay(cfg)
	if err != nil {
		return err
	}
	if err := layout.Init(drv); err != nil {
		return fmt.Errorf("failed to paint display background: %w", err)
	}
	cache := display.NewCache(drv, layout.Fields)

	// Open GPS serial port
	serialOpts := serial.OpenOptions{
		PortName:        cfg.GPSSerialPort,
		BaudRate:        uint(cfg.GPSBaudRate),
		DataBits:        8,
		StopBits:        1,
		MinimumReadSize: 1,
		ParityMode:      serial.PARITY_NONE,
	}
	port, err := serial.Open(serialOpts)
	if err != nil {
		return fmt.Errorf("failed to open GPS serial port: %w", err)
	}
	defer port.Close()
	log.Printf("clock: GPS serial port opened on %s at %d baud", cfg.GPSSerialPort, cfg.GPSBaudRate)

	// The reader goroutine keeps the port drained while a tick is busy.
	// When the channel backs up, whole chunks are dropped; the parser
	// resyncs on the next '$'.
	serialCh := make(chan []byte, 32)
	go func() {
		for {
			buf := make([]byte, 256)
			n, err := port.Read(buf)
			if err != nil {
				log.Printf("clock: serial read error: %v", err)
				return
			}
			if n == 0 {
				continue
			}
			select {
			case serialCh <- buf[:n]:
			default:
			}
		}
	}()

	opts := SchedulerOptions{
		Serial:         serialCh,
		Cache:          cache,
		Resolver:       tz.NewResolver(),
		Deriver:        new(geo.Deriver),
		RenderInterval: time.Duration(cfg.DisplayUpdateInterval) * time.Millisecond,
	}

	// Buttons are optional; a clock without them just keeps the default
	// zone and full brightness.
	if cfg.TZButtonLine != "" {
		line, err := button.OpenLine(cfg.GPIOChip, cfg.TZButtonLine)
		if err != nil {
			log.Printf("clock: tz button unavailable: %v", err)
		} else {
			defer line.Close()
			opts.TZButton = button.New(line.Sampler(), true)
		}
	}
	if cfg.BLButtonLine != "" {
		line, err := button.OpenLine(cfg.GPIOChip, cfg.BLButtonLine)
		if err != nil {
			log.Printf("clock: backlight button unavailable: %v", err)
		} else {
			defer line.Close()
			opts.BLButton = button.New(line.Sampler(), true)
		}
	}
	if cfg.BacklightPath != "" && len(cfg.BacklightLevels) > 0 {
		opts.Backlight = button.NewBacklight(cfg.BacklightPath, cfg.BacklightLevels)
		if err := opts.Backlight.Apply(); err != nil {
			log.Printf("clock: backlight: %v", err)
		}
	}

	// MQTT publishing is optional.
	if cfg.MQTTBroker != "" {
		mqttOpts := mqtt.NewClientOptions().
			AddBroker(cfg.MQTTBroker).
			SetClientID(cfg.MQTTClientIDClock)

		client := mqtt.NewClient(mqttOpts)
		if token := client.Connect(); token.Wait() && token.Error() != nil {
			return token.Error()
		}
		log.Printf("clock: connected to MQTT broker at %s", cfg.MQTTBroker)

		opts.OnSentence = func(raw []byte) {
			client.Publish(cfg.TopicNMEARaw, 0, false, append([]byte(nil), raw...))
		}
		opts.OnFix = func(f gps.Fix) {
			payload, err := json.Marshal(f)
			if err != nil {
				log.Printf("clock: fix marshal error: %v", err)
				return
			}
			client.Publish(cfg.TopicGPSFix, 0, true, payload)
		}
	}

	sched := NewScheduler(opts)

	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	log.Println("clock: starting tick loop")
	lastStats := time.Now()
	for range ticker.C {
		now := time.Now()
		sched.SafeTick(now)
		if now.Sub(lastStats) >= time.Minute {
			lastStats = now
			st := sched.Stats()
			log.Printf("clock: stream stats: clean=%d parsed=%d crc_fail=%d overflow=%d",
				st.CleanSentences, st.ParsedSentences, st.CRCFails, st.Overflows)
		}
	}
	return nil
}

func openDisplay(cfg *config.Config) (display.Driver, display.Layout, error) {
	switch cfg.DisplayDriver {
	case "gc9307":
		drv, err := display.OpenTFT(display.TFTOptions{
			SPIPort:      cfg.DisplaySPIPort,
			SpeedHz:      cfg.DisplaySPISpeedHz,
			RSTPin:       cfg.DisplayRSTPin,
			DCPin:        cfg.DisplayDCPin,
			CSPin:        cfg.DisplayCSPin,
			BLPin:        cfg.DisplayBLPin,
			Width:        cfg.DisplayWidth,
			Height:       cfg.DisplayHeight,
			RowOffset:    cfg.DisplayRowOffset,
			ColumnOffset: cfg.DisplayColOffset,
			RotationDeg:  cfg.DisplayRotation,
		})
		if err != nil {
			return nil, display.Layout{}, fmt.Errorf("failed to initialize gc9307: %w", err)
		}
		return drv, display.TFTLayout(), nil
	case "ssd1306":
		drv, err := display.OpenOLED()
		if err != nil {
			return nil, display.Layout{}, err
		}
		return drv, display.OLEDLayout(), nil
	}
	return nil, display.Layout{}, fmt.Errorf("unknown display driver: %s", cfg.DisplayDriver)
}
