package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Config holds all application configuration values.
type Config struct {
	// GPS
	GPSSerialPort string
	GPSBaudRate   int

	// Display
	DisplayDriver         string // "gc9307" or "ssd1306"
	DisplayUpdateInterval int    // milliseconds

	// GC9307 (SPI)
	DisplaySPIPort    string
	DisplaySPISpeedHz int
	DisplayRSTPin     string
	DisplayDCPin      string
	DisplayCSPin      string
	DisplayBLPin      string
	DisplayWidth      int
	DisplayHeight     int
	DisplayRowOffset  int
	DisplayColOffset  int
	DisplayRotation   int // degrees: 0, 90, 180, 270

	// SSD1306 (I2C). The driver only supports address 0x3C; the key is
	// validated rather than passed through.
	DisplayI2CAddr uint16

	// Buttons
	GPIOChip     string // empty scans /dev/gpiochip*
	TZButtonLine string
	BLButtonLine string

	// Backlight
	BacklightPath   string
	BacklightLevels []int

	// MQTT. An empty broker disables publishing.
	MQTTBroker          string
	MQTTClientIDClock   string
	MQTTClientIDMirror  string
	TopicNMEARaw        string
	TopicGPSFix         string

	// NMEA mirror web server
	MirrorListenAddr string
}

// Package-level unexported variables for singleton pattern:
//   - globalConfig: unexported (lowercase) so other packages cannot access it directly.
//     This enforces encapsulation and prevents external code from modifying config without proper locking.
//     Has package-level scope (visible to all functions in this package, persists for program lifetime).
//   - configOnce: ensures InitGlobal() only runs once, even if called multiple times.
//   - configMu: RWMutex protects concurrent access. Write lock (Lock) for initialization,
//     read lock (RLock) for Get() allows multiple concurrent readers without blocking each other.
//
// External code must use InitGlobal() to set and Get() to read, ensuring thread safety.
var (
	globalConfig *Config
	configOnce   sync.Once
	configMu     sync.RWMutex
)

// Load reads the configuration file and returns a Config struct.
func Load(configPath string) (*Config, error) {
	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	cfg := &Config{}
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse KEY=VALUE
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid config line %d: %q", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		if err := cfg.setValue(key, value); err != nil {
			return nil, fmt.Errorf("config line %d: %w", lineNum, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Validate required fields
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setValue sets a config value based on the key.
func (c *Config) setValue(key, value string) error {
	switch key {
	// GPS
	case "GPS_SERIAL_PORT":
		c.GPSSerialPort = value
	case "GPS_BAUD_RATE":
		rate, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid GPS_BAUD_RATE %q: %w", value, err)
		}
		c.GPSBaudRate = rate

	// Display
	case "DISPLAY_DRIVER":
		c.DisplayDriver = value
	case "DISPLAY_UPDATE_INTERVAL":
		interval, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid DISPLAY_UPDATE_INTERVAL %q: %w", value, err)
		}
		c.DisplayUpdateInterval = interval

	// GC9307
	case "DISPLAY_SPI_PORT":
		c.DisplaySPIPort = value
	case "DISPLAY_SPI_SPEED_HZ":
		speed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid DISPLAY_SPI_SPEED_HZ %q: %w", value, err)
		}
		c.DisplaySPISpeedHz = speed
	case "DISPLAY_RST_PIN":
		c.DisplayRSTPin = value
	case "DISPLAY_DC_PIN":
		c.DisplayDCPin = value
	case "DISPLAY_CS_PIN":
		c.DisplayCSPin = value
	case "DISPLAY_BL_PIN":
		c.DisplayBLPin = value
	case "DISPLAY_WIDTH":
		w, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid DISPLAY_WIDTH %q: %w", value, err)
		}
		c.DisplayWidth = w
	case "DISPLAY_HEIGHT":
		h, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid DISPLAY_HEIGHT %q: %w", value, err)
		}
		c.DisplayHeight = h
	case "DISPLAY_ROW_OFFSET":
		off, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid DISPLAY_ROW_OFFSET %q: %w", value, err)
		}
		c.DisplayRowOffset = off
	case "DISPLAY_COL_OFFSET":
		off, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid DISPLAY_COL_OFFSET %q: %w", value, err)
		}
		c.DisplayColOffset = off
	case "DISPLAY_ROTATION":
		deg, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid DISPLAY_ROTATION %q: %w", value, err)
		}
		if deg != 0 && deg != 90 && deg != 180 && deg != 270 {
			return fmt.Errorf("DISPLAY_ROTATION must be 0, 90, 180 or 270, got %d", deg)
		}
		c.DisplayRotation = deg

	// SSD1306
	case "DISPLAY_I2C_ADDR":
		addr, err := strconv.ParseUint(value, 0, 16)
		if err != nil {
			return fmt.Errorf("invalid DISPLAY_I2C_ADDR %q: %w", value, err)
		}
		c.DisplayI2CAddr = uint16(addr)

	// Buttons
	case "GPIO_CHIP":
		c.GPIOChip = value
	case "TZ_BUTTON_LINE":
		c.TZButtonLine = value
	case "BL_BUTTON_LINE":
		c.BLButtonLine = value

	// Backlight
	case "BACKLIGHT_PATH":
		c.BacklightPath = value
	case "BACKLIGHT_LEVELS":
		levels, err := parseLevels(value)
		if err != nil {
			return fmt.Errorf("invalid BACKLIGHT_LEVELS %q: %w", value, err)
		}
		c.BacklightLevels = levels

	// MQTT
	case "MQTT_BROKER":
		c.MQTTBroker = value
	case "MQTT_CLIENT_ID_CLOCK":
		c.MQTTClientIDClock = value
	case "MQTT_CLIENT_ID_MIRROR":
		c.MQTTClientIDMirror = value
	case "TOPIC_NMEA_RAW":
		c.TopicNMEARaw = value
	case "TOPIC_GPS_FIX":
		c.TopicGPSFix = value

	// Mirror web server
	case "MIRROR_LISTEN_ADDR":
		c.MirrorListenAddr = value

	default:
		return fmt.Errorf("unknown config key: %q", key)
	}

	return nil
}

func parseLevels(value string) ([]int, error) {
	var levels []int
	for _, part := range strings.Split(value, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("level %d out of range 0-255", v)
		}
		levels = append(levels, v)
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("empty level list")
	}
	return levels, nil
}

// validate checks that all required fields are set.
func (c *Config) validate() error {
	if c.GPSSerialPort == "" {
		return fmt.Errorf("GPS_SERIAL_PORT is required")
	}
	if c.GPSBaudRate == 0 {
		return fmt.Errorf("GPS_BAUD_RATE is required")
	}
	if c.DisplayUpdateInterval == 0 {
		return fmt.Errorf("DISPLAY_UPDATE_INTERVAL is required")
	}
	switch c.DisplayDriver {
	case "gc9307":
		if c.DisplaySPIPort == "" {
			return fmt.Errorf("DISPLAY_SPI_PORT is required for the gc9307 driver")
		}
		if c.DisplaySPISpeedHz == 0 {
			return fmt.Errorf("DISPLAY_SPI_SPEED_HZ is required for the gc9307 driver")
		}
		if c.DisplayWidth == 0 || c.DisplayHeight == 0 {
			return fmt.Errorf("DISPLAY_WIDTH and DISPLAY_HEIGHT are required for the gc9307 driver")
		}
	case "ssd1306":
		if c.DisplayI2CAddr == 0 {
			return fmt.Errorf("DISPLAY_I2C_ADDR is required for the ssd1306 driver")
		}
		if c.DisplayI2CAddr != 0x3C {
			return fmt.Errorf("DISPLAY_I2C_ADDR must be 0x3C (the only address the ssd1306 driver supports), got 0x%02X", c.DisplayI2CAddr)
		}
	case "":
		return fmt.Errorf("DISPLAY_DRIVER is required")
	default:
		return fmt.Errorf("DISPLAY_DRIVER must be \"gc9307\" or \"ssd1306\", got %q", c.DisplayDriver)
	}
	if c.MQTTBroker != "" {
		if c.TopicNMEARaw == "" {
			return fmt.Errorf("TOPIC_NMEA_RAW is required when MQTT_BROKER is set")
		}
		if c.TopicGPSFix == "" {
			return fmt.Errorf("TOPIC_GPS_FIX is required when MQTT_BROKER is set")
		}
	}
	return nil
}

// InitGlobal initializes the global configuration from file.
// Uses sync.Once to ensure this only runs once, even if called multiple times.
// Acquires write lock (configMu.Lock) during initialization to prevent concurrent access.
// This is the only function that can set globalConfig.
func InitGlobal(configPath string) error {
	var err error
	configOnce.Do(func() {
		configMu.Lock()
		defer configMu.Unlock()
		globalConfig, err = Load(configPath)
	})
	return err
}

// Get returns the global configuration instance.
// InitGlobal must be called first, or this will return nil.
// Uses read lock (configMu.RLock) to allow multiple concurrent readers without blocking.
// This is thread-safe and efficient for concurrent access across goroutines.
func Get() *Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return globalConfig
}
