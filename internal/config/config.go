// Package config handles platform configuration
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	HTTPAddr     string `validate:"required"`
	VisionAddr   string `validate:"required"`
	CameraDevice string

	FrameRate float64 `validate:"gt=0,lte=30"` // Hz

	EARThreshold     float64 `validate:"gt=0,lt=1"`
	MARThreshold     float64 `validate:"gt=0,lt=2"`
	YawnMARThreshold float64 `validate:"gt=0,lt=2"`
	DrowsyFrames     int     `validate:"gte=1"`
	YawnFrames       int     `validate:"gte=1"`
	MaxFaces         int     `validate:"gte=1"`

	ShortAbsenceSec float64 `validate:"gt=0"`
	LongAbsenceSec  float64 `validate:"gt=0,gtfield=ShortAbsenceSec"`
	InactivitySec   float64 `validate:"gt=0"`

	StaticFrameSec  float64 `validate:"gt=0"`
	MaxHashDistance int     `validate:"gte=0,lte=64"`

	SpeechEnabled        bool
	SpeechMinIntervalSec float64 `validate:"gte=0"`
	SampleRate           int     `validate:"gte=8000,lte=48000"`

	ActivityLogFile string `validate:"required"`
	SessionDB       string `validate:"required"`
	AppLogFile      string // empty logs to stderr only
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:     getEnv("HTTP_ADDR", ":8000"),
		VisionAddr:   getEnv("VISION_ADDR", "localhost:50051"),
		CameraDevice: getEnv("CAMERA_DEVICE", ""),

		FrameRate: getEnvFloat("FRAME_RATE", 10.0),

		EARThreshold:     getEnvFloat("EAR_THRESHOLD", 0.22),
		MARThreshold:     getEnvFloat("MAR_THRESHOLD", 0.6),
		YawnMARThreshold: getEnvFloat("YAWN_MAR_THRESHOLD", 0.65),
		DrowsyFrames:     getEnvInt("DROWSY_FRAMES", 5),
		YawnFrames:       getEnvInt("YAWN_FRAMES", 3),
		MaxFaces:         getEnvInt("MAX_FACES", 2),

		ShortAbsenceSec: getEnvFloat("SHORT_ABSENCE_SEC", 3.0),
		LongAbsenceSec:  getEnvFloat("LONG_ABSENCE_SEC", 10.0),
		InactivitySec:   getEnvFloat("INACTIVITY_THRESHOLD_SEC", 5.0),

		StaticFrameSec:  getEnvFloat("STATIC_FRAME_SEC", 8.0),
		MaxHashDistance: getEnvInt("MAX_HASH_DISTANCE", 2),

		SpeechEnabled:        getEnvBool("SPEECH_ENABLED", true),
		SpeechMinIntervalSec: getEnvFloat("SPEECH_MIN_INTERVAL_SEC", 3.0),
		SampleRate:           getEnvInt("SAMPLE_RATE", 22050),

		ActivityLogFile: getEnv("ACTIVITY_LOG_FILE", "attentiveness_log.csv"),
		SessionDB:       getEnv("SESSION_DB", "sessions.db"),
		AppLogFile:      getEnv("APP_LOG_FILE", ""),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// FrameInterval returns the pause between captured frames.
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.FrameRate)
}

// ShortAbsence returns the face-missing threshold.
func (c *Config) ShortAbsence() time.Duration {
	return time.Duration(c.ShortAbsenceSec * float64(time.Second))
}

// LongAbsence returns the not-awake threshold.
func (c *Config) LongAbsence() time.Duration {
	return time.Duration(c.LongAbsenceSec * float64(time.Second))
}

// InactivityThreshold returns how long inactivity runs before the
// emergency protocol fires.
func (c *Config) InactivityThreshold() time.Duration {
	return time.Duration(c.InactivitySec * float64(time.Second))
}

// SpeechMinInterval returns the same-status speech suppression window.
func (c *Config) SpeechMinInterval() time.Duration {
	return time.Duration(c.SpeechMinIntervalSec * float64(time.Second))
}

// StaticFrames converts the static-feed window to a frame count at the
// configured frame rate.
func (c *Config) StaticFrames() int {
	return int(c.StaticFrameSec * c.FrameRate)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		return v == "true" || v == "1"
	}
	return def
}
