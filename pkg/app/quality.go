// Package app provides the core application logic for pixelmuse
package app

import "strings"

// QualityConfig describes an output quality tier for generated thumbnails
type QualityConfig struct {
	Name        string // LOW, MEDIUM, HD
	Description string // shown next to the selector
	Width       int    // output width in pixels
	Height      int    // output height in pixels
}

// LowQuality renders quick drafts
var LowQuality = QualityConfig{
	Name:        "LOW",
	Description: "fast draft",
	Width:       640,
	Height:      360,
}

// MediumQuality is the default tier
var MediumQuality = QualityConfig{
	Name:        "MEDIUM",
	Description: "balanced",
	Width:       1280,
	Height:      720,
}

// HDQuality renders at full YouTube thumbnail resolution
var HDQuality = QualityConfig{
	Name:        "HD",
	Description: "full resolution",
	Width:       1920,
	Height:      1080,
}

// Qualities lists the tiers in selector order
var Qualities = []QualityConfig{LowQuality, MediumQuality, HDQuality}

// DefaultQuality is used when nothing was remembered
var DefaultQuality = MediumQuality

// GetQualityConfig returns the tier matching name, case-insensitively, or the default
func GetQualityConfig(name string) QualityConfig {
	name = strings.TrimSpace(name)
	for _, q := range Qualities {
		if strings.EqualFold(q.Name, name) {
			return q
		}
	}
	return DefaultQuality
}

// QualityIndex returns the selector position of q
func QualityIndex(q QualityConfig) int {
	for i, candidate := range Qualities {
		if candidate.Name == q.Name {
			return i
		}
	}
	return 1
}
