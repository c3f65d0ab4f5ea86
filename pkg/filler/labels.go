package filler

import (
	"errors"
	"strings"
)

// Default template labels.
const (
	DefaultTrailNameLabel  = "#TrailName"
	DefaultSignIDLabel     = "#SignInfo"
	DefaultDirectionPrefix = "#Arrow"
)

// HiddenAttr is the presentation attribute that keeps direction groups
// hidden in the template.
const HiddenAttr = "style"

// Labels names the Inkscape labels the filler looks for.
type Labels struct {
	TrailName       string `json:"trailName" yaml:"trailName"`
	SignID          string `json:"signID" yaml:"signID"`
	DirectionPrefix string `json:"directionPrefix" yaml:"directionPrefix"`
}

// DefaultLabels returns the labels used by the reference templates.
func DefaultLabels() Labels {
	return Labels{
		TrailName:       DefaultTrailNameLabel,
		SignID:          DefaultSignIDLabel,
		DirectionPrefix: DefaultDirectionPrefix,
	}
}

// DirectionLabel maps a direction code onto its group label.
func (l Labels) DirectionLabel(code string) string {
	return l.DirectionPrefix + code
}

// Validate rejects blank labels.
func (l Labels) Validate() error {
	if strings.TrimSpace(l.TrailName) == "" {
		return errors.New("filler: trail name label is required")
	}
	if strings.TrimSpace(l.SignID) == "" {
		return errors.New("filler: sign id label is required")
	}
	if strings.TrimSpace(l.DirectionPrefix) == "" {
		return errors.New("filler: direction prefix is required")
	}
	return nil
}
