package ui

import "github.com/fatih/color"

// Palette holds the color functions used for shell output. A disabled palette
// returns its input unchanged so output bytes stay plain.
type Palette struct {
	Header  func(a ...interface{}) string
	Label   func(a ...interface{}) string
	Yes     func(a ...interface{}) string
	No      func(a ...interface{}) string
	Missing func(a ...interface{}) string

	// Used by the commands table
	Name   func(a ...interface{}) string
	Detail func(a ...interface{}) string
}

// NewPalette builds a palette. enabled overrides fatih/color's terminal detection.
func NewPalette(enabled bool) Palette {
	return Palette{
		Header:  sprint(enabled, color.FgGreen, color.Bold),
		Label:   sprint(enabled, color.FgCyan),
		Yes:     sprint(enabled, color.FgGreen),
		No:      sprint(enabled, color.FgRed),
		Missing: sprint(enabled, color.FgYellow),
		Name:    sprint(enabled, color.FgYellow),
		Detail:  sprint(enabled, color.FgHiBlack),
	}
}

func sprint(enabled bool, attrs ...color.Attribute) func(a ...interface{}) string {
	c := color.New(attrs...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.SprintFunc()
}
