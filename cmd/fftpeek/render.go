package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cwbudde/algo-radix2/dsp/spectrum"
)

const (
	barWidth = 32
	floorDB  = -240
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"})

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#888888", Dark: "#888888"})

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"})

	labelStyle = lipgloss.NewStyle().Width(10)
	valueStyle = lipgloss.NewStyle().Width(12).Align(lipgloss.Right)

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#1F7A8C", Dark: "#5FD7FF"})
)

func render(w io.Writer, r *report) error {
	var b strings.Builder

	window := "hann"
	if !r.windowed {
		window = "rectangular"
	}

	b.WriteString(titleStyle.Render(r.title))
	b.WriteString("\n")
	b.WriteString(metaStyle.Render(fmt.Sprintf("%d Hz, %.2f s, %d blocks of %d, %s window, %.2f Hz/bin",
		r.sampleRate, r.duration, r.blocks, r.size, window, float64(r.sampleRate)/float64(r.size))))
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render("Peaks"))
	b.WriteString("\n")
	if len(r.peaks) == 0 {
		b.WriteString(metaStyle.Render("  none"))
		b.WriteString("\n")
	}
	for _, p := range r.peaks {
		b.WriteString("  ")
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.1f Hz", p.Frequency)))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.1f dB", db(p.Magnitude))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Bands"))
	b.WriteString("\n")

	top := 0.0
	for _, l := range r.bands {
		if l.ok {
			top = math.Max(top, l.energy)
		}
	}

	for _, l := range r.bands {
		b.WriteString("  ")
		b.WriteString(labelStyle.Render(l.band.Name))
		if !l.ok {
			b.WriteString(metaStyle.Render("below resolution"))
			b.WriteString("\n")
			continue
		}
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.1f dB", db(l.energy))))
		b.WriteString(" ")
		b.WriteString(barStyle.Render(bar(l.energy, top)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func bar(v, top float64) string {
	if top <= 0 || v <= 0 {
		return ""
	}
	n := int(math.Round(v / top * barWidth))
	return strings.Repeat("█", n)
}

func db(m float64) float64 {
	return spectrum.Decibels(m, floorDB)
}
