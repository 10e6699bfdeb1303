package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan  = lipgloss.Color("36")
	colorBlue  = lipgloss.Color("75")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
	colorAmber = lipgloss.Color("220")
)

type cellStyle int

const (
	stylePlain cellStyle = iota
	styleBorder
	styleSelected
	styleHover
	styleLabel
	styleLabelSelected
	styleLink
	styleHandle
	styleGesture
	styleScroll
	styleThumb
)

var styles = map[cellStyle]lipgloss.Style{
	stylePlain:         lipgloss.NewStyle(),
	styleBorder:        lipgloss.NewStyle().Foreground(colorGray),
	styleSelected:      lipgloss.NewStyle().Foreground(colorCyan).Bold(true),
	styleHover:         lipgloss.NewStyle().Foreground(colorBlue),
	styleLabel:         lipgloss.NewStyle().Foreground(colorWhite),
	styleLabelSelected: lipgloss.NewStyle().Foreground(colorCyan).Bold(true),
	styleLink:          lipgloss.NewStyle().Foreground(colorDim),
	styleHandle:        lipgloss.NewStyle().Foreground(colorAmber).Bold(true),
	styleGesture:       lipgloss.NewStyle().Foreground(colorAmber),
	styleScroll:        lipgloss.NewStyle().Foreground(colorDim),
	styleThumb:         lipgloss.NewStyle().Foreground(colorGray),
}

var statusStyle = lipgloss.NewStyle().Foreground(colorGray)

// border supplies the item frame glyphs.
var border = lipgloss.RoundedBorder()

const (
	glyphLink    = '·'
	glyphHandle  = '■'
	glyphGesture = '*'
	glyphTrack   = '░'
	glyphThumb   = '▓'
)

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}
