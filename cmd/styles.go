package cmd

import "github.com/charmbracelet/lipgloss"

var headerText = lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Bold(true)
var grayText = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

var errorLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).PaddingRight(1)
var successLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).PaddingRight(1)
