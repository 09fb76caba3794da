// Package display renders classification and migration results.
//
// Output goes through a Renderer configured with a Format. Terminal output
// uses lipgloss styles loaded from the embedded styles.yaml and pterm
// tables; plain text drops all styling; JSON and YAML emit the underlying
// records for scripts. Markdown documents such as the layout guide are
// rendered with glamour.
package display
