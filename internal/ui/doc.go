// Package ui contains the Bubble Tea programs behind the interactive
// parts of emubox: the config selection menu and the new-config name
// prompt. The package is structured so the Model type focuses on message
// orchestration, while dedicated helpers own navigation and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update routes each tea.Msg through a typed handler registry so
//     every message kind is handled by one focused function (key presses
//     in navigation.go, terminal resizes in view.go).
//   - Key handlers mutate the pagination state in internal/ui/state and
//     record the session outcome; Enter and the cancel keys quit the
//     program, and the caller reads the decision off the final model.
//
// Rendering:
//   - view.go builds the menu frame as structured lines first (text plus
//     a styled span for the highlighted entry) and applies lipgloss
//     styling as the last step, so tests can assert the exact geometry
//     of the frame without parsing escape sequences.
//   - The frame dimensions come from internal/menu.Metrics and do not
//     follow the terminal size; overly narrow terminals truncate lines
//     rather than reflowing them.
package ui
