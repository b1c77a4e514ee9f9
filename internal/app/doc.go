// Package app provides the main Bubble Tea application model for jot.
//
// It manages the UI state machine, handles user input, and delegates
// rendering to the ui package. The package implements states for entering
// new items, browsing the committed list, filtering, and help.
//
// The main type is Model, which implements the Bubble Tea interface
// (Init, Update, View) and manages all application state.
package app
