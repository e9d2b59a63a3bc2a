// Package editor provides the Bubble Tea model of the fennec editor.
//
// The package is responsible for key dispatch, the prompt/popup overlay,
// viewport scrolling and rendering. Document state lives in the buffer
// package; highlighting, clipboard and persistence are injected through
// Config.
package editor
