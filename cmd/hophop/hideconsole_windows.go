//go:build windows

package main

// Hides the console window when the binary is started from Explorer, so
// "hophop window" opens only the game window.
import _ "github.com/ebitengine/hideconsole"
