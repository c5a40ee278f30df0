// Package platform resolves host OS and architecture attributes to the
// artifact naming segments used by driver release indices (win32, mac64,
// linux64), including WSL and Apple Silicon detection.
package platform
