// Package viz is the terminal front end: a braille-raster renderer for the
// frame driver and bubbletea models for the viewer and the shooting gallery.
//
//   - [Model]: orbit viewer of the running lattice
//   - [Renderer]: draws the outline of each cell cube onto a [Canvas]
//   - [GalleryModel]: the shooting-gallery mini game
//
// # Key Bindings
//
//	Drag  - Orbit the camera
//	Wheel - Zoom
//	Space - Pause/Resume ticking
//	R     - Reseed
//	T     - Cycle color themes
//	G     - Toggle GIF recording
//	S     - Save an SVG snapshot
//	?     - Show help overlay
//
// Mouse events need a program started with tea.WithMouseCellMotion.
package viz
