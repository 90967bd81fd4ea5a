// Package backdrop implements the background raster pipeline of a screen
// locker: it reorients raw compositor buffers for the active output
// transform, normalizes their hardware pixel encodings into a canonical
// 32-bit RGB surface, and composites that surface onto a canvas under the
// usual wallpaper placement modes (stretch, fill, fit, center, tile and
// solid color).
package backdrop
