// Package geom models a freehand gesture as an ordered polyline of points
// and provides the geometric operations applied to it before rasterization:
// bounding box, normalization, translation, reflection, rotation and
// Ramer-Douglas-Peucker simplification.
//
// Coordinates follow the screen convention: +x is right and +y is down, so
// a positive rotation angle turns a drawing clockwise on screen.
//
// A Drawing grows only through Append. Every transform returns a new
// Drawing and leaves the receiver untouched, so a Drawing can be read by
// several goroutines as long as nobody appends to it meanwhile.
package geom
