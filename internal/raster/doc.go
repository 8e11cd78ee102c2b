// Package raster renders a gesture into the fixed 28×28 intensity grid fed
// to image classifiers.
//
// Each polyline segment is swept as a capsule: a band of width StrokeWidth
// around the segment plus a disc-shaped cap at either end. Samples are
// taken every SampleStep units along and across the band, truncated to
// integer pixels, and shaded by distance from the centerline. Segments are
// rendered independently and merged with a per-pixel maximum, so
// overlapping strokes never exceed 1.0 and the merge order is irrelevant.
//
// Input is expected to be normalized to roughly 28 units first (see
// PreviewDrawing); pixels falling outside the grid are dropped.
package raster
