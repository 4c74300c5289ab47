// Copyright (c) 2025 Apple Inc. Licensed under MIT License.

// Package marks turns declarative chart layers into rendered output.
//
// A layer pairs a data table with a mark primitive (rect, point,
// rule, line, or area), per-channel encodings, and a style.
// Rendering resolves each encoding against the scales and theme in a
// Context to produce per-row pixel values, then hands the resolved
// geometry to one of two backends: a retained scene graph (Render)
// or an immediate-mode canvas (Draw). Both backends share the same
// resolution pipeline, so they place marks at identical coordinates.
//
// Data enters as a table whose column names are channel names: "x",
// "y", "x1", "x2", "color", and "size". Channels are optional; a
// missing channel falls back to a deterministic default (marks
// center themselves, bands span the plot, colors come from the
// theme). Rows whose resolved coordinates are not finite are dropped
// silently; a render never fails part way through.
//
// Rendering is synchronous and owned by the caller's update loop. The
// scene graph commits a frame by swapping in a complete node list,
// and an immediate-mode surface is cleared and redrawn in full, so
// repeated renders of the same inputs are idempotent.
package marks
