// Package composer implements the memory composition engine: the
// deterministic pipeline that turns a stored memory plus a visual template
// into a finished, share-ready square raster, and the caption text
// generator that accompanies it.
//
// The pipeline is split into two phases so it stays testable without a
// rendering surface: an asynchronous decode producing a raster, followed by
// synchronous, deterministic layout and drawing. Given the same memory,
// template, and options, two renders produce pixel-identical output.
package composer
