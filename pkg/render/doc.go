// Package render provides format conversion shared by the poster sinks.
//
// # Format Conversion
//
// [ToPDF] converts any SVG to PDF using the external rsvg-convert tool (from
// librsvg). PNG output does not need it: the raster sink draws pixels itself.
//
//	svg := sink.RenderSVG(p)
//	pdf, err := render.ToPDF(svg)
//
// [Available] lets callers check for rsvg-convert up front, e.g. to skip PDF
// output in tests.
package render
