// Package sink provides output format renderers for posters.
//
// # Overview
//
// A "sink" turns a composed [poster.Poster] into bytes. Every sink draws the
// same scene in the same order: the background fill, each blob blended over
// everything drawn before it, then the title and caption.
//
//   - PNG: native rasterization with golang.org/x/image/vector
//   - SVG: vector output built with svgo
//   - PDF: SVG converted by rsvg-convert
//   - JSON: the poster's parameters for tooling and regeneration
//
// # PNG Output
//
// [RenderPNG] needs no external tools. Blob outlines are filled with the
// non-zero winding rule and composited with Porter-Duff "over", so overlaps
// show through. Labels use the Go fonts via [fonts.Face].
//
//	png, err := sink.RenderPNG(p, sink.WithScale(2))
//
// [Rasterize] returns the image itself for callers that want to inspect
// pixels.
//
// # SVG and PDF Output
//
// [RenderSVG] emits one polygon per blob inside a "blobs" group, each with its
// own fill-opacity. [RenderPDF] converts that SVG via [render.ToPDF] and
// therefore requires librsvg:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// # JSON Output
//
// [RenderJSON] exports the config, working colors, layer parameters and
// labels. [WithJSONPoints] adds every blob outline.
//
// [poster.Poster]: github.com/matzehuels/blobposter/pkg/poster.Poster
// [fonts.Face]: github.com/matzehuels/blobposter/pkg/fonts.Face
// [render.ToPDF]: github.com/matzehuels/blobposter/pkg/render.ToPDF
package sink
