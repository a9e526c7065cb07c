// Package pkg provides the libraries behind blobposter, a generator of
// abstract posters made of overlapping, wobbly, translucent blobs.
//
// # Overview
//
// A poster is a pure function of a [poster.Config] and the colors in a
// palette file. The pkg directory is organized into three areas:
//
//  1. Domain: [palette] (CSV color store) and [poster] (seeded generation)
//  2. Output: [poster/sink] (PNG, SVG, PDF, JSON) and [render] (SVG to PDF)
//  3. Plumbing: [pipeline], [cache], [config], [errors], [observability]
//
// # Architecture
//
// The data flow through blobposter:
//
//	palette.csv ──► [palette] Store.Read
//	                     ↓
//	config.toml ──► [poster] Generate (one seeded Source)
//	                     ↓
//	                [poster/sink] Rasterize / RenderSVG / RenderJSON
//	                     ↓
//	                PNG/SVG/PDF/JSON output
//
// # Quick Start
//
//	store := palette.NewStore("palette.csv")
//	entries, _ := store.Read()
//
//	cfg := poster.DefaultConfig()
//	cfg.Seed = 7
//	p, _ := poster.Generate(cfg, entries)
//
//	png, _ := sink.RenderPNG(p, sink.WithScale(2))
//	svg := sink.RenderSVG(p)
//
// The [pipeline] package wraps these steps with artifact caching and hooks,
// and is what the CLI uses:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), cache.NewDefaultKeyer(), logger)
//	result, _ := runner.Execute(ctx, pipeline.Options{Config: cfg, Formats: []string{"png"}}, entries)
//
// # Testing
//
//	go test ./pkg/...
//
// [palette]: https://pkg.go.dev/github.com/matzehuels/blobposter/pkg/palette
// [poster]: https://pkg.go.dev/github.com/matzehuels/blobposter/pkg/poster
// [poster.Config]: https://pkg.go.dev/github.com/matzehuels/blobposter/pkg/poster#Config
// [poster/sink]: https://pkg.go.dev/github.com/matzehuels/blobposter/pkg/poster/sink
// [render]: https://pkg.go.dev/github.com/matzehuels/blobposter/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/blobposter/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/blobposter/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/blobposter/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/blobposter/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/blobposter/pkg/observability
package pkg
