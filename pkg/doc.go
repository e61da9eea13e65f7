// Package pkg holds the gitwrapped libraries.
//
// # Overview
//
// gitwrapped turns a public GitHub profile into a "year in review" deck.
// The pkg directory is organized by concern:
//
//  1. [integrations] - the shared HTTP client and the GitHub REST client
//  2. [wrapped] - fetch fan-out, aggregation, estimated figures and the Service
//  3. [deck] - the slide state machine, autoplay and the debounced input
//  4. [render] - terminal panels and the SVG card ([render/card])
//  5. [cache] - file, Redis, MongoDB and null backends behind one interface
//
// Supporting packages: [errors] (coded errors), [httputil] (retry),
// [observability] (hooks) and [buildinfo].
//
// # Data Flow
//
//	username
//	    ↓
//	[integrations/github] ParseUsername, then concurrent REST calls
//	    ↓
//	[wrapped] Fetch → Estimate → Aggregate → ViewModel (cached)
//	    ↓
//	[render] panels / [render/card] SVG / JSON over HTTP
//
// # Quick Start
//
//	gh := github.NewClient(os.Getenv("GITHUB_TOKEN"), "", nil)
//	svc := wrapped.NewService(gh, nil, nil, nil)
//	vm, _, err := svc.Generate(ctx, "torvalds", false)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(render.Default().RenderAll(vm))
package pkg
