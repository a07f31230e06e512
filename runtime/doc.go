// Package runtime bundles a CSFML backend with the state every foreign handle
// shares.
//
// # Quick Start
//
//	b, err := soft.New(nil)          // or native.Load, wasm.Load
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rt, err := runtime.New(b)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rt.Close()
//
//	font, err := graphics.NewFontFromFile(rt, "sansation.ttf")
//	if err != nil {
//	    log.Fatal(err) // construction failure names the resource
//	}
//	defer font.Close()
//
// # What a Runtime holds
//
//	API()        - the backend's function table, with stubs for missing symbols
//	Resources()  - every live foreign resource, keyed by address
//	Callbacks()  - pinned callback contexts and the trampoline cache
//	Logger()     - zap logger, no-op unless configured
//
// # Singletons
//
// State the library keeps process-wide, such as the audio listener, is
// reached through an object claimed once per runtime with Claim.
//
// # Shutdown
//
// Close reports resources and callback contexts that are still alive. With
// Config.StrictClose they make Close return an error; errors from all steps
// are aggregated.
package runtime
