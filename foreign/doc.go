// Package foreign provides Handle, the single owner of one object allocated
// by the foreign library.
//
// Acquire is the only constructor. It maps the null sentinel of a failed
// foreign constructor to an error and refuses an address some other handle
// already owns:
//
//	h, err := foreign.Acquire[csfml.Font](rt, api.Graphics.Font.CreateFromFile(path))
//	if err != nil {
//	    return err // construction failed: sfFont via ...
//	}
//	defer h.Close()
//
// Close runs the kind's foreign destructor exactly once. Take moves ownership
// to a new handle without destroying anything, and Duplicate, available only
// for kinds with a foreign copy, produces an independent handle.
//
// Dependents that keep a reference into the resource take a Lease. Close
// refuses while leases are outstanding, so a font cannot be destroyed under
// the texts that use it.
//
// Using a handle after Close or Take panics with a released-resource error.
// A handle garbage collected without Close is reported to the runtime logger;
// it is not destroyed from the collector because the library is not
// thread-safe.
package foreign
