package winternitz

import "github.com/btcsuite/btclog"

// log is the package-scoped logger, following the same pattern every lnd
// subsystem uses: silent until the embedding application wires up a real
// backend via UseLogger.
var log = btclog.Disabled

// UseLogger sets the package-level logger used by this package. It should be
// called before this package is used in order to propagate the calling
// application's chosen logging backend.
func UseLogger(logger btclog.Logger) {
	log = logger
}
