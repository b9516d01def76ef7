package connectors

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg"
)

// blockInterval is the target block spacing used to convert a wall-clock
// duration into a CSV block count. Regtest and simnet blocks are mined on
// demand rather than on a schedule, so they use a much smaller nominal
// spacing purely to keep test timelocks small instead of astronomically
// large.
func blockInterval(params *chaincfg.Params) time.Duration {
	switch params.Net {
	case chaincfg.RegressionNetParams.Net, chaincfg.SimNetParams.Net:
		return time.Second
	default:
		return 10 * time.Minute
	}
}

// NumBlocksPerNetwork converts a wall-clock duration into the CSV block
// count that approximates it on params, rounding up so the timelock never
// resolves early. A zero or negative duration yields zero blocks (no
// timelock).
func NumBlocksPerNetwork(params *chaincfg.Params, d time.Duration) uint32 {
	if d <= 0 {
		return 0
	}

	interval := blockInterval(params)
	blocks := int64(d / interval)
	if d%interval != 0 {
		blocks++
	}
	return uint32(blocks)
}

// Standard relative-locktime durations used by the connectors below. These
// name the real production values; FinalStateTimelock in particular must
// not be silently zeroed for anything but tests (see Connector1Timelocks).
const (
	// FinalStateTimelock is the CSV delay an operator must wait before
	// publishing the final-state commitment leaf, giving verifiers a
	// window to disprove an earlier step first.
	FinalStateTimelock = 14 * 24 * time.Hour

	// RecoveryTimelock is the CSV delay before the long n-of-n recovery
	// path becomes spendable: two weeks plus one day, restoring the
	// source's num_blocks_timelock_1 value.
	RecoveryTimelock = 15 * 24 * time.Hour

	// SweepTimelock is the CSV delay before the short n-of-n sweep path
	// becomes spendable, shorter than recovery so operators can reclaim
	// funds quickly once recovery has already been reached.
	SweepTimelock = 6 * time.Hour
)
