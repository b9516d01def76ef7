package connectors

import "errors"

var (
	// ErrRoundCountZero is returned when a connector is constructed with
	// a zero round count; the chain must have at least one step.
	ErrRoundCountZero = errors.New("connectors: round count must be positive")

	// ErrLeafIndexOutOfRange is returned by LeafScript/LeafTxIn when the
	// requested leaf index is not below the connector's leaf count: its
	// round count for ConnectorC, three for Connector1.
	ErrLeafIndexOutOfRange = errors.New("connectors: leaf index out of range")
)
