package model

// Chain names the network an endpoint serves, used as a metrics and log label.
type Chain string

// SwisstronikTestnet is the chain served by the default endpoint.
var SwisstronikTestnet Chain = "swisstronik-testnet"
