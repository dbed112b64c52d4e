// Package model holds the batch query domain types shared by the engine, export and transport layers.
package model

import "fmt"

// Kind selects which remote lookup a batch performs.
type Kind string

var (
	Bytecode Kind = "bytecode"
	Receipt  Kind = "receipt"
)

// NoCode is the value eth_getCode returns for an address without a contract.
const NoCode = "0x"

// ParseKind converts a user supplied name into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Bytecode, Receipt:
		return Kind(s), nil
	case "contracts", "code":
		return Bytecode, nil
	case "transactions", "tx":
		return Receipt, nil
	default:
		return "", fmt.Errorf("unknown query kind %q", s)
	}
}

// Operation is the JSON-RPC method used for the kind.
func (k Kind) Operation() string {
	switch k {
	case Bytecode:
		return "eth_getCode"
	case Receipt:
		return "eth_getTransactionReceipt"
	default:
		return ""
	}
}

// ExportKey is the top level key of an exported document.
func (k Kind) ExportKey() string {
	switch k {
	case Bytecode:
		return "contracts"
	case Receipt:
		return "transactions"
	default:
		return string(k)
	}
}

// FileName is the name an exported result set is saved under.
func (k Kind) FileName() string {
	return k.ExportKey() + ".json"
}

func (k Kind) invalidNotice() string {
	if k == Receipt {
		return "Please enter a valid transaction hash."
	}
	return "Please enter a valid contract address."
}

func (k Kind) notFoundNotice() string {
	if k == Receipt {
		return "Transaction receipt not found."
	}
	return "No contract found."
}
