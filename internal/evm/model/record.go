package model

import (
	json "github.com/goccy/go-json"
)

// Status discriminates the outcome carried by a Record.
type Status string

var (
	StatusInvalid  Status = "invalid"
	StatusFound    Status = "found"
	StatusNotFound Status = "not_found"
	StatusFailed   Status = "failed"
)

// Record is the outcome of a single identifier lookup.
// Bytecode is only set for found bytecode lookups and Receipt only for found receipt lookups.
type Record struct {
	Position   int             `json:"position"`
	Identifier string          `json:"identifier"`
	Status     Status          `json:"status"`
	Bytecode   string          `json:"bytecode,omitempty"`
	Receipt    json.RawMessage `json:"receipt,omitempty"`
	Message    string          `json:"message,omitempty"`
}

// InvalidRecord marks an empty identifier that was never sent to the node.
func InvalidRecord(kind Kind, position int, identifier string) Record {
	return Record{
		Position:   position,
		Identifier: identifier,
		Status:     StatusInvalid,
		Message:    kind.invalidNotice(),
	}
}

// FoundBytecode records the code deployed at identifier.
func FoundBytecode(position int, identifier, code string) Record {
	return Record{
		Position:   position,
		Identifier: identifier,
		Status:     StatusFound,
		Bytecode:   code,
	}
}

// FoundReceipt records the receipt of identifier, kept byte for byte.
func FoundReceipt(position int, identifier string, receipt json.RawMessage) Record {
	return Record{
		Position:   position,
		Identifier: identifier,
		Status:     StatusFound,
		Receipt:    receipt,
	}
}

// NotFoundRecord records that the node has nothing for identifier.
func NotFoundRecord(kind Kind, position int, identifier string) Record {
	return Record{
		Position:   position,
		Identifier: identifier,
		Status:     StatusNotFound,
		Message:    kind.notFoundNotice(),
	}
}

// FailedRecord carries the message of the error returned by the remote call.
func FailedRecord(position int, identifier string, err error) Record {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return Record{
		Position:   position,
		Identifier: identifier,
		Status:     StatusFailed,
		Message:    msg,
	}
}

// ResultSet is the ordered outcome of one batch, aligned with its input.
type ResultSet struct {
	Kind    Kind
	Records []Record
}

// Counts returns the number of records per status.
func (rs ResultSet) Counts() map[Status]int {
	counts := make(map[Status]int, 4)
	for _, r := range rs.Records {
		counts[r.Status]++
	}
	return counts
}
