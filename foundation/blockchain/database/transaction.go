package database

// AccountID represents an account in the system. Identifiers are opaque to
// the engine, no signature recovery or format checking is performed.
type AccountID string

// Tx is the transactional information between two parties. The JSON field
// order is the canonical encoding order, do not reorder these fields.
type Tx struct {
	From  AccountID `json:"from"`  // Account the value is moving out of.
	To    AccountID `json:"to"`    // Account the value is moving in to.
	Value int64     `json:"value"` // Amount being transferred.
}

// NewTx constructs a new transaction.
func NewTx(from AccountID, to AccountID, value int64) Tx {
	return Tx{
		From:  from,
		To:    to,
		Value: value,
	}
}
