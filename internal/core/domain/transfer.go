package domain

// TransferResult holds the outcome of an atomic transfer: the two persisted
// legs and both accounts with their updated balances.
type TransferResult struct {
	Outgoing    Transaction `json:"outgoing"` // TRANSFER_OUT leg on the source account
	Incoming    Transaction `json:"incoming"` // TRANSFER_IN leg on the destination account
	FromAccount Account     `json:"fromAccount"`
	ToAccount   Account     `json:"toAccount"`
}
