package blockchain

// EntryFunctionPayload is the transaction payload handed to the wallet for
// signing. Arguments are JSON-encodable values in the order the entry
// function declares them; numeric u64 arguments travel as decimal strings.
type EntryFunctionPayload struct {
	Type          string   `json:"type"`
	Function      string   `json:"function"`
	TypeArguments []string `json:"type_arguments"`
	Arguments     []any    `json:"arguments"`
}

// NewEntryFunctionPayload builds a payload for fn with the given arguments.
func NewEntryFunctionPayload(fn string, args ...any) EntryFunctionPayload {
	if args == nil {
		args = []any{}
	}
	return EntryFunctionPayload{
		Type:          "entry_function_payload",
		Function:      fn,
		TypeArguments: []string{},
		Arguments:     args,
	}
}

// ViewRequest is the body for the fullnode view endpoint.
type ViewRequest struct {
	Function      string   `json:"function"`
	TypeArguments []string `json:"type_arguments"`
	Arguments     []any    `json:"arguments"`
}

// TransactionResult is the subset of the fullnode transaction response the
// service inspects after submission.
type TransactionResult struct {
	Hash     string `json:"hash"`
	Type     string `json:"type"`
	Success  bool   `json:"success"`
	VMStatus string `json:"vm_status"`
}

// Pending reports whether the node has not yet committed the transaction.
func (t TransactionResult) Pending() bool {
	return t.Type == "pending_transaction"
}
