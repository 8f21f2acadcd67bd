// Package ledgerpb holds the wire messages and gRPC service stubs
// declared in ledger.proto. See codec.go for why these are plain JSON-
// tagged structs rather than protoc-gen-go output.
package ledgerpb

type Empty struct{}

type BoolResponse struct {
	Ok bool `json:"ok"`
}

type BalanceResponse struct {
	Balance float64 `json:"balance"`
	Found   bool    `json:"found"`
}

type InitializeAccountRequest struct {
	InitialBalance float64 `json:"initial_balance"`
}

type SimulationCaseRequest struct {
	SimulationCase int32 `json:"simulation_case"`
}

type SimulationCaseMapResponse struct {
	Results map[string]bool `json:"results"`
}

type TxnRequest struct {
	TxnID string `json:"txn_id"`
}

type PrepareRequest struct {
	TxnID string  `json:"txn_id"`
	Delta float64 `json:"delta"`
}

type ShutdownResponse struct {
	Message string `json:"message"`
}

type InitializeNodeRequest struct {
	Account string  `json:"account"`
	Balance float64 `json:"balance"`
}

type AccountRequest struct {
	Account string `json:"account"`
}

type ExecuteTransactionRequest struct {
	TxnID  string             `json:"txn_id"`
	Deltas map[string]float64 `json:"deltas"`
}

type ExecuteTransactionResponse struct {
	Outcome string `json:"outcome"`
}

type RecoveringNodeRequest struct {
	TxnID   string `json:"txn_id"`
	Account string `json:"account"`
}

type OutcomeResponse struct {
	Outcome string `json:"outcome"`
}

type DecisionLogResponse struct {
	Entries map[string]string `json:"entries"`
}
