package gateway

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

type rpcMethod string

const (
	getBlockNumber rpcMethod = "eth_blockNumber"
	getLogs        rpcMethod = "eth_getLogs"
)

// ID returns the ID associated with the rpc method used in json-rpc requests.
func (rm rpcMethod) ID() int {
	switch rm {
	case getBlockNumber:
		return 1
	case getLogs:
		return 2
	default:
		return -1
	}
}

// Log is one observed log entry. The fields the scanner reports on are
// parsed out; everything else is preserved verbatim in Raw so the sealed
// payload is exactly what the gateway returned, byte for byte.
type Log struct {
	Address     string `json:"address"`
	BlockNumber uint64 `json:"blockNumber"`
	TxHash      string `json:"transactionHash"`
	Raw         []byte `json:"-"`
}

// UnmarshalJSON parses the hex block number and keeps a copy of the full raw JSON.
func (l *Log) UnmarshalJSON(data []byte) error {
	var aux struct {
		Address     string `json:"address"`
		BlockNumber string `json:"blockNumber"`
		TxHash      string `json:"transactionHash"`
	}
	err := json.Unmarshal(data, &aux)
	if err != nil {
		return fmt.Errorf("unmarshal into aux log: %w", err)
	}

	blockNumber, err := hexutil.DecodeUint64(aux.BlockNumber)
	if err != nil {
		return fmt.Errorf("invalid log block number %q: %w", aux.BlockNumber, err)
	}

	l.Address = aux.Address
	l.BlockNumber = blockNumber
	l.TxHash = aux.TxHash
	l.Raw = append([]byte(nil), data...) // make a copy; safe against mutations

	return nil
}

// rpcError is the JSON-RPC 2.0 error object.
type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}
