package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/sirupsen/logrus"
)

var (
	// ErrAllEndpointsUnreachable is returned by Connect when every configured
	// endpoint fails its liveness probe.
	ErrAllEndpointsUnreachable = errors.New("all gateway endpoints are unreachable")
)

// Client talks JSON-RPC to a single ledger gateway. Use Connect to pick a
// live endpoint out of an ordered fallback list.
type Client struct {
	logger     *logrus.Logger
	httpClient *http.Client
	endpoint   string
	userAgent  string
}

func New(logger *logrus.Logger, httpClient *http.Client, endpoint, userAgent string) *Client {
	return &Client{
		logger:     logger,
		httpClient: httpClient,
		endpoint:   endpoint,
		userAgent:  userAgent,
	}
}

// Connect probes each endpoint in order with a single eth_blockNumber call
// and returns a client bound to the first one that answers. Every endpoint
// gets exactly one attempt; exhausting the list is not recoverable.
func Connect(ctx context.Context, logger *logrus.Logger, httpClient *http.Client, endpoints []string, userAgent string) (*Client, error) {
	for _, endpoint := range endpoints {
		c := New(logger, httpClient, endpoint, userAgent)
		_, err := c.HeadNumber(ctx)
		if err != nil {
			logger.WithField("endpoint", endpoint).WithError(err).Warn("Gateway endpoint failed liveness probe")
			continue
		}
		logger.WithField("endpoint", endpoint).Info("Connected to gateway")
		return c, nil
	}

	return nil, fmt.Errorf("probed %d endpoint(s): %w", len(endpoints), ErrAllEndpointsUnreachable)
}

// Endpoint returns the URL this client is bound to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// HeadNumber returns the current chain head height.
func (c *Client) HeadNumber(ctx context.Context) (uint64, error) {
	var head string
	err := c.call(ctx, getBlockNumber, &head)
	if err != nil {
		return 0, fmt.Errorf("get head block number: %w", err)
	}

	n, err := hexutil.DecodeUint64(head)
	if err != nil {
		return 0, fmt.Errorf("invalid head block number %q: %w", head, err)
	}

	return n, nil
}

// Logs returns all logs emitted by the given addresses in the inclusive
// block range [from, to], in the order the gateway reports them.
func (c *Client) Logs(ctx context.Context, from, to uint64, addresses []string) ([]Log, error) {
	filter := map[string]any{
		"fromBlock": hexutil.EncodeUint64(from),
		"toBlock":   hexutil.EncodeUint64(to),
		"address":   addresses,
	}

	var logs []Log
	err := c.call(ctx, getLogs, &logs, filter)
	if err != nil {
		return nil, fmt.Errorf("get logs for range %d-%d: %w", from, to, err)
	}

	rpcRequests.Inc()
	return logs, nil
}

func (c *Client) call(ctx context.Context, method rpcMethod, result any, rpcParams ...any) error {
	if rpcParams == nil {
		rpcParams = []any{}
	}
	payload := map[string]any{
		"jsonrpc": "2.0",
		"method":  method,
		"params":  rpcParams,
		"id":      method.ID(),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("could not marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(data))
	if err != nil {
		return fmt.Errorf("could not make new request with context: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Length", strconv.Itoa(len(data)))
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		rpcFailures.Inc()
		return fmt.Errorf("http request failed: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		rpcFailures.Inc()
		c.logger.WithFields(logrus.Fields{
			"method":   method,
			"response": string(body),
		}).Error("Gateway returned unexpected status code")
		return fmt.Errorf("received unexpected status: %s", resp.Status)
	}

	var response struct {
		Result json.RawMessage `json:"result"`
		Error  *rpcError       `json:"error"`
	}
	err = json.NewDecoder(resp.Body).Decode(&response)
	if err != nil {
		rpcFailures.Inc()
		return fmt.Errorf("decode response body: %w", err)
	}
	if response.Error != nil {
		rpcFailures.Inc()
		return response.Error
	}

	err = json.Unmarshal(response.Result, result)
	if err != nil {
		return fmt.Errorf("unmarshal rpc result: %w", err)
	}

	return nil
}
