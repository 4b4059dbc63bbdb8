package llmclient

//go:generate protoc --go_out=../../gen --go_opt=paths=source_relative --go-grpc_out=../../gen --go-grpc_opt=paths=source_relative -I ../../proto/parley/v1 parley.proto

import (
	"context"
	"encoding/json"
	"fmt"

	pb "github.com/danielpatrickdp/parley/gen/parley"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/danielpatrickdp/parley/internal/decision"
)

// #region types
// Decision holds the raw fields of a DecisionResponse before the payload
// is decoded into its typed form.
type Decision struct {
	Confidence          float64
	Reasoning           string
	NeedsClarification  bool
	ClarificationPrompt string
	PayloadJSON         string
}
// #endregion types

// #region client-struct
// Client wraps the gRPC connection to the Python inference service.
type Client struct {
	conn   *grpc.ClientConn
	client pb.AgentServiceClient
}
// #endregion client-struct

// #region constructor
// NewClient connects to the inference gRPC server.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewAgentServiceClient(conn),
	}, nil
}

// NewClientWithService creates a Client with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.AgentServiceClient) *Client {
	return &Client{client: svc}
}
// #endregion constructor

// #region close
// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}
// #endregion close

// #region extract
// Extract asks the model to pull a structured query out of the
// conversation. The payload stays raw JSON; callers decode it with
// ExtractQuery for their query type.
func (c *Client) Extract(ctx context.Context, conversation, schemaJSON string) (Decision, error) {
	resp, err := c.client.Extract(ctx, &pb.ExtractRequest{
		Conversation: conversation,
		SchemaJson:   schemaJSON,
	})
	if err != nil {
		return Decision{}, fmt.Errorf("extract rpc: %w", err)
	}
	return fromResponse(resp), nil
}
// #endregion extract

// #region respond
// Respond asks the model to generate the user-facing reply for a turn
// outcome, returned as a validated decision envelope.
func (c *Client) Respond(ctx context.Context, prompt string) (decision.Envelope[decision.AgentResponse], error) {
	resp, err := c.client.Respond(ctx, &pb.RespondRequest{Prompt: prompt})
	if err != nil {
		return decision.Envelope[decision.AgentResponse]{}, fmt.Errorf("respond rpc: %w", err)
	}

	var payload decision.AgentResponse
	if resp.PayloadJson != "" {
		if err := json.Unmarshal([]byte(resp.PayloadJson), &payload); err != nil {
			return decision.Envelope[decision.AgentResponse]{}, fmt.Errorf("decode respond payload: %w", err)
		}
	}
	if payload.Content == "" {
		// Some model configurations return plain text in reasoning only.
		payload = decision.AgentResponse{Type: decision.ResponseAnswer, Content: resp.Reasoning}
	}

	if resp.NeedsClarification {
		return decision.NewClarification(resp.Confidence, resp.Reasoning, resp.ClarificationPrompt, payload)
	}
	return decision.NewEnvelope(resp.Confidence, resp.Reasoning, payload)
}
// #endregion respond

// #region extract-query
// ExtractQuery runs an extraction and decodes the payload into a typed
// extraction result for query type Q. The extraction validity rule is
// re-checked locally; a payload claiming success without data is an
// error, not a usable decision.
func ExtractQuery[Q any](ctx context.Context, c *Client, conversation, schemaJSON string) (decision.Envelope[decision.Extraction[Q]], error) {
	var zero decision.Envelope[decision.Extraction[Q]]

	d, err := c.Extract(ctx, conversation, schemaJSON)
	if err != nil {
		return zero, err
	}

	var raw struct {
		IsSuccess     bool     `json:"is_success"`
		Data          *Q       `json:"data,omitempty"`
		MissingFields []string `json:"missing_fields,omitempty"`
		ErrorMessage  string   `json:"error_message,omitempty"`
	}
	if d.PayloadJSON != "" {
		if err := json.Unmarshal([]byte(d.PayloadJSON), &raw); err != nil {
			return zero, fmt.Errorf("decode extract payload: %w", err)
		}
	}

	ext, err := decision.NewExtraction(raw.IsSuccess, raw.Data, raw.MissingFields, raw.ErrorMessage)
	if err != nil {
		return zero, err
	}

	if d.NeedsClarification {
		return decision.NewClarification(d.Confidence, d.Reasoning, d.ClarificationPrompt, ext)
	}
	return decision.NewEnvelope(d.Confidence, d.Reasoning, ext)
}
// #endregion extract-query

// #region helpers
func fromResponse(resp *pb.DecisionResponse) Decision {
	return Decision{
		Confidence:          resp.Confidence,
		Reasoning:           resp.Reasoning,
		NeedsClarification:  resp.NeedsClarification,
		ClarificationPrompt: resp.ClarificationPrompt,
		PayloadJSON:         resp.PayloadJson,
	}
}
// #endregion helpers
