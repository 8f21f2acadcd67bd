package ledgerpb

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
)

// codecName is registered with grpc-go's encoding package; clients select
// it via grpc.CallContentSubtype and the server resolves it from the
// registry by content subtype. Using a JSON codec
// instead of protoc-generated protobuf wire types lets ledgerbank run
// its RPC surface on the real google.golang.org/grpc transport (keepalive,
// per-call deadlines, typed errors) without a protoc code-generation
// step, which this environment cannot run. See DESIGN.md for the
// grounding and tradeoff.
const codecName = "json"

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("ledgerpb: marshal %T: %w", v, err)
	}
	return data, nil
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("ledgerpb: unmarshal %T: %w", v, err)
	}
	return nil
}

func (jsonCodec) Name() string { return codecName }

// CodecName is exported so callers (dial.go) can select it via
// grpc.CallContentSubtype(ledgerpb.CodecName).
const CodecName = codecName
