package ledgerpb

import (
	"io"

	"github.com/klauspost/compress/gzip"
	"google.golang.org/grpc/encoding"
)

// gzipCompressorName is advertised to peers via grpc-encoding. A client
// selects it per call with grpc.UseCompressor (ledgerclient's dump
// command does so), and the server answers a gzip-encoded request with a
// gzip-encoded response. DumpDecisionLog snapshots are the one response large enough on a busy
// coordinator to be worth the CPU; every other message here is tiny.
const gzipCompressorName = "gzip"

func init() {
	encoding.RegisterCompressor(gzipCompressor{})
}

// gzipCompressor implements encoding.Compressor on top of
// klauspost/compress's gzip, a drop-in faster replacement for the
// standard library package of the same API.
type gzipCompressor struct{}

func (gzipCompressor) Compress(w io.Writer) (io.WriteCloser, error) {
	return gzip.NewWriterLevel(w, gzip.BestSpeed)
}

func (gzipCompressor) Decompress(r io.Reader) (io.Reader, error) {
	return gzip.NewReader(r)
}

func (gzipCompressor) Name() string { return gzipCompressorName }
