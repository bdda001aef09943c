// Package grpcclient provides a client for the Python inference gRPC server
package grpcclient

import (
	"context"
	"io"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"

	"github.com/studywatch/platform/internal/errors"
	"github.com/studywatch/platform/internal/resilience"
	"github.com/studywatch/platform/internal/trace"
	pb "github.com/studywatch/platform/pkg/pb"
)

// Client wraps the vision and speech service clients
type Client struct {
	conn    *grpc.ClientConn
	Vision  pb.VisionServiceClient
	Speech  pb.SpeechServiceClient
	breaker *resilience.Breaker
}

// New creates a new inference client
func New(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:    DefaultKeepaliveTime,
			Timeout: DefaultKeepaliveTimeout,
		}),
		grpc.WithChainUnaryInterceptor(trace.UnaryClientInterceptor()),
		grpc.WithChainStreamInterceptor(trace.StreamClientInterceptor()),
	)
	if err != nil {
		return nil, errors.Wrap(err, pb.ErrorCode_UNAVAILABLE, "dial inference server")
	}

	return &Client{
		conn:    conn,
		Vision:  pb.NewVisionServiceClient(conn),
		Speech:  pb.NewSpeechServiceClient(conn),
		breaker: resilience.New(resilience.FastConfig()),
	}, nil
}

// Close closes the gRPC connection
func (c *Client) Close() error {
	return c.conn.Close()
}

// BreakerState exposes the circuit breaker state for the status API.
func (c *Client) BreakerState() resilience.State {
	return c.breaker.State()
}

// DetectLandmarks runs face-mesh inference on a single encoded frame.
// Calls are guarded by the circuit breaker so a dead sidecar does not
// stall the frame loop.
func (c *Client) DetectLandmarks(ctx context.Context, frame []byte, format string, maxFaces int32) ([]*pb.FaceLandmarks, error) {
	if err := c.breaker.Allow(); err != nil {
		return nil, errors.Wrap(err, pb.ErrorCode_UNAVAILABLE, "vision service circuit open")
	}

	var faces []*pb.FaceLandmarks
	err := resilience.Retry(ctx, resilience.FrameRetryConfig(), func() error {
		callCtx, cancel := context.WithTimeout(ctx, DetectTimeout)
		defer cancel()

		resp, err := c.Vision.DetectLandmarks(callCtx, &pb.DetectRequest{
			ImageData: frame,
			Format:    format,
			MaxFaces:  maxFaces,
		})
		if err != nil {
			return err
		}
		faces = resp.Faces
		return nil
	})
	if err != nil {
		c.breaker.Failure()
		return nil, errors.FromGRPCError(err)
	}
	c.breaker.Success()
	return faces, nil
}

// Synthesize renders text to PCM16 audio, collecting the streamed chunks.
// Returns the samples and the sample rate reported by the engine.
func (c *Client) Synthesize(ctx context.Context, text string, sampleRate int32) ([]byte, int, error) {
	var pcm []byte
	var rate int

	err := resilience.Retry(ctx, resilience.SpeechRetryConfig(), func() error {
		callCtx, cancel := context.WithTimeout(ctx, SynthesizeTimeout)
		defer cancel()

		stream, err := c.Speech.Synthesize(callCtx, &pb.SynthesizeRequest{
			Text:       text,
			SampleRate: sampleRate,
		})
		if err != nil {
			return err
		}

		pcm = pcm[:0]
		start := time.Now()
		for {
			chunk, err := stream.Recv()
			if err == io.EOF {
				break
			}
			if err != nil {
				return err
			}
			pcm = append(pcm, chunk.Pcm...)
			rate = int(chunk.SampleRate)
		}
		slog.Debug("speech synthesized", "bytes", len(pcm), "rate", rate, "elapsed", time.Since(start))
		return nil
	})
	if err != nil {
		return nil, 0, errors.FromGRPCError(err)
	}
	if rate == 0 {
		rate = int(sampleRate)
	}
	return pcm, rate, nil
}
