package grpc

// Hand-written service descriptor for creditrisk.v1.EvaluationService. The
// messages are plain structs carried by the JSON codec.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	ServiceName = "creditrisk.v1.EvaluationService"

	EvaluateMethod     = "/" + ServiceName + "/Evaluate"
	ExportReportMethod = "/" + ServiceName + "/ExportReport"
)

// EvaluationServiceServer is the server API for EvaluationService.
type EvaluationServiceServer interface {
	Evaluate(context.Context, *EvaluateRequest) (*EvaluateResponse, error)
	ExportReport(context.Context, *ExportReportRequest) (*ExportReportResponse, error)
	mustEmbedUnimplementedEvaluationServiceServer()
}

// UnimplementedEvaluationServiceServer provides forward-compatible defaults.
type UnimplementedEvaluationServiceServer struct{}

func (UnimplementedEvaluationServiceServer) Evaluate(context.Context, *EvaluateRequest) (*EvaluateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Evaluate not implemented")
}
func (UnimplementedEvaluationServiceServer) ExportReport(context.Context, *ExportReportRequest) (*ExportReportResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportReport not implemented")
}
func (UnimplementedEvaluationServiceServer) mustEmbedUnimplementedEvaluationServiceServer() {}

// RegisterEvaluationServiceServer registers srv with s.
func RegisterEvaluationServiceServer(s grpclib.ServiceRegistrar, srv EvaluationServiceServer) {
	s.RegisterService(&evaluationServiceDesc, srv)
}

var evaluationServiceDesc = grpclib.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*EvaluationServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "Evaluate", Handler: evaluateHandler},
		{MethodName: "ExportReport", Handler: exportReportHandler},
	},
	Streams: []grpclib.StreamDesc{},
}

func evaluateHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpclib.UnaryServerInterceptor) (any, error) {
	in := new(EvaluateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EvaluationServiceServer).Evaluate(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: EvaluateMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(EvaluationServiceServer).Evaluate(ctx, req.(*EvaluateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func exportReportHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpclib.UnaryServerInterceptor) (any, error) {
	in := new(ExportReportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EvaluationServiceServer).ExportReport(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: ExportReportMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(EvaluationServiceServer).ExportReport(ctx, req.(*ExportReportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// EvaluationServiceClient calls EvaluationService over a JSON-coded
// connection.
type EvaluationServiceClient struct {
	cc grpclib.ClientConnInterface
}

func NewEvaluationServiceClient(cc grpclib.ClientConnInterface) *EvaluationServiceClient {
	return &EvaluationServiceClient{cc: cc}
}

func (c *EvaluationServiceClient) Evaluate(ctx context.Context, in *EvaluateRequest, opts ...grpclib.CallOption) (*EvaluateResponse, error) {
	out := new(EvaluateResponse)
	opts = append([]grpclib.CallOption{grpclib.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, EvaluateMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *EvaluationServiceClient) ExportReport(ctx context.Context, in *ExportReportRequest, opts ...grpclib.CallOption) (*ExportReportResponse, error) {
	out := new(ExportReportResponse)
	opts = append([]grpclib.CallOption{grpclib.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, ExportReportMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
