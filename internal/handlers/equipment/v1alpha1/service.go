package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "equipment.v1alpha1.EquipmentService"

// Full method names
const (
	EquipmentService_AssignPart_FullMethodName     = "/" + ServiceName + "/AssignPart"
	EquipmentService_GetMech_FullMethodName        = "/" + ServiceName + "/GetMech"
	EquipmentService_DeleteMech_FullMethodName     = "/" + ServiceName + "/DeleteMech"
	EquipmentService_TransferMech_FullMethodName   = "/" + ServiceName + "/TransferMech"
	EquipmentService_EquipMech_FullMethodName      = "/" + ServiceName + "/EquipMech"
	EquipmentService_CreateMech_FullMethodName     = "/" + ServiceName + "/CreateMech"
	EquipmentService_CreatePart_FullMethodName     = "/" + ServiceName + "/CreatePart"
	EquipmentService_SetPartEnabled_FullMethodName = "/" + ServiceName + "/SetPartEnabled"
)

// EquipmentServiceServer is the server API for the equipment service. Every
// message is a google.protobuf.Struct carrying the entity JSON field names.
type EquipmentServiceServer interface {
	AssignPart(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetMech(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteMech(context.Context, *structpb.Struct) (*structpb.Struct, error)
	TransferMech(context.Context, *structpb.Struct) (*structpb.Struct, error)
	EquipMech(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CreateMech(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CreatePart(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetPartEnabled(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// UnimplementedEquipmentServiceServer can be embedded for forward compatibility
type UnimplementedEquipmentServiceServer struct{}

func (UnimplementedEquipmentServiceServer) AssignPart(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method AssignPart not implemented")
}
func (UnimplementedEquipmentServiceServer) GetMech(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetMech not implemented")
}
func (UnimplementedEquipmentServiceServer) DeleteMech(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteMech not implemented")
}
func (UnimplementedEquipmentServiceServer) TransferMech(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method TransferMech not implemented")
}
func (UnimplementedEquipmentServiceServer) EquipMech(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method EquipMech not implemented")
}
func (UnimplementedEquipmentServiceServer) CreateMech(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateMech not implemented")
}
func (UnimplementedEquipmentServiceServer) CreatePart(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method CreatePart not implemented")
}
func (UnimplementedEquipmentServiceServer) SetPartEnabled(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method SetPartEnabled not implemented")
}

// RegisterEquipmentServiceServer registers srv on s
func RegisterEquipmentServiceServer(s grpc.ServiceRegistrar, srv EquipmentServiceServer) {
	s.RegisterService(&EquipmentService_ServiceDesc, srv)
}

// unaryHandler adapts one server method to the grpc.MethodDesc handler shape
func unaryHandler(
	fullMethod string,
	call func(EquipmentServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(EquipmentServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(EquipmentServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// EquipmentService_ServiceDesc is the grpc.ServiceDesc for the equipment service
var EquipmentService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*EquipmentServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AssignPart",
			Handler:    unaryHandler(EquipmentService_AssignPart_FullMethodName, EquipmentServiceServer.AssignPart),
		},
		{
			MethodName: "GetMech",
			Handler:    unaryHandler(EquipmentService_GetMech_FullMethodName, EquipmentServiceServer.GetMech),
		},
		{
			MethodName: "DeleteMech",
			Handler:    unaryHandler(EquipmentService_DeleteMech_FullMethodName, EquipmentServiceServer.DeleteMech),
		},
		{
			MethodName: "TransferMech",
			Handler:    unaryHandler(EquipmentService_TransferMech_FullMethodName, EquipmentServiceServer.TransferMech),
		},
		{
			MethodName: "EquipMech",
			Handler:    unaryHandler(EquipmentService_EquipMech_FullMethodName, EquipmentServiceServer.EquipMech),
		},
		{
			MethodName: "CreateMech",
			Handler:    unaryHandler(EquipmentService_CreateMech_FullMethodName, EquipmentServiceServer.CreateMech),
		},
		{
			MethodName: "CreatePart",
			Handler:    unaryHandler(EquipmentService_CreatePart_FullMethodName, EquipmentServiceServer.CreatePart),
		},
		{
			MethodName: "SetPartEnabled",
			Handler:    unaryHandler(EquipmentService_SetPartEnabled_FullMethodName, EquipmentServiceServer.SetPartEnabled),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "equipment/v1alpha1/equipment.proto",
}

// EquipmentServiceClient is the client API for the equipment service
type EquipmentServiceClient interface {
	AssignPart(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetMech(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	DeleteMech(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	TransferMech(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	EquipMech(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	CreateMech(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	CreatePart(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	SetPartEnabled(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type equipmentServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewEquipmentServiceClient creates a client on cc
func NewEquipmentServiceClient(cc grpc.ClientConnInterface) EquipmentServiceClient {
	return &equipmentServiceClient{cc}
}

func (c *equipmentServiceClient) invoke(
	ctx context.Context,
	method string,
	in *structpb.Struct,
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *equipmentServiceClient) AssignPart(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, EquipmentService_AssignPart_FullMethodName, in, opts...)
}

func (c *equipmentServiceClient) GetMech(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, EquipmentService_GetMech_FullMethodName, in, opts...)
}

func (c *equipmentServiceClient) DeleteMech(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, EquipmentService_DeleteMech_FullMethodName, in, opts...)
}

func (c *equipmentServiceClient) TransferMech(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, EquipmentService_TransferMech_FullMethodName, in, opts...)
}

func (c *equipmentServiceClient) EquipMech(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, EquipmentService_EquipMech_FullMethodName, in, opts...)
}

func (c *equipmentServiceClient) CreateMech(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, EquipmentService_CreateMech_FullMethodName, in, opts...)
}

func (c *equipmentServiceClient) CreatePart(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, EquipmentService_CreatePart_FullMethodName, in, opts...)
}

func (c *equipmentServiceClient) SetPartEnabled(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, EquipmentService_SetPartEnabled_FullMethodName, in, opts...)
}
