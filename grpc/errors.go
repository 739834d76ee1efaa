// Package grpc maps functional error kinds to gRPC status codes.
package grpc

import (
	"github.com/authcorp/option/functional"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var kindCodes = map[functional.Kind]codes.Code{
	functional.KindAbsentValue:     codes.NotFound,
	functional.KindInvalidState:    codes.FailedPrecondition,
	functional.KindInvalidArgument: codes.InvalidArgument,
}

// ToGRPCError converts a functional error to gRPC status.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	kind, ok := functional.KindOf(err)
	if !ok {
		return status.Error(codes.Internal, err.Error())
	}
	return status.Error(kindCodes[kind], err.Error())
}

// FromGRPCError converts a gRPC status to a functional error carrying the
// status message in Op. Codes without a matching kind are returned unchanged.
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	for kind, code := range kindCodes {
		if st.Code() == code {
			return &functional.Error{Kind: kind, Op: st.Message()}
		}
	}
	return err
}

// Recover converts a panic raised by the functional package into a gRPC
// status error stored in *errp. Other panics are re-raised.
//
//	func (s *server) Get(ctx context.Context, req *pb.Req) (_ *pb.Resp, err error) {
//		defer grpc.Recover(&err)
//		...
//	}
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	err, ok := r.(*functional.Error)
	if !ok {
		panic(r)
	}
	*errp = ToGRPCError(err)
}
