// Package discountpb defines the wire contract of the discount service.
//
// The service descriptor and client stub are written by hand against the
// JSON codec registered in codec.go, following the grpc-go JSON codec
// pattern. Field names below are the wire format; changing a json tag is
// a breaking change for every consumer.
package discountpb

import (
	"context"

	"google.golang.org/grpc"
)

const ServiceName = "discount.DiscountService"

type GetDiscountRequest struct {
	ProductName string `json:"product_name"`
}

type CouponModel struct {
	ID          int64   `json:"id"`
	ProductName string  `json:"product_name"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type CreateDiscountRequest struct {
	Coupon *CouponModel `json:"coupon"`
}

type UpdateDiscountRequest struct {
	Coupon *CouponModel `json:"coupon"`
}

type DeleteDiscountRequest struct {
	ProductName string `json:"product_name"`
}

type DeleteDiscountResponse struct {
	Success bool `json:"success"`
}

type DiscountServiceClient interface {
	GetDiscount(ctx context.Context, in *GetDiscountRequest, opts ...grpc.CallOption) (*CouponModel, error)
	CreateDiscount(ctx context.Context, in *CreateDiscountRequest, opts ...grpc.CallOption) (*CouponModel, error)
	UpdateDiscount(ctx context.Context, in *UpdateDiscountRequest, opts ...grpc.CallOption) (*CouponModel, error)
	DeleteDiscount(ctx context.Context, in *DeleteDiscountRequest, opts ...grpc.CallOption) (*DeleteDiscountResponse, error)
}

type discountServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDiscountServiceClient(cc grpc.ClientConnInterface) DiscountServiceClient {
	return &discountServiceClient{cc: cc}
}

func (c *discountServiceClient) invoke(ctx context.Context, method string, in, out interface{}, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...)
}

func (c *discountServiceClient) GetDiscount(ctx context.Context, in *GetDiscountRequest, opts ...grpc.CallOption) (*CouponModel, error) {
	out := new(CouponModel)
	if err := c.invoke(ctx, "GetDiscount", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *discountServiceClient) CreateDiscount(ctx context.Context, in *CreateDiscountRequest, opts ...grpc.CallOption) (*CouponModel, error) {
	out := new(CouponModel)
	if err := c.invoke(ctx, "CreateDiscount", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *discountServiceClient) UpdateDiscount(ctx context.Context, in *UpdateDiscountRequest, opts ...grpc.CallOption) (*CouponModel, error) {
	out := new(CouponModel)
	if err := c.invoke(ctx, "UpdateDiscount", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *discountServiceClient) DeleteDiscount(ctx context.Context, in *DeleteDiscountRequest, opts ...grpc.CallOption) (*DeleteDiscountResponse, error) {
	out := new(DeleteDiscountResponse)
	if err := c.invoke(ctx, "DeleteDiscount", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
