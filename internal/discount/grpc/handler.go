package grpc

import (
	"context"
	"errors"
	"log"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nqbjnh/go-shop/internal/discount/domain"
	"github.com/nqbjnh/go-shop/internal/discount/repository"
	"github.com/nqbjnh/go-shop/pkg/discountpb"
)

type DiscountServiceServer struct {
	repo repository.CouponRepository
}

func NewDiscountServiceServer(repo repository.CouponRepository) *DiscountServiceServer {
	return &DiscountServiceServer{repo: repo}
}

// GetDiscount never fails on an unknown product: products without a
// coupon get a zero-amount one, so basket pricing can subtract
// unconditionally.
func (s *DiscountServiceServer) GetDiscount(
	ctx context.Context,
	req *discountpb.GetDiscountRequest) (*discountpb.CouponModel, error) {

	if req.ProductName == "" {
		return nil, status.Error(codes.InvalidArgument, "product_name is required")
	}

	coupon, err := s.repo.GetCoupon(ctx, req.ProductName)
	if errors.Is(err, repository.ErrCouponNotFound) {
		return &discountpb.CouponModel{
			ProductName: req.ProductName,
			Description: "No Discount",
			Amount:      0,
		}, nil
	}
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to get coupon: %v", err)
	}

	log.Printf("discount retrieved for %s, amount: %v", coupon.ProductName, coupon.Amount)
	return toModel(coupon), nil
}

func (s *DiscountServiceServer) CreateDiscount(
	ctx context.Context,
	req *discountpb.CreateDiscountRequest) (*discountpb.CouponModel, error) {

	if err := validateCoupon(req.Coupon); err != nil {
		return nil, err
	}

	coupon, err := s.repo.CreateCoupon(ctx, fromModel(req.Coupon))
	if errors.Is(err, repository.ErrDuplicateCoupon) {
		return nil, status.Errorf(codes.AlreadyExists, "coupon for %s already exists", req.Coupon.ProductName)
	}
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to create coupon: %v", err)
	}

	return toModel(coupon), nil
}

func (s *DiscountServiceServer) UpdateDiscount(
	ctx context.Context,
	req *discountpb.UpdateDiscountRequest) (*discountpb.CouponModel, error) {

	if err := validateCoupon(req.Coupon); err != nil {
		return nil, err
	}

	coupon, err := s.repo.UpdateCoupon(ctx, fromModel(req.Coupon))
	if errors.Is(err, repository.ErrCouponNotFound) {
		return nil, status.Errorf(codes.NotFound, "coupon for %s not found", req.Coupon.ProductName)
	}
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to update coupon: %v", err)
	}

	return toModel(coupon), nil
}

func (s *DiscountServiceServer) DeleteDiscount(
	ctx context.Context,
	req *discountpb.DeleteDiscountRequest) (*discountpb.DeleteDiscountResponse, error) {

	if req.ProductName == "" {
		return nil, status.Error(codes.InvalidArgument, "product_name is required")
	}

	err := s.repo.DeleteCoupon(ctx, req.ProductName)
	if errors.Is(err, repository.ErrCouponNotFound) {
		return nil, status.Errorf(codes.NotFound, "coupon for %s not found", req.ProductName)
	}
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to delete coupon: %v", err)
	}

	return &discountpb.DeleteDiscountResponse{Success: true}, nil
}

func validateCoupon(coupon *discountpb.CouponModel) error {
	if coupon == nil {
		return status.Error(codes.InvalidArgument, "coupon is required")
	}
	if coupon.ProductName == "" {
		return status.Error(codes.InvalidArgument, "product_name is required")
	}
	if coupon.Amount < 0 {
		return status.Error(codes.InvalidArgument, "amount must not be negative")
	}
	return nil
}

func toModel(coupon *domain.Coupon) *discountpb.CouponModel {
	return &discountpb.CouponModel{
		ID:          coupon.ID,
		ProductName: coupon.ProductName,
		Description: coupon.Description,
		Amount:      coupon.Amount,
	}
}

func fromModel(model *discountpb.CouponModel) *domain.Coupon {
	return &domain.Coupon{
		ID:          model.ID,
		ProductName: model.ProductName,
		Description: model.Description,
		Amount:      model.Amount,
	}
}
