package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/steelisia/commerce-backend/internal/apperrors"
	"github.com/steelisia/commerce-backend/internal/domain"
	"github.com/steelisia/commerce-backend/internal/order"
)

// OrderRepository implements order.Repository on the orders collection.
type OrderRepository struct {
	col *mongo.Collection
}

var _ order.Repository = (*OrderRepository)(nil)

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{col: db.Collection("orders")}
}

func (r *OrderRepository) Insert(ctx context.Context, o *domain.Order) error {
	if _, err := r.col.InsertOne(ctx, o); err != nil {
		return apperrors.Persistence("insert order", err)
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	var o domain.Order
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFound("order", id)
	}
	if err != nil {
		return nil, apperrors.Persistence("find order", err)
	}
	return &o, nil
}

func (r *OrderRepository) FindByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	return r.find(ctx, bson.M{})
}

func (r *OrderRepository) find(ctx context.Context, filter bson.M) ([]domain.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperrors.Persistence("find orders", err)
	}

	var orders []domain.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, apperrors.Persistence("decode orders", err)
	}
	return orders, nil
}

// UpdateStatus writes the new status and returns the updated document.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var o domain.Order
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFound("order", id)
	}
	if err != nil {
		return nil, apperrors.Persistence("update order status", err)
	}
	return &o, nil
}

// UpdatePayment records the checkout outcome on the order. Percentage and
// amount are only written when a session was actually created.
func (r *OrderRepository) UpdatePayment(ctx context.Context, id string, status domain.PaymentStatus, percentage int, amount float64) error {
	set := bson.M{
		"paymentStatus": status,
		"updatedAt":     time.Now().UTC(),
	}
	if status == domain.PaymentPending {
		set["paymentPercentage"] = percentage
		set["payedAmount"] = amount
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return apperrors.Persistence("update order payment", err)
	}
	if res.MatchedCount == 0 {
		return apperrors.NotFound("order", id)
	}
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperrors.Persistence("delete order", err)
	}
	if res.DeletedCount == 0 {
		return apperrors.NotFound("order", id)
	}
	return nil
}

func (r *OrderRepository) CountAll(ctx context.Context) (int64, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, apperrors.Persistence("count orders", err)
	}
	return n, nil
}

func (r *OrderRepository) CountByStatus(ctx context.Context, status domain.OrderStatus) (int64, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, apperrors.Persistence("count orders by status", err)
	}
	return n, nil
}

// SumDeliveredTotal aggregates the revenue of delivered orders.
func (r *OrderRepository) SumDeliveredTotal(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": domain.StatusDelivered}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$totalAmount"},
		}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, apperrors.Persistence("sum delivered orders", err)
	}

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, apperrors.Persistence("decode delivered sum", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
