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
)

// B2BRepository persists wholesale requests.
type B2BRepository struct {
	col *mongo.Collection
}

func NewB2BRepository(db *mongo.Database) *B2BRepository {
	return &B2BRepository{col: db.Collection("b2b_requests")}
}

func (r *B2BRepository) Insert(ctx context.Context, req *domain.B2BRequest) error {
	if _, err := r.col.InsertOne(ctx, req); err != nil {
		return apperrors.Persistence("insert b2b request", err)
	}
	return nil
}

func (r *B2BRepository) FindAll(ctx context.Context) ([]domain.B2BRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperrors.Persistence("list b2b requests", err)
	}

	var requests []domain.B2BRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, apperrors.Persistence("decode b2b requests", err)
	}
	return requests, nil
}

func (r *B2BRepository) UpdateStatus(ctx context.Context, id string, status domain.B2BStatus) (*domain.B2BRequest, error) {
	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var req domain.B2BRequest
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&req)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFound("b2b request", id)
	}
	if err != nil {
		return nil, apperrors.Persistence("update b2b status", err)
	}
	return &req, nil
}
