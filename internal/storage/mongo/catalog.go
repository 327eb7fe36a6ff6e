package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/steelisia/commerce-backend/internal/apperrors"
	"github.com/steelisia/commerce-backend/internal/domain"
)

// CatalogRepository reads the products collection. The order flow never
// writes to it; Insert exists for seeding.
type CatalogRepository struct {
	col *mongo.Collection
}

func NewCatalogRepository(db *mongo.Database) *CatalogRepository {
	return &CatalogRepository{col: db.Collection("products")}
}

func (r *CatalogRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFound("product", id)
	}
	if err != nil {
		return nil, apperrors.Persistence("find product", err)
	}
	return &product, nil
}

// FindByIDs resolves products in one batch. Missing ids are simply absent
// from the result; the pricing engine enforces strictness.
func (r *CatalogRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	cursor, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, apperrors.Persistence("find products", err)
	}

	var products []domain.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, apperrors.Persistence("decode products", err)
	}
	return products, nil
}

func (r *CatalogRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperrors.Persistence("list products", err)
	}

	var products []domain.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, apperrors.Persistence("decode products", err)
	}
	return products, nil
}

func (r *CatalogRepository) Insert(ctx context.Context, p *domain.Product) error {
	if _, err := r.col.InsertOne(ctx, p); err != nil {
		return apperrors.Persistence("insert product", err)
	}
	return nil
}
