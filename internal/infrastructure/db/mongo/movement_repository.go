package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/coreforge/mrp/internal/core/domain"
)

const collectionMovements = "stock_movements"

// MovementRepository persists the applied stock-movement audit trail.
type MovementRepository struct {
	col *mongo.Collection
}

func NewMovementRepository(db *mongo.Database) *MovementRepository {
	return &MovementRepository{col: db.Collection(collectionMovements)}
}

func (r *MovementRepository) Insert(ctx context.Context, m *domain.StockMovement) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, m); err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

func (r *MovementRepository) ListBySKU(ctx context.Context, sku string, limit int) ([]domain.StockMovement, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if limit <= 0 {
		limit = 50
	}

	cursor, err := r.col.Find(ctx, bson.M{"sku": sku},
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(int64(limit)))
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer cursor.Close(ctx)

	var movements []domain.StockMovement
	if err := cursor.All(ctx, &movements); err != nil {
		return nil, fmt.Errorf("decode movements: %w", err)
	}
	return movements, nil
}

// EnsureIndexes creates the per-SKU timeline index.
func (r *MovementRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "sku", Value: 1}, {Key: "timestamp", Value: -1}},
	})
	return err
}
