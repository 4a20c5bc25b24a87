package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/coreforge/mrp/internal/core/domain"
)

const collectionMaintenance = "maintenance_requests"

type MaintenanceRepository struct {
	col *mongo.Collection
}

func NewMaintenanceRepository(db *mongo.Database) *MaintenanceRepository {
	return &MaintenanceRepository{col: db.Collection(collectionMaintenance)}
}

func (r *MaintenanceRepository) Create(ctx context.Context, t *domain.MaintenanceRequest) (*domain.MaintenanceRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, t); err != nil {
		return nil, fmt.Errorf("insert maintenance request: %w", err)
	}
	return t, nil
}

func (r *MaintenanceRepository) FindByID(ctx context.Context, id string) (*domain.MaintenanceRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var t domain.MaintenanceRequest
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("find maintenance request: %w", err)
	}
	return &t, nil
}

func (r *MaintenanceRepository) List(ctx context.Context) ([]domain.MaintenanceRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list maintenance requests: %w", err)
	}
	defer cursor.Close(ctx)

	var tickets []domain.MaintenanceRequest
	if err := cursor.All(ctx, &tickets); err != nil {
		return nil, fmt.Errorf("decode maintenance requests: %w", err)
	}
	return tickets, nil
}

func (r *MaintenanceRepository) Update(ctx context.Context, t *domain.MaintenanceRequest) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": t.ID}, t)
	if err != nil {
		return fmt.Errorf("update maintenance request: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrTicketNotFound
	}
	return nil
}

func (r *MaintenanceRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete maintenance request: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTicketNotFound
	}
	return nil
}

func (r *MaintenanceRepository) CountByStatus(ctx context.Context, status domain.TicketStatus) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("count maintenance requests: %w", err)
	}
	return n, nil
}
