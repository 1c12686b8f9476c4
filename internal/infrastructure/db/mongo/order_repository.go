package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/orderdesk/order-service/internal/core/domain"
)

const orderCollection = "orders"

// OrderRepository persists order records. A single InsertOne is the atomic
// commit point; documents are never updated after insertion. user_id carries
// no index or constraint against the users collection, so orders can refer
// to accounts that no longer exist.
type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection(orderCollection)}
}

type orderDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Success   bool               `bson:"success"`
	CreatedAt int64              `bson:"created_at"`
}

func (r *OrderRepository) Insert(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	doc := orderDoc{
		UserID:    order.UserID,
		Success:   order.Success,
		CreatedAt: order.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	created := *order
	created.ID = id.Hex()
	return &created, nil
}

func (r *OrderRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Order, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	return r.find(ctx, bson.M{})
}

// find returns matching orders in insertion order (_id ascending).
func (r *OrderRepository) find(ctx context.Context, filter bson.M) ([]domain.Order, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	defer cur.Close(ctx)

	var orders []domain.Order
	for cur.Next(ctx) {
		var doc orderDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode order: %w", err)
		}
		orders = append(orders, domain.Order{
			ID:        doc.ID.Hex(),
			UserID:    doc.UserID,
			Success:   doc.Success,
			CreatedAt: unixToTime(doc.CreatedAt),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	return orders, nil
}
