package repository

import (
	"context"
	"time"

	"video_platform_service/internal/notification/domain"
	userdomain "video_platform_service/internal/user/domain"
	"video_platform_service/pkg/database"
	"video_platform_service/pkg/pagination"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// View notification with the sender's public fields joined
type View struct {
	domain.Notification `bson:",inline"`
	SenderDetails       *userdomain.Summary `bson:"senderDetails,omitempty" json:"senderDetails,omitempty"`
}

// NotificationRepository definition notification persistence
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	List(ctx context.Context, recipient primitive.ObjectID, f domain.Filter, p pagination.Params) ([]View, int64, error)
	CountUnread(ctx context.Context, recipient primitive.ObjectID) (int64, error)
	MarkRead(ctx context.Context, id, recipient primitive.ObjectID) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, recipient primitive.ObjectID) (int64, error)
	Delete(ctx context.Context, id, recipient primitive.ObjectID) error
	EnsureIndexes(ctx context.Context) error
}

type notificationRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewMongoNotificationRepository create a mongo backed NotificationRepository
func NewMongoNotificationRepository(db *mongo.Database) NotificationRepository {
	return &notificationRepository{coll: db.Collection("notifications"), now: time.Now}
}

func (r *notificationRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "recipient", Value: 1}, {Key: "isRead", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	return err
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	if n.ID.IsZero() {
		n.ID = primitive.NewObjectID()
	}
	now := r.now()
	n.CreatedAt, n.UpdatedAt = now, now
	_, err := r.coll.InsertOne(ctx, n)
	return err
}

func listFilter(recipient primitive.ObjectID, f domain.Filter) bson.M {
	match := bson.M{"recipient": recipient}
	if f.IsRead != nil {
		match["isRead"] = *f.IsRead
	}
	if f.Type != "" {
		match["type"] = f.Type
	}
	return match
}

// List newest first
func (r *notificationRepository) List(ctx context.Context, recipient primitive.ObjectID, f domain.Filter, p pagination.Params) ([]View, int64, error) {
	filter := mongo.Pipeline{{{Key: "$match", Value: listFilter(recipient, f)}}}
	page := database.PageStages(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}, p.Skip(), int64(p.Limit))
	page = append(page, database.LookupUserSummary("sender", "senderDetails")...)
	return database.AggregatePage[View](ctx, r.coll, filter, page)
}

func (r *notificationRepository) CountUnread(ctx context.Context, recipient primitive.ObjectID) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"recipient": recipient, "isRead": false})
}

// MarkRead only the recipient's own notification, ErrNotificationNotFound otherwise
func (r *notificationRepository) MarkRead(ctx context.Context, id, recipient primitive.ObjectID) (*domain.Notification, error) {
	var n domain.Notification
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "recipient": recipient},
		bson.M{"$set": bson.M{"isRead": true, "updatedAt": r.now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&n)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, domain.ErrNotificationNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, recipient primitive.ObjectID) (int64, error) {
	res, err := r.coll.UpdateMany(ctx,
		bson.M{"recipient": recipient, "isRead": false},
		bson.M{"$set": bson.M{"isRead": true, "updatedAt": r.now()}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *notificationRepository) Delete(ctx context.Context, id, recipient primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id, "recipient": recipient})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}
