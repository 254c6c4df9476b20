package repository

import (
	"context"
	"time"

	"video_platform_service/internal/user/domain"
	"video_platform_service/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserRepository definition user persistence
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	FindByUserName(ctx context.Context, userName string) (*domain.User, error)
	FindByEmailOrUserName(ctx context.Context, email, userName string) (*domain.User, error)
	Update(ctx context.Context, id primitive.ObjectID, upd domain.UserUpdate) (*domain.User, error)
	PushWatchHistory(ctx context.Context, id, videoID primitive.ObjectID) error
	EnsureIndexes(ctx context.Context) error
}

type userRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewMongoUserRepository create a mongo backed UserRepository
func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{
		coll: db.Collection(database.UsersCollection),
		now:  time.Now,
	}
}

func (r *userRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "userName", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "fullName", Value: "text"}, {Key: "userName", Value: "text"}}},
	})
	return err
}

// Create insert the user and set its id, a unique index violation becomes ErrDuplicateUser
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		if database.IsDuplicateKey(err) {
			return domain.ErrDuplicateUser
		}
		return err
	}
	return nil
}

func (r *userRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var user domain.User
	if err := r.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		if database.IsNotFound(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *userRepository) FindByUserName(ctx context.Context, userName string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"userName": domain.NormalizeName(userName)})
}

// FindByEmailOrUserName match either field, empty values are ignored
func (r *userRepository) FindByEmailOrUserName(ctx context.Context, email, userName string) (*domain.User, error) {
	or := bson.A{}
	if e := domain.NormalizeName(email); e != "" {
		or = append(or, bson.M{"email": e})
	}
	if u := domain.NormalizeName(userName); u != "" {
		or = append(or, bson.M{"userName": u})
	}
	if len(or) == 0 {
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"$or": or})
}

func updateDoc(upd domain.UserUpdate, now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	unset := bson.M{}

	if upd.FullName != nil {
		set["fullName"] = *upd.FullName
	}
	if upd.Email != nil {
		set["email"] = domain.NormalizeName(*upd.Email)
	}
	if upd.Password != nil {
		set["password"] = *upd.Password
	}
	if upd.RefreshToken != nil {
		if *upd.RefreshToken == "" {
			unset["refreshToken"] = ""
		} else {
			set["refreshToken"] = *upd.RefreshToken
		}
	}
	if upd.Avatar != nil {
		set["avatar"] = *upd.Avatar
	}
	if upd.CoverImage != nil {
		set["coverImage"] = *upd.CoverImage
	}
	if upd.ChannelDescription != nil {
		set["channelDescription"] = *upd.ChannelDescription
	}
	if upd.ChannelTags != nil {
		set["channelTags"] = *upd.ChannelTags
	}
	if upd.SocialLinks != nil {
		set["socialLinks"] = *upd.SocialLinks
	}
	if upd.NotificationSettings != nil {
		set["notificationSettings"] = *upd.NotificationSettings
	}

	doc := bson.M{"$set": set}
	if len(unset) > 0 {
		doc["$unset"] = unset
	}
	return doc
}

// Update apply the partial update and return the new document
func (r *userRepository) Update(ctx context.Context, id primitive.ObjectID, upd domain.UserUpdate) (*domain.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user domain.User
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, updateDoc(upd, r.now()), opts).Decode(&user)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, domain.ErrUserNotFound
		}
		if database.IsDuplicateKey(err) {
			return nil, domain.ErrDuplicateUser
		}
		return nil, err
	}
	return &user, nil
}

// PushWatchHistory move videoID to the front of the history in one update
func (r *userRepository) PushWatchHistory(ctx context.Context, id, videoID primitive.ObjectID) error {
	// pipeline update: 先移除舊的再放到最前面，最多保留 WatchHistoryLimit 筆
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"watchHistory": bson.M{"$slice": bson.A{
				bson.M{"$concatArrays": bson.A{
					bson.A{videoID},
					bson.M{"$filter": bson.M{
						"input": bson.M{"$ifNull": bson.A{"$watchHistory", bson.A{}}},
						"cond":  bson.M{"$ne": bson.A{"$$this", videoID}},
					}},
				}},
				domain.WatchHistoryLimit,
			}},
		}}},
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
