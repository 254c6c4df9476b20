package database

import (
	"context"

	errprocess "video_platform_service/pkg/err"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UsersCollection collection holding user documents, joined by several pipelines
const UsersCollection = "users"

type countDoc struct {
	Count int64 `bson:"count"`
}

type facetResult[T any] struct {
	Total []countDoc `bson:"total"`
	Items []T        `bson:"items"`
}

// AggregatePage run the filter stages once, then count and page in the same $facet.
// Both branches see exactly the documents left by filter.
func AggregatePage[T any](ctx context.Context, coll *mongo.Collection, filter mongo.Pipeline, page mongo.Pipeline) ([]T, int64, error) {
	pipeline := append(mongo.Pipeline{}, filter...)
	pipeline = append(pipeline, bson.D{{Key: "$facet", Value: bson.M{
		"total": bson.A{bson.M{"$count": "count"}},
		"items": page,
	}}})

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var results []facetResult[T]
	if err := cursor.All(ctx, &results); err != nil {
		return nil, 0, err
	}
	if len(results) == 0 {
		return []T{}, 0, nil
	}

	var total int64
	if len(results[0].Total) > 0 {
		total = results[0].Total[0].Count
	}
	items := results[0].Items
	if items == nil {
		items = []T{}
	}
	return items, total, nil
}

// PageStages $sort, $skip, $limit in that order
func PageStages(sort bson.D, skip, limit int64) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$sort", Value: sort}},
		{{Key: "$skip", Value: skip}},
		{{Key: "$limit", Value: limit}},
	}
}

// LookupUserSummary join users on localField and collapse the match into a single object stored at as
func LookupUserSummary(localField, as string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         UsersCollection,
			"localField":   localField,
			"foreignField": "_id",
			"as":           as,
			"pipeline": bson.A{
				bson.M{"$project": bson.M{"userName": 1, "fullName": 1, "email": 1, "avatar": 1}},
			},
		}}},
		{{Key: "$set", Value: bson.M{as: bson.M{"$first": "$" + as}}}},
	}
}

// ParseID hex to ObjectID, invalid input is a 400 naming what was expected
func ParseID(hex, what string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, errprocess.BadRequest("Invalid " + what)
	}
	return id, nil
}
