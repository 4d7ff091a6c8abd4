package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-graph/internal/data/entity"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"
)

const DirectorsCollection = "directors"

type directorDocument struct {
	ID   bson.ObjectID `bson:"_id,omitempty"`
	Name string        `bson:"name"`
	Age  int           `bson:"age"`
}

func (d *directorDocument) toEntity() *entity.Director {
	return &entity.Director{
		ID:   d.ID.Hex(),
		Name: d.Name,
		Age:  d.Age,
	}
}

type directorMongoRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewDirectorMongoRepository(db *mongo.Database, log *zap.Logger) DirectorRepository {
	return &directorMongoRepository{
		coll: db.Collection(DirectorsCollection),
		log:  log.With(zap.String("repository", "director"), zap.String("driver", "mongo")),
	}
}

func (r *directorMongoRepository) Create(ctx context.Context, fields entity.DirectorFields) (*entity.Director, error) {
	doc := directorDocument{Name: fields.Name, Age: fields.Age}

	result, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		r.log.Error("Failed to create director",
			zap.Error(err),
			zap.String("name", fields.Name),
		)
		return nil, fmt.Errorf("failed to create director: %w", err)
	}

	oid, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return nil, fmt.Errorf("failed to create director: unexpected id type %T", result.InsertedID)
	}
	doc.ID = oid

	return doc.toEntity(), nil
}

func (r *directorMongoRepository) FindByID(ctx context.Context, id string) (*entity.Director, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	var doc directorDocument
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find director by ID",
			zap.Error(err),
			zap.String("director_id", id),
		)
		return nil, fmt.Errorf("failed to find director: %w", err)
	}

	return doc.toEntity(), nil
}

func (r *directorMongoRepository) FindAll(ctx context.Context) ([]*entity.Director, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.log.Error("Failed to find directors", zap.Error(err))
		return nil, fmt.Errorf("failed to find directors: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []directorDocument
	if err := cursor.All(ctx, &docs); err != nil {
		r.log.Error("Failed to decode directors", zap.Error(err))
		return nil, fmt.Errorf("failed to decode directors: %w", err)
	}

	directors := make([]*entity.Director, 0, len(docs))
	for i := range docs {
		directors = append(directors, docs[i].toEntity())
	}

	return directors, nil
}

func (r *directorMongoRepository) Update(ctx context.Context, id string, fields entity.DirectorFields) (*entity.Director, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	update := bson.M{"$set": bson.M{"name": fields.Name, "age": fields.Age}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc directorDocument
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update director",
			zap.Error(err),
			zap.String("director_id", id),
		)
		return nil, fmt.Errorf("failed to update director: %w", err)
	}

	return doc.toEntity(), nil
}

func (r *directorMongoRepository) Delete(ctx context.Context, id string) (*entity.Director, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	var doc directorDocument
	err = r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to delete director",
			zap.Error(err),
			zap.String("director_id", id),
		)
		return nil, fmt.Errorf("failed to delete director: %w", err)
	}

	r.log.Info("Director deleted", zap.String("director_id", id))
	return doc.toEntity(), nil
}
