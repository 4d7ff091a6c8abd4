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

const MoviesCollection = "movies"

type movieDocument struct {
	ID         bson.ObjectID `bson:"_id,omitempty"`
	Name       string        `bson:"name"`
	Genre      string        `bson:"genre"`
	Watched    bool          `bson:"watched"`
	Rate       *int          `bson:"rate,omitempty"`
	DirectorID *string       `bson:"directorId,omitempty"`
}

func (d *movieDocument) toEntity() *entity.Movie {
	return &entity.Movie{
		ID:         d.ID.Hex(),
		Name:       d.Name,
		Genre:      d.Genre,
		Watched:    d.Watched,
		Rate:       d.Rate,
		DirectorID: d.DirectorID,
	}
}

type movieMongoRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewMovieMongoRepository(db *mongo.Database, log *zap.Logger) MovieRepository {
	return &movieMongoRepository{
		coll: db.Collection(MoviesCollection),
		log:  log.With(zap.String("repository", "movie"), zap.String("driver", "mongo")),
	}
}

func (r *movieMongoRepository) Create(ctx context.Context, fields entity.MovieFields) (*entity.Movie, error) {
	doc := movieDocument{
		Name:       fields.Name,
		Genre:      fields.Genre,
		Watched:    fields.Watched,
		Rate:       fields.Rate,
		DirectorID: fields.DirectorID,
	}

	result, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("name", fields.Name),
		)
		return nil, fmt.Errorf("failed to create movie: %w", err)
	}

	oid, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return nil, fmt.Errorf("failed to create movie: unexpected id type %T", result.InsertedID)
	}
	doc.ID = oid

	return doc.toEntity(), nil
}

func (r *movieMongoRepository) FindByID(ctx context.Context, id string) (*entity.Movie, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	var doc movieDocument
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id),
		)
		return nil, fmt.Errorf("failed to find movie: %w", err)
	}

	return doc.toEntity(), nil
}

func (r *movieMongoRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	return r.find(ctx, bson.M{})
}

func (r *movieMongoRepository) FindByDirectorID(ctx context.Context, directorID string) ([]*entity.Movie, error) {
	return r.find(ctx, bson.M{"directorId": directorID})
}

func (r *movieMongoRepository) find(ctx context.Context, filter bson.M) ([]*entity.Movie, error) {
	// ObjectIDs grow with insertion time, so sorting on _id keeps insertion order.
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		r.log.Error("Failed to find movies",
			zap.Error(err),
			zap.Any("filter", filter),
		)
		return nil, fmt.Errorf("failed to find movies: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []movieDocument
	if err := cursor.All(ctx, &docs); err != nil {
		r.log.Error("Failed to decode movies", zap.Error(err))
		return nil, fmt.Errorf("failed to decode movies: %w", err)
	}

	movies := make([]*entity.Movie, 0, len(docs))
	for i := range docs {
		movies = append(movies, docs[i].toEntity())
	}

	r.log.Debug("Movies found",
		zap.Int("count", len(movies)),
		zap.Any("filter", filter),
	)

	return movies, nil
}

func (r *movieMongoRepository) Update(ctx context.Context, id string, fields entity.MovieFields) (*entity.Movie, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	set := bson.M{
		"name":    fields.Name,
		"genre":   fields.Genre,
		"watched": fields.Watched,
	}
	unset := bson.M{}
	if fields.Rate != nil {
		set["rate"] = *fields.Rate
	} else {
		unset["rate"] = ""
	}
	if fields.DirectorID != nil {
		set["directorId"] = *fields.DirectorID
	} else {
		unset["directorId"] = ""
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc movieDocument
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", id),
		)
		return nil, fmt.Errorf("failed to update movie: %w", err)
	}

	return doc.toEntity(), nil
}

func (r *movieMongoRepository) Delete(ctx context.Context, id string) (*entity.Movie, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	var doc movieDocument
	err = r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", id),
		)
		return nil, fmt.Errorf("failed to delete movie: %w", err)
	}

	r.log.Info("Movie deleted", zap.String("movie_id", id))
	return doc.toEntity(), nil
}
