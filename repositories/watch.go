package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blogboard/internal/logger"
	"blogboard/models"
)

// WatchByOwner opens a change stream over one author's posts and delivers a
// fresh full snapshot on every change. The first snapshot is sent before any
// change arrives so subscribers render immediately. The channel closes when
// ctx is cancelled or the stream dies; a query error inside the loop yields
// an empty list rather than tearing the watch down.
func (r *PostRepository) WatchByOwner(ctx context.Context, ownerID string) (<-chan []models.Post, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"$or": []bson.M{
				{"fullDocument.author_id": ownerID},
				{"operationType": "delete"},
			},
		}}},
	}
	return r.watch(ctx, pipeline, func(ctx context.Context) ([]models.Post, error) {
		return r.ListByOwner(ctx, ownerID)
	})
}

// WatchAll delivers full-collection snapshots on every change.
func (r *PostRepository) WatchAll(ctx context.Context) (<-chan []models.Post, error) {
	return r.watch(ctx, mongo.Pipeline{}, r.ListAll)
}

func (r *PostRepository) watch(ctx context.Context, pipeline mongo.Pipeline, reload func(context.Context) ([]models.Post, error)) (<-chan []models.Post, error) {
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)
	stream, err := r.col.Watch(ctx, pipeline, opts)
	if err != nil {
		return nil, err
	}

	out := make(chan []models.Post, 1)
	go func() {
		defer close(out)
		defer stream.Close(context.Background())

		send := func() {
			posts, err := reload(ctx)
			if err != nil {
				logger.Log.Errorf("post watch reload failed: %v", err)
				posts = []models.Post{}
			}
			select {
			case out <- posts:
			case <-ctx.Done():
			}
		}

		send()
		for stream.Next(ctx) {
			send()
		}
		if err := stream.Err(); err != nil && ctx.Err() == nil {
			logger.Log.Errorf("post change stream closed: %v", err)
		}
	}()
	return out, nil
}
