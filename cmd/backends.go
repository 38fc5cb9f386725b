package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/infrastruture/logger"
	"github.com/beka-birhanu/vinom-maze/infrastruture/repo"
	"github.com/beka-birhanu/vinom-maze/infrastruture/sortedstorage"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	scoresCollection   = "scores"
	archivesCollection = "leaderboard_archives"
	archiveLockExpiry  = time.Minute
)

// backends holds the connections and stores shared by serve and archive.
type backends struct {
	mongoClient *mongo.Client
	redisClient *redis.Client
	scores      *repo.ScoreRepo
	archives    *repo.ArchiveRepo
	ranking     *sortedstorage.RedisRanking
	locker      *sortedstorage.RedisLocker
}

func initMongo(ctx context.Context, cfg config.Config) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DBURI))
	if err != nil {
		return nil, fmt.Errorf("connecting to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("MongoDB ping failed: %w", err)
	}
	appLogger.Info("Connected to MongoDB")
	return client, nil
}

func initRedis(ctx context.Context, cfg config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("Redis ping failed: %w", err)
	}
	appLogger.Info("Connected to Redis")
	return client, nil
}

func initBackends(ctx context.Context, cfg config.Config) (*backends, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	mongoClient, err := initMongo(ctx, cfg)
	if err != nil {
		return nil, err
	}
	redisClient, err := initRedis(ctx, cfg)
	if err != nil {
		_ = mongoClient.Disconnect(ctx)
		return nil, err
	}

	b := &backends{
		mongoClient: mongoClient,
		redisClient: redisClient,
		scores:      repo.NewScoreRepo(mongoClient, cfg.DBName, scoresCollection),
		archives:    repo.NewArchiveRepo(mongoClient, cfg.DBName, archivesCollection),
		ranking:     sortedstorage.NewRedisRanking(redisClient, cfg.LeaderboardTTLSeconds),
		locker:      sortedstorage.NewRedisLocker(redisClient, archiveLockExpiry),
	}
	if err := b.scores.EnsureIndexes(ctx); err != nil {
		appLogger.Warn("Creating score indexes", "error", err)
	}
	appLogger.Info("Repositories initialized")
	return b, nil
}

func (b *backends) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = b.mongoClient.Disconnect(ctx)
	_ = b.redisClient.Close()
}

func initArchiver(b *backends, reset, debug bool) (*service.Archiver, error) {
	archiveLogger, err := logger.New("ARCHIVE", config.ColorMagenta, os.Stdout, debug)
	if err != nil {
		return nil, fmt.Errorf("creating archive logger: %w", err)
	}

	return service.NewArchiver(service.ArchiverConfig{
		Scores:   b.scores,
		Archives: b.archives,
		Ranking:  b.ranking,
		Locker:   b.locker,
		Logger:   archiveLogger,
		Reset:    reset,
	})
}
