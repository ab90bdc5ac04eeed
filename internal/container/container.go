package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/dkovalev/news-api/config"
	"github.com/dkovalev/news-api/pkg/helpers"
)

// app-level container to share constructed components across packages.
// Everything here is set exactly once from main before the router wires
// modules; there is no ambient global store handle beyond this.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client
	tokens      *helpers.TokenManager
)

func SetConfig(c *config.Config)        { cfg = c }
func GetConfig() *config.Config         { return cfg }
func SetLogger(l *logrus.Logger)        { logger = l }
func GetLogger() *logrus.Logger         { return logger }
func SetPGPool(p *pgxpool.Pool)         { pgPool = p }
func GetPGPool() *pgxpool.Pool          { return pgPool }
func SetRedis(r *redis.Client)          { redisClient = r }
func GetRedis() *redis.Client           { return redisClient }
func SetTokens(t *helpers.TokenManager) { tokens = t }
func GetTokens() *helpers.TokenManager  { return tokens }
