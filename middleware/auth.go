package middleware

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	userRepo "github.com/mohamedfathy32/elnaseem-crm/database/repository/user"
	"github.com/mohamedfathy32/elnaseem-crm/models"
	"github.com/mohamedfathy32/elnaseem-crm/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	actorContextKey = "actor"
	actorCacheTTL   = 5 * time.Minute
)

func actorCacheKey(uid string) string {
	return "actor:" + uid
}

// FirebaseAuthMiddleware verifies the bearer ID token and resolves the
// calling account. The account document is cached in Redis so the per
// request lookup stays off the database's hot path; disabled accounts are
// rejected here regardless of token validity.
func FirebaseAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.JSONError(c, utils.E(utils.KindUnauthenticated, "missing or invalid Authorization header"))
			c.Abort()
			return
		}
		idToken := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.GetAuthClient().VerifyIDToken(c.Request.Context(), idToken)
		if err != nil {
			utils.JSONError(c, utils.Wrap(utils.KindUnauthenticated, "invalid id token", err))
			c.Abort()
			return
		}

		actor, err := resolveActor(c.Request.Context(), users, token.UID)
		if err != nil {
			logger.Error("Failed to resolve actor", zap.String("uid", token.UID), zap.Error(err))
			utils.JSONError(c, err)
			c.Abort()
			return
		}
		if actor == nil {
			utils.JSONError(c, utils.E(utils.KindUnauthenticated, "no account for this identity"))
			c.Abort()
			return
		}
		if actor.Disabled {
			utils.JSONError(c, utils.E(utils.KindPermissionDenied, "account is disabled"))
			c.Abort()
			return
		}

		c.Set(actorContextKey, actor)
		c.Next()
	}
}

// resolveActor loads the account document for a verified subject id, cache
// first, store on miss. A cache failure falls through to the store instead
// of failing the request.
func resolveActor(ctx context.Context, users userRepo.UserRepository, uid string) (*models.User, error) {
	cache := utils.GetAuthCacheClient()

	if data, err := cache.Get(ctx, actorCacheKey(uid)).Bytes(); err == nil {
		var cached models.User
		if jsonErr := json.Unmarshal(data, &cached); jsonErr == nil {
			return &cached, nil
		}
	} else if err != redis.Nil {
		utils.GetLogger().Warn("Actor cache read failed", zap.String("uid", uid), zap.Error(err))
	}

	user, err := users.GetByID(uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	if data, err := json.Marshal(user); err == nil {
		if err := cache.Set(ctx, actorCacheKey(uid), data, actorCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("Actor cache write failed", zap.String("uid", uid), zap.Error(err))
		}
	}
	return user, nil
}

// InvalidateActorCache drops the cached account document after a mutation
// such as a disable toggle or salary change.
func InvalidateActorCache(ctx context.Context, uid string) {
	if err := utils.GetAuthCacheClient().Del(ctx, actorCacheKey(uid)).Err(); err != nil {
		utils.GetLogger().Warn("Actor cache invalidation failed", zap.String("uid", uid), zap.Error(err))
	}
}

// Actor returns the authenticated account set by FirebaseAuthMiddleware.
func Actor(c *gin.Context) *models.User {
	v, ok := c.Get(actorContextKey)
	if !ok {
		return nil
	}
	actor, _ := v.(*models.User)
	return actor
}
