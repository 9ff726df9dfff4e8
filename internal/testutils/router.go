package testutils

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/api/handlers"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/api/middleware"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/api/routes"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/application"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/authz"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/config"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/domain/user"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/realtime"
	"github.com/shaimaHamila/Tracking-system-sub000/internal/repository"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/mailer"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/markdown"
	"github.com/shaimaHamila/Tracking-system-sub000/pkg/storage"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const TestJWTSecret = "test-secret"

// SetupRouter builds the full API over gdb with a local hub, no mail and no
// object storage.
func SetupRouter(t *testing.T, gdb *gorm.DB) (*gin.Engine, *realtime.Hub) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.JwtSecret = TestJWTSecret
	config.Issuer = "tracking-test"
	config.TokenTTL = time.Hour
	middleware.Init()

	enforcer, err := authz.New()
	require.NoError(t, err)

	hub := realtime.NewHub()
	repos := repository.NewRepositories(gdb)
	services := application.New(repos, hub, mailer.Noop{}, markdown.NewRenderer(), storage.Disabled{})
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	return routes.NewRouter(log, []string{"http://localhost:5173"}, handlers.New(services, hub), middleware.NewAuth(enforcer, repos.User)), hub
}

// Token signs a token for u the way the login endpoint does.
func Token(t *testing.T, gdb *gorm.DB, u user.User) string {
	t.Helper()
	require.NoError(t, gdb.Preload("Role").First(&u, u.ID).Error)
	tok, err := middleware.GenerateToken(u, time.Hour)
	require.NoError(t, err)
	return tok
}
